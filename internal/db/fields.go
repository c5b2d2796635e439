package db

// Hash field names of a stored product. The double-underscore fields are
// internal payloads; the rest are indexed filter fields.
const (
	FieldDoc      = "__doc"
	FieldVector   = "__vector"
	FieldBrand    = "brand"
	FieldCategory = "category"
	FieldPrice    = "price"
	FieldAttrs    = "attrs"
)

// The vector hash field is indexed under the alias below. KNN queries address
// the alias, and RediSearch yields the distance as "__<attribute>_score", so
// FieldScore must stay in lockstep with FieldVectorAttr.
const (
	FieldVectorAttr = "vector"
	FieldScore      = "__" + FieldVectorAttr + "_score"
)

// AttrSeparator splits name=value pairs in the attrs TAG field. "|" rather
// than the default "," because attribute values routinely contain commas.
const AttrSeparator = "|"

// AttrTag renders an attribute name/value pair as a single composite tag.
func AttrTag(name, value string) string {
	return name + "=" + value
}
