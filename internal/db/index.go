package db

// DistanceMetric used by FT.SEARCH vector similarity queries.
type DistanceMetric string

const (
	// DistanceL2 is Euclidean distance.
	DistanceL2 DistanceMetric = "L2"
	// DistanceCosine is cosine distance.
	DistanceCosine DistanceMetric = "COSINE"
)

// VectorAlgorithm selects the indexing algorithm for vector fields in FT.CREATE.
type VectorAlgorithm string

const (
	// VectorHNSW uses the HNSW algorithm.
	VectorHNSW VectorAlgorithm = "HNSW"
	// VectorFlat uses the FLAT (brute-force) algorithm.
	VectorFlat VectorAlgorithm = "FLAT"
)

// IndexFieldType enumerates supported FT index field types.
type IndexFieldType string

const (
	// IndexFieldTag is an exact-match keyword field.
	IndexFieldTag IndexFieldType = "TAG"
	// IndexFieldNumeric is a numeric range field.
	IndexFieldNumeric IndexFieldType = "NUMERIC"
	// IndexFieldVector is a vector similarity field.
	IndexFieldVector IndexFieldType = "VECTOR"
)

// IndexField describes one field in an FT index schema. Alias, when set,
// indexes the hash field under a different attribute name (FT.CREATE ... AS).
type IndexField struct {
	Name             string
	Alias            string
	Type             IndexFieldType
	TagSeparator     string
	TagCaseSensitive bool

	VectorAlgo        VectorAlgorithm
	VectorDim         int
	VectorDistance    DistanceMetric
	VectorM           int
	VectorEFConstruct int
}

// IndexDefinition describes an FT index over hash keys with given prefixes.
type IndexDefinition struct {
	Name     string
	Prefixes []string
	Fields   []IndexField
}
