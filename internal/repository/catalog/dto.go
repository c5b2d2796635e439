package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/storelens/shopdex/internal/db"
	"github.com/storelens/shopdex/internal/domain"
)

// productToHash maps a product and its embedding to the stored hash fields.
// The full product travels as JSON in __doc; brand, category, price and
// attrs are duplicated into indexed fields for filtering.
func productToHash(p *domain.Product, vector []float32) (map[string]string, error) {
	doc, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal product %s: %w", p.ExternalID, err)
	}

	fields := map[string]string{
		db.FieldDoc:    string(doc),
		db.FieldVector: db.VectorToBlob(vector),
		db.FieldPrice:  strconv.FormatFloat(p.Price.Amount, 'f', -1, 64),
	}
	if p.Brand != "" {
		fields[db.FieldBrand] = p.Brand
	}
	if p.Category != "" {
		fields[db.FieldCategory] = p.Category
	}
	if tags := attrTags(p.Attributes); tags != "" {
		fields[db.FieldAttrs] = tags
	}

	return fields, nil
}

// attrTags joins attribute pairs into the attrs TAG field value. Pairs whose
// name or value contains the separator cannot be represented and are skipped.
func attrTags(attrs []domain.Attribute) string {
	tags := make([]string, 0, len(attrs))
	for _, a := range attrs {
		if a.Name == "" || a.Value == "" {
			continue
		}
		if strings.Contains(a.Name, db.AttrSeparator) || strings.Contains(a.Value, db.AttrSeparator) {
			continue
		}
		tags = append(tags, db.AttrTag(a.Name, a.Value))
	}
	return strings.Join(tags, db.AttrSeparator)
}

// hashToProduct restores a product from its stored hash fields.
func hashToProduct(fields map[string]string) (domain.Product, error) {
	doc, ok := fields[db.FieldDoc]
	if !ok || doc == "" {
		return domain.Product{}, fmt.Errorf("missing %s field", db.FieldDoc)
	}

	var p domain.Product
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		return domain.Product{}, fmt.Errorf("unmarshal product: %w", err)
	}
	return p, nil
}
