// Package criteria holds the structured search intent extracted from a
// free-text shopping query, together with the validation logic that grounds
// raw intent against the catalog vocabulary.
package criteria

import "strings"

// PriceOperator is the comparison applied to an extracted price amount.
type PriceOperator string

const (
	// OpEq matches an exact price.
	OpEq PriceOperator = "eq"
	// OpLT matches prices below the amount.
	OpLT PriceOperator = "lt"
	// OpGT matches prices above the amount.
	OpGT PriceOperator = "gt"
	// OpRange matches prices between Amount and MaxAmount.
	OpRange PriceOperator = "range"
)

// Valid reports whether the operator is one of the known values.
func (op PriceOperator) Valid() bool {
	switch op {
	case OpEq, OpLT, OpGT, OpRange:
		return true
	}
	return false
}

// PriceCondition is a hard price constraint. A nil *PriceCondition means the
// query contained no price, never a guessed value. MaxAmount is meaningful
// only when Operator is OpRange.
type PriceCondition struct {
	Amount    float64
	Operator  PriceOperator
	MaxAmount *float64
}

// SortOrder is the direction of a soft ranking preference.
type SortOrder string

const (
	// Asc sorts lowest first.
	Asc SortOrder = "asc"
	// Desc sorts highest first.
	Desc SortOrder = "desc"
)

// Sorting is a soft ranking preference derived from qualitative language
// ("cheap" → price asc). It reorders results without excluding any.
type Sorting struct {
	Field string
	Order SortOrder
}

// SearchCriteria accumulates across the workflow: the three stage-1
// extractors each contribute a disjoint field group (categories, brand
// intent via the validator, price/sorting), so concurrent writes never
// overlap. Brand fields are populated only by brand validation, never
// directly from raw extraction.
type SearchCriteria struct {
	Categories        []string
	ExcludeCategories []string
	Brands            []string
	ExcludeBrands     []string
	Price             *PriceCondition
	Sorting           *Sorting
}

// IntendedBrands is raw brand intent before catalog validation. It decouples
// "what the user asked for" from "what the catalog can satisfy".
type IntendedBrands struct {
	Brands        []string
	ExcludeBrands []string
}

// Empty reports whether the user named no brands at all.
func (ib IntendedBrands) Empty() bool {
	return len(ib.Brands) == 0 && len(ib.ExcludeBrands) == 0
}

// BrandValidationStatus is the outcome of reconciling intended brands
// against the catalog vocabulary.
type BrandValidationStatus string

const (
	// BrandNotChecked means validation has not run yet.
	BrandNotChecked BrandValidationStatus = ""
	// NoBrandSpecified means the user named no include-brands.
	NoBrandSpecified BrandValidationStatus = "no_brand_specified"
	// BrandMatched means every intended include-brand exists in the catalog.
	BrandMatched BrandValidationStatus = "matched"
	// BrandPartial means some but not all intended include-brands exist.
	BrandPartial BrandValidationStatus = "partial"
	// BrandNotFound means the user named include-brands and none exist.
	// The workflow short-circuits with zero results rather than silently
	// substituting another brand's products.
	BrandNotFound BrandValidationStatus = "not_found"
)

// SearchStatus is the terminal state of a workflow run.
type SearchStatus string

const (
	// StatusSuccess means the fully constrained search returned results.
	StatusSuccess SearchStatus = "success"
	// StatusNoResults means nothing matched, even after fallback.
	StatusNoResults SearchStatus = "no_results"
	// StatusPartial means results come from the fallback search with
	// attribute filters stripped.
	StatusPartial SearchStatus = "partial"
)

// AttributeMap is an attribute discovered from an intermediate result
// sample: a name and its observed values, most frequent first. It lives for
// a single query and is never persisted.
type AttributeMap struct {
	Key    string
	Values []string
}

// AttributeFilter is a validated, catalog-grounded attribute constraint:
// match any of Values under attribute Name.
type AttributeFilter struct {
	Name   string
	Values []string
}

// Confidence tags how strongly an attribute mapping follows from the query.
type Confidence string

const (
	// ConfidenceHigh - the user explicitly named the attribute or a direct synonym.
	ConfidenceHigh Confidence = "high"
	// ConfidenceMedium - implied through related terms.
	ConfidenceMedium Confidence = "medium"
	// ConfidenceLow - speculative; mappings at this level are dropped.
	ConfidenceLow Confidence = "low"
)

// AttributeMapping is the raw mapper output before the confidence gate and
// the hallucination check are applied.
type AttributeMapping struct {
	Mappings  []ValueMapping
	Reasoning string
}

// ValueMapping selects values under one discovered attribute name.
type ValueMapping struct {
	AttributeName  string
	SelectedValues []string
	Confidence     Confidence
}

// MatchAgainst filters values case-insensitively against a known list,
// returning matches with the list's canonical casing and dropping the rest.
// Order follows the input; duplicates collapse to the first occurrence.
func MatchAgainst(values, known []string) []string {
	if len(values) == 0 || len(known) == 0 {
		return nil
	}
	canonical := make(map[string]string, len(known))
	for _, k := range known {
		lower := strings.ToLower(k)
		if _, ok := canonical[lower]; !ok {
			canonical[lower] = k
		}
	}
	var out []string
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		lower := strings.ToLower(strings.TrimSpace(v))
		c, ok := canonical[lower]
		if !ok {
			continue
		}
		if _, dup := seen[lower]; dup {
			continue
		}
		seen[lower] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Disjoint removes from include anything present in exclude
// (case-insensitive). Extraction output must keep include and exclude sets
// disjoint; when the provider returns overlap, exclusion wins.
func Disjoint(include, exclude []string) []string {
	if len(include) == 0 || len(exclude) == 0 {
		return include
	}
	excluded := make(map[string]struct{}, len(exclude))
	for _, e := range exclude {
		excluded[strings.ToLower(e)] = struct{}{}
	}
	out := include[:0:0]
	for _, v := range include {
		if _, ok := excluded[strings.ToLower(v)]; ok {
			continue
		}
		out = append(out, v)
	}
	return out
}
