package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/rueidis"

	"github.com/storelens/shopdex/internal/db"
	"github.com/storelens/shopdex/internal/domain/search"
)

// SearchKNN runs a KNN vector similarity search via FT.SEARCH, applying the
// product filter as a hard pre-filter.
func (s *Store) SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error) {
	if q.IndexName == "" {
		return nil, fmt.Errorf("index name is required")
	}
	if len(q.Vector) == 0 {
		return nil, fmt.Errorf("vector is required")
	}
	if q.K <= 0 {
		return nil, fmt.Errorf("k must be positive")
	}

	filterStr := buildFilter(q.Filter)

	knnPart := fmt.Sprintf("[KNN %d @%s $BLOB]", q.K, db.FieldVectorAttr)
	var queryStr string
	if filterStr != "" {
		queryStr = fmt.Sprintf("(%s)=>%s", filterStr, knnPart)
	} else {
		queryStr = fmt.Sprintf("*=>%s", knnPart)
	}

	args := []string{q.IndexName, queryStr}

	if len(q.ReturnFields) > 0 {
		args = append(args, "RETURN", strconv.Itoa(len(q.ReturnFields)))
		args = append(args, q.ReturnFields...)
	}

	args = append(args,
		"SORTBY", db.FieldScore,
		"LIMIT", strconv.Itoa(q.Offset), strconv.Itoa(q.K),
		"PARAMS", "2", "BLOB", db.VectorToBlob(q.Vector),
		"DIALECT", "2",
	)

	cmd := s.b().Arbitrary("FT.SEARCH").Args(args...).Build()
	raw, err := s.do(ctx, cmd).ToArray()
	if err != nil {
		return nil, &db.Error{Op: db.OpSearch, Err: err}
	}

	return parseKNNResult(raw)
}

// TagValues returns the distinct values of a TAG field via FT.TAGVALS.
func (s *Store) TagValues(ctx context.Context, index, field string) ([]string, error) {
	cmd := s.b().Arbitrary("FT.TAGVALS").Args(index, field).Build()
	raw, err := s.do(ctx, cmd).ToArray()
	if err != nil {
		if isRedisErr(err, "unknown index name") {
			return nil, db.ErrIndexNotFound
		}
		return nil, &db.Error{Op: db.OpTagVals, Err: err}
	}

	values := make([]string, 0, len(raw))
	for _, msg := range raw {
		v, err := msg.ToString()
		if err != nil {
			continue
		}
		values = append(values, v)
	}
	return values, nil
}

// --- Result parsing ---

func parseKNNResult(raw []rueidis.RedisMessage) (*db.SearchResult, error) {
	if len(raw) == 0 {
		return &db.SearchResult{}, nil
	}

	total, err := raw[0].AsInt64()
	if err != nil {
		return nil, fmt.Errorf("parse total: %w", err)
	}
	if total == 0 {
		return &db.SearchResult{}, nil
	}

	entries := make([]db.SearchEntry, 0, total)
	// 2-stride: [total, key1, fields1, key2, fields2, ...]
	for i := 1; i+1 < len(raw); i += 2 {
		key, err := raw[i].ToString()
		if err != nil {
			continue
		}

		fields, err := raw[i+1].ToArray()
		if err != nil {
			continue
		}

		entry := db.SearchEntry{
			Key:    key,
			Fields: parseFieldPairs(fields),
		}

		if scoreStr, ok := entry.Fields[db.FieldScore]; ok {
			if s, err := strconv.ParseFloat(scoreStr, 64); err == nil {
				entry.Score = max(0, 1.0-s) // cosine distance maps to similarity, clamped at 0
			}
			delete(entry.Fields, db.FieldScore)
		}

		entries = append(entries, entry)
	}

	return &db.SearchResult{Total: int(total), Entries: entries}, nil
}

func parseFieldPairs(fields []rueidis.RedisMessage) map[string]string {
	m := make(map[string]string, len(fields)/2)
	for j := 0; j+1 < len(fields); j += 2 {
		name, err := fields[j].ToString()
		if err != nil {
			continue
		}
		value, err := fields[j+1].ToString()
		if err != nil {
			continue
		}
		m[name] = value
	}
	return m
}

// --- Filter building ---

// buildFilter translates a ProductFilter into an FT.SEARCH pre-filter query
// string.
func buildFilter(f search.ProductFilter) string {
	if f.IsEmpty() {
		return ""
	}

	var parts []string

	if g := buildTagGroup(db.FieldCategory, f.Categories); g != "" {
		parts = append(parts, g)
	}
	if g := buildTagGroup(db.FieldBrand, f.Brands); g != "" {
		parts = append(parts, g)
	}
	if f.PriceMin != nil || f.PriceMax != nil {
		parts = append(parts, buildNumericFilter(db.FieldPrice, f.PriceMin, f.PriceMax))
	}
	for _, attr := range f.Attributes {
		tags := make([]string, 0, len(attr.Values))
		for _, v := range attr.Values {
			tags = append(tags, db.AttrTag(attr.Name, v))
		}
		if g := buildTagGroup(db.FieldAttrs, tags); g != "" {
			parts = append(parts, g)
		}
	}
	if g := buildTagGroup(db.FieldCategory, f.ExcludeCategories); g != "" {
		parts = append(parts, "-"+g)
	}
	if g := buildTagGroup(db.FieldBrand, f.ExcludeBrands); g != "" {
		parts = append(parts, "-"+g)
	}

	return strings.Join(parts, " ")
}

// buildTagGroup renders a match-any tag clause: @key:{a|b|c}.
func buildTagGroup(key string, values []string) string {
	if len(values) == 0 {
		return ""
	}
	escaped := make([]string, 0, len(values))
	for _, v := range values {
		escaped = append(escaped, tagEscaper.Replace(v))
	}
	return fmt.Sprintf("@%s:{%s}", key, strings.Join(escaped, "|"))
}

func buildNumericFilter(key string, minBound, maxBound *float64) string {
	lower := "-inf"
	upper := "+inf"
	if minBound != nil {
		lower = fmt.Sprintf("%g", *minBound)
	}
	if maxBound != nil {
		upper = fmt.Sprintf("%g", *maxBound)
	}
	return fmt.Sprintf("@%s:[%s %s]", key, lower, upper)
}

var tagEscaper = strings.NewReplacer(
	",", "\\,",
	".", "\\.",
	"<", "\\<",
	">", "\\>",
	"{", "\\{",
	"}", "\\}",
	"\"", "\\\"",
	"'", "\\'",
	":", "\\:",
	";", "\\;",
	"!", "\\!",
	"@", "\\@",
	"#", "\\#",
	"$", "\\$",
	"%", "\\%",
	"^", "\\^",
	"&", "\\&",
	"*", "\\*",
	"(", "\\(",
	")", "\\)",
	"-", "\\-",
	"+", "\\+",
	"=", "\\=",
	"~", "\\~",
	"|", "\\|",
	" ", "\\ ",
)
