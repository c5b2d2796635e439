package query

import (
	"context"

	"go.uber.org/zap"

	"github.com/storelens/shopdex/internal/domain/criteria"
)

// mapAttributes asks the model which discovered attribute values match the
// query, then gates the answer: low-confidence mappings, empty selections,
// and anything not present in the discovered vocabulary are dropped. The
// node fails open.
func (s *Service) mapAttributes(ctx context.Context, st *state) {
	if len(st.discovered) == 0 {
		st.mappingReasoning = "No attributes to map"
		return
	}

	mapping, err := s.extractor.MapAttributes(ctx, st.query, st.discovered)
	if err != nil {
		s.logger.Warn("Attribute mapping failed, continuing without attribute filters",
			zap.String("query", st.query), zap.Error(err))
		st.mappingReasoning = "Mapping failed"
		return
	}

	for _, m := range mapping.Mappings {
		if m.Confidence == criteria.ConfidenceLow || len(m.SelectedValues) == 0 {
			continue
		}
		if !s.isValidMapping(m, st.discovered) {
			continue
		}
		st.attributeFilters = append(st.attributeFilters, criteria.AttributeFilter{
			Name:   m.AttributeName,
			Values: m.SelectedValues,
		})
	}

	st.mappingReasoning = mapping.Reasoning

	s.logger.Debug("Mapped attribute filters",
		zap.Int("count", len(st.attributeFilters)),
		zap.String("reasoning", st.mappingReasoning))
}

// isValidMapping rejects hallucinated attribute names and values: the name
// must be a discovered attribute and every selected value must be in its
// discovered value list, exactly.
func (s *Service) isValidMapping(m criteria.ValueMapping, discovered []criteria.AttributeMap) bool {
	var attr *criteria.AttributeMap
	for i := range discovered {
		if discovered[i].Key == m.AttributeName {
			attr = &discovered[i]
			break
		}
	}
	if attr == nil {
		s.logger.Warn("Dropping mapping with unknown attribute name",
			zap.String("attribute", m.AttributeName))
		return false
	}

	known := make(map[string]struct{}, len(attr.Values))
	for _, v := range attr.Values {
		known[v] = struct{}{}
	}
	for _, v := range m.SelectedValues {
		if _, ok := known[v]; !ok {
			s.logger.Warn("Dropping mapping with unknown value",
				zap.String("attribute", m.AttributeName), zap.String("value", v))
			return false
		}
	}
	return true
}
