package query

import (
	"math"
	"sort"
	"strings"

	"github.com/storelens/shopdex/internal/domain/criteria"
	"github.com/storelens/shopdex/internal/domain/search"
)

const (
	// commonAttributeThreshold is the minimum share of sampled products an
	// attribute must appear in to count as common.
	commonAttributeThreshold = 0.3

	// maxValuesPerAttribute caps the value list per attribute so
	// high-cardinality attributes do not blow up the mapping prompt.
	maxValuesPerAttribute = 20
)

// discoverAttributes analyzes the intermediate sample and returns the
// attributes common enough to be worth filtering on. The output is fully
// deterministic for a given sample: attributes sort by name, values by
// frequency with ties broken alphabetically.
func discoverAttributes(sample []search.Result) []criteria.AttributeMap {
	if len(sample) == 0 {
		return nil
	}

	// name -> value -> occurrences
	counts := make(map[string]map[string]int)
	for _, r := range sample {
		for _, attr := range r.Product.Attributes {
			value := strings.TrimSpace(attr.Value)
			if attr.Name == "" || value == "" {
				continue
			}
			if counts[attr.Name] == nil {
				counts[attr.Name] = make(map[string]int)
			}
			counts[attr.Name][value]++
		}
	}

	threshold := int(math.Ceil(float64(len(sample)) * commonAttributeThreshold))
	if threshold < 1 {
		threshold = 1
	}

	var discovered []criteria.AttributeMap
	for name, values := range counts {
		total := 0
		for _, n := range values {
			total += n
		}
		if total < threshold {
			continue
		}

		type valueCount struct {
			value string
			count int
		}
		sorted := make([]valueCount, 0, len(values))
		for v, n := range values {
			sorted = append(sorted, valueCount{v, n})
		}
		sort.Slice(sorted, func(i, j int) bool {
			if sorted[i].count != sorted[j].count {
				return sorted[i].count > sorted[j].count
			}
			return sorted[i].value < sorted[j].value
		})
		if len(sorted) > maxValuesPerAttribute {
			sorted = sorted[:maxValuesPerAttribute]
		}

		top := make([]string, 0, len(sorted))
		for _, vc := range sorted {
			top = append(top, vc.value)
		}
		discovered = append(discovered, criteria.AttributeMap{Key: name, Values: top})
	}

	sort.Slice(discovered, func(i, j int) bool {
		return discovered[i].Key < discovered[j].Key
	})

	return discovered
}
