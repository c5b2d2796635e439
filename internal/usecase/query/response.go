package query

import (
	"github.com/storelens/shopdex/internal/domain"
	"github.com/storelens/shopdex/internal/domain/criteria"
)

// Response is the complete workflow outcome, including the applied filters
// and discovery trail for transparency.
type Response struct {
	Products             []Item                `json:"products"`
	Status               criteria.SearchStatus `json:"status"`
	AppliedFilters       AppliedFilters        `json:"appliedFilters"`
	DiscoveredAttributes []AttributeMap        `json:"discoveredAttributes,omitempty"`
	Reasoning            string                `json:"reasoning,omitempty"`
}

// Item is one scored product in the response.
type Item struct {
	Score   float64        `json:"score"`
	Product domain.Product `json:"product"`
}

// AppliedFilters reports the filters the search actually ran with.
type AppliedFilters struct {
	Brands                []string                       `json:"brands,omitempty"`
	ExcludeBrands         []string                       `json:"excludeBrands,omitempty"`
	Categories            []string                       `json:"categories,omitempty"`
	ExcludeCategories     []string                       `json:"excludeCategories,omitempty"`
	Price                 *PriceFilter                   `json:"price,omitempty"`
	Sorting               *SortingSpec                   `json:"sorting,omitempty"`
	Attributes            []AttributeFilter              `json:"attributes,omitempty"`
	BrandValidationStatus criteria.BrandValidationStatus `json:"brandValidationStatus,omitempty"`
}

// PriceFilter is the applied price condition.
type PriceFilter struct {
	Amount    float64  `json:"amount"`
	Operator  string   `json:"operator"`
	MaxAmount *float64 `json:"maxAmount,omitempty"`
}

// SortingSpec is the applied sorting preference.
type SortingSpec struct {
	Field string `json:"field"`
	Order string `json:"order"`
}

// AttributeFilter is an applied attribute constraint.
type AttributeFilter struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// AttributeMap is a discovered attribute and its observed values.
type AttributeMap struct {
	Key    string   `json:"key"`
	Values []string `json:"values"`
}

// buildResponse assembles the response from terminal workflow state.
func buildResponse(st *state) *Response {
	resp := &Response{
		Products: make([]Item, 0, len(st.results)),
		Status:   st.status,
		AppliedFilters: AppliedFilters{
			Brands:                st.criteria.Brands,
			ExcludeBrands:         st.criteria.ExcludeBrands,
			Categories:            st.criteria.Categories,
			ExcludeCategories:     st.criteria.ExcludeCategories,
			BrandValidationStatus: st.brandStatus,
		},
		Reasoning: st.mappingReasoning,
	}

	for _, r := range st.results {
		resp.Products = append(resp.Products, Item{Score: r.Score, Product: r.Product})
	}

	if p := st.criteria.Price; p != nil {
		resp.AppliedFilters.Price = &PriceFilter{
			Amount:    p.Amount,
			Operator:  string(p.Operator),
			MaxAmount: p.MaxAmount,
		}
	}
	if srt := st.criteria.Sorting; srt != nil {
		resp.AppliedFilters.Sorting = &SortingSpec{
			Field: srt.Field,
			Order: string(srt.Order),
		}
	}

	// Attribute filters are applied only when the final search kept them.
	if !st.fellBack {
		for _, af := range st.attributeFilters {
			resp.AppliedFilters.Attributes = append(resp.AppliedFilters.Attributes, AttributeFilter{
				Name:   af.Name,
				Values: af.Values,
			})
		}
	}

	for _, d := range st.discovered {
		resp.DiscoveredAttributes = append(resp.DiscoveredAttributes, AttributeMap{
			Key:    d.Key,
			Values: d.Values,
		})
	}

	return resp
}
