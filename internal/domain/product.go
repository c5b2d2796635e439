package domain

import (
	"fmt"
	"strings"
)

// Currency codes accepted by the catalog.
const (
	CurrencyUAH = "UAH"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
)

// Price is the selling price of a product.
type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Attribute is a single technical specification, e.g. {Color, Red}.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Variant is a specific SKU of a product.
type Variant struct {
	SKU       string `json:"sku"`
	Title     string `json:"title"`
	Price     *Price `json:"price,omitempty"`
	Available bool   `json:"available"`
}

// Product is the unified catalog record. It is produced by the ingestion
// mapper and treated as read-only payload by the search workflow.
type Product struct {
	ExternalID  string      `json:"externalId"`
	URL         string      `json:"url"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Brand       string      `json:"brand,omitempty"`
	Category    string      `json:"category,omitempty"`
	Price       Price       `json:"price"`
	MainImage   string      `json:"mainImage"`
	Attributes  []Attribute `json:"attributes"`
	Variants    []Variant   `json:"variants,omitempty"`
	Keywords    []string    `json:"keywords,omitempty"`
}

// Validate checks the minimal invariants required before indexing.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.ExternalID) == "" {
		return fmt.Errorf("%w: externalId is required", ErrInvalidProduct)
	}
	if len(strings.TrimSpace(p.Title)) < 3 {
		return fmt.Errorf("%w: title must be at least 3 characters", ErrInvalidProduct)
	}
	if p.Price.Amount < 0 {
		return fmt.Errorf("%w: price.amount must be non-negative", ErrInvalidProduct)
	}
	switch p.Price.Currency {
	case CurrencyUAH, CurrencyUSD, CurrencyEUR:
	case "":
		p.Price.Currency = CurrencyUSD
	default:
		return fmt.Errorf("%w: unsupported currency %q", ErrInvalidProduct, p.Price.Currency)
	}
	return nil
}
