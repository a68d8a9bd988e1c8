// Package model defines the persisted and API-facing domain types.
package model

import "strings"

// Product is the persisted catalog record, one element of
// product.json.
type Product struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Price            float64   `json:"price"`
	VatTax           bool      `json:"vatTax"`
	VatTaxPercentage FlexFloat `json:"vatTaxPercentage"`

	// Tags is a comma-separated list. It is stored but always
	// stripped from API responses.
	Tags string `json:"tags,omitempty"`
}

// TagList splits the comma-separated tags, trimming whitespace and
// dropping empties. A product with no tags yields nil and never
// matches a tag search.
func (p Product) TagList() []string {
	if p.Tags == "" {
		return nil
	}

	parts := strings.Split(p.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// HasTag reports whether any of the product's tags equals one of the
// requested tags.
func (p Product) HasTag(requested []string) bool {
	for _, tag := range p.TagList() {
		for _, want := range requested {
			if tag == want {
				return true
			}
		}
	}
	return false
}

// ProductView is the API representation of a product: the base price
// is replaced by the tax breakdown, tags are stripped, and stock is
// attached when the inventory ledger has a positive entry.
type ProductView struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	VatTax           bool      `json:"vatTax"`
	VatTaxPercentage FlexFloat `json:"vatTaxPercentage"`
	PriceWithoutTax  float64   `json:"priceWithoutTax"`
	ActualPrice      float64   `json:"actualPrice"`
	TaxAmount        *float64  `json:"taxAmount,omitempty"`
	Stock            *int      `json:"stock,omitempty"`
}
