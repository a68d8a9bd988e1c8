// Package tax derives display prices from a base price and VAT
// settings.
package tax

import "math"

// Display is the customer-facing price breakdown. TaxAmount is nil
// when VAT does not apply so the field is omitted from JSON.
type Display struct {
	PriceWithoutTax float64
	ActualPrice     float64
	TaxAmount       *float64
}

// Compute applies the VAT breakdown to a base price. The tax amount
// is rounded half-up to the nearest whole unit and the actual price
// is the base plus the rounded tax.
func Compute(basePrice float64, vatTax bool, vatPercent float64) Display {
	d := Display{
		PriceWithoutTax: basePrice,
		ActualPrice:     basePrice,
	}

	if !vatTax {
		return d
	}

	amount := roundHalfUp(basePrice * vatPercent / 100)
	d.TaxAmount = &amount
	d.ActualPrice = d.PriceWithoutTax + amount

	return d
}

// roundHalfUp rounds ties toward positive infinity, matching
// Math.round semantics from the service this one replaces.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
