package models

import "github.com/shopspring/decimal"

// LongRow is one (individual, sub-category) observation after unpivoting.
type LongRow struct {
	Group       string `json:"group"`
	Name        string `json:"name"`
	SubCategory string `json:"sub_category"`
	// Raw is the cell text before numeric coercion.
	Raw string `json:"raw"`
	// Value is set when Raw parsed as a number.
	Value *decimal.Decimal `json:"value,omitempty"`
	// TopCategory is one of the two band labels.
	TopCategory string `json:"top_category"`
}

// Hours returns the coerced value, treating a missing value as zero.
func (r LongRow) Hours() decimal.Decimal {
	if r.Value == nil {
		return decimal.Zero
	}
	return *r.Value
}
