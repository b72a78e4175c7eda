package model

import (
	"slices"

	"github.com/m-mizutani/goerr/v2"
)

// CategoryBreakdown partitions a total across named topic categories.
// Categories and Values are index-aligned and kept in input order.
type CategoryBreakdown struct {
	Categories []string  `yaml:"categories" toml:"categories" json:"categories"`
	Values     []float64 `yaml:"values" toml:"values" json:"values"`
}

// NewCategoryBreakdown copies categories and values into a validated breakdown
func NewCategoryBreakdown(categories []string, values []float64) (CategoryBreakdown, error) {
	b := CategoryBreakdown{
		Categories: slices.Clone(categories),
		Values:     slices.Clone(values),
	}
	if err := b.Validate(); err != nil {
		return CategoryBreakdown{}, err
	}
	return b, nil
}

// Validate checks the length invariant, uniqueness of category names and
// that no value is negative
func (b CategoryBreakdown) Validate() error {
	if len(b.Categories) != len(b.Values) {
		return goerr.Wrap(ErrLengthMismatch, "invalid category breakdown",
			goerr.V("categories", len(b.Categories)),
			goerr.V("values", len(b.Values)))
	}

	seen := make(map[string]bool, len(b.Categories))
	for i, name := range b.Categories {
		if seen[name] {
			return goerr.Wrap(ErrDuplicateCategory, "invalid category breakdown",
				goerr.V("category", name))
		}
		seen[name] = true

		if b.Values[i] < 0 {
			return goerr.Wrap(ErrNegativeValue, "invalid category breakdown",
				goerr.V("category", name),
				goerr.V("value", b.Values[i]))
		}
	}
	return nil
}

// Len returns the number of categories
func (b CategoryBreakdown) Len() int {
	return len(b.Categories)
}

// Labels returns a copy of the category names
func (b CategoryBreakdown) Labels() []string {
	return slices.Clone(b.Categories)
}

// Data returns a copy of the values
func (b CategoryBreakdown) Data() []float64 {
	return slices.Clone(b.Values)
}

// Total returns the sum of all values
func (b CategoryBreakdown) Total() float64 {
	var total float64
	for _, v := range b.Values {
		total += v
	}
	return total
}

// Shares returns each value as a fraction of the total. All shares are zero
// when the total is zero.
func (b CategoryBreakdown) Shares() []float64 {
	shares := make([]float64, len(b.Values))
	total := b.Total()
	if total == 0 {
		return shares
	}
	for i, v := range b.Values {
		shares[i] = v / total
	}
	return shares
}
