package model

import (
	"slices"

	"github.com/m-mizutani/goerr/v2"
)

// YearlySeries is a cumulative count of publications per year. Years and
// Counts are index-aligned.
type YearlySeries struct {
	Years  []string `yaml:"years" toml:"years" json:"years"`
	Counts []int    `yaml:"counts" toml:"counts" json:"counts"`
}

// NewYearlySeries copies years and counts into a validated series
func NewYearlySeries(years []string, counts []int) (YearlySeries, error) {
	s := YearlySeries{
		Years:  slices.Clone(years),
		Counts: slices.Clone(counts),
	}
	if err := s.Validate(); err != nil {
		return YearlySeries{}, err
	}
	return s, nil
}

// Validate checks the length invariant and that no count is negative.
// Monotonicity is a property of the data and is reported by Dataset.Check.
func (s YearlySeries) Validate() error {
	if len(s.Years) != len(s.Counts) {
		return goerr.Wrap(ErrLengthMismatch, "invalid yearly series",
			goerr.V("years", len(s.Years)),
			goerr.V("counts", len(s.Counts)))
	}
	for i, c := range s.Counts {
		if c < 0 {
			return goerr.Wrap(ErrNegativeValue, "invalid yearly series",
				goerr.V("year", s.Years[i]),
				goerr.V("count", c))
		}
	}
	return nil
}

// Len returns the number of years
func (s YearlySeries) Len() int {
	return len(s.Years)
}

// Labels returns a copy of the year labels
func (s YearlySeries) Labels() []string {
	return slices.Clone(s.Years)
}

// Values returns the counts as chart values
func (s YearlySeries) Values() []float64 {
	values := make([]float64, len(s.Counts))
	for i, c := range s.Counts {
		values[i] = float64(c)
	}
	return values
}

// Last returns the final year and its count. ok is false for an empty series.
func (s YearlySeries) Last() (year string, count int, ok bool) {
	if len(s.Years) == 0 || len(s.Counts) == 0 {
		return "", 0, false
	}
	return s.Years[len(s.Years)-1], s.Counts[len(s.Counts)-1], true
}

// IsMonotonic reports whether counts never decrease
func (s YearlySeries) IsMonotonic() bool {
	for i := 1; i < len(s.Counts); i++ {
		if s.Counts[i] < s.Counts[i-1] {
			return false
		}
	}
	return true
}
