package model

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Dataset is one versioned edition of the publication statistics. A new
// edition replaces the previous one wholesale.
type Dataset struct {
	Version      string            `yaml:"version" toml:"version" json:"version"`
	Title        string            `yaml:"title,omitempty" toml:"title" json:"title,omitempty"`
	Description  string            `yaml:"description,omitempty" toml:"description" json:"description,omitempty"`
	UpdatedAt    string            `yaml:"updated_at,omitempty" toml:"updated_at" json:"updated_at,omitempty"`
	PaperCount   int               `yaml:"paper_count,omitempty" toml:"paper_count" json:"paper_count,omitempty"`
	ScholarCount int               `yaml:"scholar_count,omitempty" toml:"scholar_count" json:"scholar_count,omitempty"`
	Series       YearlySeries      `yaml:"series" toml:"series" json:"series"`
	Breakdown    CategoryBreakdown `yaml:"breakdown" toml:"breakdown" json:"breakdown"`
	Style        ChartStyle        `yaml:"style,omitempty" toml:"style" json:"style"`
}

// Validate checks the invariants of both series
func (d *Dataset) Validate() error {
	if d.Series.Len() == 0 && d.Breakdown.Len() == 0 {
		return goerr.Wrap(ErrEmptyDataset, "dataset has neither yearly counts nor categories",
			goerr.V("version", d.Version))
	}
	if err := d.Series.Validate(); err != nil {
		return goerr.Wrap(err, "invalid dataset", goerr.V("version", d.Version))
	}
	if err := d.Breakdown.Validate(); err != nil {
		return goerr.Wrap(err, "invalid dataset", goerr.V("version", d.Version))
	}
	if d.PaperCount < 0 {
		return goerr.Wrap(ErrNegativeValue, "invalid paper count", goerr.V("paper_count", d.PaperCount))
	}
	if d.ScholarCount < 0 {
		return goerr.Wrap(ErrNegativeValue, "invalid scholar count", goerr.V("scholar_count", d.ScholarCount))
	}
	return nil
}

// WarningCode classifies a data consistency warning
type WarningCode string

const (
	WarnNonMonotonic       WarningCode = "non_monotonic"
	WarnTotalMismatch      WarningCode = "total_mismatch"
	WarnPaperCountMismatch WarningCode = "paper_count_mismatch"
)

// Warning is a consistency problem in the input data. Warnings never block
// rendering.
type Warning struct {
	Code    WarningCode
	Message string
}

// LogValue implements slog.LogValuer
func (w Warning) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("code", string(w.Code)),
		slog.String("message", w.Message),
	)
}

// Check reports consistency problems that the source data is expected, but
// not required, to avoid
func (d *Dataset) Check() []Warning {
	var warnings []Warning

	if !d.Series.IsMonotonic() {
		warnings = append(warnings, Warning{
			Code:    WarnNonMonotonic,
			Message: "cumulative counts decrease between consecutive years",
		})
	}

	year, last, ok := d.Series.Last()
	if ok && d.Breakdown.Len() > 0 {
		total := d.Breakdown.Total()
		if math.Abs(total-float64(last)) > 1e-9 {
			warnings = append(warnings, Warning{
				Code:    WarnTotalMismatch,
				Message: fmt.Sprintf("category total %g differs from cumulative count %d in %s", total, last, year),
			})
		}
	}

	if ok && d.PaperCount > 0 && d.PaperCount != last {
		warnings = append(warnings, Warning{
			Code:    WarnPaperCountMismatch,
			Message: fmt.Sprintf("paper count %d differs from cumulative count %d in %s", d.PaperCount, last, year),
		})
	}

	return warnings
}

// DescriptionOrDefault returns Description, or "From <first> to <last>"
// derived from the series and UpdatedAt when it is empty
func (d *Dataset) DescriptionOrDefault() string {
	if d.Description != "" {
		return d.Description
	}
	if d.Series.Len() == 0 {
		return ""
	}

	to := d.Series.Years[d.Series.Len()-1]
	if fields := strings.Fields(d.UpdatedAt); len(fields) > 0 {
		to = fields[len(fields)-1]
	}
	return fmt.Sprintf("From %s to %s", d.Series.Years[0], to)
}

// LogValue implements slog.LogValuer
func (d *Dataset) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("version", d.Version),
		slog.Int("years", d.Series.Len()),
		slog.Int("categories", d.Breakdown.Len()),
		slog.Int("paper_count", d.PaperCount),
	)
}
