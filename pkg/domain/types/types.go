package types

import (
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// SurfaceID identifies a drawable surface on the host page
type SurfaceID string

// Well-known surfaces of the publication page
const (
	SurfaceBarChart SurfaceID = "barChart"
	SurfacePieChart SurfaceID = "pieChart"
)

// String returns the string representation
func (id SurfaceID) String() string {
	return string(id)
}

// Validate checks that the surface ID is usable as a DOM id and file name
func (id SurfaceID) Validate() error {
	if id == "" {
		return goerr.New("surface ID is empty")
	}
	if strings.ContainsAny(string(id), " /\\\"'<>") {
		return goerr.New("surface ID contains invalid characters", goerr.V("id", id))
	}
	return nil
}

// ChartID identifies a live chart bound to a surface
type ChartID string

// String returns the string representation
func (id ChartID) String() string {
	return string(id)
}

// NewChartID creates a new ChartID using UUID v7
func NewChartID() ChartID {
	id, err := uuid.NewV7()
	if err != nil {
		return ChartID(uuid.New().String())
	}
	return ChartID(id.String())
}

// ChartType is the chart kind understood by the charting library
type ChartType string

const (
	ChartTypeBar ChartType = "bar"
	ChartTypePie ChartType = "pie"
)

// String returns the string representation
func (t ChartType) String() string {
	return string(t)
}

// IsValid checks if the chart type is supported
func (t ChartType) IsValid() bool {
	switch t {
	case ChartTypeBar, ChartTypePie:
		return true
	default:
		return false
	}
}

// OutputFormat is an artefact kind produced by the render command
type OutputFormat string

const (
	FormatScript OutputFormat = "js"
	FormatJSON   OutputFormat = "json"
	FormatPNG    OutputFormat = "png"
	FormatSVG    OutputFormat = "svg"
	FormatHTML   OutputFormat = "html"
)

// String returns the string representation
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid checks if the format is supported
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatScript, FormatJSON, FormatPNG, FormatSVG, FormatHTML:
		return true
	default:
		return false
	}
}

// IsImage reports whether the format is a raster/vector image
func (f OutputFormat) IsImage() bool {
	return f == FormatPNG || f == FormatSVG
}

// ParseOutputFormats parses a comma separated list such as "js,png"
func ParseOutputFormats(s string) ([]OutputFormat, error) {
	var formats []OutputFormat
	seen := make(map[OutputFormat]bool)
	for _, part := range strings.Split(s, ",") {
		f := OutputFormat(strings.ToLower(strings.TrimSpace(part)))
		if f == "" {
			continue
		}
		if !f.IsValid() {
			return nil, goerr.New("unsupported output format", goerr.V("format", part))
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		formats = append(formats, f)
	}
	if len(formats) == 0 {
		return nil, goerr.New("no output format given")
	}
	return formats, nil
}
