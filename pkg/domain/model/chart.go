package model

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pubchart/pkg/domain/types"
)

// Chart is a live chart bound to a surface
type Chart struct {
	ID         types.ChartID
	SurfaceID  types.SurfaceID
	Config     ChartConfig
	RenderedAt time.Time
}

// NewChart binds a configuration to a surface
func NewChart(surfaceID types.SurfaceID, config ChartConfig) *Chart {
	return &Chart{
		ID:         types.NewChartID(),
		SurfaceID:  surfaceID,
		Config:     config.Clone(),
		RenderedAt: time.Now(),
	}
}

// ChartConfig is the configuration object handed to the charting library.
// Field names follow Chart.js.
type ChartConfig struct {
	Type    types.ChartType `json:"type"`
	Data    ChartData       `json:"data"`
	Options ChartOptions    `json:"options"`
}

// ChartData holds the labels and datasets
type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// ChartDataset is one series of values. A single background colour is
// written as a string, several as a per-element array.
type ChartDataset struct {
	Label           string    `json:"label,omitempty"`
	BackgroundColor []string  `json:"-"`
	BorderColor     string    `json:"borderColor,omitempty"`
	BorderWidth     *int      `json:"borderWidth,omitempty"`
	Data            []float64 `json:"data"`
}

// MarshalJSON implements json.Marshaler
func (d ChartDataset) MarshalJSON() ([]byte, error) {
	type alias ChartDataset
	out := struct {
		alias
		BackgroundColor any `json:"backgroundColor,omitempty"`
	}{alias: alias(d)}

	switch len(d.BackgroundColor) {
	case 0:
	case 1:
		out.BackgroundColor = d.BackgroundColor[0]
	default:
		out.BackgroundColor = d.BackgroundColor
	}
	return json.Marshal(out)
}

// ChartOptions are passed through to the charting library unvalidated
type ChartOptions struct {
	Responsive          bool    `json:"responsive"`
	MaintainAspectRatio bool    `json:"maintainAspectRatio"`
	Scales              *Scales `json:"scales,omitempty"`
	Plugins             Plugins `json:"plugins"`
}

// Scales configures the cartesian axes
type Scales struct {
	X *Axis `json:"x,omitempty"`
	Y *Axis `json:"y,omitempty"`
}

// Axis configures one axis
type Axis struct {
	Type        string `json:"type,omitempty"`
	BeginAtZero bool   `json:"beginAtZero,omitempty"`
	Grid        *Grid  `json:"grid,omitempty"`
}

// Grid toggles grid lines of an axis
type Grid struct {
	Display bool `json:"display"`
}

// Plugins holds the built-in plugin options
type Plugins struct {
	Legend     Legend      `json:"legend"`
	Tooltip    Tooltip     `json:"tooltip"`
	DataLabels *DataLabels `json:"datalabels,omitempty"`
}

// Legend configures the chart legend
type Legend struct {
	Display  bool   `json:"display"`
	Position string `json:"position,omitempty"`
}

// Tooltip toggles hover tooltips
type Tooltip struct {
	Enabled bool `json:"enabled"`
}

// DataLabels configures the per-element labels of chartjs-plugin-datalabels.
// Render is read by the formatter installed by the generated script.
type DataLabels struct {
	Display bool   `json:"display"`
	Render  string `json:"render,omitempty"`
	Color   string `json:"color,omitempty"`
	Font    *Font  `json:"font,omitempty"`
}

// Font is a Chart.js font spec
type Font struct {
	Size int `json:"size,omitempty"`
}

// Validate checks that every dataset is index-aligned with the labels
func (c ChartConfig) Validate() error {
	if !c.Type.IsValid() {
		return goerr.New("unsupported chart type", goerr.V("type", c.Type))
	}
	for i, ds := range c.Data.Datasets {
		if len(ds.Data) != len(c.Data.Labels) {
			return goerr.Wrap(ErrLengthMismatch, "invalid chart data",
				goerr.V("dataset", i),
				goerr.V("labels", len(c.Data.Labels)),
				goerr.V("values", len(ds.Data)))
		}
	}
	return nil
}

// Primary returns the first dataset, or an empty one if there is none
func (c ChartConfig) Primary() ChartDataset {
	if len(c.Data.Datasets) == 0 {
		return ChartDataset{}
	}
	return c.Data.Datasets[0]
}

// Clone returns a deep copy
func (c ChartConfig) Clone() ChartConfig {
	out := c
	out.Data.Labels = slices.Clone(c.Data.Labels)
	out.Data.Datasets = make([]ChartDataset, len(c.Data.Datasets))
	for i, ds := range c.Data.Datasets {
		cp := ds
		cp.BackgroundColor = slices.Clone(ds.BackgroundColor)
		cp.Data = slices.Clone(ds.Data)
		if ds.BorderWidth != nil {
			cp.BorderWidth = Int(*ds.BorderWidth)
		}
		out.Data.Datasets[i] = cp
	}
	if c.Options.Scales != nil {
		s := *c.Options.Scales
		if s.X != nil {
			x := *s.X
			if x.Grid != nil {
				g := *x.Grid
				x.Grid = &g
			}
			s.X = &x
		}
		if s.Y != nil {
			y := *s.Y
			if y.Grid != nil {
				g := *y.Grid
				y.Grid = &g
			}
			s.Y = &y
		}
		out.Options.Scales = &s
	}
	if c.Options.Plugins.DataLabels != nil {
		dl := *c.Options.Plugins.DataLabels
		if dl.Font != nil {
			f := *dl.Font
			dl.Font = &f
		}
		out.Options.Plugins.DataLabels = &dl
	}
	return out
}

// JSON returns the indented JSON form of the configuration
func (c ChartConfig) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal chart config", goerr.V("type", c.Type))
	}
	return data, nil
}
