package model

// Defaults taken from the publication page the charts were designed for
const (
	DefaultBarLabel       = "# Publications"
	DefaultBarColor       = "rgb(23, 125, 255)"
	DefaultLabelRender    = "percentage"
	DefaultLabelFontColor = "white"
	DefaultLabelFontSize  = 14
	DefaultLegendPosition = "bottom"
	DefaultImageWidth     = 800
	DefaultImageHeight    = 480
)

// ChartStyle groups the style of both charts and their image size
type ChartStyle struct {
	Bar   BarStyle   `yaml:"bar,omitempty" toml:"bar" json:"bar"`
	Pie   PieStyle   `yaml:"pie,omitempty" toml:"pie" json:"pie"`
	Image ImageStyle `yaml:"image,omitempty" toml:"image" json:"image"`
}

// BarStyle configures the yearly bar chart. Nil booleans take the default.
type BarStyle struct {
	Label               string `yaml:"label,omitempty" toml:"label" json:"label,omitempty"`
	BackgroundColor     string `yaml:"background_color,omitempty" toml:"background_color" json:"background_color,omitempty"`
	BorderColor         string `yaml:"border_color,omitempty" toml:"border_color" json:"border_color,omitempty"`
	BeginAtZero         *bool  `yaml:"begin_at_zero,omitempty" toml:"begin_at_zero" json:"begin_at_zero,omitempty"`
	ShowXGrid           *bool  `yaml:"show_x_grid,omitempty" toml:"show_x_grid" json:"show_x_grid,omitempty"`
	ShowLegend          *bool  `yaml:"show_legend,omitempty" toml:"show_legend" json:"show_legend,omitempty"`
	Responsive          *bool  `yaml:"responsive,omitempty" toml:"responsive" json:"responsive,omitempty"`
	MaintainAspectRatio *bool  `yaml:"maintain_aspect_ratio,omitempty" toml:"maintain_aspect_ratio" json:"maintain_aspect_ratio,omitempty"`
}

// PieStyle configures the topic pie chart. Empty Colors leaves slice
// colouring to the charting library.
type PieStyle struct {
	Colors              []string `yaml:"colors,omitempty" toml:"colors" json:"colors,omitempty"`
	BorderWidth         *int     `yaml:"border_width,omitempty" toml:"border_width" json:"border_width,omitempty"`
	LabelRender         string   `yaml:"label_render,omitempty" toml:"label_render" json:"label_render,omitempty"`
	LabelFontColor      string   `yaml:"label_font_color,omitempty" toml:"label_font_color" json:"label_font_color,omitempty"`
	LabelFontSize       int      `yaml:"label_font_size,omitempty" toml:"label_font_size" json:"label_font_size,omitempty"`
	LegendPosition      string   `yaml:"legend_position,omitempty" toml:"legend_position" json:"legend_position,omitempty"`
	ShowLegend          *bool    `yaml:"show_legend,omitempty" toml:"show_legend" json:"show_legend,omitempty"`
	Tooltips            *bool    `yaml:"tooltips,omitempty" toml:"tooltips" json:"tooltips,omitempty"`
	Responsive          *bool    `yaml:"responsive,omitempty" toml:"responsive" json:"responsive,omitempty"`
	MaintainAspectRatio *bool    `yaml:"maintain_aspect_ratio,omitempty" toml:"maintain_aspect_ratio" json:"maintain_aspect_ratio,omitempty"`
}

// ImageStyle is the pixel size of raster renditions
type ImageStyle struct {
	Width  int `yaml:"width,omitempty" toml:"width" json:"width,omitempty"`
	Height int `yaml:"height,omitempty" toml:"height" json:"height,omitempty"`
}

// Bool returns a pointer to b
func Bool(b bool) *bool {
	return &b
}

// Int returns a pointer to i
func Int(i int) *int {
	return &i
}

func boolOr(p *bool, def bool) *bool {
	if p != nil {
		return Bool(*p)
	}
	return Bool(def)
}

// WithDefaults returns a copy with every unset field filled in
func (s ChartStyle) WithDefaults() ChartStyle {
	return ChartStyle{
		Bar:   s.Bar.WithDefaults(),
		Pie:   s.Pie.WithDefaults(),
		Image: s.Image.WithDefaults(),
	}
}

// WithDefaults returns a copy with every unset field filled in
func (s BarStyle) WithDefaults() BarStyle {
	out := s
	if out.Label == "" {
		out.Label = DefaultBarLabel
	}
	if out.BackgroundColor == "" {
		out.BackgroundColor = DefaultBarColor
	}
	if out.BorderColor == "" {
		out.BorderColor = out.BackgroundColor
	}
	out.BeginAtZero = boolOr(s.BeginAtZero, true)
	out.ShowXGrid = boolOr(s.ShowXGrid, false)
	out.ShowLegend = boolOr(s.ShowLegend, false)
	out.Responsive = boolOr(s.Responsive, true)
	out.MaintainAspectRatio = boolOr(s.MaintainAspectRatio, false)
	return out
}

// WithDefaults returns a copy with every unset field filled in
func (s PieStyle) WithDefaults() PieStyle {
	out := s
	if len(s.Colors) > 0 {
		out.Colors = append([]string(nil), s.Colors...)
	}
	if out.BorderWidth == nil {
		out.BorderWidth = Int(0)
	} else {
		out.BorderWidth = Int(*s.BorderWidth)
	}
	if out.LabelRender == "" {
		out.LabelRender = DefaultLabelRender
	}
	if out.LabelFontColor == "" {
		out.LabelFontColor = DefaultLabelFontColor
	}
	if out.LabelFontSize == 0 {
		out.LabelFontSize = DefaultLabelFontSize
	}
	if out.LegendPosition == "" {
		out.LegendPosition = DefaultLegendPosition
	}
	out.ShowLegend = boolOr(s.ShowLegend, true)
	out.Tooltips = boolOr(s.Tooltips, true)
	out.Responsive = boolOr(s.Responsive, true)
	out.MaintainAspectRatio = boolOr(s.MaintainAspectRatio, false)
	return out
}

// WithDefaults returns a copy with the default size for unset dimensions
func (s ImageStyle) WithDefaults() ImageStyle {
	out := s
	if out.Width <= 0 {
		out.Width = DefaultImageWidth
	}
	if out.Height <= 0 {
		out.Height = DefaultImageHeight
	}
	return out
}
