// Package raster draws chart configurations as PNG or SVG images.
package raster

import (
	"fmt"
	"io"
	"math"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pubchart/pkg/domain/model"
	"github.com/secmon-lab/pubchart/pkg/domain/types"
	"github.com/wcharczuk/go-chart/v2"
)

// Draw renders config into w in the given image format
func Draw(w io.Writer, format types.OutputFormat, config model.ChartConfig, size model.ImageStyle) error {
	provider, err := rendererFor(format)
	if err != nil {
		return err
	}
	if err := config.Validate(); err != nil {
		return err
	}
	size = size.WithDefaults()

	switch config.Type {
	case types.ChartTypeBar:
		bc, err := barChart(config, size)
		if err != nil {
			return err
		}
		if err := bc.Render(provider, w); err != nil {
			return goerr.Wrap(err, "failed to render bar chart", goerr.V("format", format))
		}

	case types.ChartTypePie:
		pc, err := pieChart(config, size)
		if err != nil {
			return err
		}
		if err := pc.Render(provider, w); err != nil {
			return goerr.Wrap(err, "failed to render pie chart", goerr.V("format", format))
		}

	default:
		return goerr.New("unknown chart type", goerr.V("type", config.Type))
	}

	return nil
}

func rendererFor(format types.OutputFormat) (chart.RendererProvider, error) {
	switch format {
	case types.FormatPNG:
		return chart.PNG, nil
	case types.FormatSVG:
		return chart.SVG, nil
	default:
		return nil, goerr.Wrap(model.ErrUnsupportedFormat, "format cannot be rasterised", goerr.V("format", format))
	}
}

func barChart(config model.ChartConfig, size model.ImageStyle) (*chart.BarChart, error) {
	ds := config.Primary()
	if len(ds.Data) == 0 {
		return nil, goerr.Wrap(model.ErrNothingToDraw, "bar chart has no bars")
	}

	barStyle := chart.Style{}
	if len(ds.BackgroundColor) > 0 {
		fill, err := ParseColor(ds.BackgroundColor[0])
		if err != nil {
			return nil, err
		}
		barStyle.FillColor = fill
		barStyle.StrokeColor = fill
	}
	if ds.BorderColor != "" {
		stroke, err := ParseColor(ds.BorderColor)
		if err != nil {
			return nil, err
		}
		barStyle.StrokeColor = stroke
	}

	maxValue := 0.0
	bars := make([]chart.Value, len(ds.Data))
	for i, v := range ds.Data {
		bars[i] = chart.Value{Label: config.Data.Labels[i], Value: v, Style: barStyle}
		maxValue = math.Max(maxValue, v)
	}

	// Chart.js floors the axis at zero with beginAtZero, go-chart needs an
	// explicit range for that. A zero-height range is rejected by go-chart.
	yRange := &chart.ContinuousRange{Min: 0, Max: math.Max(maxValue, 1)}

	barWidth, spacing := barGeometry(size.Width, len(bars))

	return &chart.BarChart{
		Width:      size.Width,
		Height:     size.Height,
		BarWidth:   barWidth,
		BarSpacing: spacing,
		Background: chart.Style{
			Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.Style{FontSize: xLabelFontSize(len(bars))},
		YAxis: chart.YAxis{Range: yRange},
		Bars:  bars,
	}, nil
}

// barGeometry spreads n bars over the usable width with gaps of half a bar
func barGeometry(width, n int) (barWidth, spacing int) {
	usable := width - 120
	if usable < n {
		usable = n
	}
	slot := usable / n
	barWidth = max(slot*2/3, 1)
	spacing = max(slot-barWidth, 1)
	return barWidth, spacing
}

func xLabelFontSize(n int) float64 {
	switch {
	case n > 20:
		return 7
	case n > 10:
		return 9
	default:
		return 10
	}
}

func pieChart(config model.ChartConfig, size model.ImageStyle) (*chart.PieChart, error) {
	ds := config.Primary()

	total := 0.0
	for _, v := range ds.Data {
		total += v
	}
	if total <= 0 {
		return nil, goerr.Wrap(model.ErrNothingToDraw, "pie chart has no positive slice", goerr.V("slices", len(ds.Data)))
	}

	labelStyle := chart.Style{}
	if dl := config.Options.Plugins.DataLabels; dl != nil {
		if dl.Color != "" {
			fc, err := ParseColor(dl.Color)
			if err != nil {
				return nil, err
			}
			labelStyle.FontColor = fc
		}
		if dl.Font != nil {
			labelStyle.FontSize = float64(dl.Font.Size)
		}
	}
	if ds.BorderWidth != nil {
		labelStyle.StrokeWidth = float64(*ds.BorderWidth)
	}

	values := make([]chart.Value, 0, len(ds.Data))
	for i, v := range ds.Data {
		// go-chart cannot draw empty slices
		if v <= 0 {
			continue
		}
		style := labelStyle
		if i < len(ds.BackgroundColor) {
			fill, err := ParseColor(ds.BackgroundColor[i])
			if err != nil {
				return nil, err
			}
			style.FillColor = fill
		}
		values = append(values, chart.Value{
			Label: SliceLabel(config.Data.Labels[i], v, total),
			Value: v,
			Style: style,
		})
	}

	return &chart.PieChart{
		Width:  size.Width,
		Height: size.Height,
		Values: values,
	}, nil
}

// SliceLabel is the text drawn on a pie slice: the category and its share
func SliceLabel(category string, value, total float64) string {
	return fmt.Sprintf("%s (%.1f%%)", category, value/total*100)
}
