// Package chartjs builds Chart.js configuration objects for the publication
// charts and writes the browser script that attaches them to their canvases.
package chartjs

import (
	"github.com/secmon-lab/pubchart/pkg/domain/model"
	"github.com/secmon-lab/pubchart/pkg/domain/types"
)

// BuildBarConfig returns a vertical bar chart with the years on a category
// x axis and the counts on a linear y axis
func BuildBarConfig(series model.YearlySeries, style model.BarStyle) *model.ChartConfig {
	style = style.WithDefaults()

	return &model.ChartConfig{
		Type: types.ChartTypeBar,
		Data: model.ChartData{
			Labels: series.Labels(),
			Datasets: []model.ChartDataset{
				{
					Label:           style.Label,
					BackgroundColor: []string{style.BackgroundColor},
					BorderColor:     style.BorderColor,
					Data:            series.Values(),
				},
			},
		},
		Options: model.ChartOptions{
			Responsive:          *style.Responsive,
			MaintainAspectRatio: *style.MaintainAspectRatio,
			Scales: &model.Scales{
				X: &model.Axis{
					Type: "category",
					Grid: &model.Grid{Display: *style.ShowXGrid},
				},
				Y: &model.Axis{
					Type:        "linear",
					BeginAtZero: *style.BeginAtZero,
				},
			},
			Plugins: model.Plugins{
				Legend:  model.Legend{Display: *style.ShowLegend},
				Tooltip: model.Tooltip{Enabled: true},
			},
		},
	}
}

// BuildPieConfig returns a single-series pie chart. Slices keep the order of
// the breakdown.
func BuildPieConfig(breakdown model.CategoryBreakdown, style model.PieStyle) *model.ChartConfig {
	style = style.WithDefaults()

	return &model.ChartConfig{
		Type: types.ChartTypePie,
		Data: model.ChartData{
			Labels: breakdown.Labels(),
			Datasets: []model.ChartDataset{
				{
					BackgroundColor: style.Colors,
					BorderWidth:     style.BorderWidth,
					Data:            breakdown.Data(),
				},
			},
		},
		Options: model.ChartOptions{
			Responsive:          *style.Responsive,
			MaintainAspectRatio: *style.MaintainAspectRatio,
			Plugins: model.Plugins{
				Legend: model.Legend{
					Display:  *style.ShowLegend,
					Position: style.LegendPosition,
				},
				Tooltip: model.Tooltip{Enabled: *style.Tooltips},
				DataLabels: &model.DataLabels{
					Display: true,
					Render:  style.LabelRender,
					Color:   style.LabelFontColor,
					Font:    &model.Font{Size: style.LabelFontSize},
				},
			},
		},
	}
}
