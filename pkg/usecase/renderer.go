package usecase

import (
	"context"
	"errors"
	"reflect"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pubchart/pkg/domain/interfaces"
	"github.com/secmon-lab/pubchart/pkg/domain/model"
	"github.com/secmon-lab/pubchart/pkg/domain/types"
	"github.com/secmon-lab/pubchart/pkg/service/chartjs"
)

// ChartRenderer turns the datasets into charts and draws them on surfaces
type ChartRenderer struct{}

// NewChartRenderer creates a new ChartRenderer
func NewChartRenderer() *ChartRenderer {
	return &ChartRenderer{}
}

// RenderBarChart draws the cumulative publication counts as a bar chart
func (uc *ChartRenderer) RenderBarChart(ctx context.Context, surface interfaces.Surface, series model.YearlySeries, style model.BarStyle) (*model.Chart, error) {
	if isNilSurface(surface) {
		return nil, goerr.Wrap(model.ErrInvalidSurface, "bar chart needs a surface")
	}
	if len(series.Years) != len(series.Counts) {
		return nil, goerr.Wrap(model.ErrLengthMismatch, "cannot render bar chart",
			goerr.V("years", len(series.Years)),
			goerr.V("counts", len(series.Counts)))
	}

	chart := model.NewChart(surface.ID(), *chartjs.BuildBarConfig(series, style))
	if err := surface.Draw(ctx, chart); err != nil {
		return nil, goerr.Wrap(err, "failed to draw bar chart", goerr.V("surface", surface.ID()))
	}

	ctxlog.From(ctx).Debug("bar chart rendered",
		"surface", surface.ID(),
		"chart_id", chart.ID,
		"bars", series.Len())
	return chart, nil
}

// RenderPieChart draws the topic breakdown as a pie chart
func (uc *ChartRenderer) RenderPieChart(ctx context.Context, surface interfaces.Surface, breakdown model.CategoryBreakdown, style model.PieStyle) (*model.Chart, error) {
	if isNilSurface(surface) {
		return nil, goerr.Wrap(model.ErrInvalidSurface, "pie chart needs a surface")
	}
	if len(breakdown.Categories) != len(breakdown.Values) {
		return nil, goerr.Wrap(model.ErrLengthMismatch, "cannot render pie chart",
			goerr.V("categories", len(breakdown.Categories)),
			goerr.V("values", len(breakdown.Values)))
	}

	chart := model.NewChart(surface.ID(), *chartjs.BuildPieConfig(breakdown, style))
	if err := surface.Draw(ctx, chart); err != nil {
		return nil, goerr.Wrap(err, "failed to draw pie chart", goerr.V("surface", surface.ID()))
	}

	ctxlog.From(ctx).Debug("pie chart rendered",
		"surface", surface.ID(),
		"chart_id", chart.ID,
		"slices", breakdown.Len())
	return chart, nil
}

// RenderResult reports each chart of RenderAll separately. A chart whose
// data is empty is skipped and has neither a chart nor an error.
type RenderResult struct {
	Bar    *model.Chart
	BarErr error
	Pie    *model.Chart
	PieErr error
}

// Charts returns the charts that were rendered, bar first
func (r *RenderResult) Charts() []*model.Chart {
	var charts []*model.Chart
	if r.Bar != nil {
		charts = append(charts, r.Bar)
	}
	if r.Pie != nil {
		charts = append(charts, r.Pie)
	}
	return charts
}

// Err joins the errors of both charts
func (r *RenderResult) Err() error {
	return errors.Join(r.BarErr, r.PieErr)
}

// RenderAll renders the bar chart on the "barChart" surface and the pie chart
// on the "pieChart" surface. The two are independent: a failure of one does
// not prevent the other.
func (uc *ChartRenderer) RenderAll(ctx context.Context, page interfaces.SurfaceLookup, dataset *model.Dataset) (*RenderResult, error) {
	if dataset == nil {
		return nil, goerr.New("dataset is nil")
	}
	if page == nil {
		return nil, goerr.Wrap(model.ErrInvalidSurface, "page is nil")
	}

	logger := ctxlog.From(ctx)
	result := &RenderResult{}

	if dataset.Series.Len() > 0 {
		if s, err := page.Lookup(types.SurfaceBarChart); err != nil {
			result.BarErr = err
		} else {
			result.Bar, result.BarErr = uc.RenderBarChart(ctx, s, dataset.Series, dataset.Style.Bar)
		}
	} else {
		logger.Info("no yearly counts, bar chart skipped", "dataset", dataset)
	}

	if dataset.Breakdown.Len() > 0 {
		if s, err := page.Lookup(types.SurfacePieChart); err != nil {
			result.PieErr = err
		} else {
			result.Pie, result.PieErr = uc.RenderPieChart(ctx, s, dataset.Breakdown, dataset.Style.Pie)
		}
	} else {
		logger.Info("no categories, pie chart skipped", "dataset", dataset)
	}

	if err := result.Err(); err != nil {
		return result, err
	}
	return result, nil
}

func isNilSurface(s interfaces.Surface) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
