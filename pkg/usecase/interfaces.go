package usecase

import (
	"context"

	"github.com/secmon-lab/pubchart/pkg/domain/interfaces"
	"github.com/secmon-lab/pubchart/pkg/domain/model"
)

// ChartRendererUseCase defines the interface for chart rendering
type ChartRendererUseCase interface {
	// RenderBarChart draws the yearly series on surface
	RenderBarChart(ctx context.Context, surface interfaces.Surface, series model.YearlySeries, style model.BarStyle) (*model.Chart, error)

	// RenderPieChart draws the category breakdown on surface
	RenderPieChart(ctx context.Context, surface interfaces.Surface, breakdown model.CategoryBreakdown, style model.PieStyle) (*model.Chart, error)

	// RenderAll draws both charts on the page's default surfaces
	RenderAll(ctx context.Context, page interfaces.SurfaceLookup, dataset *model.Dataset) (*RenderResult, error)
}

// DatasetLoaderUseCase defines the interface for loading datasets
type DatasetLoaderUseCase interface {
	// Load reads, validates and checks a dataset file
	Load(ctx context.Context, path string) (*model.Dataset, []model.Warning, error)
}

// PublisherUseCase defines the interface for publishing charts
type PublisherUseCase interface {
	// Publish renders a dataset onto the selected outputs
	Publish(ctx context.Context, dataset *model.Dataset, warnings []model.Warning, opts PublishOptions) (*RenderResult, error)
}

var (
	_ ChartRendererUseCase = (*ChartRenderer)(nil)
	_ DatasetLoaderUseCase = (*DatasetUseCase)(nil)
	_ PublisherUseCase     = (*PublishUseCase)(nil)
)
