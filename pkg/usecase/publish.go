package usecase

import (
	"context"
	"errors"
	"slices"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pubchart/pkg/domain/interfaces"
	"github.com/secmon-lab/pubchart/pkg/domain/model"
	"github.com/secmon-lab/pubchart/pkg/domain/types"
	"github.com/secmon-lab/pubchart/pkg/service/page"
	"github.com/secmon-lab/pubchart/pkg/service/raster"
	slackSvc "github.com/secmon-lab/pubchart/pkg/service/slack"
	"github.com/secmon-lab/pubchart/pkg/service/surface"
)

// PublishOptions selects the artefacts written by Publish
type PublishOptions struct {
	OutputDir string
	Formats   []types.OutputFormat
	// Image overrides the dataset's image style when set
	Image *model.ImageStyle
	// SlackComment is attached to every uploaded chart
	SlackComment string
}

// PublishUseCase renders a dataset onto every selected output
type PublishUseCase struct {
	renderer *ChartRenderer
	slack    *slackSvc.Service
}

// NewPublishUseCase creates a new PublishUseCase. slack may be nil.
func NewPublishUseCase(renderer *ChartRenderer, slack *slackSvc.Service) *PublishUseCase {
	return &PublishUseCase{renderer: renderer, slack: slack}
}

// Publish renders both charts and writes the selected artefacts. An html
// page always comes with its script.
func (uc *PublishUseCase) Publish(ctx context.Context, dataset *model.Dataset, warnings []model.Warning, opts PublishOptions) (*RenderResult, error) {
	if dataset == nil {
		return nil, goerr.New("dataset is nil")
	}

	size := dataset.Style.Image
	if opts.Image != nil {
		size = *opts.Image
	}

	p, err := uc.buildPage(opts, size)
	if err != nil {
		return nil, err
	}

	result, renderErr := uc.renderer.RenderAll(ctx, p, dataset)
	if result == nil {
		return nil, renderErr
	}

	var errs []error
	if renderErr != nil {
		errs = append(errs, renderErr)
	}

	charts := result.Charts()
	switch {
	case slices.Contains(opts.Formats, types.FormatHTML):
		if err := page.Write(ctx, opts.OutputDir, dataset, charts...); err != nil {
			errs = append(errs, err)
		}
	case slices.Contains(opts.Formats, types.FormatScript):
		if err := page.WriteScript(ctx, opts.OutputDir, dataset.Version, charts...); err != nil {
			errs = append(errs, err)
		}
	}

	if uc.slack != nil && len(charts) > 0 {
		if err := uc.slack.PostSummary(ctx, dataset, warnings); err != nil {
			errs = append(errs, err)
		}
	}

	ctxlog.From(ctx).Info("charts published",
		"dir", opts.OutputDir,
		"formats", opts.Formats,
		"charts", len(charts),
		"slack", uc.slack != nil)

	return result, errors.Join(errs...)
}

func (uc *PublishUseCase) buildPage(opts PublishOptions, size model.ImageStyle) (*surface.Page, error) {
	var surfaces []interfaces.Surface
	for _, id := range []types.SurfaceID{types.SurfaceBarChart, types.SurfacePieChart} {
		m, err := surface.NewMulti(id, surface.NewCanvas(id))
		if err != nil {
			return nil, err
		}

		for _, f := range opts.Formats {
			var target interfaces.Surface
			switch {
			case f == types.FormatJSON:
				target = surface.NewJSONFile(id, opts.OutputDir)
			case f.IsImage():
				target = raster.NewSurface(id, opts.OutputDir, f, size)
			default:
				continue
			}
			if err := m.Add(target); err != nil {
				return nil, err
			}
		}

		if uc.slack != nil {
			if err := m.Add(slackSvc.NewSurface(id, uc.slack, size, opts.SlackComment)); err != nil {
				return nil, err
			}
		}

		surfaces = append(surfaces, m)
	}

	return surface.NewPage(surfaces...)
}
