package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pubchart/pkg/cli/config"
	"github.com/secmon-lab/pubchart/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// publisher bundles what render and watch need to turn a dataset file into
// artefacts
type publisher struct {
	datasets *usecase.DatasetUseCase
	publish  *usecase.PublishUseCase
	opts     usecase.PublishOptions
	output   *config.Output
}

func newPublisher(ctx context.Context, outputCfg *config.Output, slackCfg *config.Slack) (*publisher, error) {
	formats, err := outputCfg.Configure()
	if err != nil {
		return nil, err
	}
	if err := slackCfg.Validate(); err != nil {
		return nil, err
	}

	slackService := slackCfg.ConfigureOptional(ctxlog.From(ctx))

	return &publisher{
		datasets: usecase.NewDatasetUseCase(config.LoadDatasetFromFile),
		publish:  usecase.NewPublishUseCase(usecase.NewChartRenderer(), slackService),
		opts: usecase.PublishOptions{
			OutputDir:    outputCfg.Dir,
			Formats:      formats,
			SlackComment: slackCfg.Comment,
		},
		output: outputCfg,
	}, nil
}

// run loads the dataset at path and publishes it. The whole dataset is
// replaced on every run.
func (p *publisher) run(ctx context.Context, path string) (*usecase.RenderResult, error) {
	dataset, warnings, err := p.datasets.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	opts := p.opts
	size := p.output.ImageStyle(dataset.Style.Image)
	opts.Image = &size

	result, err := p.publish.Publish(ctx, dataset, warnings, opts)
	if err != nil {
		return result, goerr.Wrap(err, "failed to publish charts", goerr.V("path", path))
	}
	return result, nil
}

func cmdRender() *cli.Command {
	var (
		datasetCfg config.Dataset
		outputCfg  config.Output
		slackCfg   config.Slack
	)

	flags := joinFlags(
		datasetCfg.Flags(),
		outputCfg.Flags(),
		slackCfg.Flags(),
	)

	return &cli.Command{
		Name:      "render",
		Usage:     "Render the charts of a dataset file",
		ArgsUsage: "[dataset file]",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			path, err := datasetCfg.Resolve(c.Args())
			if err != nil {
				return err
			}

			logger.Info("Rendering charts",
				slog.String("dataset", path),
				slog.Any("output", outputCfg),
				slog.Any("slack", slackCfg),
			)

			p, err := newPublisher(ctx, &outputCfg, &slackCfg)
			if err != nil {
				return err
			}

			result, err := p.run(ctx, path)
			if err != nil {
				return err
			}

			logRendered(logger, result)
			return nil
		},
	}
}

func logRendered(logger *slog.Logger, result *usecase.RenderResult) {
	for _, chart := range result.Charts() {
		logger.Info("Chart rendered",
			slog.String("surface", chart.SurfaceID.String()),
			slog.String("chart_id", chart.ID.String()),
			slog.Int("labels", len(chart.Config.Data.Labels)),
		)
	}
}

