package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/pubchart/pkg/cli/config"
	"github.com/secmon-lab/pubchart/pkg/service/watcher"
	"github.com/secmon-lab/pubchart/pkg/utils/apperr"
	"github.com/urfave/cli/v3"
)

func cmdWatch() *cli.Command {
	var (
		datasetCfg config.Dataset
		outputCfg  config.Output
		slackCfg   config.Slack
		debounce   time.Duration
	)

	flags := joinFlags(
		datasetCfg.Flags(),
		outputCfg.Flags(),
		slackCfg.Flags(),
		[]cli.Flag{
			&cli.DurationFlag{
				Name:        "debounce",
				Usage:       "Quiet period after a change before re-rendering",
				Category:    "Dataset",
				Value:       watcher.DefaultDebounce,
				Sources:     cli.EnvVars("PUBCHART_DEBOUNCE"),
				Destination: &debounce,
			},
		},
	)

	return &cli.Command{
		Name:      "watch",
		Usage:     "Render the charts, then re-render whenever the dataset file changes",
		ArgsUsage: "[dataset file]",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			path, err := datasetCfg.Resolve(c.Args())
			if err != nil {
				return err
			}

			p, err := newPublisher(ctx, &outputCfg, &slackCfg)
			if err != nil {
				return err
			}

			logger.Info("Starting watch",
				slog.String("dataset", path),
				slog.Any("output", outputCfg),
				slog.Duration("debounce", debounce),
			)

			render := func(ctx context.Context) error {
				result, err := p.run(ctx, path)
				if result != nil {
					logRendered(logger, result)
				}
				return err
			}

			// A broken dataset at startup is reported like any later one,
			// the next save gets another chance.
			if err := render(ctx); err != nil {
				apperr.Handle(ctx, err)
			}

			// Wait for interrupt signal
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := watcher.New(path, watcher.WithDebounce(debounce))
			if err := w.Run(ctx, render, apperr.Handle); err != nil {
				return err
			}

			logger.Info("Watch stopped")
			return nil
		},
	}
}
