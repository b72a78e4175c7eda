package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pubchart/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	if err := newApp(os.Stdout).Run(ctx, args); err != nil {
		return goerr.Wrap(err, "CLI execution failed")
	}
	return nil
}

func newApp(w io.Writer) *cli.Command {
	var loggerCfg config.Logger

	return &cli.Command{
		Name:    "pubchart",
		Usage:   "Render publication statistics as Chart.js charts, images and a static page",
		Version: "0.1.0",
		Flags:   loggerCfg.Flags(),
		Writer:  w,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := loggerCfg.Validate(); err != nil {
				return nil, err
			}

			// Configure logger
			logger, err := loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdRender(),
			cmdWatch(),
			cmdCheck(),
			cmdConfig(),
		},
	}
}
