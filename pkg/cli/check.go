package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pubchart/pkg/cli/config"
	"github.com/secmon-lab/pubchart/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdCheck() *cli.Command {
	var (
		datasetCfg config.Dataset
		strict     bool
	)

	flags := joinFlags(
		datasetCfg.Flags(),
		[]cli.Flag{
			&cli.BoolFlag{
				Name:        "strict",
				Usage:       "Fail when the dataset has consistency warnings",
				Category:    "Dataset",
				Destination: &strict,
			},
		},
	)

	return &cli.Command{
		Name:      "check",
		Usage:     "Validate a dataset file and report consistency warnings",
		ArgsUsage: "[dataset file]",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			path, err := datasetCfg.Resolve(c.Args())
			if err != nil {
				return err
			}

			dataset, warnings, err := usecase.NewDatasetUseCase(config.LoadDatasetFromFile).Load(ctx, path)
			if err != nil {
				return err
			}

			w := c.Root().Writer
			fmt.Fprintf(w, "%s: version %q, %d years, %d categories\n",
				path, dataset.Version, dataset.Series.Len(), dataset.Breakdown.Len())
			for _, warning := range warnings {
				fmt.Fprintf(w, "warning[%s]: %s\n", warning.Code, warning.Message)
			}

			if strict && len(warnings) > 0 {
				return goerr.New("dataset has consistency warnings",
					goerr.V("path", path),
					goerr.V("warnings", len(warnings)))
			}
			return nil
		},
	}
}
