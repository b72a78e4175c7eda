package cli

import (
	"context"
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pubchart/pkg/cli/config"
	"github.com/secmon-lab/pubchart/pkg/domain/model"
	"github.com/secmon-lab/pubchart/pkg/domain/types"
	"github.com/secmon-lab/pubchart/pkg/service/surface"
	"github.com/secmon-lab/pubchart/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdConfig() *cli.Command {
	var (
		datasetCfg config.Dataset
		chartType  string
	)

	flags := joinFlags(
		datasetCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "chart",
				Usage:       "Chart to print (bar, pie, all)",
				Value:       "all",
				Destination: &chartType,
			},
		},
	)

	return &cli.Command{
		Name:      "config",
		Usage:     "Print the Chart.js configuration of a dataset as JSON",
		ArgsUsage: "[dataset file]",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			path, err := datasetCfg.Resolve(c.Args())
			if err != nil {
				return err
			}

			var ids []types.SurfaceID
			switch chartType {
			case "bar":
				ids = []types.SurfaceID{types.SurfaceBarChart}
			case "pie":
				ids = []types.SurfaceID{types.SurfacePieChart}
			case "all", "":
				ids = []types.SurfaceID{types.SurfaceBarChart, types.SurfacePieChart}
			default:
				return goerr.New("invalid chart type", goerr.V("chart", chartType))
			}

			dataset, _, err := usecase.NewDatasetUseCase(config.LoadDatasetFromFile).Load(ctx, path)
			if err != nil {
				return err
			}

			page := surface.NewCanvasPage()
			if _, err := usecase.NewChartRenderer().RenderAll(ctx, page, dataset); err != nil {
				return err
			}

			configs := make(map[types.SurfaceID]model.ChartConfig)
			for _, id := range ids {
				s, err := page.Lookup(id)
				if err != nil {
					return err
				}
				canvas, ok := s.(*surface.Canvas)
				if !ok {
					return goerr.New("unexpected surface", goerr.V("surface", id))
				}
				if chart := canvas.Chart(); chart != nil {
					configs[id] = chart.Config
				}
			}

			enc := json.NewEncoder(c.Root().Writer)
			enc.SetIndent("", "  ")

			var out any = configs
			if len(ids) == 1 {
				cfg, ok := configs[ids[0]]
				if !ok {
					return goerr.Wrap(model.ErrNothingToDraw, "dataset has no data for chart", goerr.V("chart", chartType))
				}
				out = cfg
			}
			if err := enc.Encode(out); err != nil {
				return goerr.Wrap(err, "failed to write chart config")
			}
			return nil
		},
	}
}
