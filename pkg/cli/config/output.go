package config

import (
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pubchart/pkg/domain/model"
	"github.com/secmon-lab/pubchart/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Output holds where and in which formats charts are written
type Output struct {
	Dir     string
	Formats string
	Width   int
	Height  int
}

// Flags returns CLI flags for Output configuration
func (o *Output) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output directory",
			Category:    "Output",
			Value:       ".",
			Sources:     cli.EnvVars("PUBCHART_OUTPUT"),
			Destination: &o.Dir,
		},
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "Comma separated output formats (js, json, png, svg, html)",
			Category:    "Output",
			Value:       "js",
			Sources:     cli.EnvVars("PUBCHART_FORMAT"),
			Destination: &o.Formats,
		},
		&cli.IntFlag{
			Name:        "image-width",
			Usage:       "Width of PNG/SVG images in pixels, overrides the dataset style",
			Category:    "Output",
			Sources:     cli.EnvVars("PUBCHART_IMAGE_WIDTH"),
			Destination: &o.Width,
		},
		&cli.IntFlag{
			Name:        "image-height",
			Usage:       "Height of PNG/SVG images in pixels, overrides the dataset style",
			Category:    "Output",
			Sources:     cli.EnvVars("PUBCHART_IMAGE_HEIGHT"),
			Destination: &o.Height,
		},
	}
}

// Configure parses the format list
func (o *Output) Configure() ([]types.OutputFormat, error) {
	if strings.TrimSpace(o.Dir) == "" {
		return nil, goerr.New("output directory is required")
	}
	if o.Width < 0 || o.Height < 0 {
		return nil, goerr.New("image size must not be negative",
			goerr.V("width", o.Width),
			goerr.V("height", o.Height))
	}
	formats, err := types.ParseOutputFormats(o.Formats)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid --format", goerr.V("format", o.Formats))
	}
	return formats, nil
}

// ImageStyle applies the size flags on top of the dataset's image style
func (o *Output) ImageStyle(base model.ImageStyle) model.ImageStyle {
	if o.Width > 0 {
		base.Width = o.Width
	}
	if o.Height > 0 {
		base.Height = o.Height
	}
	return base.WithDefaults()
}

// LogValue returns structured log value
func (o Output) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("dir", o.Dir),
		slog.String("formats", o.Formats),
		slog.Int("width", o.Width),
		slog.Int("height", o.Height),
	)
}
