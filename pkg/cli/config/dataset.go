package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pubchart/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// LoadDatasetFromFile loads a dataset from a YAML, TOML or JSON file. The
// format is chosen by the file extension.
func LoadDatasetFromFile(path string) (*model.Dataset, error) {
	if path == "" {
		return nil, goerr.New("dataset file path is required")
	}

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "dataset file not found",
				goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read dataset file",
			goerr.V("path", path))
	}

	// Parse by extension
	var dataset model.Dataset
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &dataset); err != nil {
			return nil, goerr.Wrap(err, "failed to parse YAML dataset",
				goerr.V("path", path))
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &dataset); err != nil {
			return nil, goerr.Wrap(err, "failed to parse TOML dataset",
				goerr.V("path", path))
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&dataset); err != nil {
			return nil, goerr.Wrap(err, "failed to parse JSON dataset",
				goerr.V("path", path))
		}
	default:
		return nil, goerr.Wrap(model.ErrUnsupportedFormat, "unknown dataset file extension",
			goerr.V("path", path),
			goerr.V("ext", ext))
	}

	// Validate dataset
	if err := dataset.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid dataset",
			goerr.V("path", path))
	}

	return &dataset, nil
}

// Dataset holds the location of the dataset file
type Dataset struct {
	Path string
}

// Flags returns CLI flags for Dataset configuration
func (d *Dataset) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dataset",
			Aliases:     []string{"d"},
			Usage:       "Dataset file (.yaml, .yml, .toml or .json)",
			Category:    "Dataset",
			Sources:     cli.EnvVars("PUBCHART_DATASET"),
			Destination: &d.Path,
		},
	}
}

// Resolve picks the dataset path from the flag or the first argument
func (d *Dataset) Resolve(args cli.Args) (string, error) {
	path := d.Path
	if path == "" {
		path = args.First()
	}
	if path == "" {
		return "", goerr.New("dataset file is required (--dataset or first argument)")
	}
	return path, nil
}

// LogValue returns structured log value
func (d Dataset) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", d.Path),
	)
}
