package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pubchart/pkg/domain/model"
)

// DatasetLoader reads a dataset file
type DatasetLoader func(path string) (*model.Dataset, error)

// DatasetUseCase loads datasets and reports consistency warnings
type DatasetUseCase struct {
	load DatasetLoader
}

// NewDatasetUseCase creates a new DatasetUseCase
func NewDatasetUseCase(load DatasetLoader) *DatasetUseCase {
	return &DatasetUseCase{load: load}
}

// Load reads and validates the dataset at path. Consistency warnings are
// logged and returned; they never fail the load.
func (uc *DatasetUseCase) Load(ctx context.Context, path string) (*model.Dataset, []model.Warning, error) {
	dataset, err := uc.load(path)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to load dataset", goerr.V("path", path))
	}
	if err := dataset.Validate(); err != nil {
		return nil, nil, goerr.Wrap(err, "invalid dataset", goerr.V("path", path))
	}

	logger := ctxlog.From(ctx)
	warnings := dataset.Check()
	for _, w := range warnings {
		logger.Warn("dataset is inconsistent", "path", path, "warning", w)
	}

	logger.Info("dataset loaded", "path", path, "dataset", dataset, "warnings", len(warnings))
	return dataset, warnings, nil
}
