package surface

import (
	"context"
	"io"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pubchart/pkg/domain/interfaces"
	"github.com/secmon-lab/pubchart/pkg/domain/model"
	"github.com/secmon-lab/pubchart/pkg/domain/types"
	"github.com/secmon-lab/pubchart/pkg/utils/fileutil"
)

// JSONFile writes the chart configuration to <dir>/<id>.json
type JSONFile struct {
	id  types.SurfaceID
	dir string
}

// NewJSONFile returns a surface writing into dir
func NewJSONFile(id types.SurfaceID, dir string) *JSONFile {
	return &JSONFile{id: id, dir: dir}
}

// ID returns the surface id
func (s *JSONFile) ID() types.SurfaceID {
	return s.id
}

// Path is the file written by Draw
func (s *JSONFile) Path() string {
	return filepath.Join(s.dir, s.id.String()+".json")
}

// Stage encodes the chart configuration; the file is replaced on commit
func (s *JSONFile) Stage(ctx context.Context, chart *model.Chart) (interfaces.Commit, error) {
	if chart == nil {
		return nil, goerr.New("chart is nil", goerr.V("surface", s.id))
	}
	data, err := chart.Config.JSON()
	if err != nil {
		return nil, err
	}
	data = append(data, '\n')

	return func(ctx context.Context) error {
		path := s.Path()
		if err := fileutil.WriteAtomic(path, func(w io.Writer) error {
			if _, err := w.Write(data); err != nil {
				return goerr.Wrap(err, "failed to write chart config", goerr.V("path", path))
			}
			return nil
		}); err != nil {
			return err
		}

		ctxlog.From(ctx).Debug("chart config written", "surface", s.id, "path", path)
		return nil
	}, nil
}

// Draw replaces the file with the chart configuration
func (s *JSONFile) Draw(ctx context.Context, chart *model.Chart) error {
	commit, err := s.Stage(ctx, chart)
	if err != nil {
		return err
	}
	return commit(ctx)
}
