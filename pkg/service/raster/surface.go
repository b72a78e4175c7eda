package raster

import (
	"bytes"
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

// Surface is an image file <dir>/<id>.<format>. Every draw replaces the file.
type Surface struct {
	id     types.SurfaceID
	dir    string
	format types.OutputFormat
	size   model.ImageStyle
}

// NewSurface returns an image file surface
func NewSurface(id types.SurfaceID, dir string, format types.OutputFormat, size model.ImageStyle) *Surface {
	return &Surface{id: id, dir: dir, format: format, size: size}
}

// ID returns the surface id
func (s *Surface) ID() types.SurfaceID {
	return s.id
}

// Path is the file written by Draw
func (s *Surface) Path() string {
	return filepath.Join(s.dir, s.id.String()+"."+s.format.String())
}

// Stage renders the image into memory; the file is replaced on commit
func (s *Surface) Stage(ctx context.Context, c *model.Chart) (interfaces.Commit, error) {
	if c == nil {
		return nil, goerr.New("chart is nil", goerr.V("surface", s.id))
	}
	var buf bytes.Buffer
	if err := Draw(&buf, s.format, c.Config, s.size); err != nil {
		return nil, err
	}

	return func(ctx context.Context) error {
		path := s.Path()
		if err := fileutil.WriteAtomic(path, func(w io.Writer) error {
			if _, err := w.Write(buf.Bytes()); err != nil {
				return goerr.Wrap(err, "failed to write image", goerr.V("path", path))
			}
			return nil
		}); err != nil {
			return err
		}

		ctxlog.From(ctx).Debug("image written", "surface", s.id, "path", path)
		return nil
	}, nil
}

// Draw replaces the image file with the rendered chart
func (s *Surface) Draw(ctx context.Context, c *model.Chart) error {
	commit, err := s.Stage(ctx, c)
	if err != nil {
		return err
	}
	return commit(ctx)
}

var _ interfaces.StagedSurface = (*Surface)(nil)
