package interfaces

import (
	"context"

	"github.com/secmon-lab/pubchart/pkg/domain/model"
	"github.com/secmon-lab/pubchart/pkg/domain/types"
)

// Surface is a drawable region a chart can be attached to. Draw replaces
// whatever the surface showed before; it never appends.
type Surface interface {
	ID() types.SurfaceID
	Draw(ctx context.Context, chart *model.Chart) error
}

// SurfaceLookup resolves surfaces by id, typically a page holding canvases
type SurfaceLookup interface {
	Lookup(id types.SurfaceID) (Surface, error)
}

// Commit makes staged content visible on its surface
type Commit func(ctx context.Context) error

// StagedSurface renders a chart without showing it. Nothing is replaced
// until the returned Commit runs.
type StagedSurface interface {
	Surface
	Stage(ctx context.Context, chart *model.Chart) (Commit, error)
}
