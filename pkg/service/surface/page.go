package surface

import (
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pubchart/pkg/domain/interfaces"
	"github.com/secmon-lab/pubchart/pkg/domain/model"
	"github.com/secmon-lab/pubchart/pkg/domain/types"
)

// Page is the host document: a set of surfaces addressed by id
type Page struct {
	mu       sync.RWMutex
	surfaces map[types.SurfaceID]interfaces.Surface
}

// NewPage registers the given surfaces. A later surface replaces an earlier
// one with the same id.
func NewPage(surfaces ...interfaces.Surface) (*Page, error) {
	p := &Page{surfaces: make(map[types.SurfaceID]interfaces.Surface)}
	for _, s := range surfaces {
		if err := p.Register(s); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// NewCanvasPage returns a page with an in-memory canvas for both charts
func NewCanvasPage() *Page {
	return &Page{surfaces: map[types.SurfaceID]interfaces.Surface{
		types.SurfaceBarChart: NewCanvas(types.SurfaceBarChart),
		types.SurfacePieChart: NewCanvas(types.SurfacePieChart),
	}}
}

// Register adds or replaces a surface
func (p *Page) Register(s interfaces.Surface) error {
	if s == nil {
		return goerr.Wrap(model.ErrInvalidSurface, "surface is nil")
	}
	if err := s.ID().Validate(); err != nil {
		return goerr.Wrap(model.ErrInvalidSurface, "invalid surface id", goerr.V("surface", s.ID()), goerr.V("reason", err.Error()))
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.surfaces[s.ID()] = s
	return nil
}

// Lookup returns the surface with the given id
func (p *Page) Lookup(id types.SurfaceID) (interfaces.Surface, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	s, ok := p.surfaces[id]
	if !ok {
		return nil, goerr.Wrap(model.ErrSurfaceNotFound, "no such surface on page", goerr.V("surface", id))
	}
	return s, nil
}

// IDs returns the registered ids in sorted order
func (p *Page) IDs() []types.SurfaceID {
	p.mu.RLock()
	defer p.mu.RUnlock()

	ids := make([]types.SurfaceID, 0, len(p.surfaces))
	for id := range p.surfaces {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
