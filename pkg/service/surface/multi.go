package surface

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pubchart/pkg/domain/interfaces"
	"github.com/secmon-lab/pubchart/pkg/domain/model"
	"github.com/secmon-lab/pubchart/pkg/domain/types"
)

// Multi draws the same chart on several surfaces sharing one id, e.g. a
// canvas together with its PNG and JSON renditions. All staged targets are
// rendered first; if any of them fails, no target is touched.
type Multi struct {
	id      types.SurfaceID
	targets []interfaces.Surface
}

// NewMulti returns a fan-out surface. Targets must carry the same id.
func NewMulti(id types.SurfaceID, targets ...interfaces.Surface) (*Multi, error) {
	for _, t := range targets {
		if t == nil {
			return nil, goerr.Wrap(model.ErrInvalidSurface, "nil target", goerr.V("surface", id))
		}
		if t.ID() != id {
			return nil, goerr.Wrap(model.ErrInvalidSurface, "target id differs",
				goerr.V("surface", id),
				goerr.V("target", t.ID()))
		}
	}
	return &Multi{id: id, targets: targets}, nil
}

// ID returns the id shared by every target
func (m *Multi) ID() types.SurfaceID {
	return m.id
}

// Add appends a target surface
func (m *Multi) Add(target interfaces.Surface) error {
	if target == nil || target.ID() != m.id {
		return goerr.Wrap(model.ErrInvalidSurface, "cannot add target", goerr.V("surface", m.id))
	}
	m.targets = append(m.targets, target)
	return nil
}

// Len returns the number of targets
func (m *Multi) Len() int {
	return len(m.targets)
}

// Stage renders the chart for every target. Targets that cannot stage are
// drawn directly when the returned commit runs.
func (m *Multi) Stage(ctx context.Context, chart *model.Chart) (interfaces.Commit, error) {
	commits := make([]interfaces.Commit, 0, len(m.targets))
	var errs []error
	for _, t := range m.targets {
		st, ok := t.(interfaces.StagedSurface)
		if !ok {
			commits = append(commits, func(ctx context.Context) error {
				return t.Draw(ctx, chart)
			})
			continue
		}

		commit, err := st.Stage(ctx, chart)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		commits = append(commits, commit)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return func(ctx context.Context) error {
		var errs []error
		for _, commit := range commits {
			if err := commit(ctx); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}, nil
}

// Draw stages every target and commits them only when all of them staged
func (m *Multi) Draw(ctx context.Context, chart *model.Chart) error {
	commit, err := m.Stage(ctx, chart)
	if err != nil {
		return err
	}
	return commit(ctx)
}

var (
	_ interfaces.StagedSurface = (*Canvas)(nil)
	_ interfaces.StagedSurface = (*JSONFile)(nil)
	_ interfaces.StagedSurface = (*Multi)(nil)
)
