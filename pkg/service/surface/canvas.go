// Package surface provides the drawable regions charts are attached to.
package surface

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pubchart/pkg/domain/interfaces"
	"github.com/secmon-lab/pubchart/pkg/domain/model"
	"github.com/secmon-lab/pubchart/pkg/domain/types"
)

// Canvas keeps the chart it currently shows in memory
type Canvas struct {
	id types.SurfaceID

	mu    sync.RWMutex
	chart *model.Chart
	draws int
}

// NewCanvas returns a blank canvas
func NewCanvas(id types.SurfaceID) *Canvas {
	return &Canvas{id: id}
}

// ID returns the canvas id
func (c *Canvas) ID() types.SurfaceID {
	return c.id
}

// Stage copies the chart; the canvas shows it once the commit runs
func (c *Canvas) Stage(ctx context.Context, chart *model.Chart) (interfaces.Commit, error) {
	if chart == nil {
		return nil, goerr.New("chart is nil", goerr.V("surface", c.id))
	}
	cp := *chart
	cp.Config = chart.Config.Clone()

	return func(ctx context.Context) error {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.chart = &cp
		c.draws++
		return nil
	}, nil
}

// Draw replaces the chart shown on the canvas
func (c *Canvas) Draw(ctx context.Context, chart *model.Chart) error {
	commit, err := c.Stage(ctx, chart)
	if err != nil {
		return err
	}
	return commit(ctx)
}

// Chart returns the chart on the canvas, nil when nothing was drawn yet
func (c *Canvas) Chart() *model.Chart {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.chart == nil {
		return nil
	}
	cp := *c.chart
	cp.Config = c.chart.Config.Clone()
	return &cp
}

// Draws counts how many times the canvas was drawn on
func (c *Canvas) Draws() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.draws
}

// JSON returns the configuration currently shown
func (c *Canvas) JSON() ([]byte, error) {
	chart := c.Chart()
	if chart == nil {
		return nil, goerr.Wrap(model.ErrNothingToDraw, "canvas is blank", goerr.V("surface", c.id))
	}
	return chart.Config.JSON()
}
