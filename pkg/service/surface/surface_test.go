package surface_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pubchart/pkg/domain/interfaces"
	"github.com/secmon-lab/pubchart/pkg/domain/model"
	"github.com/secmon-lab/pubchart/pkg/domain/types"
	"github.com/secmon-lab/pubchart/pkg/service/chartjs"
	"github.com/secmon-lab/pubchart/pkg/service/surface"
)

func newBarChart(t *testing.T, years []string, counts []int) *model.Chart {
	t.Helper()
	series, err := model.NewYearlySeries(years, counts)
	gt.NoError(t, err).Required()
	return model.NewChart(types.SurfaceBarChart, *chartjs.BuildBarConfig(series, model.BarStyle{}))
}

type failingSurface struct {
	id  types.SurfaceID
	err error
}

func (s *failingSurface) ID() types.SurfaceID { return s.id }

func (s *failingSurface) Draw(ctx context.Context, chart *model.Chart) error { return s.err }

// unrenderable fails while staging, before anything is shown
type unrenderable struct {
	failingSurface
}

func (s *unrenderable) Stage(ctx context.Context, chart *model.Chart) (interfaces.Commit, error) {
	return nil, s.err
}

func TestCanvasReplacesContent(t *testing.T) {
	ctx := context.Background()
	c := surface.NewCanvas(types.SurfaceBarChart)
	gt.Nil(t, c.Chart())

	_, err := c.JSON()
	gt.True(t, errors.Is(err, model.ErrNothingToDraw))

	gt.NoError(t, c.Draw(ctx, newBarChart(t, []string{"2001", "2002"}, []int{14, 20}))).Required()
	gt.NoError(t, c.Draw(ctx, newBarChart(t, []string{"2010"}, []int{83}))).Required()

	shown := c.Chart()
	gt.V(t, shown).NotNil()
	gt.Equal(t, shown.Config.Data.Labels, []string{"2010"})
	gt.Equal(t, shown.Config.Primary().Data, []float64{83})
	gt.Equal(t, c.Draws(), 2)
}

func TestCanvasIsolatesChart(t *testing.T) {
	ctx := context.Background()
	c := surface.NewCanvas(types.SurfaceBarChart)
	chart := newBarChart(t, []string{"2001"}, []int{14})
	gt.NoError(t, c.Draw(ctx, chart)).Required()

	chart.Config.Data.Labels[0] = "changed"
	gt.Equal(t, c.Chart().Config.Data.Labels, []string{"2001"})

	gt.Error(t, c.Draw(ctx, nil))
}

func TestCanvasSameInputSameOutput(t *testing.T) {
	ctx := context.Background()
	a := surface.NewCanvas(types.SurfaceBarChart)
	b := surface.NewCanvas(types.SurfaceBarChart)

	gt.NoError(t, a.Draw(ctx, newBarChart(t, []string{"2001", "2002"}, []int{14, 20}))).Required()
	gt.NoError(t, b.Draw(ctx, newBarChart(t, []string{"2001", "2002"}, []int{14, 20}))).Required()

	ja, err := a.JSON()
	gt.NoError(t, err).Required()
	jb, err := b.JSON()
	gt.NoError(t, err).Required()
	gt.Equal(t, string(ja), string(jb))
}

func TestJSONFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := surface.NewJSONFile(types.SurfaceBarChart, dir)
	gt.Equal(t, s.Path(), filepath.Join(dir, "barChart.json"))

	gt.NoError(t, s.Draw(ctx, newBarChart(t, []string{"2001", "2002"}, []int{14, 20}))).Required()
	gt.NoError(t, s.Draw(ctx, newBarChart(t, []string{"2003"}, []int{24}))).Required()

	data, err := os.ReadFile(s.Path())
	gt.NoError(t, err).Required()

	var cfg model.ChartConfig
	gt.NoError(t, json.Unmarshal(data, &cfg)).Required()
	gt.Equal(t, cfg.Type, types.ChartTypeBar)
	gt.Equal(t, cfg.Data.Labels, []string{"2003"})
}

func TestMulti(t *testing.T) {
	ctx := context.Background()
	c1 := surface.NewCanvas(types.SurfaceBarChart)
	c2 := surface.NewCanvas(types.SurfaceBarChart)
	errBoom := errors.New("boom")

	m, err := surface.NewMulti(types.SurfaceBarChart, c1, &failingSurface{id: types.SurfaceBarChart, err: errBoom})
	gt.NoError(t, err).Required()
	gt.NoError(t, m.Add(c2)).Required()
	gt.Equal(t, m.Len(), 3)
	gt.Equal(t, m.ID(), types.SurfaceBarChart)

	err = m.Draw(ctx, newBarChart(t, []string{"2001"}, []int{14}))
	gt.True(t, errors.Is(err, errBoom))
	gt.Equal(t, c1.Draws(), 1)
	gt.Equal(t, c2.Draws(), 1)
}

func TestMultiCommitsNothingWhenStagingFails(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	canvas := surface.NewCanvas(types.SurfacePieChart)
	file := surface.NewJSONFile(types.SurfacePieChart, dir)
	errBoom := errors.New("boom")

	m, err := surface.NewMulti(types.SurfacePieChart, canvas, file,
		&unrenderable{failingSurface{id: types.SurfacePieChart, err: errBoom}})
	gt.NoError(t, err).Required()

	breakdown, err := model.NewCategoryBreakdown([]string{"A", "B"}, []float64{0, 0})
	gt.NoError(t, err).Required()
	chart := model.NewChart(types.SurfacePieChart, *chartjs.BuildPieConfig(breakdown, model.PieStyle{}))

	err = m.Draw(ctx, chart)
	gt.True(t, errors.Is(err, errBoom))
	gt.Equal(t, canvas.Draws(), 0)
	_, statErr := os.Stat(file.Path())
	gt.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestMultiStagesNestedTargets(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	canvas := surface.NewCanvas(types.SurfaceBarChart)
	inner, err := surface.NewMulti(types.SurfaceBarChart, surface.NewJSONFile(types.SurfaceBarChart, dir))
	gt.NoError(t, err).Required()

	m, err := surface.NewMulti(types.SurfaceBarChart, canvas, inner)
	gt.NoError(t, err).Required()

	commit, err := m.Stage(ctx, newBarChart(t, []string{"2001"}, []int{14}))
	gt.NoError(t, err).Required()
	gt.Equal(t, canvas.Draws(), 0)
	_, statErr := os.Stat(filepath.Join(dir, "barChart.json"))
	gt.True(t, errors.Is(statErr, os.ErrNotExist))

	gt.NoError(t, commit(ctx)).Required()
	gt.Equal(t, canvas.Draws(), 1)
	_, statErr = os.Stat(filepath.Join(dir, "barChart.json"))
	gt.NoError(t, statErr)
}

func TestMultiRejectsForeignTarget(t *testing.T) {
	_, err := surface.NewMulti(types.SurfaceBarChart, surface.NewCanvas(types.SurfacePieChart))
	gt.True(t, errors.Is(err, model.ErrInvalidSurface))

	m, err := surface.NewMulti(types.SurfaceBarChart)
	gt.NoError(t, err).Required()
	gt.True(t, errors.Is(m.Add(nil), model.ErrInvalidSurface))
	gt.True(t, errors.Is(m.Add(surface.NewCanvas(types.SurfacePieChart)), model.ErrInvalidSurface))
}

func TestPage(t *testing.T) {
	page := surface.NewCanvasPage()
	gt.Equal(t, page.IDs(), []types.SurfaceID{types.SurfaceBarChart, types.SurfacePieChart})

	s, err := page.Lookup(types.SurfacePieChart)
	gt.NoError(t, err).Required()
	gt.Equal(t, s.ID(), types.SurfacePieChart)

	_, err = page.Lookup("lineChart")
	gt.True(t, errors.Is(err, model.ErrSurfaceNotFound))

	custom := surface.NewCanvas(types.SurfacePieChart)
	gt.NoError(t, page.Register(custom)).Required()
	s, err = page.Lookup(types.SurfacePieChart)
	gt.NoError(t, err).Required()
	gt.True(t, s == custom)

	gt.True(t, errors.Is(page.Register(nil), model.ErrInvalidSurface))
	gt.True(t, errors.Is(page.Register(surface.NewCanvas("bad id")), model.ErrInvalidSurface))
}

func TestNewPage(t *testing.T) {
	page, err := surface.NewPage(surface.NewCanvas(types.SurfaceBarChart))
	gt.NoError(t, err).Required()
	gt.Equal(t, page.IDs(), []types.SurfaceID{types.SurfaceBarChart})

	_, err = surface.NewPage(nil)
	gt.True(t, errors.Is(err, model.ErrInvalidSurface))
}
