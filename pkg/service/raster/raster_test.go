package raster_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pubchart/pkg/domain/model"
	"github.com/secmon-lab/pubchart/pkg/domain/types"
	"github.com/secmon-lab/pubchart/pkg/service/chartjs"
	"github.com/secmon-lab/pubchart/pkg/service/raster"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func barConfig(t *testing.T, years []string, counts []int) model.ChartConfig {
	t.Helper()
	series, err := model.NewYearlySeries(years, counts)
	gt.NoError(t, err).Required()
	return *chartjs.BuildBarConfig(series, model.BarStyle{})
}

func pieConfig(t *testing.T, categories []string, values []float64, style model.PieStyle) model.ChartConfig {
	t.Helper()
	breakdown, err := model.NewCategoryBreakdown(categories, values)
	gt.NoError(t, err).Required()
	return *chartjs.BuildPieConfig(breakdown, style)
}

func TestDrawBar(t *testing.T) {
	cfg := barConfig(t, []string{"2001", "2002"}, []int{14, 20})

	var png bytes.Buffer
	gt.NoError(t, raster.Draw(&png, types.FormatPNG, cfg, model.ImageStyle{})).Required()
	gt.True(t, bytes.HasPrefix(png.Bytes(), pngMagic))

	var svg bytes.Buffer
	gt.NoError(t, raster.Draw(&svg, types.FormatSVG, cfg, model.ImageStyle{Width: 400, Height: 300})).Required()
	gt.S(t, svg.String()).Contains("<svg")
	gt.S(t, svg.String()).Contains("2001")
	gt.S(t, svg.String()).Contains("2002")
}

func TestDrawBarAllZero(t *testing.T) {
	cfg := barConfig(t, []string{"2001", "2002"}, []int{0, 0})

	var buf bytes.Buffer
	gt.NoError(t, raster.Draw(&buf, types.FormatSVG, cfg, model.ImageStyle{}))
}

func TestDrawBarManyYears(t *testing.T) {
	years := make([]string, 26)
	counts := make([]int, 26)
	for i := range years {
		years[i] = strconv.Itoa(2001 + i)
		counts[i] = i * 10
	}
	cfg := barConfig(t, years, counts)

	var buf bytes.Buffer
	gt.NoError(t, raster.Draw(&buf, types.FormatPNG, cfg, model.ImageStyle{}))
}

func TestDrawPie(t *testing.T) {
	cfg := pieConfig(t, []string{"A", "B"}, []float64{70, 30}, model.PieStyle{Colors: []string{"#ff0000", "rgb(0, 0, 255)"}})

	var svg bytes.Buffer
	gt.NoError(t, raster.Draw(&svg, types.FormatSVG, cfg, model.ImageStyle{})).Required()
	gt.S(t, svg.String()).Contains("A (70.0%)")
	gt.S(t, svg.String()).Contains("B (30.0%)")
}

func TestDrawPieSkipsEmptySlices(t *testing.T) {
	cfg := pieConfig(t, []string{"Other", "Testing"}, []float64{341, 0}, model.PieStyle{})

	var svg bytes.Buffer
	gt.NoError(t, raster.Draw(&svg, types.FormatSVG, cfg, model.ImageStyle{})).Required()
	gt.S(t, svg.String()).Contains("Other (100.0%)")
	gt.False(t, bytes.Contains(svg.Bytes(), []byte("Testing")))
}

func TestDrawErrors(t *testing.T) {
	t.Run("all zero pie", func(t *testing.T) {
		cfg := pieConfig(t, []string{"A", "B"}, []float64{0, 0}, model.PieStyle{})
		err := raster.Draw(&bytes.Buffer{}, types.FormatPNG, cfg, model.ImageStyle{})
		gt.True(t, errors.Is(err, model.ErrNothingToDraw))
	})

	t.Run("empty bar", func(t *testing.T) {
		cfg := barConfig(t, nil, nil)
		err := raster.Draw(&bytes.Buffer{}, types.FormatPNG, cfg, model.ImageStyle{})
		gt.True(t, errors.Is(err, model.ErrNothingToDraw))
	})

	t.Run("non image format", func(t *testing.T) {
		cfg := barConfig(t, []string{"2001"}, []int{1})
		err := raster.Draw(&bytes.Buffer{}, types.FormatJSON, cfg, model.ImageStyle{})
		gt.True(t, errors.Is(err, model.ErrUnsupportedFormat))
	})

	t.Run("length mismatch", func(t *testing.T) {
		cfg := barConfig(t, []string{"2001", "2002"}, []int{1, 2})
		cfg.Data.Labels = cfg.Data.Labels[:1]
		err := raster.Draw(&bytes.Buffer{}, types.FormatPNG, cfg, model.ImageStyle{})
		gt.True(t, errors.Is(err, model.ErrLengthMismatch))
	})

	t.Run("bad colour", func(t *testing.T) {
		cfg := pieConfig(t, []string{"A"}, []float64{1}, model.PieStyle{Colors: []string{"not-a-colour"}})
		gt.Error(t, raster.Draw(&bytes.Buffer{}, types.FormatPNG, cfg, model.ImageStyle{}))
	})
}

func TestDrawIsDeterministic(t *testing.T) {
	cfg := pieConfig(t, []string{"A", "B", "C"}, []float64{5, 3, 2}, model.PieStyle{})

	var a, b bytes.Buffer
	gt.NoError(t, raster.Draw(&a, types.FormatSVG, cfg, model.ImageStyle{})).Required()
	gt.NoError(t, raster.Draw(&b, types.FormatSVG, cfg, model.ImageStyle{})).Required()
	gt.Equal(t, a.String(), b.String())
}

func TestSliceLabel(t *testing.T) {
	gt.Equal(t, raster.SliceLabel("Analysis", 149, 289), "Analysis (51.6%)")
	gt.Equal(t, raster.SliceLabel("Other", 1, 3), "Other (33.3%)")
}

func TestSurface(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := raster.NewSurface(types.SurfaceBarChart, dir, types.FormatSVG, model.ImageStyle{})

	gt.Equal(t, s.ID(), types.SurfaceBarChart)
	gt.Equal(t, s.Path(), filepath.Join(dir, "barChart.svg"))

	first := model.NewChart(types.SurfaceBarChart, barConfig(t, []string{"1999"}, []int{3}))
	gt.NoError(t, s.Draw(ctx, first)).Required()
	data, err := os.ReadFile(s.Path())
	gt.NoError(t, err).Required()
	gt.S(t, string(data)).Contains("1999")

	second := model.NewChart(types.SurfaceBarChart, barConfig(t, []string{"2024"}, []int{7}))
	gt.NoError(t, s.Draw(ctx, second)).Required()
	data, err = os.ReadFile(s.Path())
	gt.NoError(t, err).Required()
	gt.S(t, string(data)).Contains("2024")
	gt.False(t, bytes.Contains(data, []byte("1999")))
}
