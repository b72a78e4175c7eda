package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pubchart/pkg/domain/types"
)

func TestSurfaceIDValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      types.SurfaceID
		wantErr bool
	}{
		{"bar chart", types.SurfaceBarChart, false},
		{"pie chart", types.SurfacePieChart, false},
		{"custom", types.SurfaceID("topicChart-2"), false},
		{"empty", types.SurfaceID(""), true},
		{"space", types.SurfaceID("bar chart"), true},
		{"path", types.SurfaceID("../bar"), true},
		{"quote", types.SurfaceID(`bar"`), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.id.Validate()
			if tt.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}

func TestChartTypeIsValid(t *testing.T) {
	gt.True(t, types.ChartTypeBar.IsValid())
	gt.True(t, types.ChartTypePie.IsValid())
	gt.False(t, types.ChartType("line").IsValid())
	gt.False(t, types.ChartType("").IsValid())
}

func TestNewChartIDIsUnique(t *testing.T) {
	a := types.NewChartID()
	b := types.NewChartID()
	gt.NotEqual(t, a, b)
	gt.Equal(t, len(a.String()), 36)
}

func TestParseOutputFormats(t *testing.T) {
	t.Run("parse list", func(t *testing.T) {
		formats, err := types.ParseOutputFormats("js, PNG,svg")
		gt.NoError(t, err).Required()
		gt.Equal(t, formats, []types.OutputFormat{types.FormatScript, types.FormatPNG, types.FormatSVG})
	})

	t.Run("drop duplicates and blanks", func(t *testing.T) {
		formats, err := types.ParseOutputFormats("json,,json")
		gt.NoError(t, err).Required()
		gt.Equal(t, formats, []types.OutputFormat{types.FormatJSON})
	})

	t.Run("reject unknown", func(t *testing.T) {
		_, err := types.ParseOutputFormats("js,gif")
		gt.Error(t, err)
	})

	t.Run("reject empty", func(t *testing.T) {
		_, err := types.ParseOutputFormats(" , ")
		gt.Error(t, err)
	})
}

func TestOutputFormatIsImage(t *testing.T) {
	gt.True(t, types.FormatPNG.IsImage())
	gt.True(t, types.FormatSVG.IsImage())
	gt.False(t, types.FormatJSON.IsImage())
	gt.False(t, types.FormatHTML.IsImage())
}
