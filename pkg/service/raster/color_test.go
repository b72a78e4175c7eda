package raster_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pubchart/pkg/service/raster"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func TestParseColor(t *testing.T) {
	testCases := []struct {
		input    string
		expected drawing.Color
		hasError bool
	}{
		{"rgb(23, 125, 255)", drawing.Color{R: 23, G: 125, B: 255, A: 255}, false},
		{"RGB(0,0,0)", drawing.Color{A: 255}, false},
		{"rgba(255, 0, 0, 0.5)", drawing.Color{R: 255, A: 128}, false},
		{"#ff8000", drawing.Color{R: 255, G: 128, A: 255}, false},
		{"#fff", drawing.Color{R: 255, G: 255, B: 255, A: 255}, false},
		{"white", drawing.ColorWhite, false},
		{" black ", drawing.ColorBlack, false},
		{"rgb(256, 0, 0)", drawing.Color{}, true},
		{"rgb(1, 2)", drawing.Color{}, true},
		{"rgba(1, 2, 3, 2)", drawing.Color{}, true},
		{"#12345", drawing.Color{}, true},
		{"#xyzxyz", drawing.Color{}, true},
		{"hsl(0, 100%, 50%)", drawing.Color{}, true},
		{"", drawing.Color{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			c, err := raster.ParseColor(tc.input)
			if tc.hasError {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err).Required()
			gt.Equal(t, c, tc.expected)
		})
	}
}
