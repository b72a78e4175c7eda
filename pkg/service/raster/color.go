package raster

import (
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var namedColors = map[string]drawing.Color{
	"white":       drawing.ColorWhite,
	"black":       drawing.ColorBlack,
	"transparent": drawing.ColorTransparent,
}

// ParseColor converts a CSS colour as used in chart configs into a drawing
// colour. Accepted forms are rgb(r, g, b), rgba(r, g, b, a), #rgb, #rrggbb
// and a few names.
func ParseColor(s string) (drawing.Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[v]; ok {
		return c, nil
	}

	switch {
	case strings.HasPrefix(v, "#"):
		hex := v[1:]
		if len(hex) != 3 && len(hex) != 6 {
			return drawing.Color{}, goerr.New("invalid hex colour", goerr.V("color", s))
		}
		if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
			return drawing.Color{}, goerr.Wrap(err, "invalid hex colour", goerr.V("color", s))
		}
		return drawing.ColorFromHex(hex), nil

	case strings.HasPrefix(v, "rgba(") && strings.HasSuffix(v, ")"):
		return parseRGB(s, v[len("rgba("):len(v)-1], true)

	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		return parseRGB(s, v[len("rgb("):len(v)-1], false)
	}

	return drawing.Color{}, goerr.New("unsupported colour", goerr.V("color", s))
}

func parseRGB(orig, body string, alpha bool) (drawing.Color, error) {
	parts := strings.Split(body, ",")
	want := 3
	if alpha {
		want = 4
	}
	if len(parts) != want {
		return drawing.Color{}, goerr.New("invalid colour components", goerr.V("color", orig))
	}

	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return drawing.Color{}, goerr.Wrap(err, "invalid colour component", goerr.V("color", orig))
		}
		if n < 0 || n > 255 {
			return drawing.Color{}, goerr.New("colour component out of range", goerr.V("color", orig), goerr.V("value", n))
		}
		rgb[i] = uint8(n)
	}

	a := uint8(255)
	if alpha {
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return drawing.Color{}, goerr.Wrap(err, "invalid alpha", goerr.V("color", orig))
		}
		if f < 0 || f > 1 {
			return drawing.Color{}, goerr.New("alpha out of range", goerr.V("color", orig), goerr.V("value", f))
		}
		a = uint8(f*255 + 0.5)
	}

	return drawing.Color{R: rgb[0], G: rgb[1], B: rgb[2], A: a}, nil
}
