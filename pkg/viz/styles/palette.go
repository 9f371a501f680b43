package styles

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/niudunkule/ctviz/pkg/errors"
)

// Color is a hex color value, "#rrggbb" or "#rrggbbaa".
type Color string

// Palette is the fixed set of named colors used by every plot.
type Palette struct {
	Coral  Color
	Yellow Color
	Lilac  Color
	Cream  Color
	CreamT Color // cream with alpha, used for validation curves
	Dark   Color
	DarkT  Color // dark with alpha, used for text and plot backgrounds
}

// DefaultPalette returns the plot color scheme.
func DefaultPalette() Palette {
	return Palette{
		Coral:  "#f56958",
		Yellow: "#f6e813",
		Lilac:  "#a051a0",
		Cream:  "#fef6e9",
		CreamT: "#fef6e959",
		Dark:   "#1a1416",
		DarkT:  "#1a1416bf",
	}
}

// NRGBA parses the hex value. Missing alpha defaults to opaque.
func (c Color) NRGBA() (color.NRGBA, error) {
	s := strings.TrimPrefix(string(c), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, errors.New(errors.ErrCodeInvalidColor,
			"hex color %q must be #rrggbb or #rrggbbaa", string(c))
	}

	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return color.NRGBA{}, errors.Wrap(errors.ErrCodeInvalidColor, err,
			"parse hex color %q", string(c))
	}

	if len(s) == 6 {
		return color.NRGBA{
			R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff,
		}, nil
	}
	return color.NRGBA{
		R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v),
	}, nil
}

// MustNRGBA is NRGBA for the package's own literals; it panics on a
// malformed value, which can only happen through a bad palette constant.
func (c Color) MustNRGBA() color.NRGBA {
	v, err := c.NRGBA()
	if err != nil {
		panic(err)
	}
	return v
}

// SVG renders the color as an SVG fill/stroke attribute value plus a
// separate opacity (SVG 1.1 has no 8-digit hex). Opacity is 1 for opaque
// colors.
func (c Color) SVG() (hex string, opacity float64) {
	v := c.MustNRGBA()
	return fmt.Sprintf("#%02x%02x%02x", v.R, v.G, v.B), float64(v.A) / 255
}
