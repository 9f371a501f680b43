// Package colormap builds continuous color gradients from a discrete list
// of color stops.
//
// The gradient interpolates between neighboring stops in CIE Lab space
// (via lucasb-eyer/go-colorful) so that the perceived brightness ramps
// evenly, then quantizes the result into a fixed number of bins. Building
// a colormap is a pure function of its inputs; nothing is cached.
package colormap

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/niudunkule/ctviz/pkg/errors"
)

// DefaultBins is the number of discrete color bins in a built gradient.
const DefaultBins = 100

// DefaultName is the name assigned to gradients built by this package.
const DefaultName = "gradient_cmap"

// Colormap is a named, binned color gradient.
type Colormap struct {
	Name  string
	Stops []colorful.Color
	Bins  int
}

// Build creates a gradient interpolating linearly (in Lab space) between
// the given stops over DefaultBins bins. At least two stops are required.
func Build(stops []colorful.Color) (Colormap, error) {
	if len(stops) < 2 {
		return Colormap{}, errors.New(errors.ErrCodeInvalidColor,
			"gradient needs at least 2 color stops, got %d", len(stops))
	}
	return Colormap{
		Name:  DefaultName,
		Stops: stops,
		Bins:  DefaultBins,
	}, nil
}

// BuildHex is a convenience wrapper around Build for #rrggbb hex strings.
func BuildHex(hexes ...string) (Colormap, error) {
	stops := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return Colormap{}, errors.Wrap(errors.ErrCodeInvalidColor, err,
				"parse color stop %q", h)
		}
		stops[i] = c
	}
	return Build(stops)
}

// At returns the gradient color for t in [0, 1]. Values outside the range
// are clamped. The color is continuous; use Lookup for binned access.
func (m Colormap) At(t float64) colorful.Color {
	if t <= 0 {
		return m.Stops[0]
	}
	if t >= 1 {
		return m.Stops[len(m.Stops)-1]
	}

	// Position within the piecewise-linear stop sequence.
	segments := float64(len(m.Stops) - 1)
	pos := t * segments
	i := int(pos)
	frac := pos - float64(i)

	return m.Stops[i].BlendLab(m.Stops[i+1], frac)
}

// Lookup quantizes v within [lo, hi] into the gradient's bins and returns
// the bin color. A degenerate range (hi <= lo) maps everything to bin 0.
func (m Colormap) Lookup(v, lo, hi float64) colorful.Color {
	bins := m.Bins
	if bins < 1 {
		bins = DefaultBins
	}

	var bin int
	if hi > lo {
		t := (v - lo) / (hi - lo)
		bin = int(t * float64(bins))
		if bin < 0 {
			bin = 0
		}
		if bin > bins-1 {
			bin = bins - 1
		}
	}

	// Bin centers sample the continuous gradient evenly.
	return m.At((float64(bin) + 0.5) / float64(bins))
}

// Table materializes the gradient as one color per bin.
func (m Colormap) Table() []colorful.Color {
	bins := m.Bins
	if bins < 1 {
		bins = DefaultBins
	}
	out := make([]colorful.Color, bins)
	for i := range out {
		out[i] = m.At((float64(i) + 0.5) / float64(bins))
	}
	return out
}
