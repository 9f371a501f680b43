package styles

import (
	"image/color"
	"testing"

	"github.com/niudunkule/ctviz/pkg/errors"
)

func TestNRGBAOpaque(t *testing.T) {
	got, err := Color("#f56958").NRGBA()
	if err != nil {
		t.Fatalf("NRGBA error: %v", err)
	}
	want := color.NRGBA{R: 0xf5, G: 0x69, B: 0x58, A: 0xff}
	if got != want {
		t.Errorf("NRGBA = %v, want %v", got, want)
	}
}

func TestNRGBAWithAlpha(t *testing.T) {
	got, err := Color("#1a1416bf").NRGBA()
	if err != nil {
		t.Fatalf("NRGBA error: %v", err)
	}
	want := color.NRGBA{R: 0x1a, G: 0x14, B: 0x16, A: 0xbf}
	if got != want {
		t.Errorf("NRGBA = %v, want %v", got, want)
	}
}

func TestNRGBAInvalid(t *testing.T) {
	for _, bad := range []Color{"", "#fff", "#gggggg", "not-a-color"} {
		if _, err := bad.NRGBA(); !errors.Is(err, errors.ErrCodeInvalidColor) {
			t.Errorf("%q: expected INVALID_COLOR, got %v", bad, err)
		}
	}
}

func TestSVG(t *testing.T) {
	hex, opacity := Color("#fef6e959").SVG()
	if hex != "#fef6e9" {
		t.Errorf("hex = %q, want #fef6e9", hex)
	}
	// 0x59 = 89/255
	if opacity < 0.34 || opacity > 0.36 {
		t.Errorf("opacity = %v, want ≈0.349", opacity)
	}

	hex, opacity = Color("#f56958").SVG()
	if hex != "#f56958" || opacity != 1 {
		t.Errorf("opaque SVG = (%q, %v)", hex, opacity)
	}
}

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	// Every named color must parse.
	for _, c := range []Color{p.Coral, p.Yellow, p.Lilac, p.Cream, p.CreamT, p.Dark, p.DarkT} {
		if _, err := c.NRGBA(); err != nil {
			t.Errorf("palette color %q does not parse: %v", c, err)
		}
	}
	if p.Coral != "#f56958" || p.DarkT != "#1a1416bf" {
		t.Error("palette constants changed")
	}
}

func TestNewRequiresFonts(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}
