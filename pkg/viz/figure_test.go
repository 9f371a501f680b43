package viz

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/niudunkule/ctviz/pkg/ct"
	"github.com/niudunkule/ctviz/pkg/errors"
	"github.com/niudunkule/ctviz/pkg/viz/colormap"
)

func TestRasterizeGray(t *testing.T) {
	data, err := rasterize(gradientSlice(8), 32, nil)
	if err != nil {
		t.Fatalf("rasterize error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Errorf("bounds = %v, want 32×32", b)
	}
}

func TestRasterizeConstantSlice(t *testing.T) {
	flat := ct.Slice{{0.5, 0.5}, {0.5, 0.5}}
	data, err := rasterize(flat, 4, nil)
	if err != nil {
		t.Fatalf("rasterize error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode PNG: %v", err)
	}
	// Zero dynamic range renders black.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r != 0 || g != 0 || b != 0 {
				t.Fatalf("pixel (%d,%d) = %v, want black", x, y, img.At(x, y))
			}
		}
	}
}

func TestRasterizeColormap(t *testing.T) {
	cm, err := colormap.BuildHex("#000000", "#ff0000")
	if err != nil {
		t.Fatalf("BuildHex: %v", err)
	}

	data, err := rasterize(gradientSlice(8), 8, &cm)
	if err != nil {
		t.Fatalf("rasterize error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode PNG: %v", err)
	}
	if _, ok := img.(*image.NRGBA); !ok {
		t.Errorf("colormapped raster should be NRGBA, got %T", img)
	}
}

func TestRasterizeEmptySlice(t *testing.T) {
	if _, err := rasterize(ct.Slice{}, 8, nil); !errors.Is(err, errors.ErrCodeInvalidSlice) {
		t.Errorf("expected INVALID_SLICE, got %v", err)
	}
}

func TestFigureEscapesText(t *testing.T) {
	c := testComposer(t)
	f := NewFigure(100, 100, c.style)

	f.text(10, 10, "a<b & c", c.style.Fonts.Text, c.style.Palette.Dark, "start")
	svg := string(f.Bytes())

	if strings.Contains(svg, "a<b") {
		t.Error("text was not escaped")
	}
	if !strings.Contains(svg, "a&lt;b &amp; c") {
		t.Error("missing escaped text run")
	}
}

func TestFigureEmbedSVGStripsProlog(t *testing.T) {
	c := testComposer(t)
	f := NewFigure(100, 100, c.style)

	inner := []byte(`<?xml version="1.0"?><svg width="10" height="10"></svg>`)
	f.embedSVG(5, 7, inner)
	svg := string(f.Bytes())

	if strings.Contains(svg, "<?xml") {
		t.Error("XML prolog should be stripped from embedded documents")
	}
	if !strings.Contains(svg, `<g transform="translate(5.0,7.0)">`) {
		t.Error("missing translated group wrapper")
	}
}
