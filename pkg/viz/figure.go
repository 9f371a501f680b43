package viz

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/niudunkule/ctviz/pkg/fonts"
	"github.com/niudunkule/ctviz/pkg/viz/styles"
)

// Cell is a rectangular region of a figure, in SVG user units.
type Cell struct {
	X, Y, W, H float64
}

// Figure accumulates SVG content for one output file. Figures are cheap,
// single-use buffers: create, draw, serialize, discard.
type Figure struct {
	width  float64
	height float64
	style  *styles.Config
	body   bytes.Buffer
}

// NewFigure creates an empty figure of the given size using the style
// configuration for fonts and colors.
func NewFigure(width, height float64, style *styles.Config) *Figure {
	return &Figure{width: width, height: height, style: style}
}

// Width returns the figure width in SVG user units.
func (f *Figure) Width() float64 { return f.width }

// Height returns the figure height in SVG user units.
func (f *Figure) Height() float64 { return f.height }

// Bytes serializes the figure as a standalone SVG document. The Avenir
// face is embedded through an @font-face rule so the file renders
// identically without the font installed.
func (f *Figure) Bytes() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		f.width, f.height, f.width, f.height)

	fmt.Fprintf(&buf,
		"  <defs>\n    <style>@font-face { font-family: '%s'; src: url(data:font/otf;base64,%s); }</style>\n  </defs>\n",
		fonts.FamilyName, f.style.Fonts.RegularBase64())

	buf.Write(f.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// WriteTo writes the serialized figure to w.
func (f *Figure) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(f.Bytes())
	return int64(n), err
}

// text draws a horizontal text run anchored at (x, y).
// anchor is an SVG text-anchor value: "start", "middle", or "end".
func (f *Figure) text(x, y float64, s string, font fonts.Handle, fill styles.Color, anchor string) {
	hex, opacity := fill.SVG()
	fmt.Fprintf(&f.body,
		`  <text x="%.1f" y="%.1f" font-family="%s" font-size="%.0f" font-style="%s" fill="%s" fill-opacity="%.3f" text-anchor="%s">%s</text>`+"\n",
		x, y, fonts.FamilyName, font.Size, font.Style, hex, opacity, anchor, escape(s))
}

// verticalText draws text rotated 90° counter-clockwise around (x, y),
// the SVG equivalent of a matplotlib y-axis label.
func (f *Figure) verticalText(x, y float64, s string, font fonts.Handle, fill styles.Color) {
	hex, opacity := fill.SVG()
	fmt.Fprintf(&f.body,
		`  <text x="0" y="0" transform="translate(%.1f,%.1f) rotate(-90)" font-family="%s" font-size="%.0f" font-style="%s" fill="%s" fill-opacity="%.3f" text-anchor="middle">%s</text>`+"\n",
		x, y, fonts.FamilyName, font.Size, font.Style, hex, opacity, escape(s))
}

// imagePNG places pre-encoded PNG bytes into cell as a data URI.
func (f *Figure) imagePNG(cell Cell, png []byte) {
	fmt.Fprintf(&f.body,
		`  <image x="%.1f" y="%.1f" width="%.1f" height="%.1f" preserveAspectRatio="none" href="data:image/png;base64,%s"/>`+"\n",
		cell.X, cell.Y, cell.W, cell.H, base64PNG(png))
}

// embedSVG nests a complete SVG document (e.g. a go-chart render) at the
// given offset. Any XML declaration is stripped; the inner <svg> element
// keeps its own coordinate system.
func (f *Figure) embedSVG(x, y float64, svg []byte) {
	doc := svg
	if i := bytes.Index(doc, []byte("<svg")); i > 0 {
		doc = doc[i:]
	}
	fmt.Fprintf(&f.body, `  <g transform="translate(%.1f,%.1f)">`+"\n", x, y)
	f.body.Write(doc)
	f.body.WriteString("\n  </g>\n")
}

// escape sanitizes text for inclusion in SVG markup.
func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// upper maps labels to the uppercase style used across all plots.
func upper(s string) string {
	return strings.ToUpper(s)
}
