package viz

import (
	"bytes"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/niudunkule/ctviz/pkg/errors"
	"github.com/niudunkule/ctviz/pkg/viz/styles"
)

// Curve chart dimensions in pixels, one chart per panel cell.
const (
	curveWidth  = 640
	curveHeight = 400
)

// LossCurve draws the perceptual-loss training/validation curves into
// cell. The validation series is plotted first so the training curve
// sits on top; y-tick labels carry three decimals.
func (c *Composer) LossCurve(f *Figure, cell Cell, train, val []float64) error {
	svg, err := c.curveChart(train, val, "PERCEPTUAL LOSS", "%.3f")
	if err != nil {
		return err
	}
	f.embedSVG(cell.X, cell.Y, svg)
	return nil
}

// PSNRCurve draws the PSNR training/validation curves into cell with
// two-decimal y-tick labels.
func (c *Composer) PSNRCurve(f *Figure, cell Cell, train, val []float64) error {
	svg, err := c.curveChart(train, val, "PSNR", "%.2f")
	if err != nil {
		return err
	}
	f.embedSVG(cell.X, cell.Y, svg)
	return nil
}

// curveChart renders one train/validation line chart as standalone SVG.
func (c *Composer) curveChart(train, val []float64, title, yFormat string) ([]byte, error) {
	if len(train) < 2 || len(val) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"curve needs at least 2 points per series, got train=%d val=%d", len(train), len(val))
	}

	yLo, yHi := seriesRange(train, val)
	if yHi == yLo {
		// Flat series still need a visible band to place 6 distinct ticks.
		yLo, yHi = yLo-0.5, yHi+0.5
	}

	p := c.style.Palette
	small := c.style.Fonts.TextSmall.Size
	tickStyle := chart.Style{
		FontSize:  small,
		FontColor: chartColor(p.DarkT),
	}

	ch := chart.Chart{
		Width:  curveWidth,
		Height: curveHeight,
		Title:  title,
		TitleStyle: chart.Style{
			FontSize:  c.style.Fonts.Label.Size,
			FontColor: chartColor(p.DarkT),
		},
		Canvas: chart.Style{
			FillColor: chartColor(p.DarkT),
		},
		Background: chart.Style{
			Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 12},
		},
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(len(train))},
			Ticks: epochTicks(len(train)),
			Style: tickStyle,
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: yLo, Max: yHi},
			Ticks: valueTicks(yLo, yHi, yFormat),
			Style: tickStyle,
		},
		Series: []chart.Series{
			// Validation first: train draws over it.
			chart.ContinuousSeries{
				Name:    "Validation",
				XValues: indexValues(len(val)),
				YValues: val,
				Style: chart.Style{
					StrokeColor: chartColor(p.CreamT),
					StrokeWidth: 1,
				},
			},
			chart.ContinuousSeries{
				Name:    "Train",
				XValues: indexValues(len(train)),
				YValues: train,
				Style: chart.Style{
					StrokeColor: chartColor(p.Coral),
					StrokeWidth: 1,
				},
			},
		},
	}
	ch.Elements = []chart.Renderable{
		chart.Legend(&ch, chart.Style{
			FontSize:  c.style.Fonts.Text.Size,
			FontColor: chartColor(p.DarkT),
		}),
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s chart", title)
	}
	return buf.Bytes(), nil
}

// indexValues returns 0..n-1 as float64 x-coordinates.
func indexValues(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}

// chartColor converts a palette color to go-chart's color type.
func chartColor(c styles.Color) drawing.Color {
	v := c.MustNRGBA()
	return drawing.Color{R: v.R, G: v.G, B: v.B, A: v.A}
}
