package viz

import (
	"github.com/niudunkule/ctviz/pkg/ct"
	"github.com/niudunkule/ctviz/pkg/errors"
	"github.com/niudunkule/ctviz/pkg/metrics"
)

// Full-slice triplet geometry: three large cells in a row, with head
// room for the score title and foot room for the labels.
const (
	slceCellPx    = 360.0
	slceColGap    = 28.0
	slceMarginTop = 72.0
	slceMarginBot = 56.0
	slceMarginSde = 24.0
)

// FullSliceTriplet renders a 1×3 sheet of full-resolution low/super/high
// slices for one test case and writes test_results_{name}_{epoch}.svg.
// The MSE/PSNR scores are shown only on the super-res cell.
func (c *Composer) FullSliceTriplet(lr, sr, hr ct.Slice, scores metrics.Set, name string, epoch int) error {
	if name == "" {
		return errors.New(errors.ErrCodeInvalidInput, "test case name is required")
	}
	if lr.Empty() || sr.Empty() || hr.Empty() {
		return errors.New(errors.ErrCodeInvalidSlice, "full-slice triplet contains an empty slice")
	}

	width := 2*slceMarginSde + 3*slceCellPx + 2*slceColGap
	height := slceMarginTop + slceCellPx + slceMarginBot
	f := NewFigure(width, height, c.style)

	cellAt := func(i int) Cell {
		return Cell{
			X: slceMarginSde + float64(i)*(slceCellPx+slceColGap),
			Y: slceMarginTop,
			W: slceCellPx,
			H: slceCellPx,
		}
	}

	if err := c.FullSliceCell(f, cellAt(0), lr, labelLowRes, nil); err != nil {
		return err
	}
	if err := c.FullSliceCell(f, cellAt(1), sr, labelSuperRes, scores); err != nil {
		return err
	}
	if err := c.FullSliceCell(f, cellAt(2), hr, labelHighRes, nil); err != nil {
		return err
	}

	return c.writeFile(TestResultsFilename(name, epoch), f.Bytes())
}
