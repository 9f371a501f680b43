package viz

import (
	"fmt"

	"github.com/niudunkule/ctviz/pkg/ct"
	"github.com/niudunkule/ctviz/pkg/errors"
	"github.com/niudunkule/ctviz/pkg/metrics"
)

// Triplet grid geometry. Eight sample columns, three resolution rows.
const (
	gridColumns = 8

	gridCellPx    = 150.0
	gridColGap    = 18.0
	gridRowGap    = 8.0
	gridMarginTop = 56.0 // room for the PSNR titles on the top row
	gridMarginLft = 64.0 // room for the vertical row labels
	gridMarginRgt = 16.0
	gridMarginBot = 16.0
)

// Row labels for the triplet layouts.
const (
	labelLowRes   = "low-res"
	labelSuperRes = "super-res"
	labelHighRes  = "high-res"
)

// TripletGrid renders a 3×8 comparison sheet (rows: low-res, super-res,
// high-res; columns: sample index) and writes it to
// visualization_epoch_{epoch+1}.svg in the plots directory. Each column's
// PSNR between super-res and high-res is shown above the top-row cell.
func (c *Composer) TripletGrid(lr, sr, hr []ct.Slice, epoch int) error {
	f, err := c.TripletGridFigure(lr, sr, hr)
	if err != nil {
		return err
	}
	return c.writeFile(VisualizationFilename(epoch), f.Bytes())
}

// TripletGridFigure composes the same 3×8 sheet as TripletGrid but
// returns the figure for caller-managed persistence (e.g. embedding in a
// report or routing through a cache).
func (c *Composer) TripletGridFigure(lr, sr, hr []ct.Slice) (*Figure, error) {
	if err := checkBatch(lr, sr, hr); err != nil {
		return nil, err
	}

	width := gridMarginLft + gridColumns*gridCellPx + (gridColumns-1)*gridColGap + gridMarginRgt
	height := gridMarginTop + 3*gridCellPx + 2*gridRowGap + gridMarginBot
	f := NewFigure(width, height, c.style)

	for col := 0; col < gridColumns; col++ {
		// Row labels appear only on the first column.
		lrTitle, srTitle, hrTitle := "", "", ""
		if col == 0 {
			lrTitle, srTitle, hrTitle = labelLowRes, labelSuperRes, labelHighRes
		}

		psnr, err := metrics.PSNR(sr[col], hr[col])
		if err != nil {
			return nil, err
		}

		x := gridMarginLft + float64(col)*(gridCellPx+gridColGap)
		rowY := func(row int) float64 {
			return gridMarginTop + float64(row)*(gridCellPx+gridRowGap)
		}

		if err := c.ImageCell(f, Cell{X: x, Y: rowY(0), W: gridCellPx, H: gridCellPx}, lr[col], lrTitle, &psnr); err != nil {
			return nil, err
		}
		if err := c.ImageCell(f, Cell{X: x, Y: rowY(1), W: gridCellPx, H: gridCellPx}, sr[col], srTitle, nil); err != nil {
			return nil, err
		}
		if err := c.ImageCell(f, Cell{X: x, Y: rowY(2), W: gridCellPx, H: gridCellPx}, hr[col], hrTitle, nil); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// checkBatch validates the three sample batches of a triplet grid.
func checkBatch(lr, sr, hr []ct.Slice) error {
	if len(lr) != gridColumns || len(sr) != gridColumns || len(hr) != gridColumns {
		return errors.New(errors.ErrCodeInvalidInput,
			"triplet grid needs %d samples per batch, got lr=%d sr=%d hr=%d",
			gridColumns, len(lr), len(sr), len(hr))
	}
	for i := 0; i < gridColumns; i++ {
		if lr[i].Empty() || sr[i].Empty() || hr[i].Empty() {
			return errors.New(errors.ErrCodeInvalidSlice, "sample %d contains an empty slice", i)
		}
		if !ct.SameShape(sr[i], hr[i]) {
			return errors.New(errors.ErrCodeInvalidSlice,
				"sample %d: super-res and high-res shapes differ", i)
		}
	}
	return nil
}

// VisualizationFilename names the triplet grid file. Epochs count from
// zero internally but from one in filenames.
func VisualizationFilename(epoch int) string {
	return fmt.Sprintf("visualization_epoch_%d.svg", epoch+1)
}

// PerformanceFilename names the performance panel file, one-based like
// VisualizationFilename.
func PerformanceFilename(epoch int) string {
	return fmt.Sprintf("performance_epoch_%d.svg", epoch+1)
}

// TestResultsFilename names a full-slice triplet file. Test results keep
// the raw epoch number.
func TestResultsFilename(name string, epoch int) string {
	return fmt.Sprintf("test_results_%s_%d.svg", name, epoch)
}
