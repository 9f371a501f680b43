package viz

import (
	"fmt"
	"math"

	"github.com/niudunkule/ctviz/pkg/ct"
	"github.com/niudunkule/ctviz/pkg/metrics"
)

// Gaps between a cell and its surrounding annotations, in user units.
const (
	titleGap = 10 // cell top edge to PSNR title baseline
	labelGap = 26 // cell bottom edge to below-cell label baseline
	sideGap  = 14 // cell left edge to vertical row label
)

// ImageCell draws a CT image into cell with no axis ticks or border
// spines and a square aspect ratio. A non-empty title is drawn uppercase
// as a vertical label left of the cell; a non-nil psnr is drawn as a
// "PSNR = x.xx" title above it. Non-finite PSNR values (perfect match)
// format as +Inf/NaN and are rendered as-is.
func (c *Composer) ImageCell(f *Figure, cell Cell, img ct.Slice, title string, psnr *float64) error {
	png, err := rasterize(img, int(cell.W), c.cmap)
	if err != nil {
		return err
	}
	f.imagePNG(cell, png)

	if title != "" {
		f.verticalText(cell.X-sideGap, cell.Y+cell.H/2, upper(title),
			c.style.Fonts.Title, c.style.Palette.DarkT)
	}
	if psnr != nil {
		f.text(cell.X+cell.W/2, cell.Y-titleGap, formatPSNR(*psnr),
			c.style.Fonts.Label, c.style.Palette.DarkT, "middle")
	}
	return nil
}

// FullSliceCell draws a full-resolution slice with its label below the
// image and, when scores are given, a two-line MSE/PSNR title above it.
// Scores use scientific notation for MSE and three decimals for PSNR.
func (c *Composer) FullSliceCell(f *Figure, cell Cell, img ct.Slice, label string, scores metrics.Set) error {
	png, err := rasterize(img, int(cell.W), c.cmap)
	if err != nil {
		return err
	}
	f.imagePNG(cell, png)

	f.text(cell.X+cell.W/2, cell.Y+cell.H+labelGap, upper(label),
		c.style.Fonts.Title, c.style.Palette.DarkT, "middle")

	if scores != nil {
		lineGap := c.style.Fonts.Label.Size + 4
		f.text(cell.X+cell.W/2, cell.Y-titleGap-lineGap,
			fmt.Sprintf("MSE %.3e", scores[metrics.KeyMSE]),
			c.style.Fonts.Label, c.style.Palette.DarkT, "middle")
		f.text(cell.X+cell.W/2, cell.Y-titleGap,
			fmt.Sprintf("PSNR %.3f", scores[metrics.KeyPSNR]),
			c.style.Fonts.Label, c.style.Palette.DarkT, "middle")
	}
	return nil
}

// formatPSNR renders a PSNR title. Infinite values (MSE of zero) are kept
// visible rather than masked.
func formatPSNR(v float64) string {
	if math.IsInf(v, 1) {
		return "PSNR = inf"
	}
	return fmt.Sprintf("PSNR = %.2f", v)
}
