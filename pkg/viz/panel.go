package viz

import (
	"github.com/niudunkule/ctviz/pkg/errors"
)

// Performance panel geometry: two curve charts side by side.
const (
	panelGap    = 32.0
	panelMargin = 16.0
)

// PerformancePanel renders the loss and PSNR curves for a training run
// side by side and writes performance_epoch_{epoch+1}.svg. Both history
// maps must carry the p_loss and psnr series.
func (c *Composer) PerformancePanel(train, val History, epoch int) error {
	trainLoss, valLoss, err := historySeries(train, val, KeyPerceptualLoss)
	if err != nil {
		return err
	}
	trainPSNR, valPSNR, err := historySeries(train, val, KeyPSNR)
	if err != nil {
		return err
	}

	width := 2*curveWidth + panelGap + 2*panelMargin
	height := float64(curveHeight) + 2*panelMargin
	f := NewFigure(width, height, c.style)

	left := Cell{X: panelMargin, Y: panelMargin, W: curveWidth, H: curveHeight}
	right := Cell{X: panelMargin + curveWidth + panelGap, Y: panelMargin, W: curveWidth, H: curveHeight}

	if err := c.LossCurve(f, left, trainLoss, valLoss); err != nil {
		return err
	}
	if err := c.PSNRCurve(f, right, trainPSNR, valPSNR); err != nil {
		return err
	}

	return c.writeFile(PerformanceFilename(epoch), f.Bytes())
}

// historySeries pulls one named series out of both history maps.
func historySeries(train, val History, key string) (trainSeries, valSeries []float64, err error) {
	trainSeries, ok := train[key]
	if !ok {
		return nil, nil, errors.New(errors.ErrCodeInvalidInput, "train history is missing %q", key)
	}
	valSeries, ok = val[key]
	if !ok {
		return nil, nil, errors.New(errors.ErrCodeInvalidInput, "validation history is missing %q", key)
	}
	return trainSeries, valSeries, nil
}
