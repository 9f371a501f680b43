// Package metrics computes the image-similarity scores shown on plots.
//
// Two metrics are supported: mean squared error (MSE) and peak
// signal-to-noise ratio (PSNR). PSNR is defined against the dynamic range
// of the reference image rather than a fixed peak value:
//
//	PSNR = 10 * log10(range² / MSE)
//
// where range = max(ref) - min(ref). When the compared images are
// identical (MSE == 0), PSNR is +Inf; this is a genuine "perfect match"
// edge case and is passed through to callers unmasked.
package metrics

import (
	"math"

	"github.com/niudunkule/ctviz/pkg/ct"
	"github.com/niudunkule/ctviz/pkg/errors"
)

// Metric names used as Set keys.
const (
	KeyMSE  = "mse"
	KeyPSNR = "psnr"
)

// Set maps a metric name to its value.
type Set map[string]float64

// MSE returns the mean squared error between img and ref.
// The images must be non-empty and share the same shape.
func MSE(img, ref ct.Slice) (float64, error) {
	if err := checkPair(img, ref); err != nil {
		return 0, err
	}

	var sum float64
	for i, row := range img {
		for j, v := range row {
			d := v - ref[i][j]
			sum += d * d
		}
	}
	rows, cols := img.Dims()
	return sum / float64(rows*cols), nil
}

// PSNR returns the peak signal-to-noise ratio of img against ref, using
// the dynamic range of ref as the peak. The result is +Inf when img and
// ref are identical, and NaN when ref is additionally constant (0/0).
func PSNR(img, ref ct.Slice) (float64, error) {
	mse, err := MSE(img, ref)
	if err != nil {
		return 0, err
	}
	r := ref.Range()
	return 10 * math.Log10(r*r/mse), nil
}

// Evaluate computes the full metric set for img against ref.
func Evaluate(img, ref ct.Slice) (Set, error) {
	mse, err := MSE(img, ref)
	if err != nil {
		return nil, err
	}
	r := ref.Range()
	return Set{
		KeyMSE:  mse,
		KeyPSNR: 10 * math.Log10(r*r/mse),
	}, nil
}

// checkPair validates that two slices can be compared pixel-wise.
func checkPair(img, ref ct.Slice) error {
	if img.Empty() || ref.Empty() {
		return errors.New(errors.ErrCodeInvalidSlice, "cannot compare empty slices")
	}
	if !ct.SameShape(img, ref) {
		ir, ic := img.Dims()
		rr, rc := ref.Dims()
		return errors.New(errors.ErrCodeInvalidSlice,
			"shape mismatch: %dx%d vs %dx%d", ir, ic, rr, rc)
	}
	return nil
}
