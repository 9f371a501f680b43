package metrics

import (
	"math"
	"testing"

	"github.com/niudunkule/ctviz/pkg/ct"
	"github.com/niudunkule/ctviz/pkg/errors"
)

func TestMSE(t *testing.T) {
	a := ct.Slice{{1, 2}, {3, 4}}
	b := ct.Slice{{1, 2}, {3, 6}} // one pixel off by 2

	got, err := MSE(a, b)
	if err != nil {
		t.Fatalf("MSE error: %v", err)
	}
	if got != 1.0 { // 4 / 4 pixels
		t.Errorf("MSE = %v, want 1.0", got)
	}
}

func TestMSEShapeMismatch(t *testing.T) {
	a := ct.Slice{{1, 2}}
	b := ct.Slice{{1}, {2}}

	_, err := MSE(a, b)
	if !errors.Is(err, errors.ErrCodeInvalidSlice) {
		t.Errorf("expected INVALID_SLICE, got %v", err)
	}
}

func TestMSEEmpty(t *testing.T) {
	_, err := MSE(nil, ct.Slice{{1}})
	if !errors.Is(err, errors.ErrCodeInvalidSlice) {
		t.Errorf("expected INVALID_SLICE, got %v", err)
	}
}

// Reference with range 1.0 and MSE 0.01 must give exactly 20 dB.
func TestPSNRKnownValue(t *testing.T) {
	ref := ct.Slice{{0.0, 1.0}, {1.0, 0.0}} // min 0, max 1 → range 1
	img := ct.Slice{{0.1, 1.1}, {1.1, 0.1}} // every pixel off by 0.1 → MSE 0.01

	got, err := PSNR(img, ref)
	if err != nil {
		t.Fatalf("PSNR error: %v", err)
	}
	if math.Abs(got-20.0) > 1e-9 {
		t.Errorf("PSNR = %v, want 20.0", got)
	}
}

// A perfect reconstruction of a non-constant reference has infinite PSNR.
func TestPSNRPerfectMatch(t *testing.T) {
	ref := ct.Slice{{0.0, 0.5}, {1.0, 0.25}}
	img := ct.Slice{{0.0, 0.5}, {1.0, 0.25}}

	got, err := PSNR(img, ref)
	if err != nil {
		t.Fatalf("PSNR error: %v", err)
	}
	if !math.IsInf(got, 1) {
		t.Errorf("PSNR = %v, want +Inf", got)
	}
}

// A perfect match against a constant reference is 0/0 and passes through
// as NaN rather than crashing.
func TestPSNRConstantPerfectMatch(t *testing.T) {
	ref := ct.Slice{{3, 3}, {3, 3}}
	img := ct.Slice{{3, 3}, {3, 3}}

	got, err := PSNR(img, ref)
	if err != nil {
		t.Fatalf("PSNR error: %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("PSNR = %v, want NaN", got)
	}
}

func TestEvaluate(t *testing.T) {
	ref := ct.Slice{{0.0, 1.0}}
	img := ct.Slice{{0.1, 0.9}}

	set, err := Evaluate(img, ref)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}

	mse, ok := set[KeyMSE]
	if !ok {
		t.Fatal("missing mse key")
	}
	if math.Abs(mse-0.01) > 1e-12 {
		t.Errorf("mse = %v, want 0.01", mse)
	}

	psnr, ok := set[KeyPSNR]
	if !ok {
		t.Fatal("missing psnr key")
	}
	if math.Abs(psnr-20.0) > 1e-9 {
		t.Errorf("psnr = %v, want 20.0", psnr)
	}
}
