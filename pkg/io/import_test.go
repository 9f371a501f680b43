package io

import (
	"strings"
	"testing"
)

const sampleJSON = `{
  "low_res":   [[[0.1, 0.2], [0.3, 0.4]]],
  "super_res": [[[0.1, 0.2], [0.3, 0.4]]],
  "high_res":  [[[0.1, 0.2], [0.3, 0.4]]]
}`

func TestReadSamples(t *testing.T) {
	b, err := ReadSamples(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("ReadSamples error: %v", err)
	}
	if len(b.LowRes) != 1 {
		t.Errorf("len(LowRes) = %d, want 1", len(b.LowRes))
	}
	if rows, cols := b.SuperRes[0].Dims(); rows != 2 || cols != 2 {
		t.Errorf("super-res dims = %dx%d, want 2x2", rows, cols)
	}
}

func TestReadSamplesLengthMismatch(t *testing.T) {
	const doc = `{
	  "low_res":   [[[1]], [[2]]],
	  "super_res": [[[1]]],
	  "high_res":  [[[1]], [[2]]]
	}`
	if _, err := ReadSamples(strings.NewReader(doc)); err == nil {
		t.Error("expected error for mismatched batch lengths")
	}
}

func TestReadSamplesEmpty(t *testing.T) {
	if _, err := ReadSamples(strings.NewReader(`{}`)); err == nil {
		t.Error("expected error for empty batch")
	}
}

func TestReadHistory(t *testing.T) {
	const doc = `{
	  "train": {"p_loss": [0.9, 0.5], "psnr": [12.1, 15.4]},
	  "val":   {"p_loss": [1.0, 0.6], "psnr": [11.8, 14.9]}
	}`
	train, val, err := ReadHistory(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadHistory error: %v", err)
	}
	if len(train["p_loss"]) != 2 || len(val["psnr"]) != 2 {
		t.Error("series were not decoded")
	}
}

func TestReadHistoryUnevenSeries(t *testing.T) {
	const doc = `{
	  "train": {"p_loss": [0.9, 0.5, 0.3]},
	  "val":   {"p_loss": [1.0]}
	}`
	if _, _, err := ReadHistory(strings.NewReader(doc)); err == nil {
		t.Error("expected error for uneven series lengths")
	}
}

func TestReadHistoryMissingSection(t *testing.T) {
	const doc = `{"train": {"p_loss": [0.9]}}`
	if _, _, err := ReadHistory(strings.NewReader(doc)); err == nil {
		t.Error("expected error for missing val section")
	}
}

func TestReadCase(t *testing.T) {
	const doc = `{
	  "name": "L067",
	  "low_res":   [[0.1, 0.2]],
	  "super_res": [[0.1, 0.2]],
	  "high_res":  [[0.1, 0.2]],
	  "scores": {"mse": 1.2e-4, "psnr": 39.1}
	}`
	tc, err := ReadCase(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadCase error: %v", err)
	}
	if tc.Name != "L067" {
		t.Errorf("name = %q", tc.Name)
	}
	if tc.Scores["psnr"] != 39.1 {
		t.Errorf("psnr score = %v, want 39.1", tc.Scores["psnr"])
	}
}

func TestReadCaseValidation(t *testing.T) {
	if _, err := ReadCase(strings.NewReader(`{"low_res": [[1]], "super_res": [[1]], "high_res": [[1]]}`)); err == nil {
		t.Error("expected error for missing name")
	}
	if _, err := ReadCase(strings.NewReader(`{"name": "x", "low_res": [[1]]}`)); err == nil {
		t.Error("expected error for missing slices")
	}
}

func TestImportSamplesMissingFile(t *testing.T) {
	if _, err := ImportSamples(t.TempDir() + "/absent.json"); err == nil {
		t.Error("expected error for missing file")
	}
}
