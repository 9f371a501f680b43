package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/niudunkule/ctviz/pkg/ct"
	"github.com/niudunkule/ctviz/pkg/metrics"
	"github.com/niudunkule/ctviz/pkg/viz"
)

// SampleBatch holds the parallel slice batches rendered by a triplet grid.
type SampleBatch struct {
	LowRes   []ct.Slice `json:"low_res"`
	SuperRes []ct.Slice `json:"super_res"`
	HighRes  []ct.Slice `json:"high_res"`
}

// TestCase is one full-resolution evaluation sample.
type TestCase struct {
	Name     string      `json:"name"`
	LowRes   ct.Slice    `json:"low_res"`
	SuperRes ct.Slice    `json:"super_res"`
	HighRes  ct.Slice    `json:"high_res"`
	Scores   metrics.Set `json:"scores,omitempty"`
}

type historyDoc struct {
	Train viz.History `json:"train"`
	Val   viz.History `json:"val"`
}

// ReadSamples decodes a sample batch from r. The three batches must be
// present and equally long; slice shapes are left to the composer.
// ReadSamples does not close r.
func ReadSamples(r io.Reader) (*SampleBatch, error) {
	var b SampleBatch
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(b.LowRes) == 0 {
		return nil, fmt.Errorf("sample batch is empty")
	}
	if len(b.SuperRes) != len(b.LowRes) || len(b.HighRes) != len(b.LowRes) {
		return nil, fmt.Errorf("batch lengths differ: low=%d super=%d high=%d",
			len(b.LowRes), len(b.SuperRes), len(b.HighRes))
	}
	return &b, nil
}

// ImportSamples reads a sample batch from the JSON file at path.
func ImportSamples(path string) (*SampleBatch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadSamples(f)
}

// ReadHistory decodes train and validation metric histories from r.
// Both sections must be present and their series equally long per key.
// ReadHistory does not close r.
func ReadHistory(r io.Reader) (train, val viz.History, err error) {
	var doc historyDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("decode: %w", err)
	}
	if len(doc.Train) == 0 || len(doc.Val) == 0 {
		return nil, nil, fmt.Errorf("history needs both train and val sections")
	}
	for key, series := range doc.Train {
		other, ok := doc.Val[key]
		if !ok {
			continue
		}
		if len(series) != len(other) {
			return nil, nil, fmt.Errorf("series %q: train has %d epochs, val has %d",
				key, len(series), len(other))
		}
	}
	return doc.Train, doc.Val, nil
}

// ImportHistory reads metric histories from the JSON file at path.
func ImportHistory(path string) (train, val viz.History, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadHistory(f)
}

// ReadCase decodes a test case from r. The name and all three slices are
// required; scores are optional and computed by the caller when absent.
// ReadCase does not close r.
func ReadCase(r io.Reader) (*TestCase, error) {
	var tc TestCase
	if err := json.NewDecoder(r).Decode(&tc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if tc.Name == "" {
		return nil, fmt.Errorf("test case has no name")
	}
	if tc.LowRes.Empty() || tc.SuperRes.Empty() || tc.HighRes.Empty() {
		return nil, fmt.Errorf("test case %s is missing a slice", tc.Name)
	}
	return &tc, nil
}

// ImportCase reads a test case from the JSON file at path.
func ImportCase(path string) (*TestCase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadCase(f)
}
