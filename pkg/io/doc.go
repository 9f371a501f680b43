// Package io provides JSON import for the data a training pipeline hands
// to the plotting layer.
//
// # Overview
//
// The plotting commands do not run inside the training process; they read
// its artifacts from disk. Three document shapes are supported:
//
//   - Sample batches: the low/super/high-resolution slices shown in a
//     triplet grid
//   - Metric histories: per-epoch train/validation series for the
//     performance panel
//   - Test cases: one full-resolution slice triplet with its scores
//
// # JSON Format
//
// Slices are row-major arrays of arrays of numbers. A sample batch:
//
//	{
//	  "low_res":   [[[0.1, 0.2], [0.3, 0.4]], ...],
//	  "super_res": [[[0.1, 0.2], [0.3, 0.4]], ...],
//	  "high_res":  [[[0.1, 0.2], [0.3, 0.4]], ...]
//	}
//
// A history file carries named series under "train" and "val":
//
//	{
//	  "train": {"p_loss": [0.9, 0.5], "psnr": [12.1, 15.4]},
//	  "val":   {"p_loss": [1.0, 0.6], "psnr": [11.8, 14.9]}
//	}
//
// A test case names its source and may carry precomputed scores:
//
//	{
//	  "name": "L067",
//	  "low_res": [[...]], "super_res": [[...]], "high_res": [[...]],
//	  "scores": {"mse": 1.2e-4, "psnr": 39.1}
//	}
//
// Each reader validates structure only; layout constraints (batch arity,
// shape agreement) are enforced by the figure composer.
package io
