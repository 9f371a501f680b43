// Package viz composes diagnostic figures for super-resolution training.
//
// # Overview
//
// The package turns in-memory CT slices and metric histories into SVG
// files. It provides:
//
//   - Image cells: normalized grayscale (or colormapped) CT images with
//     uppercase labels and PSNR titles, free of axis chrome
//   - Triplet grids: 3×8 low/super/high-resolution comparison sheets
//   - Performance panels: perceptual-loss and PSNR curves side by side
//   - Full-slice triplets: 1×3 test-result sheets with MSE/PSNR scores
//
// # Composition model
//
// A [Composer] holds the immutable style configuration and the output
// directory. Each render call is self-contained: it builds a [Figure] in
// memory, draws into it, writes the SVG, and releases everything on
// return. There is no shared mutable state between calls, so a single
// Composer can serve an entire training loop.
//
// Figures assemble hand-written SVG. Image cells embed base64 PNG data
// URIs; curve cells embed the chart SVG produced by go-chart. Text uses
// the Avenir face carried by the style configuration, embedded into each
// figure via an @font-face rule so the files are self-contained.
//
// # Errors
//
// Input validation failures surface as INVALID_INPUT/INVALID_SLICE codes
// and write failures as IO_FAILURE (see pkg/errors). Non-finite PSNR
// values from identical images are formatted as-is, never masked.
package viz
