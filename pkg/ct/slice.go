// Package ct defines the plain image representation shared by the
// visualization pipeline.
//
// A CT image is carried as a bare 2-D grid of float64 intensities with no
// metadata beyond its shape. Callers that hold framework-specific tensors
// are expected to convert them at the boundary; nothing in this module
// knows about tensors, DICOM headers, or channel layouts.
package ct

// Slice is a single grayscale CT image stored row-major.
// A nil or zero-row Slice is considered empty.
type Slice [][]float64

// Dims returns the number of rows and columns.
// Ragged rows are not supported; the column count is taken from row 0.
func (s Slice) Dims() (rows, cols int) {
	if len(s) == 0 {
		return 0, 0
	}
	return len(s), len(s[0])
}

// Empty reports whether the slice holds no pixels.
func (s Slice) Empty() bool {
	rows, cols := s.Dims()
	return rows == 0 || cols == 0
}

// Min returns the smallest intensity, or 0 for an empty slice.
func (s Slice) Min() float64 {
	if s.Empty() {
		return 0
	}
	min := s[0][0]
	for _, row := range s {
		for _, v := range row {
			if v < min {
				min = v
			}
		}
	}
	return min
}

// Max returns the largest intensity, or 0 for an empty slice.
func (s Slice) Max() float64 {
	if s.Empty() {
		return 0
	}
	max := s[0][0]
	for _, row := range s {
		for _, v := range row {
			if v > max {
				max = v
			}
		}
	}
	return max
}

// Range returns the dynamic range (max - min).
// A constant image has range 0.
func (s Slice) Range() float64 {
	return s.Max() - s.Min()
}

// SameShape reports whether a and b have identical dimensions.
func SameShape(a, b Slice) bool {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	return ar == br && ac == bc
}
