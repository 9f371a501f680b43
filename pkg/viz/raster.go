package viz

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/niudunkule/ctviz/pkg/ct"
	"github.com/niudunkule/ctviz/pkg/errors"
	"github.com/niudunkule/ctviz/pkg/viz/colormap"
)

// rasterize converts a CT slice to a px×px PNG. Intensities are
// normalized to the slice's own dynamic range, mirroring matplotlib's
// default imshow scaling; a constant slice renders black. When cmap is
// non-nil the normalized values are mapped through its gradient bins
// instead of the gray ramp.
func rasterize(s ct.Slice, px int, cmap *colormap.Colormap) ([]byte, error) {
	if s.Empty() {
		return nil, errors.New(errors.ErrCodeInvalidSlice, "cannot rasterize an empty slice")
	}

	rows, cols := s.Dims()
	lo, hi := s.Min(), s.Max()

	var img image.Image
	if cmap == nil {
		img = grayImage(s, rows, cols, lo, hi)
	} else {
		img = mappedImage(s, rows, cols, lo, hi, cmap)
	}

	resized := imaging.Resize(img, px, px, imaging.Lanczos)

	var buf bytes.Buffer
	if err := png.Encode(&buf, resized); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode cell PNG")
	}
	return buf.Bytes(), nil
}

func grayImage(s ct.Slice, rows, cols int, lo, hi float64) image.Image {
	span := hi - lo
	img := image.NewGray(image.Rect(0, 0, cols, rows))
	for y, row := range s {
		for x, v := range row {
			var g uint8
			if span > 0 {
				g = uint8((v - lo) / span * 255)
			}
			img.SetGray(x, y, color.Gray{Y: g})
		}
	}
	return img
}

func mappedImage(s ct.Slice, rows, cols int, lo, hi float64, cmap *colormap.Colormap) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	for y, row := range s {
		for x, v := range row {
			c := cmap.Lookup(v, lo, hi)
			r, g, b := c.RGB255()
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: 0xff})
		}
	}
	return img
}

// base64PNG encodes PNG bytes for a data URI.
func base64PNG(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
