package poisson

import (
	"bytes"
	"image"
	"image/png"
	"os"

	"github.com/golang/geo/r2"
)

// sqrDist returns the squared distance between a & b.
func sqrDist(a, b r2.Point) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// SavePNG writes an image to disk as a PNG, handy for saving a painted canvas.
func SavePNG(fpath string, in image.Image) error {
	buff := new(bytes.Buffer)
	err := png.Encode(buff, in)
	if err != nil {
		return err
	}
	return os.WriteFile(fpath, buff.Bytes(), 0644)
}

// clampByte squashes v into 0-255
func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
