package poisson

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/colornames"

	"github.com/voidshard/poisson/internal/encoding"
)

// NewCanvas returns a size x size canvas filled with an opaque magenta
// background, ready to be painted on.
func NewCanvas(size int) *image.RGBA {
	im := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(im, im.Bounds(), image.NewUniform(colornames.Fuchsia), image.Point{}, draw.Src)
	return im
}

// paint blends the sample value of p into a single channel of the canvas
// pixel under it, leaving the other channels as they were.
// Points that fall outside the canvas are skipped.
//
// Canvases that store non-premultiplied colour (*image.NRGBA, *image.NRGBA64
// or anything with SetNRGBA64) keep the value exactly at any alpha. Other
// canvases go through Set & premultiplied colour, so on fully transparent
// pixels the value is lost.
func paint(c Canvas, p Point, ch Channel) {
	x, y := int(p.X), int(p.Y)
	if !image.Pt(x, y).In(c.Bounds()) {
		return
	}

	v := clampByte(p.Value)
	wide := encoding.Merge8(v, v) // 8 -> 16 bit, 0xff becomes 0xffff

	cur := nrgba64At(c, x, y)
	switch ch {
	case Red:
		cur.R = wide
	case Green:
		cur.G = wide
	case Alpha:
		cur.A = wide
	default:
		cur.B = wide
	}
	setNRGBA64(c, x, y, cur)
}

// SampleValueAt reads back the 8 bit value held in the given channel at x,y.
func SampleValueAt(c Canvas, x, y int, ch Channel) uint8 {
	cur := nrgba64At(c, x, y)

	var wide uint16
	switch ch {
	case Red:
		wide = cur.R
	case Green:
		wide = cur.G
	case Alpha:
		wide = cur.A
	default:
		wide = cur.B
	}

	hi, _ := encoding.Split16(wide)
	return hi
}

// nrgba64Setter is implemented by *image.NRGBA64
type nrgba64Setter interface {
	SetNRGBA64(x, y int, c color.NRGBA64)
}

// nrgba64At returns the non-premultiplied colour at x,y. Colours that are
// already non-premultiplied are widened directly rather than through RGBA(),
// which would zero them at alpha 0.
func nrgba64At(c Canvas, x, y int) color.NRGBA64 {
	switch col := c.At(x, y).(type) {
	case color.NRGBA64:
		return col
	case color.NRGBA:
		return color.NRGBA64{
			R: encoding.Merge8(col.R, col.R),
			G: encoding.Merge8(col.G, col.G),
			B: encoding.Merge8(col.B, col.B),
			A: encoding.Merge8(col.A, col.A),
		}
	default:
		return color.NRGBA64Model.Convert(col).(color.NRGBA64)
	}
}

// setNRGBA64 writes col at x,y without premultiplying it if the canvas
// allows.
func setNRGBA64(c Canvas, x, y int, col color.NRGBA64) {
	switch im := c.(type) {
	case nrgba64Setter:
		im.SetNRGBA64(x, y, col)
	case *image.NRGBA:
		r, _ := encoding.Split16(col.R)
		g, _ := encoding.Split16(col.G)
		b, _ := encoding.Split16(col.B)
		a, _ := encoding.Split16(col.A)
		im.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: a})
	default:
		c.Set(x, y, col)
	}
}

// clipped wraps a Canvas so pixels outside its bounds are dropped
type clipped struct {
	Canvas
}

// Set writes c at x,y if x,y is on the canvas
func (l clipped) Set(x, y int, c color.Color) {
	if !image.Pt(x, y).In(l.Bounds()) {
		return
	}
	l.Canvas.Set(x, y, c)
}
