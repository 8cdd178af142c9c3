package line

import (
	"image"
	"image/color"
)

// Plotter is anything we can set single pixels on.
// Any draw.Image satisfies this.
type Plotter interface {
	Set(x, y int, c color.Color)
}

// Draw plots a line from a to b (inclusive of both ends) using
// integer-only Bresenham stepping, valid in every octant.
func Draw(p Plotter, a, b image.Point, col color.Color) {
	dx := absint(b.X - a.X)
	dy := -absint(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	err := dx + dy
	x, y := a.X, a.Y
	for {
		p.Set(x, y, col)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func absint(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
