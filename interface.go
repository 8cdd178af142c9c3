package poisson

import (
	"image"
	"image/color"
)

// Canvas is an optional raster the sampler paints accepted points onto.
// We only need to read & write single pixels, so any draw.Image will do.
type Canvas interface {
	Bounds() image.Rectangle

	// colour currently at x,y
	At(x, y int) color.Color

	// overwrite the colour at x,y
	Set(x, y int, c color.Color)
}

// CandidateFilter accepts or rejects an in-region candidate (x, y) based
// purely on its position. Returning false rejects the candidate.
// Filters run before the (more expensive) neighbour test.
type CandidateFilter func(x, y float64) bool
