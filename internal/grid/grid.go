package grid

import (
	"iter"
	"math"

	"github.com/boljen/go-bitmap"
)

// Grid is a fixed size acceleration grid over a square region.
// Each cell holds at most one point, stored as a 1-based index into
// the caller's point list (0 means the cell is empty).
type Grid struct {
	cellSize float64
	width    int // cells per axis

	cells    []int
	occupied bitmap.Bitmap
}

// New returns an empty grid covering [0, regionSize) on both axes,
// split into ceil(regionSize / cellSize) cells per axis.
func New(regionSize, cellSize float64) *Grid {
	width := int(math.Ceil(regionSize / cellSize))
	if width < 1 {
		width = 1
	}
	return &Grid{
		cellSize: cellSize,
		width:    width,
		cells:    make([]int, width*width),
		occupied: bitmap.New(width * width),
	}
}

// Width returns the number of cells along each axis.
func (g *Grid) Width() int {
	return g.width
}

// CellSize returns the side length of a cell.
func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// CellOf returns the cell co-ords for the given position.
// This is a pure floor division, it may return cells outside the grid.
func (g *Grid) CellOf(x, y float64) (int, int) {
	return int(math.Floor(x / g.cellSize)), int(math.Floor(y / g.cellSize))
}

// Record stores index (1-based) at the cell containing x,y.
// Positions outside the grid are ignored. Returns true if the
// cell was already occupied (and has been overwritten).
func (g *Grid) Record(x, y float64, index int) bool {
	cx, cy := g.CellOf(x, y)
	if cx < 0 || cy < 0 {
		return false
	}
	// x just below regionSize can round up into the cell past the edge
	cx = minint(cx, g.width-1)
	cy = minint(cy, g.width-1)

	i := g.offset(cx, cy)
	overwrote := g.occupied.Get(i)
	g.cells[i] = index
	g.occupied.Set(i, true)
	return overwrote
}

// Lookup returns the index stored at cx,cy if any.
func (g *Grid) Lookup(cx, cy int) (int, bool) {
	if !g.inBounds(cx, cy) {
		return 0, false
	}
	i := g.offset(cx, cy)
	if !g.occupied.Get(i) {
		return 0, false
	}
	return g.cells[i], true
}

// Len returns the number of occupied cells.
func (g *Grid) Len() int {
	n := 0
	for i := range g.cells {
		if g.occupied.Get(i) {
			n++
		}
	}
	return n
}

// Neighbours yields the point list position (stored index - 1) of every
// occupied cell within `window` cells of cx,cy, clamped to the grid.
// The sequence is lazy & may be ranged over any number of times.
func (g *Grid) Neighbours(cx, cy, window int) iter.Seq[int] {
	x0 := maxint(0, cx-window)
	x1 := minint(g.width-1, cx+window)
	y0 := maxint(0, cy-window)
	y1 := minint(g.width-1, cy+window)

	return func(yield func(int) bool) {
		for x := x0; x <= x1; x++ {
			for y := y0; y <= y1; y++ {
				i := g.offset(x, y)
				if !g.occupied.Get(i) {
					continue
				}
				if !yield(g.cells[i] - 1) {
					return
				}
			}
		}
	}
}

func (g *Grid) inBounds(cx, cy int) bool {
	return cx >= 0 && cy >= 0 && cx < g.width && cy < g.width
}

// offset maps (cx,cy) to a row-major index
func (g *Grid) offset(cx, cy int) int {
	return cy*g.width + cx
}

func minint(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxint(a, b int) int {
	if a > b {
		return a
	}
	return b
}
