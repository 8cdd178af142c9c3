package poisson

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/voidshard/poisson/internal/grid"
)

// validate classifies a candidate for this run.
func (s *Sampler) validate(c r2.Point, radius float64) Verdict {
	return validate(c, s.regionSize, radius, s.points, s.grid, s.filters)
}

// validate classifies candidate c, proposed with the given radius.
//
//   - outside [0, regionSize) on either axis: AcceptInactive
//   - rejected by any filter: Reject
//   - any indexed point closer than radius: Reject
//   - otherwise: Accept
//
// Only grid cells within ceil(radius/cellSize) of c are searched. With a
// fixed radius the cell size is radius/√2 so this is the 5x5 block around c.
func validate(c r2.Point, regionSize, radius float64, points []Point, g *grid.Grid, filters []CandidateFilter) Verdict {
	if c.X < 0 || c.X >= regionSize || c.Y < 0 || c.Y >= regionSize {
		return AcceptInactive
	}

	for _, fn := range filters {
		if !fn(c.X, c.Y) {
			return Reject
		}
	}

	cx, cy := g.CellOf(c.X, c.Y)
	window := int(math.Ceil(radius / g.CellSize()))
	limit := radius * radius

	for i := range g.Neighbours(cx, cy, window) {
		if sqrDist(c, points[i].Vec()) < limit {
			return Reject
		}
	}

	return Accept
}
