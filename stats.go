package poisson

import (
	"math"

	"github.com/unixpickle/model3d/model2d"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarises the spacing of a result.
type Stats struct {
	Points   int // all points
	InBounds int // points inside the region
	Inactive int // points outside the region

	// nearest neighbour distances over in-region points.
	// All zero if there are fewer than two such points.
	MinSeparation float64
	MeanNearest   float64
	StdDevNearest float64

	// in-region points per unit area
	Density float64
}

// Stats computes spacing statistics for the result.
func (r *Result) Stats() Stats {
	in := r.InBounds()
	st := Stats{
		Points:   len(r.Points),
		InBounds: len(in),
		Inactive: len(r.Points) - len(in),
	}
	if r.RegionSize > 0 {
		st.Density = float64(len(in)) / (r.RegionSize * r.RegionSize)
	}

	nearest := r.nearestDistances(in)
	if len(nearest) == 0 {
		return st
	}

	st.MinSeparation = floats.Min(nearest)
	st.MeanNearest, st.StdDevNearest = stat.MeanStdDev(nearest, nil)
	if math.IsNaN(st.StdDevNearest) {
		st.StdDevNearest = 0
	}
	return st
}

// nearestDistances returns, for each point, the distance to its closest
// neighbour. Returns nil for fewer than two points.
func (r *Result) nearestDistances(pts []Point) []float64 {
	if len(pts) < 2 {
		return nil
	}

	coords := make([]model2d.Coord, len(pts))
	for i, p := range pts {
		coords[i] = model2d.Coord{X: p.X, Y: p.Y}
	}
	tree := model2d.NewCoordTree(coords)

	out := make([]float64, len(coords))
	for i, c := range coords {
		// the closest match is c itself
		best := 0.0
		for _, n := range tree.KNN(2, c) {
			best = math.Max(best, n.Dist(c))
		}
		out[i] = best
	}
	return out
}
