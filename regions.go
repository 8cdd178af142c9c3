package poisson

import (
	"github.com/golang/geo/r2"
	"github.com/unixpickle/model3d/model2d"

	"github.com/voidshard/poisson/internal/voronoi"
)

// Region is the part of the sample region closer to one point than to
// any other in-region point (its voronoi cell).
type Region struct {
	// Point is the index into Result.Points of the cell's site
	Point int

	Site     r2.Point
	Vertices []r2.Point // anti-clockwise around Site
	Area     float64

	poly *voronoi.Polygon
}

// Contains returns if x,y lies within the region.
func (g *Region) Contains(x, y float64) bool {
	return g.poly.Contains(x, y)
}

// Regions returns the voronoi cells of every in-region point, clipped to
// the sample region. Cost is quadratic in the number of points.
func (r *Result) Regions() []*Region {
	index := []int{}
	sites := []model2d.Coord{}
	for i, p := range r.Points {
		if p.Inactive {
			continue
		}
		index = append(index, i)
		sites = append(sites, model2d.Coord{X: p.X, Y: p.Y})
	}

	cells := voronoi.Cells(
		model2d.Coord{X: 0, Y: 0},
		model2d.Coord{X: r.RegionSize, Y: r.RegionSize},
		sites,
	)

	out := make([]*Region, len(cells))
	for i, cell := range cells {
		poly := cell.Polygon()
		verts := make([]r2.Point, len(poly.Points))
		for j, v := range poly.Points {
			verts[j] = r2.Point{X: v[0], Y: v[1]}
		}
		out[i] = &Region{
			Point:    index[i],
			Site:     r2.Point{X: cell.Site.X, Y: cell.Site.Y},
			Vertices: verts,
			Area:     cell.Area(),
			poly:     poly,
		}
	}
	return out
}
