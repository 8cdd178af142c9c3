package voronoi

import (
	"math"
	"sort"

	"github.com/unixpickle/model3d/model2d"
)

// Cell is the region of the plane closer to Site than to any other site,
// clipped to the bounding box it was computed in.
type Cell struct {
	Site  model2d.Coord
	Edges []*model2d.Segment
}

// Area returns the area enclosed by the cell edges.
func (c *Cell) Area() float64 {
	// sum of the triangles each edge makes with the site
	total := 0.0
	for _, e := range c.Edges {
		a := e[0].Sub(c.Site)
		b := e[1].Sub(c.Site)
		total += math.Abs(a.X*b.Y-a.Y*b.X) / 2
	}
	return total
}

// Polygon returns the cell outline as a Polygon, vertices ordered
// anti-clockwise around the site. Cells are convex so this ordering is
// always valid.
func (c *Cell) Polygon() *Polygon {
	seen := map[model2d.Coord]bool{}
	verts := []model2d.Coord{}
	for _, e := range c.Edges {
		for _, v := range e {
			if seen[v] {
				continue
			}
			seen[v] = true
			verts = append(verts, v)
		}
	}

	sort.Slice(verts, func(i, j int) bool {
		a, b := verts[i].Sub(c.Site), verts[j].Sub(c.Site)
		return math.Atan2(a.Y, a.X) < math.Atan2(b.Y, b.X)
	})

	pts := make([][2]float64, len(verts))
	for i, v := range verts {
		pts[i] = [2]float64{v.X, v.Y}
	}
	return NewPolygon(pts)
}

// Cells computes the voronoi cells for a list of sites, all assumed to sit
// within the box [min, max].
//
// Each cell is the intersection of the box with one half-plane per other
// site, so this is O(n^2) in the number of sites.
func Cells(min, max model2d.Coord, sites []model2d.Coord) []*Cell {
	cells := make([]*Cell, len(sites))
	for i, c := range sites {
		constraints := model2d.NewConvexPolytopeRect(min, max)
		for j, c1 := range sites {
			if i == j || c == c1 {
				continue
			}
			normal := c1.Sub(c).Normalize()
			constraints = append(constraints, &model2d.LinearConstraint{
				Normal: normal,
				Max:    normal.Dot(c.Mid(c1)),
			})
		}
		cells[i] = &Cell{
			Site:  c,
			Edges: constraints.Mesh().SegmentSlice(),
		}
	}
	return cells
}
