package poisson

import (
	"github.com/voidshard/poisson/internal/voronoi"
)

// ForbiddenZone returns a filter rejecting candidates inside the polygon
// given by vertices (in order, implicitly closed).
func ForbiddenZone(vertices [][2]float64) CandidateFilter {
	inside := zone(vertices)
	return func(x, y float64) bool {
		return !inside(x, y)
	}
}

// AllowedZone returns a filter rejecting candidates outside the polygon
// given by vertices.
func AllowedZone(vertices [][2]float64) CandidateFilter {
	return CandidateFilter(zone(vertices))
}

// zone returns a point-in-polygon test that skips the edge walk for
// anything outside the polygon's bounding box.
func zone(vertices [][2]float64) func(x, y float64) bool {
	poly := voronoi.NewPolygon(vertices)
	lo, hi := poly.Bounds()
	return func(x, y float64) bool {
		if x < lo[0] || x > hi[0] || y < lo[1] || y > hi[1] {
			return false
		}
		return poly.Contains(x, y)
	}
}

// MinDistanceFrom returns a filter rejecting candidates closer than dist
// to x,y. Useful to keep a clearing around a fixed feature.
func MinDistanceFrom(x, y, dist float64) CandidateFilter {
	return func(cx, cy float64) bool {
		dx, dy := cx-x, cy-y
		return dx*dx+dy*dy >= dist*dist
	}
}
