package voronoi

// Polygon is a closed outline given by its vertices in order; the last
// vertex joins back up with the first.
type Polygon struct {
	Points [][2]float64
}

// NewPolygon returns a polygon over the given vertices.
func NewPolygon(points [][2]float64) *Polygon {
	return &Polygon{Points: points}
}

// IsClosed returns whether the polygon encloses any area at all.
func (p *Polygon) IsClosed() bool {
	return len(p.Points) >= 3
}

// Bounds returns the lowest & highest x,y of the vertices.
func (p *Polygon) Bounds() (min, max [2]float64) {
	if len(p.Points) == 0 {
		return
	}
	min, max = p.Points[0], p.Points[0]
	for _, v := range p.Points[1:] {
		for k := 0; k < 2; k++ {
			if v[k] < min[k] {
				min[k] = v[k]
			}
			if v[k] > max[k] {
				max[k] = v[k]
			}
		}
	}
	return
}

// Contains returns whether x,y is inside the polygon (even-odd rule).
// Points exactly on an edge may go either way.
func (p *Polygon) Contains(x, y float64) bool {
	if !p.IsClosed() {
		return false
	}

	inside := false
	j := len(p.Points) - 1
	for i := range p.Points {
		a, b := p.Points[i], p.Points[j]
		if (a[1] > y) != (b[1] > y) {
			// x co-ord where the edge a-b crosses the horizontal line through y
			cross := a[0] + (y-a[1])*(b[0]-a[0])/(b[1]-a[1])
			if x < cross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
