package poisson

import (
	"github.com/golang/geo/r2"
)

// State of a Sampler run.
type State int

const (
	// Running implies there are spawn points left & budget to spend.
	Running State = iota
	// Exhausted implies every spawn point has been retired.
	Exhausted
	// BudgetReached implies MaxPoints points have been placed.
	BudgetReached
)

// String returns a human readable state name.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Exhausted:
		return "exhausted"
	case BudgetReached:
		return "budget-reached"
	}
	return "unknown"
}

// Terminal returns if no further steps will change the run.
func (s State) Terminal() bool {
	return s != Running
}

// Verdict is the outcome of validating a single candidate.
type Verdict int

const (
	// Reject implies the candidate is too close to an existing point
	// (or sits in a forbidden zone).
	Reject Verdict = iota
	// Accept implies the candidate is placed & becomes a spawn point.
	Accept
	// AcceptInactive implies the candidate fell outside the region. It's
	// recorded but never spawns & is never indexed.
	AcceptInactive
)

// String returns a human readable verdict name.
func (v Verdict) String() string {
	switch v {
	case Reject:
		return "reject"
	case Accept:
		return "accept"
	case AcceptInactive:
		return "accept-inactive"
	}
	return "unknown"
}

// Point is a single placed sample.
type Point struct {
	X float64 `json:"x" csv:"x"`
	Y float64 `json:"y" csv:"y"`

	// separation radius in effect when this point was accepted
	Radius float64 `json:"radius" csv:"radius"`

	// sample value, drawn from [MinSampleValue, MaxSampleValue]
	// (always 0 for inactive points)
	Value int `json:"value" csv:"value"`

	// index of the spawn point this was proposed from, -1 for the origin
	Parent int `json:"parent" csv:"parent"`

	// true if the point lies outside the sample region
	Inactive bool `json:"inactive,omitempty" csv:"inactive"`
}

// Vec returns the position of p as a vector.
func (p Point) Vec() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// Result is the outcome of a sampling run.
type Result struct {
	// Points in acceptance order, both in & outside the region.
	Points []Point `json:"points"`

	// Seed the run was made with (set even if chosen from the clock)
	Seed int64 `json:"seed"`

	// side length of the region that was sampled
	RegionSize float64 `json:"region_size"`

	// terminal state the run ended in
	State State `json:"state"`

	// number of steps the run took
	Steps int `json:"steps"`
}

// InBounds returns the points inside the sample region (ie. all points
// that were indexed & allowed to spawn).
func (r *Result) InBounds() []Point {
	out := make([]Point, 0, len(r.Points))
	for _, p := range r.Points {
		if !p.Inactive {
			out = append(out, p)
		}
	}
	return out
}
