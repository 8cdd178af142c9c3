// Package poisson scatters points over a square region such that no two
// points are closer than a minimum radius (Poisson-disc or "blue noise"
// sampling) using Bridson's dart throwing algorithm with an acceleration
// grid.
//
// A run optionally paints each accepted point onto a Canvas, otherwise it
// simply returns the points.
package poisson

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"github.com/unixpickle/essentials"

	"github.com/voidshard/poisson/internal/grid"
)

// Sampler holds the state of a single sampling run.
// Everything here is owned by the one run & discarded with it; a Sampler
// is not safe for concurrent use.
type Sampler struct {
	cfg    *Config
	canvas Canvas

	rng  *rand.Rand
	seed int64

	regionSize float64
	grid       *grid.Grid

	zones   []CandidateFilter // from cfg.ForbiddenZones
	filters []CandidateFilter // zones + anything set via SetCandidateFilters

	// every placed point, in order of acceptance
	points []Point

	// indexes (into points) of points still allowed to spawn candidates.
	// Order is irrelevant, retired points are swapped out.
	active []int

	state State
	steps int

	logw io.Writer
}

// New validates the config & prepares a run. The canvas is optional.
//
// The run starts with a single point at the centre of the region, which
// is placed regardless of any forbidden zones.
func New(cfg *Config, canvas Canvas) (*Sampler, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	err := cfg.Validate(canvas)
	if err != nil {
		return nil, err
	}

	seed := time.Now().UnixNano()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	size := cfg.regionSize(canvas)

	s := &Sampler{
		cfg:        cfg,
		canvas:     canvas,
		rng:        rand.New(rand.NewSource(seed)),
		seed:       seed,
		regionSize: size,
		grid:       grid.New(size, cfg.CellSize()),
		points:     []Point{},
		active:     []int{},
		state:      Running,
	}

	for _, zone := range cfg.ForbiddenZones {
		s.zones = append(s.zones, ForbiddenZone(zone))
	}
	s.filters = s.zones

	s.place(r2.Point{X: size / 2, Y: size / 2}, -1, cfg.Radius(), Accept)
	s.updateState()

	return s, nil
}

// Sample runs a complete sampling run with the given config & (optional) canvas.
func Sample(cfg *Config, canvas Canvas) (*Result, error) {
	s, err := New(cfg, canvas)
	if err != nil {
		return nil, err
	}
	return s.Run(context.Background())
}

// SetCandidateFilters sets filters that may reject in-region candidates
// before they're compared to neighbouring points. Filters built from the
// config's forbidden zones always apply.
func (s *Sampler) SetCandidateFilters(f ...CandidateFilter) {
	filters := make([]CandidateFilter, 0, len(s.zones)+len(f))
	filters = append(filters, s.zones...)
	s.filters = append(filters, f...)
}

// SetLogWriter sets where progress is logged, nil disables logging.
func (s *Sampler) SetLogWriter(w io.Writer) {
	s.logw = w
}

// Seed returns the seed the rng was created with.
func (s *Sampler) Seed() int64 {
	return s.seed
}

// State returns the current run state.
func (s *Sampler) State() State {
	return s.state
}

// Steps returns how many steps have been taken.
func (s *Sampler) Steps() int {
	return s.steps
}

// RegionSize returns the side length of the region being sampled.
func (s *Sampler) RegionSize() float64 {
	return s.regionSize
}

// ActiveCount returns the number of points still able to spawn.
func (s *Sampler) ActiveCount() int {
	return len(s.active)
}

// Points returns a copy of all points placed so far.
func (s *Sampler) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

// Result returns the run outcome so far.
func (s *Sampler) Result() *Result {
	return &Result{
		Points:     s.Points(),
		Seed:       s.seed,
		RegionSize: s.regionSize,
		State:      s.state,
		Steps:      s.steps,
	}
}

// Run steps until the run reaches a terminal state or ctx is done.
// On cancellation the partial Result is returned along with the error.
func (s *Sampler) Run(ctx context.Context) (*Result, error) {
	s.logf(
		"poisson: sampling region %.2f seed %d radius [%.3f, %.3f] cell %.3f grid %dx%d",
		s.regionSize, s.seed, s.cfg.MinRadius, s.cfg.MaxRadius, s.grid.CellSize(), s.grid.Width(), s.grid.Width(),
	)

	for !s.state.Terminal() {
		err := ctx.Err()
		if err != nil {
			s.logf("poisson: cancelled after %d steps with %d points", s.steps, len(s.points))
			return s.Result(), errors.Wrap(err, "sampling cancelled")
		}
		s.Step()
	}

	s.logf("poisson: %s after %d steps, %d points (%d indexed)", s.state, s.steps, len(s.points), s.grid.Len())
	return s.Result(), nil
}

// Step picks a spawn point at random & throws up to SamplesBeforeRejection
// candidates around it. The first candidate that isn't rejected is placed;
// if every candidate is rejected the spawn point is retired.
func (s *Sampler) Step() State {
	if s.state.Terminal() {
		return s.state
	}
	s.steps++

	i := s.rng.Intn(len(s.active))
	parent := s.active[i]
	centre := s.points[parent].Vec()

	placed := false
	for n := 0; n < s.cfg.SamplesBeforeRejection; n++ {
		radius := s.nextRadius()
		candidate := s.propose(centre, radius)

		v := s.validate(candidate, radius)
		if v == Reject {
			continue
		}

		s.place(candidate, parent, radius, v)
		placed = true
		break
	}

	if !placed {
		essentials.UnorderedDelete(&s.active, i)
	}

	s.updateState()
	return s.state
}

// propose returns a random point in the annulus [radius, 2*radius] around centre.
func (s *Sampler) propose(centre r2.Point, radius float64) r2.Point {
	angle := s.rng.Float64() * 2 * math.Pi
	dist := radius + s.rng.Float64()*radius
	return centre.Add(r2.Point{X: math.Sin(angle), Y: math.Cos(angle)}.Mul(dist))
}

// nextRadius returns the separation radius for the next candidate
func (s *Sampler) nextRadius() float64 {
	if !s.cfg.VariableRadius() {
		return s.cfg.Radius()
	}
	return s.cfg.MinRadius + s.rng.Float64()*(s.cfg.MaxRadius-s.cfg.MinRadius)
}

// nextValue returns the sample value for a newly accepted point
func (s *Sampler) nextValue() int {
	if s.cfg.MaxSampleValue <= s.cfg.MinSampleValue {
		return s.cfg.MinSampleValue
	}
	return s.cfg.MinSampleValue + s.rng.Intn(s.cfg.MaxSampleValue-s.cfg.MinSampleValue+1)
}

// place records a non-rejected candidate. Accepted points are indexed,
// become spawn points & are painted; inactive points are only recorded.
func (s *Sampler) place(c r2.Point, parent int, radius float64, v Verdict) {
	p := Point{
		X:        c.X,
		Y:        c.Y,
		Radius:   radius,
		Parent:   parent,
		Inactive: v == AcceptInactive,
	}
	if v == Accept {
		p.Value = s.nextValue()
	}

	s.points = append(s.points, p)
	if v != Accept {
		return
	}

	// grid holds 1-based indexes, 0 is an empty cell
	s.grid.Record(p.X, p.Y, len(s.points))
	s.active = append(s.active, len(s.points)-1)

	if s.canvas != nil {
		paint(s.canvas, p, s.cfg.Channel)
	}
}

// updateState moves the run into a terminal state if one applies.
func (s *Sampler) updateState() {
	if len(s.points) >= s.cfg.MaxPoints {
		s.state = BudgetReached
	} else if len(s.active) == 0 {
		s.state = Exhausted
	}
}

// logf writes a log line, if we have somewhere to write it
func (s *Sampler) logf(format string, args ...interface{}) {
	if s.logw == nil {
		return
	}
	fmt.Fprintf(s.logw, format+"\n", args...)
}
