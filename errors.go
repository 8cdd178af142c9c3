package poisson

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidConfig implies the configuration can't describe a valid run,
	// it's reported before any sampling work begins.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDegenerateGeometry implies the radius (and so the grid cell size)
	// would be zero.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)
