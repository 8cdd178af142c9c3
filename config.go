package poisson

import (
	_ "embed"
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

const (
	// DefaultRegionSize is used when neither the config nor a canvas
	// gives a region size.
	DefaultRegionSize = 512

	// maxGridCells caps the acceleration grid (cells over both axes).
	maxGridCells = 1 << 24
)

// Channel names a colour channel of a Canvas pixel.
type Channel string

const (
	Red   Channel = "red"
	Green Channel = "green"
	Blue  Channel = "blue"
	Alpha Channel = "alpha"
)

// valid returns if c is one of the known channels.
func (c Channel) valid() bool {
	switch c {
	case Red, Green, Blue, Alpha:
		return true
	}
	return false
}

// Config holds the settings of a single sampling run.
type Config struct {
	// RegionSize is the side length of the (square) sample region.
	// If 0 the canvas width is used, or DefaultRegionSize without a canvas.
	RegionSize float64 `yaml:"region_size"`

	// Seed for rng (chosen from the clock if nil)
	Seed *int64 `yaml:"seed"`

	// MaxPoints caps the number of points placed, including points that
	// land outside the region.
	MaxPoints int `yaml:"max_points"`

	// MinRadius & MaxRadius bound the separation radius. If they differ
	// a fresh radius is drawn for each candidate, otherwise every
	// candidate uses (MinRadius+MaxRadius)/2.
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`

	// Inclusive range of the value attached to each accepted point.
	MinSampleValue int `yaml:"min_sample_value"`
	MaxSampleValue int `yaml:"max_sample_value"`

	// SamplesBeforeRejection is how many candidates we try around a spawn
	// point in one step before giving up on it for good.
	SamplesBeforeRejection int `yaml:"samples_before_rejection"`

	// Channel the sample value is written into when painting a canvas.
	Channel Channel `yaml:"channel"`

	// ForbiddenZones are polygons (in region co-ords) that candidates are
	// never accepted inside. Optional.
	ForbiddenZones [][][2]float64 `yaml:"forbidden_zones"`
}

// DefaultConfig returns the embedded default configuration.
func DefaultConfig() *Config {
	cfg, err := ParseConfig(nil)
	if err != nil {
		// defaults are compiled in, this is a programming error
		panic(err)
	}
	return cfg
}

// ParseConfig reads YAML settings over the top of the defaults.
// Only fields present in data are overwritten.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, errors.Wrap(err, "parsing embedded defaults")
	}
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	return cfg, nil
}

// LoadConfig reads a YAML config file over the top of the defaults.
// An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return ParseConfig(nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	return ParseConfig(data)
}

// Radius returns the fixed radius used when MinRadius == MaxRadius.
func (c *Config) Radius() float64 {
	return (c.MinRadius + c.MaxRadius) / 2
}

// VariableRadius returns if a radius is drawn per candidate.
func (c *Config) VariableRadius() bool {
	return c.MinRadius < c.MaxRadius
}

// CellSize returns the acceleration grid cell size, chosen so that no two
// points can share a cell even at the smallest radius.
func (c *Config) CellSize() float64 {
	return c.MinRadius / math.Sqrt2
}

// SetSeed fixes the rng seed, zero included.
func (c *Config) SetSeed(seed int64) {
	c.Seed = &seed
}

// regionSize returns the configured region size, falling back to the
// canvas width (or the default) if we have to.
func (c *Config) regionSize(canvas Canvas) float64 {
	if c.RegionSize != 0 {
		return c.RegionSize
	}
	if canvas != nil {
		return float64(canvas.Bounds().Dx())
	}
	return DefaultRegionSize
}

// Validate checks the config is usable, optionally with the given canvas.
// Errors wrap ErrInvalidConfig or ErrDegenerateGeometry.
func (c *Config) Validate(canvas Canvas) error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"region_size", c.RegionSize},
		{"min_radius", c.MinRadius},
		{"max_radius", c.MaxRadius},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return errors.Wrapf(ErrInvalidConfig, "%s must be finite, got %v", f.name, f.v)
		}
	}

	size := c.regionSize(canvas)
	if size <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "region size must be positive, got %v", size)
	}
	if c.MaxPoints <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "max points must be positive, got %d", c.MaxPoints)
	}
	if c.SamplesBeforeRejection <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "samples before rejection must be positive, got %d", c.SamplesBeforeRejection)
	}
	if c.MinRadius > c.MaxRadius {
		return errors.Wrapf(ErrInvalidConfig, "min radius %v exceeds max radius %v", c.MinRadius, c.MaxRadius)
	}
	if c.MinRadius <= 0 {
		return errors.Wrapf(ErrDegenerateGeometry, "min radius must be positive, got %v", c.MinRadius)
	}
	if c.CellSize() <= 0 {
		return errors.Wrapf(ErrDegenerateGeometry, "cell size underflows for radius %v", c.MinRadius)
	}
	width := math.Ceil(size / c.CellSize())
	if math.IsInf(width, 0) || width*width > maxGridCells {
		return errors.Wrapf(ErrDegenerateGeometry, "region %v with min radius %v needs a %vx%v grid", size, c.MinRadius, width, width)
	}
	if c.MinSampleValue < math.MinInt32 || c.MaxSampleValue > math.MaxInt32 {
		return errors.Wrapf(ErrInvalidConfig, "sample values [%d, %d] must fit in 32 bits", c.MinSampleValue, c.MaxSampleValue)
	}
	if c.MinSampleValue > c.MaxSampleValue {
		return errors.Wrapf(ErrInvalidConfig, "min sample value %d exceeds max sample value %d", c.MinSampleValue, c.MaxSampleValue)
	}
	if c.Channel != "" && !c.Channel.valid() {
		return errors.Wrapf(ErrInvalidConfig, "unknown channel %q", c.Channel)
	}
	for i, zone := range c.ForbiddenZones {
		if len(zone) < 3 {
			return errors.Wrapf(ErrInvalidConfig, "forbidden zone %d needs at least 3 vertices, got %d", i, len(zone))
		}
	}
	return nil
}
