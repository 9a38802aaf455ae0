package sfntquad

// DefaultTolerance is the default maximum distance between a cubic and its
// quadratic approximation, in the units of the outline.
const DefaultTolerance = 1.0

// Option configures a conversion.
type Option func(*config)

type config struct {
	tolerance float64
	scale     float64
}

func newConfig(opts []Option) config {
	cfg := config{
		tolerance: DefaultTolerance,
		scale:     1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithTolerance sets the maximum distance between a cubic and its quadratic
// approximation. It is measured in the units of the converted outline, that
// is after scaling.
func WithTolerance(tol float64) Option {
	return func(c *config) {
		c.tolerance = tol
	}
}

// WithScale scales all coordinates by s. This is useful for converting an
// outline loaded at one ppem to another, or to font units.
func WithScale(s float64) Option {
	return func(c *config) {
		c.scale = s
	}
}
