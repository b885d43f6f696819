package window

import "math"

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeTukey
)

// config holds generation options.
type config struct {
	alpha    float64 // Tukey taper fraction
	periodic bool
}

func defaultConfig() config {
	return config{alpha: 0.5}
}

// Option configures window generation.
type Option func(*config)

// WithAlpha sets the Tukey taper fraction (0..1). Ignored by other types.
func WithAlpha(v float64) Option {
	return func(cfg *config) { cfg.alpha = v }
}

// WithPeriodic generates a periodic (DFT-even) window instead of the default
// symmetric one. Periodic windows are the right choice for spectral
// averaging.
func WithPeriodic() Option {
	return func(cfg *config) { cfg.periodic = true }
}

// Generate returns window coefficients of the given length.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	if length == 1 {
		out[0] = 1
		return out
	}

	for i := range out {
		out[i] = evalWindow(t, samplePosition(i, length, cfg.periodic), cfg)
	}

	return out
}

// Hann returns Hann window coefficients.
func Hann(size int, opts ...Option) ([]float64, error) {
	if err := validateLength(size); err != nil {
		return nil, err
	}

	return Generate(TypeHann, size, opts...), nil
}

// Tukey returns Tukey window coefficients with taper fraction alpha.
func Tukey(size int, alpha float64, opts ...Option) ([]float64, error) {
	if err := validateTukey(size, alpha); err != nil {
		return nil, err
	}

	return Generate(TypeTukey, size, append(opts, WithAlpha(alpha))...), nil
}

// evalWindow evaluates the window at normalized position x in [0,1].
func evalWindow(t Type, x float64, cfg config) float64 {
	switch t {
	case TypeHann:
		return 0.5 * (1 - math.Cos(2*math.Pi*x))
	case TypeHamming:
		return 0.54 - 0.46*math.Cos(2*math.Pi*x)
	case TypeTukey:
		return tukeyAt(x, cfg.alpha)
	default:
		return 1
	}
}

// samplePosition maps sample n to [0,1]; periodic windows divide by size
// instead of size-1 so the implicit wrap-around sample completes the period.
func samplePosition(n, size int, periodic bool) float64 {
	if periodic {
		return float64(n) / float64(size)
	}

	return float64(n) / float64(size-1)
}

func tukeyAt(x, alpha float64) float64 {
	if alpha <= 0 {
		return 1
	}

	if alpha >= 1 {
		return 0.5 * (1 - math.Cos(2*math.Pi*x))
	}

	a := alpha / 2
	switch {
	case x < a:
		return 0.5 * (1 + math.Cos(math.Pi*(2*x/alpha-1)))
	case x <= 1-a:
		return 1
	default:
		return 0.5 * (1 + math.Cos(math.Pi*(2*x/alpha-2/alpha+1)))
	}
}
