package artifact

// Detection and removal calibration defaults. Values in signal units
// (µV-equivalent) where applicable.
const (
	DefaultAmplitudeThreshold = 100.0 // |sample| beyond this flags the index
	DefaultMuscleLowHz        = 30.0
	DefaultMuscleHighHz       = 100.0
	DefaultMuscleRMSSeconds   = 1.0 // moving-RMS window length
	DefaultMuscleRMSFactor    = 3.0 // threshold = factor × std of RMS trace
	DefaultMuscleMaxChannels  = 4
	DefaultFlatlineStd        = 0.1 // channel std below this is dead
	DefaultMinTaperRun        = 10  // runs this short are left untouched
	DefaultTaperFloor         = 0.3 // center attenuation target
	DefaultTaperAlpha         = 0.3 // Tukey taper fraction
)

// Config holds detection and removal calibration.
type Config struct {
	AmplitudeThreshold float64
	MuscleLowHz        float64
	MuscleHighHz       float64
	MuscleRMSSeconds   float64
	MuscleRMSFactor    float64
	MuscleMaxChannels  int
	FlatlineStd        float64
	MinTaperRun        int
	TaperFloor         float64
	TaperAlpha         float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultArtifactConfig returns the calibration defaults.
func DefaultArtifactConfig() Config {
	return Config{
		AmplitudeThreshold: DefaultAmplitudeThreshold,
		MuscleLowHz:        DefaultMuscleLowHz,
		MuscleHighHz:       DefaultMuscleHighHz,
		MuscleRMSSeconds:   DefaultMuscleRMSSeconds,
		MuscleRMSFactor:    DefaultMuscleRMSFactor,
		MuscleMaxChannels:  DefaultMuscleMaxChannels,
		FlatlineStd:        DefaultFlatlineStd,
		MinTaperRun:        DefaultMinTaperRun,
		TaperFloor:         DefaultTaperFloor,
		TaperAlpha:         DefaultTaperAlpha,
	}
}

// WithAmplitudeThreshold sets the absolute amplitude artifact threshold.
func WithAmplitudeThreshold(v float64) Option {
	return func(cfg *Config) {
		if v > 0 {
			cfg.AmplitudeThreshold = v
		}
	}
}

// WithMuscleBand sets the muscle-activity detection band in Hz.
func WithMuscleBand(lowHz, highHz float64) Option {
	return func(cfg *Config) {
		if lowHz > 0 && highHz > lowHz {
			cfg.MuscleLowHz = lowHz
			cfg.MuscleHighHz = highHz
		}
	}
}

// WithMuscleRMSFactor sets the multiple of the RMS-trace standard deviation
// beyond which a sample counts as muscle activity.
func WithMuscleRMSFactor(v float64) Option {
	return func(cfg *Config) {
		if v > 0 {
			cfg.MuscleRMSFactor = v
		}
	}
}

// WithFlatlineStd sets the standard deviation below which a channel is
// considered dead.
func WithFlatlineStd(v float64) Option {
	return func(cfg *Config) {
		if v > 0 {
			cfg.FlatlineStd = v
		}
	}
}

// WithTaperFloor sets the attenuation floor applied at the center of long
// artifact runs (0 < floor <= 1).
func WithTaperFloor(v float64) Option {
	return func(cfg *Config) {
		if v > 0 && v <= 1 {
			cfg.TaperFloor = v
		}
	}
}

// WithMinTaperRun sets the run length above which tapered attenuation is
// applied.
func WithMinTaperRun(v int) Option {
	return func(cfg *Config) {
		if v > 0 {
			cfg.MinTaperRun = v
		}
	}
}

// ApplyArtifactOptions applies zero or more options to the default config.
func ApplyArtifactOptions(opts ...Option) Config {
	cfg := DefaultArtifactConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
