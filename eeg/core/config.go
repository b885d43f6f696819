package core

import "fmt"

// Config defines the recording parameters shared by all processing stages.
type Config struct {
	SampleRate    float64 // Hz, must be > 0
	PowerlineFreq float64 // mains interference frequency, 50 or 60 Hz
	Channels      int     // channel count, derived from the signal if 0
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns defaults for a typical clinical EEG recording.
func DefaultConfig() Config {
	return Config{
		SampleRate:    250,
		PowerlineFreq: 50,
	}
}

// WithSampleRate sets the recording sample rate.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithPowerlineFrequency sets the mains frequency (50 or 60 Hz).
func WithPowerlineFrequency(freq float64) Option {
	return func(cfg *Config) {
		if freq == 50 || freq == 60 {
			cfg.PowerlineFreq = freq
		}
	}
}

// WithChannels sets the expected channel count.
func WithChannels(channels int) Option {
	return func(cfg *Config) {
		if channels > 0 {
			cfg.Channels = channels
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Validate reports whether the configuration describes a usable recording.
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be > 0: %g", ErrConfiguration, c.SampleRate)
	}

	if c.PowerlineFreq != 50 && c.PowerlineFreq != 60 {
		return fmt.Errorf("%w: powerline frequency must be 50 or 60 Hz: %g", ErrConfiguration, c.PowerlineFreq)
	}

	if c.Channels < 0 {
		return fmt.Errorf("%w: channel count must be >= 0: %d", ErrConfiguration, c.Channels)
	}

	return nil
}

// Nyquist returns half the sample rate.
func (c Config) Nyquist() float64 {
	return c.SampleRate / 2
}
