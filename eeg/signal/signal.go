package signal

import (
	"fmt"

	"github.com/cwbudde/algo-eeg/eeg/core"
)

// Signal holds a multi-channel recording with one row per channel. All rows
// share the same sample count and sampling rate. Stages treat a Signal as
// read-only input and return a fresh Signal.
type Signal [][]float64

// New allocates a zeroed signal with the given shape.
func New(channels, samples int) Signal {
	if channels <= 0 || samples < 0 {
		return nil
	}

	s := make(Signal, channels)
	for ch := range s {
		s[ch] = make([]float64, samples)
	}

	return s
}

// Channels returns the channel count.
func (s Signal) Channels() int {
	return len(s)
}

// Samples returns the per-channel sample count, 0 for an empty signal.
func (s Signal) Samples() int {
	if len(s) == 0 {
		return 0
	}

	return len(s[0])
}

// Clone returns a deep copy.
func (s Signal) Clone() Signal {
	if s == nil {
		return nil
	}

	out := make(Signal, len(s))
	for ch := range s {
		out[ch] = make([]float64, len(s[ch]))
		copy(out[ch], s[ch])
	}

	return out
}

// Validate checks the shape invariant: at least one channel, at least one
// sample, and equal sample counts across channels.
func (s Signal) Validate() error {
	if len(s) == 0 || len(s[0]) == 0 {
		return fmt.Errorf("%w: empty signal", core.ErrDegenerateSignal)
	}

	n := len(s[0])
	for ch := range s {
		if len(s[ch]) != n {
			return fmt.Errorf("%w: channel %d has %d samples, want %d",
				core.ErrConfiguration, ch, len(s[ch]), n)
		}
	}

	return nil
}
