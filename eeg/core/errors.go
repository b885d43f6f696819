package core

import "errors"

var (
	// ErrConfiguration indicates invalid or incompatible sampling parameters,
	// e.g. a sample rate that cannot carry the requested filter corners.
	ErrConfiguration = errors.New("eeg: invalid configuration")

	// ErrInsufficientData indicates a signal too short for the requested
	// operation, e.g. fewer samples than one feature window.
	ErrInsufficientData = errors.New("eeg: insufficient data")

	// ErrDegenerateSignal indicates an empty or zero-channel signal where
	// data is required. Zero-power ratio fallbacks inside the feature
	// computations return 0 instead of this error.
	ErrDegenerateSignal = errors.New("eeg: degenerate signal")
)
