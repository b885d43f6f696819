// Package biquad implements second-order IIR filter sections and cascades in
// Direct Form II Transposed, plus zero-phase (forward-backward) application
// for offline EEG processing where group delay would misalign artifact
// timing.
package biquad
