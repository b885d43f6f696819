// Package design provides the IIR coefficient designers used by the EEG
// filter cascade: RBJ-style biquads (lowpass, highpass, notch) and
// Butterworth cascades built from them. The coefficients are consumable by
// eeg/filter/biquad for runtime processing.
package design
