// Package filter implements the EEG filtering cascade: per-channel DC
// removal, a zero-phase Butterworth band-pass, and a zero-phase powerline
// notch. All filters are applied forward-backward so the output stays
// sample-aligned with the input, which later artifact stages rely on.
package filter
