// Package artifact detects and removes recording artifacts from referenced
// EEG signals.
//
// Detection produces a per-sample [Report] from three independent detectors:
// amplitude excursions (any channel beyond a fixed threshold), muscle
// activity (excess 30–100 Hz moving-RMS energy), and flatlined channels
// (near-zero full-signal deviation). Removal attenuates long contiguous
// artifact runs with a tapered window and drops flatlined channels.
//
// The thresholds are empirical calibration constants, not learned values;
// every one of them can be overridden through the functional options.
package artifact
