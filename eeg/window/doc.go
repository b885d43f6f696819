// Package window generates the window functions used by the EEG pipeline:
// Hann segments for Welch periodograms and Tukey tapers for artifact
// attenuation.
package window
