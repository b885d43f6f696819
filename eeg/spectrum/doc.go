// Package spectrum estimates one-sided power spectral densities with a
// Welch-style averaged periodogram and derives the spectral summary measures
// used for EEG features: band power, spectral edge frequency, and
// power-weighted mean frequency.
package spectrum
