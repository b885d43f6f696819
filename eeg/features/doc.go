// Package features turns a cleaned EEG signal into a fixed-size feature
// matrix: the signal is cut into overlapping analysis windows and every
// window yields 15 named scalar features per channel (time-domain moments,
// Hjorth descriptors, and Welch-PSD band measures) in a fixed recognized
// order.
package features
