// Package pipeline wires the EEG processing stages into one deterministic
// batch computation: filtering cascade, common average reference, artifact
// detection and removal, conditional dead-channel substitution, and feature
// extraction. Each invocation is a pure function of the input signal and
// configuration; no state survives between runs.
package pipeline
