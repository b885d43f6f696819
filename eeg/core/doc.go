// Package core provides shared configuration and error values for the EEG
// processing stages.
//
// Every stage receives a [Config] describing the recording (sampling rate,
// powerline frequency, channel count) and reports precondition violations
// through the sentinel errors defined here. Stages never mutate the
// configuration.
package core
