// Package signal defines the multi-channel signal matrix passed between EEG
// processing stages, plus deterministic generators for synthetic recordings.
package signal
