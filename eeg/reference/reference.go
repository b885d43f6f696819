// Package reference implements common average referencing (CAR): at each
// sample index the across-channel mean is subtracted from every channel.
package reference

import "github.com/cwbudde/algo-eeg/eeg/signal"

// CommonAverage re-references the signal to the cross-channel mean. Pure and
// stateless; the input is not modified. A single-channel signal is returned
// as an all-zero copy, since the channel is its own average.
func CommonAverage(sig signal.Signal) signal.Signal {
	out := make(signal.Signal, len(sig))
	for ch := range sig {
		out[ch] = make([]float64, len(sig[ch]))
	}

	channels := float64(len(sig))

	for i := 0; i < sig.Samples(); i++ {
		var sum float64
		for ch := range sig {
			sum += sig[ch][i]
		}

		mean := sum / channels
		for ch := range sig {
			out[ch][i] = sig[ch][i] - mean
		}
	}

	return out
}
