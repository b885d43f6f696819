package filter

import (
	"fmt"

	"github.com/cwbudde/algo-eeg/eeg/core"
	"github.com/cwbudde/algo-eeg/eeg/filter/biquad"
	"github.com/cwbudde/algo-eeg/eeg/filter/design"
	"github.com/cwbudde/algo-eeg/eeg/signal"
	"github.com/cwbudde/algo-eeg/stats"
)

// Cascade defaults. The band corners bracket the clinically interesting EEG
// range; the notch quality factor keeps the powerline rejection narrow.
const (
	BandLowHz  = 1.0
	BandHighHz = 45.0
	BandOrder  = 4
	NotchQ     = 35.0
)

// Cascade applies DC removal, a zero-phase Butterworth band-pass
// (BandLowHz..BandHighHz, order BandOrder), and a zero-phase notch at the
// configured powerline frequency. The output has the same shape as the
// input; the input is not modified.
//
// Returns core.ErrConfiguration when the sample rate cannot carry the
// band-pass upper corner or the notch frequency.
func Cascade(sig signal.Signal, cfg core.Config) (signal.Signal, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Corners must lie strictly below Nyquist: at exactly Nyquist the
	// designers have no valid normalized frequency.
	if cfg.SampleRate <= 2*BandHighHz {
		return nil, fmt.Errorf("%w: sample rate %g Hz cannot represent band-pass corner %g Hz",
			core.ErrConfiguration, cfg.SampleRate, BandHighHz)
	}

	if cfg.SampleRate <= 2*cfg.PowerlineFreq {
		return nil, fmt.Errorf("%w: sample rate %g Hz cannot represent notch frequency %g Hz",
			core.ErrConfiguration, cfg.SampleRate, cfg.PowerlineFreq)
	}

	out := RemoveDC(sig)

	band := biquad.NewChain(design.ButterworthBandpass(BandLowHz, BandHighHz, BandOrder, cfg.SampleRate))
	notch := biquad.NewChain([]biquad.Coefficients{design.Notch(cfg.PowerlineFreq, NotchQ, cfg.SampleRate)})

	for ch := range out {
		out[ch] = biquad.FiltFilt(band, out[ch])
		out[ch] = biquad.FiltFilt(notch, out[ch])
	}

	return out, nil
}

// RemoveDC subtracts each channel's mean from that channel. The input is not
// modified.
func RemoveDC(sig signal.Signal) signal.Signal {
	out := make(signal.Signal, len(sig))

	for ch := range sig {
		mean := stats.Mean(sig[ch])

		row := make([]float64, len(sig[ch]))
		for i, x := range sig[ch] {
			row[i] = x - mean
		}

		out[ch] = row
	}

	return out
}

// Bandpass applies a zero-phase Butterworth band-pass of the given order to
// every channel. Corners must lie strictly inside (0, Nyquist). Used by the
// artifact detector for the muscle band.
func Bandpass(sig signal.Signal, lowHz, highHz float64, order int, cfg core.Config) (signal.Signal, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}

	nyquist := cfg.Nyquist()
	if lowHz <= 0 || highHz <= lowHz || highHz >= nyquist {
		return nil, fmt.Errorf("%w: band [%g, %g] Hz invalid for Nyquist %g Hz",
			core.ErrConfiguration, lowHz, highHz, nyquist)
	}

	chain := biquad.NewChain(design.ButterworthBandpass(lowHz, highHz, order, cfg.SampleRate))

	out := make(signal.Signal, len(sig))
	for ch := range sig {
		out[ch] = biquad.FiltFilt(chain, sig[ch])
	}

	return out, nil
}
