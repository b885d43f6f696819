package features

import (
	"fmt"

	"github.com/cwbudde/algo-eeg/eeg/core"
	"github.com/cwbudde/algo-eeg/eeg/signal"
	"github.com/cwbudde/algo-eeg/eeg/spectrum"
	"github.com/cwbudde/algo-eeg/stats"
)

// Analysis windowing: 2-second windows advancing by 1 second (50% overlap).
const (
	WindowSeconds  = 2.0
	OverlapSeconds = 1.0

	// PerChannel is the number of features computed per channel per window.
	PerChannel = 15

	edgeFraction = 0.95
)

// EEG frequency bands in Hz, inclusive bin membership.
var bands = []struct {
	name      string
	low, high float64
}{
	{"delta", 1, 4},
	{"theta", 4, 8},
	{"alpha", 8, 13},
	{"beta", 13, 30},
	{"gamma", 30, 45},
}

// baseNames lists the per-channel feature names in their fixed order.
var baseNames = []string{
	"mean", "variance", "skewness", "kurtosis",
	"hjorth_activity", "hjorth_mobility", "hjorth_complexity",
	"total_power",
	"delta_power", "theta_power", "alpha_power", "beta_power", "gamma_power",
	"spectral_edge", "mean_frequency",
}

// Extract windows the cleaned signal and computes the feature matrix
// [window][channel × PerChannel] together with the stable column names.
// Welch parameters are fixed across all windows and channels of the run.
//
// Returns core.ErrInsufficientData when the signal is shorter than one
// analysis window.
func Extract(sig signal.Signal, cfg core.Config) ([][]float64, []string, error) {
	if err := sig.Validate(); err != nil {
		return nil, nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	windowLen := int(WindowSeconds * cfg.SampleRate)
	step := windowLen - int(OverlapSeconds*cfg.SampleRate)

	if windowLen < 2 || step <= 0 {
		return nil, nil, fmt.Errorf("%w: window of %d samples with step %d",
			core.ErrConfiguration, windowLen, step)
	}

	samples := sig.Samples()
	if samples < windowLen {
		return nil, nil, fmt.Errorf("%w: %d samples, need at least %d for one window",
			core.ErrInsufficientData, samples, windowLen)
	}

	windows := (samples-windowLen)/step + 1
	names := Names(sig.Channels())

	welchCfg := spectrum.Config{
		SampleRate:    cfg.SampleRate,
		SegmentLength: minInt(spectrum.DefaultSegmentLength, windowLen),
	}

	matrix := make([][]float64, windows)

	for w := 0; w < windows; w++ {
		start := w * step
		row := make([]float64, 0, sig.Channels()*PerChannel)

		for ch := range sig {
			vec, err := channelFeatures(sig[ch][start:start+windowLen], welchCfg)
			if err != nil {
				return nil, nil, err
			}

			row = append(row, vec...)
		}

		matrix[w] = row
	}

	return matrix, names, nil
}

// Names returns the stable feature column names for the given channel count:
// "Ch{index:02d}_{base}" per channel × base name, matching Extract's column
// order.
func Names(channels int) []string {
	names := make([]string, 0, channels*PerChannel)

	for ch := 0; ch < channels; ch++ {
		for _, base := range baseNames {
			names = append(names, fmt.Sprintf("Ch%02d_%s", ch, base))
		}
	}

	return names
}

// channelFeatures computes the 15 features of one channel window in their
// fixed order.
func channelFeatures(win []float64, welchCfg spectrum.Config) ([]float64, error) {
	vec := make([]float64, 0, PerChannel)

	mean, variance, skewness, kurtosis := stats.Moments(win)
	vec = append(vec, mean, variance, skewness, kurtosis)

	activity, mobility, complexity := stats.Hjorth(win)
	vec = append(vec, activity, mobility, complexity)

	psd, err := spectrum.Welch(win, welchCfg)
	if err != nil {
		return nil, err
	}

	vec = append(vec, psd.TotalPower())

	for _, b := range bands {
		vec = append(vec, spectrum.BandPower(psd, b.low, b.high))
	}

	vec = append(vec,
		spectrum.SpectralEdge(psd, edgeFraction),
		spectrum.MeanFrequency(psd))

	return vec, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
