package artifact

import (
	"math"

	"github.com/cwbudde/algo-eeg/eeg/core"
	"github.com/cwbudde/algo-eeg/eeg/filter"
	"github.com/cwbudde/algo-eeg/eeg/signal"
	"github.com/cwbudde/algo-eeg/stats"
)

// Detect runs the amplitude, muscle, and flatline detectors over a
// referenced signal and returns the combined report. The input is not
// modified.
func Detect(sig signal.Signal, cfg core.Config, opts ...Option) (Report, error) {
	if err := sig.Validate(); err != nil {
		return Report{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}

	acfg := ApplyArtifactOptions(opts...)
	samples := sig.Samples()

	rep := Report{
		Amplitude:    detectAmplitude(sig, acfg.AmplitudeThreshold),
		Muscle:       detectMuscle(sig, cfg, acfg),
		DeadChannels: detectFlatline(sig, acfg.FlatlineStd),
	}

	rep.Combined = make([]bool, samples)

	var flagged int
	for i := range rep.Combined {
		if rep.Amplitude[i] || rep.Muscle[i] {
			rep.Combined[i] = true
			flagged++
		}
	}

	rep.Percent = 100 * float64(flagged) / float64(samples)

	return rep, nil
}

// detectAmplitude flags every sample index where any channel exceeds the
// absolute threshold.
func detectAmplitude(sig signal.Signal, threshold float64) []bool {
	mask := make([]bool, sig.Samples())

	for ch := range sig {
		for i, x := range sig[ch] {
			if math.Abs(x) > threshold {
				mask[i] = true
			}
		}
	}

	return mask
}

// detectMuscle band-passes the first few channels into the muscle band,
// takes a moving RMS, and flags samples whose RMS exceeds a multiple of the
// RMS trace's standard deviation. When the sampling rate cannot carry the
// muscle band the mask stays all-false.
func detectMuscle(sig signal.Signal, cfg core.Config, acfg Config) []bool {
	samples := sig.Samples()
	mask := make([]bool, samples)

	nyquist := cfg.Nyquist()
	if nyquist <= acfg.MuscleLowHz {
		return mask
	}

	highHz := acfg.MuscleHighHz
	if highHz >= nyquist {
		// Clamp just below Nyquist so low-rate recordings still get a
		// usable high-frequency band.
		highHz = 0.99 * nyquist
	}

	examined := len(sig)
	if examined > acfg.MuscleMaxChannels {
		examined = acfg.MuscleMaxChannels
	}

	banded, err := filter.Bandpass(sig[:examined], acfg.MuscleLowHz, highHz, filter.BandOrder, cfg)
	if err != nil {
		return mask
	}

	rmsWindow := int(acfg.MuscleRMSSeconds * cfg.SampleRate)

	for ch := range banded {
		trace := stats.MovingRMS(banded[ch], rmsWindow)
		threshold := acfg.MuscleRMSFactor * stats.StdDev(trace)

		if threshold <= 0 {
			continue
		}

		for i, v := range trace {
			if v > threshold {
				mask[i] = true
			}
		}
	}

	return mask
}

// detectFlatline flags channels whose full-signal standard deviation falls
// below the flatline threshold. A constant channel always qualifies.
func detectFlatline(sig signal.Signal, threshold float64) []bool {
	dead := make([]bool, len(sig))

	for ch := range sig {
		dead[ch] = stats.StdDev(sig[ch]) < threshold
	}

	return dead
}
