package pipeline

import (
	"github.com/cwbudde/algo-eeg/eeg/artifact"
	"github.com/cwbudde/algo-eeg/eeg/core"
	"github.com/cwbudde/algo-eeg/eeg/features"
	"github.com/cwbudde/algo-eeg/eeg/filter"
	"github.com/cwbudde/algo-eeg/eeg/interp"
	"github.com/cwbudde/algo-eeg/eeg/reference"
	"github.com/cwbudde/algo-eeg/eeg/signal"
)

// Result bundles the outputs of one pipeline run.
type Result struct {
	Cleaned      signal.Signal
	Report       artifact.Report
	Features     [][]float64
	FeatureNames []string
	Info         Info
}

// Info records the reconstruction decisions made during the run.
type Info struct {
	DeadChannels    int
	Interpolated    bool
	InterpolateSkip string // reason interpolation was skipped, empty if applied or unnecessary
}

// Process runs the full pipeline: filter cascade, common average reference,
// artifact detection, artifact removal, conditional dead-channel
// substitution, and feature extraction.
//
// The artifact report is surfaced exactly as the detector produced it. When
// half or more of the channels are dead the cleaned signal keeps only the
// surviving channels and Info.InterpolateSkip names the reason.
func Process(sig signal.Signal, cfg core.Config, opts ...artifact.Option) (Result, error) {
	if cfg.Channels == 0 {
		cfg.Channels = sig.Channels()
	}

	filtered, err := filter.Cascade(sig, cfg)
	if err != nil {
		return Result{}, err
	}

	referenced := reference.CommonAverage(filtered)

	report, err := artifact.Detect(referenced, cfg, opts...)
	if err != nil {
		return Result{}, err
	}

	cleaned, err := artifact.Remove(referenced, report, opts...)
	if err != nil {
		return Result{}, err
	}

	info := Info{DeadChannels: report.DeadCount()}

	switch {
	case info.DeadChannels == 0:
		// Nothing to reconstruct.
	case interp.ShouldInterpolate(report.DeadChannels):
		cleaned, err = interp.DeadChannels(cleaned, report.DeadChannels)
		if err != nil {
			return Result{}, err
		}

		info.Interpolated = true
	default:
		info.InterpolateSkip = "half or more channels dead; substitution would fabricate most of the signal"
	}

	matrix, names, err := features.Extract(cleaned, cfg)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Cleaned:      cleaned,
		Report:       report,
		Features:     matrix,
		FeatureNames: names,
		Info:         info,
	}, nil
}
