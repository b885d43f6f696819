package artifact

import (
	"fmt"

	"github.com/cwbudde/algo-eeg/eeg/core"
	"github.com/cwbudde/algo-eeg/eeg/signal"
	"github.com/cwbudde/algo-eeg/eeg/window"
)

// Remove attenuates long artifact runs and drops dead channels. Sample count
// is never altered; the channel dimension shrinks by the number of dead
// channels, with surviving channels keeping their relative order. The input
// is not modified.
func Remove(sig signal.Signal, rep Report, opts ...Option) (signal.Signal, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}

	if len(rep.Combined) != sig.Samples() {
		return nil, fmt.Errorf("%w: report covers %d samples, signal has %d",
			core.ErrConfiguration, len(rep.Combined), sig.Samples())
	}

	if len(rep.DeadChannels) != 0 && len(rep.DeadChannels) != sig.Channels() {
		return nil, fmt.Errorf("%w: report covers %d channels, signal has %d",
			core.ErrConfiguration, len(rep.DeadChannels), sig.Channels())
	}

	acfg := ApplyArtifactOptions(opts...)
	out := sig.Clone()

	for _, run := range runs(rep.Combined) {
		if run.Len() <= acfg.MinTaperRun {
			// Too short to risk distorting with a taper.
			continue
		}

		attenuateRun(out, run, acfg)
	}

	return dropDead(out, rep.DeadChannels), nil
}

// attenuateRun scales every channel over the run by floor + (1-floor)·w,
// where w is a Tukey window of the run length: full amplitude at the run
// edges, floor at its center.
func attenuateRun(sig signal.Signal, run Run, acfg Config) {
	taper, err := window.Tukey(run.Len(), acfg.TaperAlpha)
	if err != nil {
		return
	}

	// The Tukey window rises from 0; invert it so the run edges stay at
	// gain 1 and the flat middle drops to the floor.
	for i := range taper {
		taper[i] = acfg.TaperFloor + (1-acfg.TaperFloor)*(1-taper[i])
	}

	for ch := range sig {
		row := sig[ch][run.Start:run.End]
		for i := range row {
			row[i] *= taper[i]
		}
	}
}

// dropDead removes the rows flagged dead, preserving order of the rest.
func dropDead(sig signal.Signal, dead []bool) signal.Signal {
	if len(dead) == 0 {
		return sig
	}

	out := make(signal.Signal, 0, len(sig))
	for ch := range sig {
		if !dead[ch] {
			out = append(out, sig[ch])
		}
	}

	return out
}
