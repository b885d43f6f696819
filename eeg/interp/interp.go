// Package interp reconstructs dropped EEG channels by nearest-channel
// substitution.
//
// This is a last-resort placeholder, not a spatial or statistical
// interpolation: the replacement is a verbatim copy of the surviving channel
// whose original index is numerically closest, so the result is biased and
// approximate by construction.
package interp

import (
	"fmt"

	"github.com/cwbudde/algo-eeg/eeg/core"
	"github.com/cwbudde/algo-eeg/eeg/signal"
)

// ShouldInterpolate reports whether dead-channel substitution applies:
// at least one but fewer than half of the original channels are dead.
// With half or more dead, signal quality is too compromised to fabricate
// data for most channels.
func ShouldInterpolate(dead []bool) bool {
	var deadCount int
	for _, d := range dead {
		if d {
			deadCount++
		}
	}

	return deadCount > 0 && deadCount < (len(dead)+1)/2
}

// DeadChannels rebuilds a full-channel-count signal from the cleaned signal
// (dead rows already removed) and the per-original-channel dead mask. Each
// dead channel becomes a copy of the surviving channel with the nearest
// original index; distance ties pick the lower index.
func DeadChannels(cleaned signal.Signal, dead []bool) (signal.Signal, error) {
	if err := cleaned.Validate(); err != nil {
		return nil, err
	}

	var deadCount int
	for _, d := range dead {
		if d {
			deadCount++
		}
	}

	if cleaned.Channels()+deadCount != len(dead) {
		return nil, fmt.Errorf("%w: %d surviving channels + %d dead != %d original",
			core.ErrConfiguration, cleaned.Channels(), deadCount, len(dead))
	}

	// Map original channel index -> row in the cleaned signal.
	rowFor := make(map[int]int, cleaned.Channels())
	row := 0

	for orig, d := range dead {
		if !d {
			rowFor[orig] = row
			row++
		}
	}

	out := make(signal.Signal, len(dead))

	for orig, d := range dead {
		if !d {
			src := cleaned[rowFor[orig]]
			out[orig] = make([]float64, len(src))
			copy(out[orig], src)

			continue
		}

		nearest := nearestSurviving(orig, dead)
		if nearest < 0 {
			return nil, fmt.Errorf("%w: no surviving channel to substitute for %d",
				core.ErrDegenerateSignal, orig)
		}

		src := cleaned[rowFor[nearest]]
		out[orig] = make([]float64, len(src))
		copy(out[orig], src)
	}

	return out, nil
}

// nearestSurviving returns the surviving original index closest to ch,
// preferring the lower index on ties. Returns -1 when every channel is dead.
func nearestSurviving(ch int, dead []bool) int {
	best := -1
	bestDist := len(dead) + 1

	for orig, d := range dead {
		if d {
			continue
		}

		dist := orig - ch
		if dist < 0 {
			dist = -dist
		}

		if dist < bestDist {
			best = orig
			bestDist = dist
		}
	}

	return best
}
