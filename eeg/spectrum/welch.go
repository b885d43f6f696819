package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-eeg/eeg/core"
	"github.com/cwbudde/algo-eeg/eeg/window"
	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// DefaultSegmentLength is the default Welch segment size in samples.
const DefaultSegmentLength = 256

// Config holds Welch estimation parameters. Within one pipeline run the same
// Config must be reused for every window and channel so PSD values stay
// comparable.
type Config struct {
	SampleRate    float64
	SegmentLength int // default min(256, signal length)
	Overlap       int // samples of overlap between segments, default SegmentLength/2
}

// PSD is a one-sided power spectral density estimate. Power[i] is the
// density at Freqs[i] in units of signal²/Hz; bins are spaced BinHz apart.
type PSD struct {
	Freqs []float64
	Power []float64
	BinHz float64
}

// TotalPower returns the sum of all density bins.
func (p PSD) TotalPower() float64 {
	var sum float64
	for _, v := range p.Power {
		sum += v
	}

	return sum
}

// Welch estimates the PSD of a real signal using Hann-windowed, mean-removed,
// 50%-overlapping segments whose periodograms are averaged. Segments are
// zero-padded to the next power of two for the FFT.
func Welch(sig []float64, cfg Config) (PSD, error) {
	if cfg.SampleRate <= 0 {
		return PSD{}, fmt.Errorf("%w: sample rate must be > 0: %g", core.ErrConfiguration, cfg.SampleRate)
	}

	if len(sig) < 2 {
		return PSD{}, fmt.Errorf("%w: welch needs at least 2 samples, got %d",
			core.ErrInsufficientData, len(sig))
	}

	segLen := cfg.SegmentLength
	if segLen <= 0 {
		segLen = DefaultSegmentLength
	}

	if segLen > len(sig) {
		segLen = len(sig)
	}

	overlap := cfg.Overlap
	if overlap <= 0 || overlap >= segLen {
		overlap = segLen / 2
	}

	step := segLen - overlap

	fftSize := nextPowerOf2(segLen)
	binCount := fftSize/2 + 1

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return PSD{}, fmt.Errorf("welch: fft plan: %w", err)
	}

	win := window.Generate(window.TypeHann, segLen, window.WithPeriodic())

	var winSumSq float64
	for _, w := range win {
		winSumSq += w * w
	}

	// Density normalization per segment: |X[k]|^2 / (fs * sum(w^2)).
	scale := 1 / (cfg.SampleRate * winSumSq)

	in := make([]complex128, fftSize)
	out := make([]complex128, fftSize)
	re := make([]float64, binCount)
	im := make([]float64, binCount)
	power := make([]float64, binCount)
	acc := make([]float64, binCount)

	segments := 0

	for start := 0; start+segLen <= len(sig); start += step {
		seg := sig[start : start+segLen]

		// Constant detrend: remove the segment mean before windowing.
		var mean float64
		for _, x := range seg {
			mean += x
		}
		mean /= float64(segLen)

		for i := range in {
			if i < segLen {
				in[i] = complex((seg[i]-mean)*win[i], 0)
			} else {
				in[i] = 0
			}
		}

		if err := plan.Forward(out, in); err != nil {
			return PSD{}, fmt.Errorf("welch: fft: %w", err)
		}

		for i := 0; i < binCount; i++ {
			re[i] = real(out[i])
			im[i] = imag(out[i])
		}

		vecmath.Power(power, re, im)

		for i := 0; i < binCount; i++ {
			p := power[i] * scale
			// One-sided spectrum: interior bins carry the energy of their
			// negative-frequency mirrors.
			if i != 0 && i != binCount-1 {
				p *= 2
			}

			acc[i] += p
		}

		segments++

		if step <= 0 {
			break
		}
	}

	if segments == 0 {
		return PSD{}, fmt.Errorf("%w: no full welch segment fits %d samples",
			core.ErrInsufficientData, len(sig))
	}

	binHz := cfg.SampleRate / float64(fftSize)
	freqs := make([]float64, binCount)

	for i := range acc {
		acc[i] /= float64(segments)
		freqs[i] = float64(i) * binHz
	}

	return PSD{Freqs: freqs, Power: acc, BinHz: binHz}, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
