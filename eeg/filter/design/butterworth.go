package design

import (
	"math"

	"github.com/cwbudde/algo-eeg/eeg/filter/biquad"
)

// ButterworthLP designs a lowpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 {
		return nil
	}

	sections := make([]biquad.Coefficients, 0, (order+1)/2)

	n2 := order / 2
	for i := n2 - 1; i >= 0; i-- {
		q := butterworthQ(order, i)
		sections = append(sections, Lowpass(freq, q, sampleRate))
	}

	if order%2 != 0 {
		sections = append(sections, firstOrderLP(freq, sampleRate))
	}

	return sections
}

// ButterworthHP designs a highpass Butterworth cascade.
//
// For odd orders, the final section is first-order (B2=A2=0).
func ButterworthHP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 {
		return nil
	}

	sections := make([]biquad.Coefficients, 0, (order+1)/2)

	n2 := order / 2
	for i := n2 - 1; i >= 0; i-- {
		q := butterworthQ(order, i)
		sections = append(sections, Highpass(freq, q, sampleRate))
	}

	if order%2 != 0 {
		sections = append(sections, firstOrderHP(freq, sampleRate))
	}

	return sections
}

// ButterworthBandpass designs a band-pass cascade as a highpass at lowFreq
// followed by a lowpass at highFreq, each of the given order.
func ButterworthBandpass(lowFreq, highFreq float64, order int, sampleRate float64) []biquad.Coefficients {
	hp := ButterworthHP(lowFreq, order, sampleRate)
	lp := ButterworthLP(highFreq, order, sampleRate)

	if hp == nil || lp == nil {
		return nil
	}

	return append(hp, lp...)
}

// butterworthQ returns the quality factor for a Butterworth filter section.
// index ranges from 0 to (order/2 - 1) for the biquad sections.
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))

	s := math.Sin(theta)
	if s == 0 {
		return defaultQ
	}

	return 1 / (2 * s)
}

// firstOrderLP designs a first-order lowpass section for odd-order cascades.
func firstOrderLP(freq, sampleRate float64) biquad.Coefficients {
	if sampleRate <= 0 || freq <= 0 || freq >= sampleRate/2 {
		return biquad.Coefficients{}
	}

	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: k * norm,
		B1: k * norm,
		B2: 0,
		A1: (k - 1) * norm,
		A2: 0,
	}
}

// firstOrderHP designs a first-order highpass section for odd-order cascades.
func firstOrderHP(freq, sampleRate float64) biquad.Coefficients {
	if sampleRate <= 0 || freq <= 0 || freq >= sampleRate/2 {
		return biquad.Coefficients{}
	}

	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: norm,
		B1: -norm,
		B2: 0,
		A1: (k - 1) * norm,
		A2: 0,
	}
}
