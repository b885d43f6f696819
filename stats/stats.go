// Package stats provides scalar statistics over sample slices: central
// moments, RMS measures, and the Hjorth descriptors used for EEG feature
// extraction.
package stats

import "math"

// Moments returns the mean, population variance, skewness, and excess
// kurtosis of the signal using Welford's online algorithm for numerical
// stability on higher-order moments.
func Moments(signal []float64) (mean, variance, skewness, kurtosis float64) {
	n := len(signal)
	if n == 0 {
		return 0, 0, 0, 0
	}

	var m2, m3, m4 float64

	for i, x := range signal {
		ni := float64(i + 1)
		delta := x - mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(i)

		// M4 must be updated before M3, and M3 before M2.
		m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*(float64(i)-1) - 3*deltaN*m2
		m2 += term1
		mean += deltaN
	}

	nf := float64(n)

	variance = m2 / nf
	if variance > 0 {
		skewness = (m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (m4/nf)/(variance*variance) - 3
	}

	return mean, variance, skewness, kurtosis
}

// Mean returns the arithmetic mean using Kahan summation.
func Mean(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sum, c float64
	for _, x := range signal {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(signal))
}

// Variance returns the population variance.
func Variance(signal []float64) float64 {
	_, v, _, _ := Moments(signal)
	return v
}

// StdDev returns the population standard deviation.
func StdDev(signal []float64) float64 {
	return math.Sqrt(Variance(signal))
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}

// MovingRMS returns the centered moving RMS of the signal over the given
// window length. The window is truncated at the signal edges so the output
// has the same length as the input. A window length <= 1 returns |x| per
// sample.
func MovingRMS(signal []float64, window int) []float64 {
	n := len(signal)
	out := make([]float64, n)

	if n == 0 {
		return out
	}

	if window <= 1 {
		for i, x := range signal {
			out[i] = math.Abs(x)
		}

		return out
	}

	half := window / 2

	// Prefix sums of squares; prefix[i] = sum of signal[0:i]^2.
	prefix := make([]float64, n+1)
	for i, x := range signal {
		prefix[i+1] = prefix[i] + x*x
	}

	for i := range out {
		lo := i - half
		if lo < 0 {
			lo = 0
		}

		hi := i + half + 1
		if hi > n {
			hi = n
		}

		out[i] = math.Sqrt((prefix[hi] - prefix[lo]) / float64(hi-lo))
	}

	return out
}

// Diff returns the first discrete difference of the signal. The result has
// one fewer sample than the input; an input shorter than 2 samples yields an
// empty slice.
func Diff(signal []float64) []float64 {
	if len(signal) < 2 {
		return nil
	}

	out := make([]float64, len(signal)-1)
	for i := range out {
		out[i] = signal[i+1] - signal[i]
	}

	return out
}

// Hjorth returns the Hjorth descriptors of a 1-D window.
//
//	activity   = var(x)
//	mobility   = sqrt(var(x') / activity), 0 when activity is 0
//	complexity = sqrt(var(x'') / var(x')) / mobility,
//	             0 when mobility or var(x') is 0
//
// where x' is the first discrete difference of x.
func Hjorth(signal []float64) (activity, mobility, complexity float64) {
	activity = Variance(signal)

	d1 := Diff(signal)
	varD1 := Variance(d1)

	if activity > 0 {
		mobility = math.Sqrt(varD1 / activity)
	}

	if mobility > 0 && varD1 > 0 {
		varD2 := Variance(Diff(d1))
		complexity = math.Sqrt(varD2/varD1) / mobility
	}

	return activity, mobility, complexity
}
