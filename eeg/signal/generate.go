package signal

import (
	"math"
	"math/rand"
)

// Sine generates a sine wave at freqHz sampled at sampleRate.
func Sine(freqHz, amplitude, sampleRate float64, samples int) []float64 {
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / sampleRate

	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// Noise generates uniform white noise in [-amplitude, amplitude] with a
// fixed seed for reproducibility.
func Noise(seed int64, amplitude float64, samples int) []float64 {
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(seed))

	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}

// DC generates a constant-valued channel.
func DC(value float64, samples int) []float64 {
	out := make([]float64, samples)
	for i := range out {
		out[i] = value
	}

	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(samples, pos int) []float64 {
	out := make([]float64, samples)
	if pos >= 0 && pos < samples {
		out[pos] = 1
	}

	return out
}

// Synthetic builds a deterministic multi-channel recording: per channel, a
// low-frequency sine plus seeded noise. Useful for CLI self-tests and
// examples.
func Synthetic(channels, samples int, sampleRate float64) Signal {
	s := make(Signal, channels)

	for ch := range s {
		freq := 6 + 2*float64(ch) // alpha/theta range, distinct per channel
		row := Sine(freq, 20, sampleRate, samples)
		noise := Noise(int64(ch)+1, 2, samples)

		for i := range row {
			row[i] += noise[i]
		}

		s[ch] = row
	}

	return s
}
