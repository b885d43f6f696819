package spectrum

// BandPower returns the sum of density bins whose frequency falls inside
// [lowHz, highHz], both ends inclusive.
func BandPower(p PSD, lowHz, highHz float64) float64 {
	var sum float64

	for i, f := range p.Freqs {
		if f >= lowHz && f <= highHz {
			sum += p.Power[i]
		}
	}

	return sum
}

// SpectralEdge returns the lowest bin frequency at which the cumulative PSD
// first reaches fraction (0..1) of total power. Returns 0 for a zero-power
// spectrum.
func SpectralEdge(p PSD, fraction float64) float64 {
	total := p.TotalPower()
	if total <= 0 {
		return 0
	}

	threshold := fraction * total

	var cum float64
	for i, v := range p.Power {
		cum += v
		if cum >= threshold {
			return p.Freqs[i]
		}
	}

	return p.Freqs[len(p.Freqs)-1]
}

// MeanFrequency returns the power-weighted mean frequency
// sum(f·PSD)/sum(PSD), or 0 when total power is 0.
func MeanFrequency(p PSD) float64 {
	total := p.TotalPower()
	if total <= 0 {
		return 0
	}

	var weighted float64
	for i, v := range p.Power {
		weighted += p.Freqs[i] * v
	}

	return weighted / total
}
