package artifact

// Report is the per-signal artifact inventory produced by [Detect] and
// consumed unchanged by [Remove] and the caller.
type Report struct {
	Amplitude    []bool  // per-sample amplitude excursions (OR across channels)
	Muscle       []bool  // per-sample muscle-band activity (OR across examined channels)
	Combined     []bool  // Amplitude OR Muscle; dead channels excluded
	DeadChannels []bool  // per-channel flatline flags
	Percent      float64 // 100 × true(Combined) / samples
}

// DeadCount returns the number of dead channels.
func (r Report) DeadCount() int {
	var n int

	for _, dead := range r.DeadChannels {
		if dead {
			n++
		}
	}

	return n
}
