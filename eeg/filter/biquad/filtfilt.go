package biquad

// FiltFilt applies the cascade forward and then backward over a copy of the
// input, cancelling the phase delay of each pass. The effective magnitude
// response is the squared single-pass response; sample-index alignment with
// event timing is preserved exactly.
//
// Section state is reset before each pass, so a Chain may be reused across
// independent channels.
func FiltFilt(c *Chain, signal []float64) []float64 {
	out := make([]float64, len(signal))
	copy(out, signal)

	c.Reset()
	c.ProcessBlock(out)

	reverse(out)

	c.Reset()
	c.ProcessBlock(out)

	reverse(out)
	c.Reset()

	return out
}

func reverse(buf []float64) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
