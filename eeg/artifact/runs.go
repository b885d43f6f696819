package artifact

// Run is a maximal contiguous range of flagged sample indices,
// [Start, End) half-open.
type Run struct {
	Start, End int
}

// Len returns the run length in samples.
func (r Run) Len() int {
	return r.End - r.Start
}

// runs groups the true indices of mask into maximal contiguous runs with a
// single linear scan.
func runs(mask []bool) []Run {
	var (
		out  []Run
		open bool
		cur  Run
	)

	for i, flagged := range mask {
		switch {
		case flagged && !open:
			cur = Run{Start: i}
			open = true
		case !flagged && open:
			cur.End = i
			out = append(out, cur)
			open = false
		}
	}

	if open {
		cur.End = len(mask)
		out = append(out, cur)
	}

	return out
}
