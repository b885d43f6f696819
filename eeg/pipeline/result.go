package pipeline

import (
	"encoding/csv"
	"io"
	"strconv"
)

// FeatureCSV writes the feature matrix as CSV with the feature names as the
// header row, one row per analysis window.
func (r Result) FeatureCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(r.FeatureNames); err != nil {
		return err
	}

	record := make([]string, len(r.FeatureNames))

	for _, row := range r.Features {
		for i, v := range row {
			record[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}

		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}
