// Command eegclean runs the EEG cleaning and feature pipeline over an
// EDF/EDF+ recording.
//
// Usage:
//
//	eegclean -in recording.edf [flags]
//
// Examples:
//
//	eegclean -in night.edf -features features.csv
//	eegclean -in night.edf -out cleaned.edf -powerline 60
//	eegclean -selftest
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-eeg/eeg/core"
	"github.com/cwbudde/algo-eeg/eeg/edfio"
	"github.com/cwbudde/algo-eeg/eeg/pipeline"
	"github.com/cwbudde/algo-eeg/eeg/signal"
)

func main() {
	var (
		inPath    = flag.String("in", "", "input EDF/EDF+ recording")
		outPath   = flag.String("out", "", "optional output EDF for the cleaned signal")
		csvPath   = flag.String("features", "", "optional output CSV for the feature matrix")
		powerline = flag.Float64("powerline", 50, "powerline frequency in Hz (50 or 60)")
		selftest  = flag.Bool("selftest", false, "run the pipeline on a synthetic recording instead of a file")
	)

	flag.Parse()

	if err := run(*inPath, *outPath, *csvPath, *powerline, *selftest); err != nil {
		fmt.Fprintln(os.Stderr, "eegclean:", err)
		os.Exit(1)
	}
}

func run(inPath, outPath, csvPath string, powerline float64, selftest bool) error {
	var (
		sig    signal.Signal
		labels []string
		cfg    core.Config
	)

	switch {
	case selftest:
		cfg = core.ApplyOptions(core.WithPowerlineFrequency(powerline))
		sig = signal.Synthetic(4, int(10*cfg.SampleRate), cfg.SampleRate)
	case inPath != "":
		f, err := os.Open(inPath)
		if err != nil {
			return err
		}
		defer f.Close()

		rec, err := edfio.Load(f)
		if err != nil {
			return err
		}

		sig, labels, cfg = rec.Signal, rec.Labels, rec.Config
		if powerline == 60 {
			cfg.PowerlineFreq = 60
		}
	default:
		return fmt.Errorf("either -in or -selftest is required")
	}

	res, err := pipeline.Process(sig, cfg)
	if err != nil {
		return err
	}

	printSummary(os.Stdout, sig, cfg, res, labels)

	if csvPath != "" {
		f, err := os.Create(csvPath)
		if err != nil {
			return err
		}

		if err := res.FeatureCSV(f); err != nil {
			f.Close()
			return err
		}

		if err := f.Close(); err != nil {
			return err
		}
	}

	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}

		if err := edfio.Save(f, res.Cleaned, cfg, survivingLabels(labels, res)); err != nil {
			f.Close()
			return err
		}

		if err := f.Close(); err != nil {
			return err
		}
	}

	return nil
}

func printSummary(w *os.File, sig signal.Signal, cfg core.Config, res pipeline.Result, labels []string) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "channels\t%d\n", sig.Channels())
	fmt.Fprintf(tw, "samples\t%d\n", sig.Samples())
	fmt.Fprintf(tw, "sample rate\t%g Hz\n", cfg.SampleRate)
	fmt.Fprintf(tw, "artifact samples\t%.2f %%\n", res.Report.Percent)
	fmt.Fprintf(tw, "dead channels\t%d\n", res.Info.DeadChannels)

	for ch, dead := range res.Report.DeadChannels {
		if dead {
			label := fmt.Sprintf("Ch%02d", ch)
			if ch < len(labels) && labels[ch] != "" {
				label = labels[ch]
			}

			fmt.Fprintf(tw, "\tdead: %s\n", label)
		}
	}

	if res.Info.Interpolated {
		fmt.Fprintf(tw, "interpolation\tapplied\n")
	} else if res.Info.InterpolateSkip != "" {
		fmt.Fprintf(tw, "interpolation\tskipped: %s\n", res.Info.InterpolateSkip)
	}

	fmt.Fprintf(tw, "feature windows\t%d\n", len(res.Features))
	fmt.Fprintf(tw, "feature columns\t%d\n", len(res.FeatureNames))

	tw.Flush()
}

// survivingLabels keeps the labels of channels that made it into the cleaned
// signal. With interpolation applied the original layout is restored, so all
// labels survive.
func survivingLabels(labels []string, res pipeline.Result) []string {
	if len(labels) == 0 {
		return nil
	}

	rep := res.Report
	if res.Info.Interpolated || rep.DeadCount() == 0 || len(rep.DeadChannels) != len(labels) {
		return labels
	}

	out := make([]string, 0, len(labels)-rep.DeadCount())
	for ch, dead := range rep.DeadChannels {
		if !dead {
			out = append(out, labels[ch])
		}
	}

	return out
}
