package filter

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-eeg/eeg/core"
	"github.com/cwbudde/algo-eeg/eeg/signal"
	"github.com/cwbudde/algo-eeg/stats"
)

func testConfig() core.Config {
	return core.ApplyOptions(core.WithSampleRate(250))
}

func TestCascadeShape(t *testing.T) {
	cfg := testConfig()
	sig := signal.Synthetic(3, 1000, cfg.SampleRate)

	out, err := Cascade(sig, cfg)
	if err != nil {
		t.Fatalf("Cascade: %v", err)
	}

	if out.Channels() != sig.Channels() || out.Samples() != sig.Samples() {
		t.Fatalf("shape changed: got %dx%d, want %dx%d",
			out.Channels(), out.Samples(), sig.Channels(), sig.Samples())
	}
}

func TestCascadeDoesNotModifyInput(t *testing.T) {
	cfg := testConfig()
	sig := signal.Synthetic(2, 500, cfg.SampleRate)
	orig := sig.Clone()

	if _, err := Cascade(sig, cfg); err != nil {
		t.Fatalf("Cascade: %v", err)
	}

	for ch := range sig {
		for i := range sig[ch] {
			if sig[ch][i] != orig[ch][i] {
				t.Fatal("Cascade modified its input")
			}
		}
	}
}

func TestCascadeRemovesDCOffset(t *testing.T) {
	cfg := testConfig()

	sig := signal.Signal{
		signal.Sine(10, 5, cfg.SampleRate, 1000),
		signal.Sine(10, 5, cfg.SampleRate, 1000),
	}
	for ch := range sig {
		for i := range sig[ch] {
			sig[ch][i] += 42
		}
	}

	out, err := Cascade(sig, cfg)
	if err != nil {
		t.Fatalf("Cascade: %v", err)
	}

	for ch := range out {
		if mean := stats.Mean(out[ch]); math.Abs(mean) > 0.1 {
			t.Errorf("channel %d: residual mean %g after cascade", ch, mean)
		}
	}
}

func TestCascadePassbandSine(t *testing.T) {
	cfg := testConfig()

	// A 10 Hz tone sits well inside the 1..45 Hz band and far from the
	// 50 Hz notch; its RMS should survive mostly intact.
	sig := signal.Signal{signal.Sine(10, 1, cfg.SampleRate, 2500)}

	out, err := Cascade(sig, cfg)
	if err != nil {
		t.Fatalf("Cascade: %v", err)
	}

	interior := out[0][250 : len(out[0])-250]
	rms := stats.RMS(interior)

	want := 1 / math.Sqrt2
	if math.Abs(rms-want) > 0.05*want {
		t.Errorf("passband RMS: got %g, want about %g", rms, want)
	}
}

func TestCascadeRejectsPowerline(t *testing.T) {
	cfg := testConfig()

	sig := signal.Signal{signal.Sine(cfg.PowerlineFreq, 1, cfg.SampleRate, 2500)}

	out, err := Cascade(sig, cfg)
	if err != nil {
		t.Fatalf("Cascade: %v", err)
	}

	interior := out[0][250 : len(out[0])-250]
	if rms := stats.RMS(interior); rms > 0.1 {
		t.Errorf("powerline RMS after notch: got %g, want near 0", rms)
	}
}

func TestCascadeSampleRateTooLow(t *testing.T) {
	cfg := core.ApplyOptions(core.WithSampleRate(80))

	_, err := Cascade(signal.Synthetic(1, 400, cfg.SampleRate), cfg)
	if !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("got %v, want ErrConfiguration", err)
	}
}

func TestCascadeNotchAtNyquist(t *testing.T) {
	// At 100 Hz with 50 Hz mains the notch frequency sits exactly on
	// Nyquist and no valid notch exists. The cascade must refuse the
	// configuration instead of degenerating into a zero-gain filter.
	cfg := core.ApplyOptions(core.WithSampleRate(100))

	sig := signal.Signal{signal.Sine(10, 1, cfg.SampleRate, 1000)}

	out, err := Cascade(sig, cfg)
	if !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("got %v, want ErrConfiguration", err)
	}

	if out != nil {
		t.Fatalf("got a signal alongside the error")
	}
}

func TestCascadeBandCornerAtNyquist(t *testing.T) {
	// 90 Hz puts the 45 Hz band-pass corner exactly on Nyquist.
	cfg := core.ApplyOptions(core.WithSampleRate(90))

	_, err := Cascade(signal.Synthetic(1, 400, cfg.SampleRate), cfg)
	if !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("got %v, want ErrConfiguration", err)
	}
}

func TestCascadeNotchAboveNyquist(t *testing.T) {
	cfg := core.ApplyOptions(core.WithSampleRate(95), core.WithPowerlineFrequency(60))

	_, err := Cascade(signal.Synthetic(1, 400, cfg.SampleRate), cfg)
	if !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("got %v, want ErrConfiguration", err)
	}
}

func TestCascadeEmptySignal(t *testing.T) {
	cfg := testConfig()

	if _, err := Cascade(signal.Signal{}, cfg); !errors.Is(err, core.ErrDegenerateSignal) {
		t.Fatalf("got %v, want ErrDegenerateSignal", err)
	}
}

func TestRemoveDC(t *testing.T) {
	sig := signal.Signal{
		{3, 3, 3, 3},
		{1, 2, 3, 4},
	}

	out := RemoveDC(sig)

	for _, x := range out[0] {
		if x != 0 {
			t.Fatalf("constant channel: got %g, want 0", x)
		}
	}

	if mean := stats.Mean(out[1]); math.Abs(mean) > 1e-12 {
		t.Errorf("ramp channel mean: got %g, want 0", mean)
	}

	if sig[0][0] != 3 {
		t.Error("RemoveDC modified its input")
	}
}

func TestBandpassInvalidCorners(t *testing.T) {
	cfg := testConfig()
	sig := signal.Synthetic(1, 500, cfg.SampleRate)

	cases := []struct {
		name      string
		low, high float64
	}{
		{"zero low", 0, 45},
		{"inverted", 45, 30},
		{"high at nyquist", 30, 125},
	}

	for _, tc := range cases {
		if _, err := Bandpass(sig, tc.low, tc.high, 4, cfg); !errors.Is(err, core.ErrConfiguration) {
			t.Errorf("%s: got %v, want ErrConfiguration", tc.name, err)
		}
	}
}

func TestBandpassSelectsBand(t *testing.T) {
	cfg := testConfig()

	in := signal.Signal{signal.Sine(40, 1, cfg.SampleRate, 2500)}
	low := signal.Sine(5, 1, cfg.SampleRate, 2500)
	for i := range in[0] {
		in[0][i] += low[i]
	}

	out, err := Bandpass(in, 30, 100, 4, cfg)
	if err != nil {
		t.Fatalf("Bandpass: %v", err)
	}

	interior := out[0][250 : len(out[0])-250]
	rms := stats.RMS(interior)

	// The 40 Hz tone passes, the 5 Hz tone is rejected.
	want := 1 / math.Sqrt2
	if math.Abs(rms-want) > 0.1*want {
		t.Errorf("in-band RMS: got %g, want about %g", rms, want)
	}
}
