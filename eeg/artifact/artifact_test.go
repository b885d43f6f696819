package artifact

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-eeg/eeg/core"
	"github.com/cwbudde/algo-eeg/eeg/signal"
)

func testConfig() core.Config {
	return core.ApplyOptions(core.WithSampleRate(250))
}

func TestRuns(t *testing.T) {
	mask := []bool{false, true, true, false, false, true, false, true, true, true}

	got := runs(mask)
	want := []Run{{1, 3}, {5, 6}, {7, 10}}

	if len(got) != len(want) {
		t.Fatalf("got %d runs, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("run %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestRunsEmptyAndFull(t *testing.T) {
	if got := runs([]bool{false, false}); got != nil {
		t.Errorf("no flags: got %v, want nil", got)
	}

	got := runs([]bool{true, true, true})
	if len(got) != 1 || got[0] != (Run{0, 3}) {
		t.Errorf("full mask: got %v, want [{0 3}]", got)
	}
}

func TestRunLen(t *testing.T) {
	if got := (Run{Start: 3, End: 10}).Len(); got != 7 {
		t.Errorf("got %d, want 7", got)
	}
}

func TestDetectAmplitude(t *testing.T) {
	cfg := testConfig()

	// Alpha-band base activity keeps the channels alive, one spike per
	// channel at distinct indices.
	sig := signal.Signal{
		signal.Sine(10, 20, cfg.SampleRate, 500),
		signal.Sine(12, 20, cfg.SampleRate, 500),
	}
	sig[0][100] = 150
	sig[1][300] = -200

	rep, err := Detect(sig, cfg)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}

	if !rep.Amplitude[100] || !rep.Amplitude[300] {
		t.Error("spikes not flagged")
	}

	if rep.Amplitude[200] {
		t.Error("clean sample flagged")
	}

	if !rep.Combined[100] || !rep.Combined[300] {
		t.Error("spikes missing from combined mask")
	}
}

func TestDetectAmplitudeThresholdOption(t *testing.T) {
	cfg := testConfig()

	sig := signal.Signal{signal.Sine(10, 20, cfg.SampleRate, 500)}
	sig[0][50] = 60

	rep, err := Detect(sig, cfg)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}

	if rep.Amplitude[50] {
		t.Error("60 flagged at default threshold 100")
	}

	rep, err = Detect(sig, cfg, WithAmplitudeThreshold(40))
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}

	if !rep.Amplitude[50] {
		t.Error("60 not flagged at threshold 40")
	}
}

func TestDetectFlatline(t *testing.T) {
	cfg := testConfig()

	sig := signal.Signal{
		signal.Sine(10, 20, cfg.SampleRate, 500),
		signal.DC(3, 500),
	}

	rep, err := Detect(sig, cfg)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}

	if rep.DeadChannels[0] {
		t.Error("live channel flagged dead")
	}

	if !rep.DeadChannels[1] {
		t.Error("constant channel not flagged dead")
	}

	if rep.DeadCount() != 1 {
		t.Errorf("DeadCount: got %d, want 1", rep.DeadCount())
	}
}

func TestDetectMuscleBurst(t *testing.T) {
	cfg := testConfig()

	// Quiet alpha background over 20 s with a strong 40 Hz burst of 1 s.
	// The recording must dwarf the burst so the RMS-trace standard
	// deviation stays well below the burst RMS.
	sig := signal.Signal{signal.Sine(10, 10, cfg.SampleRate, 5000)}

	burst := signal.Sine(40, 80, cfg.SampleRate, 250)
	for i, x := range burst {
		sig[0][2000+i] += x
	}

	rep, err := Detect(sig, cfg)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}

	flaggedInBurst := 0
	for i := 2000; i < 2250; i++ {
		if rep.Muscle[i] {
			flaggedInBurst++
		}
	}

	if flaggedInBurst == 0 {
		t.Error("muscle burst not detected")
	}

	flaggedEarly := 0
	for i := 0; i < 500; i++ {
		if rep.Muscle[i] {
			flaggedEarly++
		}
	}

	if flaggedEarly > 50 {
		t.Errorf("quiet region heavily flagged: %d of 500 samples", flaggedEarly)
	}
}

func TestDetectMuscleLowSampleRate(t *testing.T) {
	// At 50 Hz the Nyquist of 25 Hz sits below the 30 Hz muscle band, so
	// the muscle mask must stay clear.
	cfg := core.ApplyOptions(core.WithSampleRate(50))

	sig := signal.Signal{signal.Noise(3, 20, 500)}

	rep, err := Detect(sig, cfg)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}

	for i, v := range rep.Muscle {
		if v {
			t.Fatalf("sample %d flagged at 50 Hz sample rate", i)
		}
	}
}

func TestDetectPercent(t *testing.T) {
	cfg := testConfig()

	sig := signal.Signal{signal.Sine(10, 10, cfg.SampleRate, 1000)}
	for i := 0; i < 100; i++ {
		sig[0][i] = 150
	}

	rep, err := Detect(sig, cfg)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}

	var flagged int
	for _, v := range rep.Combined {
		if v {
			flagged++
		}
	}

	want := 100 * float64(flagged) / float64(len(rep.Combined))
	if math.Abs(rep.Percent-want) > 1e-12 {
		t.Errorf("Percent: got %g, want %g", rep.Percent, want)
	}

	if rep.Percent < 10 {
		t.Errorf("Percent: got %g, want at least 10", rep.Percent)
	}
}

func TestDetectErrors(t *testing.T) {
	cfg := testConfig()

	if _, err := Detect(signal.Signal{}, cfg); !errors.Is(err, core.ErrDegenerateSignal) {
		t.Errorf("empty signal: got %v, want ErrDegenerateSignal", err)
	}

	bad := core.Config{SampleRate: 0, PowerlineFreq: 50}
	if _, err := Detect(signal.Signal{{1, 2}}, bad); !errors.Is(err, core.ErrConfiguration) {
		t.Errorf("bad config: got %v, want ErrConfiguration", err)
	}
}

func TestRemoveShortRunUntouched(t *testing.T) {
	sig := signal.Signal{signal.DC(1, 100)}

	rep := Report{Combined: make([]bool, 100)}
	for i := 40; i < 45; i++ {
		rep.Combined[i] = true
	}

	out, err := Remove(sig, rep)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}

	for i, x := range out[0] {
		if x != 1 {
			t.Fatalf("sample %d altered by a 5-sample run: %g", i, x)
		}
	}
}

func TestRemoveTapersLongRun(t *testing.T) {
	sig := signal.Signal{signal.DC(1, 200)}

	rep := Report{Combined: make([]bool, 200)}
	for i := 50; i < 150; i++ {
		rep.Combined[i] = true
	}

	out, err := Remove(sig, rep)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}

	if len(out[0]) != 200 {
		t.Fatalf("sample count changed: %d", len(out[0]))
	}

	// Outside the run nothing changes.
	if out[0][49] != 1 || out[0][150] != 1 {
		t.Error("samples outside the run were altered")
	}

	// Run edges keep full amplitude, the center drops to the floor.
	if math.Abs(out[0][50]-1) > 1e-9 {
		t.Errorf("run start: got %g, want 1", out[0][50])
	}

	if math.Abs(out[0][100]-DefaultTaperFloor) > 1e-9 {
		t.Errorf("run center: got %g, want %g", out[0][100], DefaultTaperFloor)
	}

	// Gains stay within [floor, 1] across the run.
	for i := 50; i < 150; i++ {
		if out[0][i] < DefaultTaperFloor-1e-9 || out[0][i] > 1+1e-9 {
			t.Fatalf("sample %d gain out of range: %g", i, out[0][i])
		}
	}
}

func TestRemoveDropsDeadChannels(t *testing.T) {
	sig := signal.Signal{
		signal.DC(1, 50),
		signal.DC(2, 50),
		signal.DC(3, 50),
	}

	rep := Report{
		Combined:     make([]bool, 50),
		DeadChannels: []bool{false, true, false},
	}

	out, err := Remove(sig, rep)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}

	if len(out) != 2 {
		t.Fatalf("got %d channels, want 2", len(out))
	}

	if out[0][0] != 1 || out[1][0] != 3 {
		t.Error("surviving channels out of order")
	}
}

func TestRemoveDoesNotModifyInput(t *testing.T) {
	sig := signal.Signal{signal.DC(1, 100)}

	rep := Report{Combined: make([]bool, 100)}
	for i := 20; i < 80; i++ {
		rep.Combined[i] = true
	}

	if _, err := Remove(sig, rep); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	for _, x := range sig[0] {
		if x != 1 {
			t.Fatal("Remove modified its input")
		}
	}
}

func TestRemoveMismatchedReport(t *testing.T) {
	sig := signal.Signal{signal.DC(1, 100)}

	_, err := Remove(sig, Report{Combined: make([]bool, 50)})
	if !errors.Is(err, core.ErrConfiguration) {
		t.Errorf("sample mismatch: got %v, want ErrConfiguration", err)
	}

	_, err = Remove(sig, Report{
		Combined:     make([]bool, 100),
		DeadChannels: []bool{false, true},
	})
	if !errors.Is(err, core.ErrConfiguration) {
		t.Errorf("channel mismatch: got %v, want ErrConfiguration", err)
	}
}

func TestRemoveTaperFloorOption(t *testing.T) {
	sig := signal.Signal{signal.DC(1, 200)}

	rep := Report{Combined: make([]bool, 200)}
	for i := 50; i < 150; i++ {
		rep.Combined[i] = true
	}

	out, err := Remove(sig, rep, WithTaperFloor(0.5))
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}

	if math.Abs(out[0][100]-0.5) > 1e-9 {
		t.Errorf("run center: got %g, want 0.5", out[0][100])
	}
}
