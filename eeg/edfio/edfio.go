package edfio

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/OpenPSG/edf"

	"github.com/cwbudde/algo-eeg/eeg/core"
	"github.com/cwbudde/algo-eeg/eeg/signal"
)

// Recording is an EDF file loaded into memory.
type Recording struct {
	Signal signal.Signal
	Labels []string
	Config core.Config
}

// layout holds the header fields Load needs up front. The edf package
// exposes no header accessor, so these are probed directly from the fixed
// EDF header layout before the file is handed to edf.Open for sample
// decoding.
type layout struct {
	dataRecords      int
	recordSeconds    float64
	signalCount      int
	labels           []string
	samplesPerRecord []int
}

// Load reads every signal of an EDF/EDF+ file into a channels × samples
// matrix. All signals must share one sampling rate; mixed-rate files return
// core.ErrConfiguration. The powerline frequency of the returned config is
// the default (50 Hz) and may be overridden by the caller.
func Load(r io.ReadSeeker) (Recording, error) {
	lay, err := probeLayout(r)
	if err != nil {
		return Recording{}, err
	}

	if lay.signalCount == 0 || lay.dataRecords <= 0 {
		return Recording{}, fmt.Errorf("%w: edf file holds no data records", core.ErrDegenerateSignal)
	}

	if lay.recordSeconds <= 0 {
		return Recording{}, fmt.Errorf("%w: non-positive record duration %g s",
			core.ErrConfiguration, lay.recordSeconds)
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return Recording{}, fmt.Errorf("edfio: rewind: %w", err)
	}

	er, err := edf.Open(r)
	if err != nil {
		return Recording{}, fmt.Errorf("edfio: open: %w", err)
	}

	sampleRate := float64(lay.samplesPerRecord[0]) / lay.recordSeconds
	sig := make(signal.Signal, lay.signalCount)

	for i := 0; i < lay.signalCount; i++ {
		rate := float64(lay.samplesPerRecord[i]) / lay.recordSeconds
		if rate != sampleRate {
			return Recording{}, fmt.Errorf("%w: signal %d sampled at %g Hz, signal 0 at %g Hz",
				core.ErrConfiguration, i, rate, sampleRate)
		}

		sr, err := er.Signal(i)
		if err != nil {
			return Recording{}, fmt.Errorf("edfio: signal %d: %w", i, err)
		}

		data := make([]float64, lay.samplesPerRecord[i]*lay.dataRecords)
		if _, err := sr.Read(data); err != nil && err != io.EOF {
			return Recording{}, fmt.Errorf("edfio: read signal %d: %w", i, err)
		}

		sig[i] = data
	}

	cfg := core.DefaultConfig()
	cfg.SampleRate = sampleRate
	cfg.Channels = lay.signalCount

	return Recording{Signal: sig, Labels: lay.labels, Config: cfg}, nil
}

// probeLayout reads record count, record duration, signal count, labels, and
// samples-per-record from the fixed EDF header byte layout.
func probeLayout(r io.ReadSeeker) (layout, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return layout{}, fmt.Errorf("edfio: seek: %w", err)
	}

	fixed := make([]byte, 256)
	if _, err := io.ReadFull(r, fixed); err != nil {
		return layout{}, fmt.Errorf("edfio: read header: %w", err)
	}

	var lay layout

	var err error
	if lay.dataRecords, err = headerInt(fixed[236:244]); err != nil {
		return layout{}, fmt.Errorf("edfio: data record count: %w", err)
	}

	if lay.recordSeconds, err = headerFloat(fixed[244:252]); err != nil {
		return layout{}, fmt.Errorf("edfio: record duration: %w", err)
	}

	if lay.signalCount, err = headerInt(fixed[252:256]); err != nil {
		return layout{}, fmt.Errorf("edfio: signal count: %w", err)
	}

	if lay.signalCount <= 0 {
		return lay, nil
	}

	ns := lay.signalCount

	// Per-signal header arrays: label(16), transducer(80), dimension(8),
	// physical min/max(8+8), digital min/max(8+8), prefiltering(80),
	// samples per record(8).
	perSignal := make([]byte, ns*216)
	if _, err := io.ReadFull(r, perSignal); err != nil {
		return layout{}, fmt.Errorf("edfio: read signal headers: %w", err)
	}

	lay.labels = make([]string, ns)
	for i := 0; i < ns; i++ {
		lay.labels[i] = strings.TrimSpace(string(perSignal[i*16 : (i+1)*16]))
	}

	sprOffset := ns * 208 // everything before the samples-per-record array

	lay.samplesPerRecord = make([]int, ns)
	for i := 0; i < ns; i++ {
		field := perSignal[sprOffset+i*8 : sprOffset+(i+1)*8]

		lay.samplesPerRecord[i], err = headerInt(field)
		if err != nil {
			return layout{}, fmt.Errorf("edfio: samples per record of signal %d: %w", i, err)
		}
	}

	return lay, nil
}

func headerInt(b []byte) (int, error) {
	return strconv.Atoi(strings.TrimSpace(string(b)))
}

func headerFloat(b []byte) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(string(b)), 64)
}

// Save writes the signal as an EDF file with one-second data records. The
// sample rate must be a positive integer number of samples per second; a
// trailing partial second is zero-padded. Channel labels beyond the provided
// slice default to "EEG ChNN".
func Save(w io.WriteSeeker, sig signal.Signal, cfg core.Config, labels []string) error {
	if err := sig.Validate(); err != nil {
		return err
	}

	perRecord := int(cfg.SampleRate)
	if perRecord <= 0 || float64(perRecord) != cfg.SampleRate {
		return fmt.Errorf("%w: edf writer needs an integer sample rate, got %g",
			core.ErrConfiguration, cfg.SampleRate)
	}

	hdr := edf.Header{
		Version:            edf.Version0,
		RecordingID:        "algo-eeg cleaned signal",
		StartTime:          time.Unix(0, 0).UTC(),
		DataRecordDuration: time.Second,
		SignalCount:        sig.Channels(),
		Signals:            make([]edf.Signal, sig.Channels()),
	}

	for ch := range sig {
		label := fmt.Sprintf("EEG Ch%02d", ch)
		if ch < len(labels) && labels[ch] != "" {
			label = labels[ch]
		}

		pmin, pmax := physicalRange(sig[ch])

		hdr.Signals[ch] = edf.Signal{
			Label:             label,
			PhysicalDimension: "uV",
			PhysicalMin:       pmin,
			PhysicalMax:       pmax,
			DigitalMin:        -32768,
			DigitalMax:        32767,
			SamplesPerRecord:  perRecord,
		}
	}

	ew, err := edf.Create(w, hdr)
	if err != nil {
		return fmt.Errorf("edfio: create: %w", err)
	}

	samples := sig.Samples()
	records := (samples + perRecord - 1) / perRecord
	record := make([][]float64, sig.Channels())

	for r := 0; r < records; r++ {
		start := r * perRecord

		for ch := range sig {
			chunk := make([]float64, perRecord)
			end := start + perRecord
			if end > samples {
				end = samples
			}

			copy(chunk, sig[ch][start:end])
			record[ch] = chunk
		}

		if err := ew.WriteRecord(record); err != nil {
			return fmt.Errorf("edfio: write record %d: %w", r, err)
		}
	}

	if err := ew.Close(); err != nil {
		return fmt.Errorf("edfio: close: %w", err)
	}

	return nil
}

// physicalRange returns a symmetric calibration range covering the channel,
// padded so quantization never clips the extremes.
func physicalRange(data []float64) (pmin, pmax float64) {
	peak := 1.0

	for _, x := range data {
		if a := math.Abs(x); a > peak {
			peak = a
		}
	}

	peak = math.Ceil(peak * 1.05)

	return -peak, peak
}
