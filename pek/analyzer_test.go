package pek

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"pekscan/types"
)

// peakBuffer builds an int16-looking buffer with a sample rate marker at the
// front, the shape real peak caches tend to have.
func peakBuffer(rate uint32, samples []int16) []byte {
	buf := make([]byte, 0, 4+len(samples)*2)
	buf = binary.LittleEndian.AppendUint32(buf, rate)
	for _, s := range samples {
		buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
	}
	return buf
}

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAnalyzeBytes_FullRecord(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 44100*5)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}
	buf := peakBuffer(44100, samples)

	res := AnalyzeBytes("project.pek", buf)
	info := res.Info

	if info.Failed() {
		t.Fatalf("unexpected error: %s", info.Error)
	}
	if info.FileName != "project.pek" {
		t.Errorf("FileName = %q", info.FileName)
	}
	if info.FileSize != int64(len(buf)) {
		t.Errorf("FileSize = %d, want %d", info.FileSize, len(buf))
	}
	if info.Encoding != types.EncodingInt16 {
		t.Errorf("Encoding = %q, want %q", info.Encoding, types.EncodingInt16)
	}
	if info.PeakSamples != len(buf)/2 {
		t.Errorf("PeakSamples = %d, want %d", info.PeakSamples, len(buf)/2)
	}
	if info.SampleRate != "44100 Hz" {
		t.Errorf("SampleRate = %q, want %q", info.SampleRate, "44100 Hz")
	}
	if info.EstimatedDuration != "0:00:05" {
		t.Errorf("EstimatedDuration = %q, want %q", info.EstimatedDuration, "0:00:05")
	}
	if res.Rate != 44100 || res.RateOffset != 0 {
		t.Errorf("rate detection = (%d, %d), want (44100, 0)", res.Rate, res.RateOffset)
	}
	if res.Samples.Len() != info.PeakSamples {
		t.Errorf("Samples.Len() = %d, want %d", res.Samples.Len(), info.PeakSamples)
	}
}

func TestAnalyzeBytes_AmplitudeFormatting(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 0, 8)
	for _, v := range []int16{-16384, 16384, 0, 8192} {
		buf = binary.LittleEndian.AppendUint16(buf, uint16(v))
	}

	info := AnalyzeBytes("small.pek", buf).Info

	if info.MaxAmplitude != "0.5000" {
		t.Errorf("MaxAmplitude = %q, want %q", info.MaxAmplitude, "0.5000")
	}
	if info.MinAmplitude != "-0.5000" {
		t.Errorf("MinAmplitude = %q, want %q", info.MinAmplitude, "-0.5000")
	}
	// mean of |−0.5|, |0.5|, |0|, |0.25|
	if info.AvgAmplitude != "0.3125" {
		t.Errorf("AvgAmplitude = %q, want %q", info.AvgAmplitude, "0.3125")
	}
}

func TestAnalyzeBytes_NoViableSamples(t *testing.T) {
	t.Parallel()

	info := AnalyzeBytes("tiny.pek", []byte{0x7F}).Info

	if info.HasSamples() {
		t.Errorf("PeakSamples = %d, want 0", info.PeakSamples)
	}
	if info.MaxAmplitude != "" || info.SampleRate != "" {
		t.Error("amplitude/rate fields filled for sampleless record")
	}
	if info.FileSize != 1 {
		t.Errorf("FileSize = %d, want 1", info.FileSize)
	}
}

func TestAnalyzeBytes_NoRateMeansNoDuration(t *testing.T) {
	t.Parallel()

	buf := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	info := AnalyzeBytes("norate.pek", buf).Info

	if !info.HasSamples() {
		t.Fatal("expected int16 samples")
	}
	if info.SampleRate != "" || info.EstimatedDuration != "" {
		t.Errorf("rate fields present without a match: %q / %q", info.SampleRate, info.EstimatedDuration)
	}
}

func TestAnalyze_MissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gone.pek")
	info := Analyze(path).Info

	if !info.Failed() {
		t.Fatal("expected error record for missing file")
	}
	if info.FileName != "gone.pek" || info.FilePath != path {
		t.Errorf("identity fields = %q / %q", info.FileName, info.FilePath)
	}
	if info.HasSamples() {
		t.Error("failed record carries samples")
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "stable.pek", peakBuffer(48000, []int16{100, -100, 3000, -3000}))

	first := Analyze(path).Info
	second := Analyze(path).Info

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Analyze differs:\n%+v\n%+v", first, second)
	}
}

func TestBatch_KeepsGoingPastFailures(t *testing.T) {
	t.Parallel()

	good1 := writeTempFile(t, "a.pek", peakBuffer(44100, []int16{1, 2, 3}))
	good2 := writeTempFile(t, "b.pek", peakBuffer(48000, []int16{4, 5, 6}))
	missing := filepath.Join(t.TempDir(), "missing.pek")

	results, err := Batch(context.Background(), []string{good1, missing, good2})
	if err != nil {
		t.Fatalf("Batch() error = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d records, want 3", len(results))
	}

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
		}
	}
	if failed != 1 {
		t.Errorf("failed records = %d, want 1", failed)
	}
}

func TestBatch_CancelledBetweenFiles(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "a.pek", peakBuffer(44100, []int16{1, 2, 3}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Batch(ctx, []string{path, path})
	if err == nil {
		t.Fatal("Batch() returned nil error after cancellation")
	}
	if len(results) != 0 {
		t.Errorf("got %d records after pre-cancelled run, want 0", len(results))
	}
}
