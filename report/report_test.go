package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"pekscan/types"
)

func sampleResults() []types.AudioInfo {
	return []types.AudioInfo{
		{
			FileName:          "good.pek",
			FilePath:          "/data/good.pek",
			FileSize:          2048,
			FileSizeFormatted: "2.00 KB",
			PeakSamples:       1024,
			Encoding:          types.EncodingInt16,
			MaxAmplitude:      "0.9000",
			MinAmplitude:      "-0.8000",
			AvgAmplitude:      "0.4000",
			SampleRate:        "44100 Hz",
			EstimatedDuration: "0:00:00",
		},
		{
			FileName:          "bad.pek",
			FilePath:          "/data/bad.pek",
			FileSizeFormatted: "0.00 B",
			Error:             "open /data/bad.pek: permission denied",
		},
	}
}

func TestWriteText_BlocksAndBanners(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteText(&buf, sampleResults()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.Contains(out, "PEAK FILE ANALYSIS REPORT") {
		t.Error("missing report title")
	}
	if !strings.Contains(out, strings.Repeat("=", 100)) {
		t.Error("missing banner rule")
	}
	if got := strings.Count(out, strings.Repeat("-", 100)); got != 2 {
		t.Errorf("file rule count = %d, want 2", got)
	}
	if !strings.Contains(out, "Max Amplitude: 0.9000") {
		t.Error("missing amplitude field")
	}
	if !strings.Contains(out, "Error: open /data/bad.pek: permission denied") {
		t.Error("missing error field for failed file")
	}

	// A failed record must not grow amplitude fields.
	failedBlock := out[strings.Index(out, "bad.pek"):]
	if strings.Contains(failedBlock, "Peak Samples") {
		t.Error("failed record lists sample statistics")
	}
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleResults()); err != nil {
		t.Fatal(err)
	}

	var decoded struct {
		GeneratedAt string            `json:"generated_at"`
		FileCount   int               `json:"file_count"`
		Files       []types.AudioInfo `json:"files"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}

	if decoded.FileCount != 2 || len(decoded.Files) != 2 {
		t.Fatalf("file count = %d/%d, want 2/2", decoded.FileCount, len(decoded.Files))
	}
	if decoded.Files[0].SampleRate != "44100 Hz" {
		t.Errorf("SampleRate = %q", decoded.Files[0].SampleRate)
	}
	if !decoded.Files[1].Failed() {
		t.Error("failed record lost its error on round trip")
	}
	if decoded.Files[1].MaxAmplitude != "" {
		t.Error("empty amplitude fields serialized for failed record")
	}
}
