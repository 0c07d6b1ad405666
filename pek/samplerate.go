package pek

import (
	"encoding/binary"
	"fmt"
)

// Sample rates worth believing when found embedded in a peak file.
var knownRates = map[uint32]struct{}{
	44100:  {},
	48000:  {},
	96000:  {},
	88200:  {},
	192000: {},
}

// DetectSampleRate scans every byte offset (not only aligned ones) for a
// 4-byte little-endian unsigned integer matching a known audio sample rate,
// returning the first hit. The linear scan is deliberate: file I/O dominates
// its cost.
func DetectSampleRate(data []byte) (rate uint32, offset int, ok bool) {
	for i := 0; i+4 <= len(data); i++ {
		v := binary.LittleEndian.Uint32(data[i : i+4])
		if _, found := knownRates[v]; found {
			return v, i, true
		}
	}
	return 0, 0, false
}

// FormatDuration renders sampleCount/rate, truncated to whole seconds,
// as H:MM:SS.
func FormatDuration(sampleCount int, rate uint32) string {
	total := sampleCount / int(rate)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}
