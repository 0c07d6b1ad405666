// Package pek pulls normalized audio amplitude data out of Premiere-style
// peak cache files. The internal layout of these files is undocumented and
// varies between versions, so the package does not parse a known format:
// it reinterprets the raw bytes under two candidate encodings and keeps the
// hypothesis that survives more densely. Output is a best-effort waveform
// approximation, not verified audio data.
package pek

import (
	"encoding/binary"
	"math"

	"pekscan/types"
)

const int16Scale = 1.0 / 32768.0

// DecodedSamples is the amplitude sequence one encoding hypothesis produced
// from a buffer, every value in [-1, 1]. Not mutated after creation.
type DecodedSamples struct {
	Encoding string
	Values   []float64
}

func (d DecodedSamples) Len() int {
	return len(d.Values)
}

// DecodeFloat32 reads the buffer as consecutive 4-byte little-endian IEEE-754
// values. Windows outside [-1, 1] are dropped (NaN fails both comparisons and
// is dropped too); trailing bytes short of a full window are ignored.
func DecodeFloat32(data []byte) []float64 {
	values := make([]float64, 0, len(data)/4)
	for i := 0; i+4 <= len(data); i += 4 {
		v := math.Float32frombits(binary.LittleEndian.Uint32(data[i : i+4]))
		if v >= -1.0 && v <= 1.0 {
			values = append(values, float64(v))
		}
	}
	return values
}

// DecodeInt16 reads the buffer as consecutive 2-byte little-endian signed
// integers, each normalized by 1/32768. Every complete window is kept.
func DecodeInt16(data []byte) []float64 {
	values := make([]float64, 0, len(data)/2)
	for i := 0; i+2 <= len(data); i += 2 {
		v := int16(binary.LittleEndian.Uint16(data[i : i+2]))
		values = append(values, float64(v)*int16Scale)
	}
	return values
}

// SelectDecoding runs both decoders and keeps the hypothesis that yielded
// more samples; float32 wins ties. This is a density heuristic with no
// grounding in a documented layout, so callers should treat the result as
// approximate.
func SelectDecoding(data []byte) DecodedSamples {
	floats := DecodeFloat32(data)
	shorts := DecodeInt16(data)

	if len(shorts) > len(floats) {
		return DecodedSamples{Encoding: types.EncodingInt16, Values: shorts}
	}
	return DecodedSamples{Encoding: types.EncodingFloat32, Values: floats}
}
