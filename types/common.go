package types

import "strconv"

// Encoding names for the byte interpretation that produced a sample sequence.
const (
	EncodingFloat32 = "float32"
	EncodingInt16   = "int16"
)

// AudioInfo is the per-file analysis record. Identity fields are always
// present; amplitude fields are filled only when decoding produced samples,
// and rate/duration only when a plausible sample rate was found in the bytes.
// A non-empty Error means the file could not be read at all.
type AudioInfo struct {
	FileName          string `json:"file_name"`
	FilePath          string `json:"file_path"`
	FileSize          int64  `json:"file_size"`
	FileSizeFormatted string `json:"file_size_formatted"`

	PeakSamples       int    `json:"peak_samples,omitempty"`
	Encoding          string `json:"encoding,omitempty"`
	MaxAmplitude      string `json:"max_amplitude,omitempty"`
	MinAmplitude      string `json:"min_amplitude,omitempty"`
	AvgAmplitude      string `json:"avg_amplitude,omitempty"`
	SampleRate        string `json:"sample_rate,omitempty"`
	EstimatedDuration string `json:"estimated_duration,omitempty"`

	Modified string `json:"modified,omitempty"`
	Error    string `json:"error,omitempty"`
}

func (a AudioInfo) Failed() bool {
	return a.Error != ""
}

func (a AudioInfo) HasSamples() bool {
	return a.PeakSamples > 0
}

// Field is one label/value pair of a rendered record.
type Field struct {
	Label string
	Value string
}

// Fields returns the record as ordered label/value pairs, skipping fields
// that were never filled. Reports and the CLI both print from this.
func (a AudioInfo) Fields() []Field {
	fields := []Field{
		{"File Name", a.FileName},
		{"File Path", a.FilePath},
		{"File Size", strconv.FormatInt(a.FileSize, 10)},
		{"File Size Formatted", a.FileSizeFormatted},
	}

	if a.Failed() {
		return append(fields, Field{"Error", a.Error})
	}

	if a.HasSamples() {
		fields = append(fields,
			Field{"Peak Samples", strconv.Itoa(a.PeakSamples)},
			Field{"Encoding", a.Encoding},
			Field{"Max Amplitude", a.MaxAmplitude},
			Field{"Min Amplitude", a.MinAmplitude},
			Field{"Avg Amplitude", a.AvgAmplitude},
		)
		if a.SampleRate != "" {
			fields = append(fields,
				Field{"Estimated Duration", a.EstimatedDuration},
				Field{"Sample Rate", a.SampleRate},
			)
		}
	}

	if a.Modified != "" {
		fields = append(fields, Field{"Modified", a.Modified})
	}

	return fields
}
