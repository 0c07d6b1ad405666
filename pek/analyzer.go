package pek

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"pekscan/types"
	"pekscan/utils"
)

// Result bundles the per-file record with the decoded samples and detected
// rate so callers can render waveforms without re-reading the file.
type Result struct {
	Info       types.AudioInfo
	Samples    DecodedSamples
	Rate       uint32
	RateOffset int
}

// Analyze loads the whole file and runs the decode pipeline on it. Read
// failures are recorded on the result, not returned: a failed file still
// produces an identity-only record with its Error field set.
func Analyze(path string) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{
			Info: types.AudioInfo{
				FileName:          filepath.Base(path),
				FilePath:          path,
				FileSizeFormatted: utils.FormatSize(0),
				Error:             err.Error(),
			},
		}
	}
	return AnalyzeBytes(path, data)
}

// AnalyzeBytes runs the decode pipeline on an in-memory buffer. It is a pure
// function of the buffer apart from the stat call that fills the Modified
// timestamp; the same bytes always yield the same samples and statistics.
func AnalyzeBytes(path string, data []byte) Result {
	res := Result{
		Info: types.AudioInfo{
			FileName:          filepath.Base(path),
			FilePath:          path,
			FileSize:          int64(len(data)),
			FileSizeFormatted: utils.FormatSize(int64(len(data))),
		},
	}

	if fi, err := os.Stat(path); err == nil {
		res.Info.Modified = fi.ModTime().Format("2006-01-02 15:04:05")
	}

	res.Samples = SelectDecoding(data)
	if res.Samples.Len() == 0 {
		return res
	}

	res.Info.PeakSamples = res.Samples.Len()
	res.Info.Encoding = res.Samples.Encoding

	maxAmp, minAmp, avgAbs := amplitudeStats(res.Samples.Values)
	res.Info.MaxAmplitude = fmt.Sprintf("%.4f", maxAmp)
	res.Info.MinAmplitude = fmt.Sprintf("%.4f", minAmp)
	res.Info.AvgAmplitude = fmt.Sprintf("%.4f", avgAbs)

	if rate, offset, ok := DetectSampleRate(data); ok {
		res.Rate = rate
		res.RateOffset = offset
		res.Info.SampleRate = fmt.Sprintf("%d Hz", rate)
		res.Info.EstimatedDuration = FormatDuration(res.Samples.Len(), rate)
	}

	return res
}

// amplitudeStats folds max and min over the signed values and the mean over
// their absolute values, in one pass.
func amplitudeStats(values []float64) (maxAmp, minAmp, avgAbs float64) {
	maxAmp = values[0]
	minAmp = values[0]
	var sumAbs float64
	for _, v := range values {
		if v > maxAmp {
			maxAmp = v
		}
		if v < minAmp {
			minAmp = v
		}
		sumAbs += math.Abs(v)
	}
	return maxAmp, minAmp, sumAbs / float64(len(values))
}

// Batch analyzes each path in order, one record per path. A file that fails
// to read gets an error record and the batch keeps going. Cancellation is
// only honored between files; once cancelled no further records are added
// and whatever was collected so far is returned with the context error.
func Batch(ctx context.Context, paths []string) ([]types.AudioInfo, error) {
	results := make([]types.AudioInfo, 0, len(paths))
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		utils.Log.Debug("analyzing %d/%d: %s", i+1, len(paths), path)
		results = append(results, Analyze(path).Info)
	}
	return results, nil
}
