// Package dsp derives a coarse spectral summary from a decoded amplitude
// sequence. Like the decode itself this is advisory: the samples are a
// best-effort reading of an undocumented file, so the spectrum describes
// that reading, not verified audio.
package dsp

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

const (
	windowSize = 1024           // Size of each FFT window
	hopSize    = windowSize / 2 // Hop size between windows
)

// Summary is the aggregated spectrum over all analyzed frames.
type Summary struct {
	DominantFreq float64 // Hz, bin with the highest mean magnitude
	Magnitude    float64 // mean magnitude of that bin
	Frames       int     // number of FFT frames folded in
}

func hannWindow(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}
	return w
}

// Summarize runs Hann-windowed FFT frames across the sequence and reports
// the dominant frequency bin. It needs a known sample rate and at least one
// full window of samples; otherwise ok is false.
func Summarize(samples []float64, sampleRate uint32) (Summary, bool) {
	if sampleRate == 0 || len(samples) < windowSize {
		return Summary{}, false
	}

	window := hannWindow(windowSize)
	sums := make([]float64, windowSize/2)
	frames := 0

	frame := make([]float64, windowSize)
	for start := 0; start+windowSize <= len(samples); start += hopSize {
		copy(frame, samples[start:start+windowSize])
		for i := range frame {
			frame[i] *= window[i]
		}

		spectrum := fft.FFTReal(frame)
		for k := range sums {
			sums[k] += cmplx.Abs(spectrum[k])
		}
		frames++
	}

	freqResolution := float64(sampleRate) / float64(windowSize)

	// Skip bin 0: DC offset is not a frequency worth reporting.
	best := 1
	for k := 2; k < len(sums); k++ {
		if sums[k] > sums[best] {
			best = k
		}
	}

	return Summary{
		DominantFreq: float64(best) * freqResolution,
		Magnitude:    sums[best] / float64(frames),
		Frames:       frames,
	}, true
}
