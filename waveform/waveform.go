// Package waveform projects a decoded amplitude sequence down to something
// a terminal or a plotting tool can show: strided decimation, a mirrored
// ASCII bar chart, and a comma-separated export format.
package waveform

import (
	"math"
	"strings"
)

// Point is one kept sample, tagged with its index in the full sequence.
type Point struct {
	Index     int
	Amplitude float64
}

// Downsample decimates values to at most width points: stride is
// max(1, N div width) and every stride-th sample is kept starting at index 0.
// Samples between kept points are dropped, not averaged.
func Downsample(values []float64, width int) []Point {
	if width <= 0 || len(values) == 0 {
		return nil
	}

	stride := len(values) / width
	if stride < 1 {
		stride = 1
	}

	points := make([]Point, 0, width)
	for i := 0; i < len(values) && len(points) < width; i += stride {
		points = append(points, Point{Index: i, Amplitude: values[i]})
	}
	return points
}

// RenderASCII draws a width×height mirrored bar chart of the sequence.
// Scaling uses the peak of the rendered subset, not the full sequence, so a
// zoomed view always fills the grid. The zero row is a dashed baseline.
func RenderASCII(values []float64, width, height int) string {
	points := Downsample(values, width)
	if len(points) == 0 {
		return ""
	}

	var peak float64
	for _, p := range points {
		if a := math.Abs(p.Amplitude); a > peak {
			peak = a
		}
	}

	half := height / 2
	scaled := make([]int, len(points))
	if peak > 0 {
		for i, p := range points {
			scaled[i] = int(p.Amplitude / peak * float64(half))
		}
	}

	rows := make([]string, 0, 2*half)
	var line strings.Builder
	for row := half; row > -half; row-- {
		line.Reset()
		for _, v := range scaled {
			switch {
			case row > 0 && v >= row:
				line.WriteRune('█')
			case row < 0 && v <= row:
				line.WriteRune('█')
			case row == 0:
				line.WriteRune('─')
			default:
				line.WriteRune(' ')
			}
		}
		rows = append(rows, line.String())
	}

	return strings.Join(rows, "\n")
}
