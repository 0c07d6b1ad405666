package waveform

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Export writes the downsampled sequence as commented header lines followed
// by one index,amplitude pair per line, amplitudes to six decimals.
func Export(w io.Writer, source string, values []float64, maxPoints int) error {
	points := Downsample(values, maxPoints)

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# Waveform data from peak file")
	fmt.Fprintf(bw, "# Source: %s\n", source)
	fmt.Fprintf(bw, "# Total samples: %d\n", len(values))
	fmt.Fprintf(bw, "# Displayed samples: %d\n", len(points))
	fmt.Fprintln(bw, "# Format: sample_index,amplitude")
	fmt.Fprintln(bw)

	for _, p := range points {
		fmt.Fprintf(bw, "%d,%.6f\n", p.Index, p.Amplitude)
	}

	return bw.Flush()
}

// ExportFile is Export to a newly created file.
func ExportFile(path, source string, values []float64, maxPoints int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating waveform export: %w", err)
	}
	defer f.Close()

	return Export(f, source, values, maxPoints)
}

// ParseExport reads the export format back into points, skipping comment
// and blank lines.
func ParseExport(r io.Reader) ([]Point, error) {
	var points []Point

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idxStr, ampStr, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("malformed waveform line: %q", line)
		}
		idx, err := strconv.Atoi(idxStr)
		if err != nil {
			return nil, fmt.Errorf("bad sample index in %q: %w", line, err)
		}
		amp, err := strconv.ParseFloat(ampStr, 64)
		if err != nil {
			return nil, fmt.Errorf("bad amplitude in %q: %w", line, err)
		}
		points = append(points, Point{Index: idx, Amplitude: amp})
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}
	return points, nil
}
