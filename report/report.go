// Package report serializes batch analysis results as plain text and JSON.
package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"pekscan/types"
)

const ruleWidth = 100

// WriteText renders the aggregate report: a banner, then one Label: value
// block per analyzed file separated by rule lines.
func WriteText(w io.Writer, results []types.AudioInfo) error {
	bw := bufio.NewWriter(w)

	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintln(bw, rule)
	fmt.Fprintln(bw, "PEAK FILE ANALYSIS REPORT")
	fmt.Fprintf(bw, "Generated: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(bw, "Files analyzed: %d\n", len(results))
	fmt.Fprintln(bw, rule)
	fmt.Fprintln(bw)

	for _, info := range results {
		fmt.Fprintln(bw, strings.Repeat("-", ruleWidth))
		for _, f := range info.Fields() {
			fmt.Fprintf(bw, "%s: %s\n", f.Label, f.Value)
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

// SaveText writes the text report to a file.
func SaveText(path string, results []types.AudioInfo) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	defer f.Close()

	return WriteText(f, results)
}

type jsonReport struct {
	GeneratedAt string            `json:"generated_at"`
	FileCount   int               `json:"file_count"`
	Files       []types.AudioInfo `json:"files"`
}

// WriteJSON renders the same records as an indented JSON document.
func WriteJSON(w io.Writer, results []types.AudioInfo) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{
		GeneratedAt: time.Now().Format(time.RFC3339),
		FileCount:   len(results),
		Files:       results,
	})
}

// SaveJSON writes the JSON report to a file.
func SaveJSON(path string, results []types.AudioInfo) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating JSON report: %w", err)
	}
	defer f.Close()

	return WriteJSON(f, results)
}
