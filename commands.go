package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fatih/color"

	"pekscan/db"
	"pekscan/dsp"
	"pekscan/pek"
	"pekscan/report"
	"pekscan/scanner"
	"pekscan/utils"
	"pekscan/waveform"
)

const (
	waveWidth    = 80
	waveHeight   = 20
	exportPoints = 1000

	outputDir      = "pekscan_results"
	reportTextFile = "pek_analysis_report.txt"
	reportJSONFile = "pek_analysis_report.json"
	catalogFile    = "pekscan.db"
)

var (
	yellow = color.New(color.FgYellow)
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
)

func analyzeCmd(args []string) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	exportPath := fs.String("export", "", "write downsampled waveform data to this file")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Println("usage: pekscan analyze <file> [-export out.csv]")
		os.Exit(1)
	}
	path := fs.Arg(0)

	res := pek.Analyze(path)
	if res.Info.Failed() {
		yellow.Println("Analysis failed:", res.Info.Error)
		os.Exit(1)
	}

	cyan.Println("FILE INFORMATION")
	for _, f := range res.Info.Fields() {
		fmt.Printf("%s: %s\n", f.Label, f.Value)
	}

	if !res.Info.HasSamples() {
		yellow.Println("\nNo waveform data available")
		return
	}

	fmt.Println()
	cyan.Println("WAVEFORM")
	fmt.Println(waveform.RenderASCII(res.Samples.Values, waveWidth, waveHeight))

	if summary, ok := dsp.Summarize(res.Samples.Values, res.Rate); ok {
		fmt.Println()
		cyan.Println("SPECTRAL SUMMARY (best effort)")
		fmt.Printf("Dominant Frequency: %.1f Hz\n", summary.DominantFreq)
		fmt.Printf("Frames Analyzed: %d\n", summary.Frames)
	}

	if *exportPath != "" {
		err := waveform.ExportFile(*exportPath, path, res.Samples.Values, exportPoints)
		if err != nil {
			utils.Log.Fatal("exporting waveform: %v", err)
		}
		green.Println("\nWaveform data exported to:", *exportPath)
	}
}

func scanCmd(args []string) {
	roots := args
	if len(roots) == 0 {
		roots = scanner.DetectRoots()
	}

	for _, root := range roots {
		utils.Log.Info("scanning %s", root)
		found, stats, err := scanner.Scan(root)
		if err != nil {
			yellow.Println("Scan failed:", err)
			continue
		}

		for _, f := range found {
			fmt.Printf("%s (%s, %s)\n", f.Path, f.Description, utils.FormatSize(f.Size))
		}
		green.Printf("Found %d file(s), %s total\n", stats.Files, utils.FormatSize(stats.TotalSize))
	}
}

func batchCmd(args []string) {
	if len(args) < 1 {
		fmt.Println("usage: pekscan batch <dir>")
		os.Exit(1)
	}
	root := args[0]

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	found, _, err := scanner.Scan(root)
	if err != nil {
		utils.Log.Fatal("scanning %s: %v", root, err)
	}

	paths := scanner.PeakFiles(found)
	if len(paths) == 0 {
		yellow.Println("No .pek files found under", root)
		return
	}
	utils.Log.Info("analyzing %d peak file(s)", len(paths))

	results, batchErr := pek.Batch(ctx, paths)
	if batchErr != nil {
		yellow.Println("Batch interrupted; keeping", len(results), "completed record(s)")
	}
	if len(results) == 0 {
		return
	}

	if err := utils.MkDir(outputDir); err != nil {
		utils.Log.Fatal("creating output dir: %v", err)
	}

	textPath := filepath.Join(outputDir, reportTextFile)
	if err := report.SaveText(textPath, results); err != nil {
		utils.Log.Fatal("writing text report: %v", err)
	}
	jsonPath := filepath.Join(outputDir, reportJSONFile)
	if err := report.SaveJSON(jsonPath, results); err != nil {
		utils.Log.Fatal("writing JSON report: %v", err)
	}

	catalog, err := db.NewCatalog(filepath.Join(outputDir, catalogFile))
	if err != nil {
		utils.Log.Fatal("opening catalog: %v", err)
	}
	defer catalog.Close()

	if err := catalog.SaveResults(results); err != nil {
		utils.Log.Fatal("storing results: %v", err)
	}

	failed := 0
	for _, r := range results {
		if r.Failed() {
			failed++
		}
	}

	green.Printf("Report saved to: %s\n", textPath)
	green.Printf("JSON saved to: %s\n", jsonPath)
	if failed > 0 {
		yellow.Printf("%d of %d file(s) could not be read\n", failed, len(results))
	}
}
