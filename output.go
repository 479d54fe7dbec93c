package main

import (
	"fmt"
	"io"
	"strings"
)

const maxListedFiles = 25

func printBanner() {
	fmt.Println()
	fmt.Println("╔═══════════════════════════════════════════════════════════════╗")
	fmt.Printf("║              SOLSCRAPE v%-7s -  Source Scraper              ║\n", version)
	fmt.Println("╚═══════════════════════════════════════════════════════════════╝")
	fmt.Println()
}

// printSummary reports a finished run: counts, output path, and the processed
// file list when it is short enough to be worth reading.
func printSummary(w io.Writer, result *ScrapeResult, tokenCount int, tokensCounted bool) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("═", 64))
	fmt.Fprintln(w, "✅ Success!")
	fmt.Fprintf(w, "   Files processed: %d\n", result.FileCount)
	fmt.Fprintf(w, "   Total lines:     %d\n", result.LineCount)
	if tokensCounted {
		fmt.Fprintf(w, "   Total tokens:    %d\n", tokenCount)
	}
	fmt.Fprintf(w, "   Output:          %s\n", result.OutputPath)
	fmt.Fprintln(w, strings.Repeat("═", 64))

	if result.FileCount <= maxListedFiles {
		fmt.Fprintln(w, "\nFiles included:")
		for _, f := range result.FilesProcessed {
			fmt.Fprintf(w, "  • %s\n", f)
		}
	}
}
