package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintSummaryListsShortRuns(t *testing.T) {
	result := &ScrapeResult{
		OutputPath:     "out/proj_scraped.sol",
		FileCount:      2,
		LineCount:      40,
		FilesProcessed: []string{"A.sol", "src/B.sol"},
	}

	var buf bytes.Buffer
	printSummary(&buf, result, 123, true)
	out := buf.String()

	assert.Contains(t, out, "Files processed: 2")
	assert.Contains(t, out, "Total lines:     40")
	assert.Contains(t, out, "Total tokens:    123")
	assert.Contains(t, out, "out/proj_scraped.sol")
	assert.Contains(t, out, "  • A.sol")
	assert.Contains(t, out, "  • src/B.sol")
}

func TestPrintSummarySkipsLongFileLists(t *testing.T) {
	result := &ScrapeResult{OutputPath: "x", FileCount: maxListedFiles + 1}
	for i := 0; i < result.FileCount; i++ {
		result.FilesProcessed = append(result.FilesProcessed, fmt.Sprintf("f%02d.sol", i))
	}

	var buf bytes.Buffer
	printSummary(&buf, result, 0, false)
	out := buf.String()

	assert.NotContains(t, out, "Files included:")
	assert.NotContains(t, out, "Total tokens")
}
