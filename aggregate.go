package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrNoFilesFound means discovery produced an empty file list.
	ErrNoFilesFound = errors.New("no source files found in the source")

	// ErrAllFilesEmpty means every discovered file was unreadable or cleaned
	// down to nothing.
	ErrAllFilesEmpty = errors.New("all source files were empty after processing")

	// ErrAborted is returned when an interactive selection hook cancels the
	// run before any output is written.
	ErrAborted = errors.New("selection aborted")
)

// Scraper drives discovery, per-file cleaning, and the final write. Per-file
// read failures go to Warn and the run continues; everything else is fatal.
type Scraper struct {
	cfg Config

	// Warn receives non-fatal per-file diagnostics. Defaults to os.Stderr.
	Warn io.Writer

	// SelectFiles, when set, can narrow the discovered file list before
	// processing (interactive mode). Returning ErrAborted cancels the run.
	SelectFiles func(files []string, baseDir string) ([]string, error)
}

func NewScraper(cfg Config) *Scraper {
	return &Scraper{cfg: cfg, Warn: os.Stderr}
}

// ScrapeDirectory runs the whole pipeline over sourceDir and writes the
// aggregate document to {destination}/{outputName}_scraped{ext}. The
// destination directory tree is created if absent. The document is assembled
// fully in memory before any write happens, so a failed run never leaves a
// half-written output file behind.
func (s *Scraper) ScrapeDirectory(sourceDir, destination, outputName string) (*ScrapeResult, error) {
	excluded := buildExcludedDirs(s.cfg)

	files, err := findSourceFiles(sourceDir, excluded, s.cfg.Profile.Extension, !s.cfg.NoIgnore)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoFilesFound
	}

	if s.SelectFiles != nil {
		files, err = s.SelectFiles(files, sourceDir)
		if err != nil {
			return nil, err
		}
		// Selecting nothing means the user backed out, not that the source
		// had nothing to offer.
		if len(files) == 0 {
			return nil, ErrAborted
		}
	}

	var fragments []string
	var processed []string

	for _, path := range files {
		rel, relErr := filepath.Rel(sourceDir, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		content, ok, err := processFile(path, sourceDir, !s.cfg.NoHeaders)
		if err != nil {
			fmt.Fprintf(s.Warn, "Warning: could not read %s: %v\n", rel, err)
			continue
		}
		if !ok {
			continue
		}

		fragments = append(fragments, content)
		processed = append(processed, rel)
	}

	if len(fragments) == 0 {
		return nil, ErrAllFilesEmpty
	}

	document := strings.Join(fragments, "\n")
	lineCount := strings.Count(document, "\n") + 1

	if err := os.MkdirAll(destination, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create destination: %w", err)
	}

	outputPath := filepath.Join(destination, outputName+"_scraped"+s.cfg.Profile.Extension)
	if err := os.WriteFile(outputPath, []byte(document), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write output: %w", err)
	}

	return &ScrapeResult{
		OutputPath:     outputPath,
		FileCount:      len(processed),
		LineCount:      lineCount,
		FilesProcessed: processed,
		Document:       document,
	}, nil
}
