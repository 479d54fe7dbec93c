package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
)

// selectFilesInteractively lets the user narrow the discovered file list with
// a fuzzy finder before processing. Returns ErrAborted when the user backs
// out with Esc or Ctrl+C.
func selectFilesInteractively(files []string, baseDir string) ([]string, error) {
	display := func(i int) string {
		rel, err := filepath.Rel(baseDir, files[i])
		if err != nil {
			return files[i]
		}
		return filepath.ToSlash(rel)
	}

	idx, err := fuzzyfinder.FindMulti(
		files,
		display,
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return "Tab to multi-select, Enter to confirm, Esc to abort."
			}
			info, statErr := os.Stat(files[i])
			if statErr != nil {
				return fmt.Sprintf("Path: %s\nError getting info: %v", files[i], statErr)
			}
			return fmt.Sprintf("Path: %s\nSize: %d bytes", display(i), info.Size())
		}),
	)
	if err != nil {
		if err == fuzzyfinder.ErrAbort {
			return nil, ErrAborted
		}
		return nil, fmt.Errorf("fuzzy finder error: %w", err)
	}

	selected := make([]string, len(idx))
	for i, n := range idx {
		selected[i] = files[n]
	}
	// Re-sort: FindMulti reports selection order, output order stays lexical.
	sort.Strings(selected)
	return selected, nil
}
