package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var headerSeparator = "// " + strings.Repeat("═", 70)

// processFile reads one source file and runs the cleaning pipeline over it.
// It returns ok=false when the file cleans down to nothing; such files are
// dropped from the aggregate without a warning. Read failures (including
// non-UTF-8 content) are returned to the caller, which treats them as
// per-file warnings rather than aborting the run.
func processFile(path, baseDir string, addHeader bool) (content string, ok bool, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", false, err
	}
	if !utf8.Valid(raw) {
		return "", false, fmt.Errorf("file is not valid UTF-8")
	}

	cleaned := clean(string(raw))
	if strings.TrimSpace(cleaned) == "" {
		return "", false, nil
	}

	if !addHeader {
		return cleaned, true, nil
	}

	rel, relErr := filepath.Rel(baseDir, path)
	if relErr != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	return fmt.Sprintf("%s\n// File: %s\n%s\n%s", headerSeparator, rel, headerSeparator, cleaned), true, nil
}
