package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		NoIgnore: true,
		Profile:  Profile{Name: "Solidity", Extension: ".sol", Lexer: "Solidity"},
	}
}

func TestScrapeDirectoryEndToEnd(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	writeTestFile(t, filepath.Join(src, "A.sol"), "// drop\ncode1;")
	writeTestFile(t, filepath.Join(src, "B.sol"), "   \n\t\n")

	s := NewScraper(testConfig())
	result, err := s.ScrapeDirectory(src, dest, "proj")
	require.NoError(t, err)

	assert.Equal(t, 1, result.FileCount)
	assert.Equal(t, []string{"A.sol"}, result.FilesProcessed)
	assert.Contains(t, result.Document, "code1;")
	assert.NotContains(t, result.Document, "B.sol")

	assert.Equal(t, filepath.Join(dest, "proj_scraped.sol"), result.OutputPath)
	written, err := os.ReadFile(result.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, result.Document, string(written))

	// Header, file line, header, one code line.
	assert.Equal(t, 4, result.LineCount)
}

func TestScrapeDirectoryNoHeaders(t *testing.T) {
	src := t.TempDir()
	cfg := testConfig()
	cfg.NoHeaders = true
	writeTestFile(t, filepath.Join(src, "A.sol"), "code1; // drop")
	writeTestFile(t, filepath.Join(src, "B.sol"), "code2;")

	result, err := NewScraper(cfg).ScrapeDirectory(src, t.TempDir(), "proj")
	require.NoError(t, err)

	assert.Equal(t, "code1;\ncode2;", result.Document)
	assert.Equal(t, 2, result.LineCount)
	assert.Equal(t, []string{"A.sol", "B.sol"}, result.FilesProcessed)
}

func TestScrapeDirectoryNoFilesFound(t *testing.T) {
	_, err := NewScraper(testConfig()).ScrapeDirectory(t.TempDir(), t.TempDir(), "proj")
	assert.ErrorIs(t, err, ErrNoFilesFound)
}

func TestScrapeDirectoryAllFilesEmpty(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	writeTestFile(t, filepath.Join(src, "OnlyComments.sol"), "// one\n/* two */\n")

	_, err := NewScraper(testConfig()).ScrapeDirectory(src, dest, "proj")
	assert.ErrorIs(t, err, ErrAllFilesEmpty)

	// A failed run leaves no output behind.
	_, statErr := os.Stat(filepath.Join(dest, "proj_scraped.sol"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestScrapeDirectoryReadErrorIsWarningNotFatal(t *testing.T) {
	src := t.TempDir()
	writeTestFile(t, filepath.Join(src, "Good.sol"), "code;")
	require.NoError(t, os.WriteFile(filepath.Join(src, "Bad.sol"), []byte{0xff, 0xfe}, 0o644))

	s := NewScraper(testConfig())
	var warnings bytes.Buffer
	s.Warn = &warnings

	result, err := s.ScrapeDirectory(src, t.TempDir(), "proj")
	require.NoError(t, err)

	assert.Equal(t, 1, result.FileCount)
	assert.Equal(t, []string{"Good.sol"}, result.FilesProcessed)
	assert.Contains(t, warnings.String(), "Warning: could not read Bad.sol")
}

func TestScrapeDirectoryCreatesDestinationTree(t *testing.T) {
	src := t.TempDir()
	writeTestFile(t, filepath.Join(src, "A.sol"), "code;")
	dest := filepath.Join(t.TempDir(), "nested", "deeper")

	result, err := NewScraper(testConfig()).ScrapeDirectory(src, dest, "proj")
	require.NoError(t, err)
	assert.FileExists(t, result.OutputPath)
}

func TestScrapeDirectorySelectFilesHook(t *testing.T) {
	src := t.TempDir()
	writeTestFile(t, filepath.Join(src, "A.sol"), "a;")
	writeTestFile(t, filepath.Join(src, "B.sol"), "b;")

	s := NewScraper(testConfig())
	s.SelectFiles = func(files []string, baseDir string) ([]string, error) {
		assert.Equal(t, src, baseDir)
		assert.Len(t, files, 2)
		return files[:1], nil
	}

	result, err := s.ScrapeDirectory(src, t.TempDir(), "proj")
	require.NoError(t, err)
	assert.Equal(t, []string{"A.sol"}, result.FilesProcessed)
}

func TestScrapeDirectorySelectFilesAbort(t *testing.T) {
	src := t.TempDir()
	writeTestFile(t, filepath.Join(src, "A.sol"), "a;")

	s := NewScraper(testConfig())
	s.SelectFiles = func(files []string, baseDir string) ([]string, error) {
		return nil, ErrAborted
	}

	_, err := s.ScrapeDirectory(src, t.TempDir(), "proj")
	assert.ErrorIs(t, err, ErrAborted)
}

func TestScrapeDirectorySelectFilesEmptySelectionIsAbort(t *testing.T) {
	src := t.TempDir()
	writeTestFile(t, filepath.Join(src, "A.sol"), "a;")

	s := NewScraper(testConfig())
	s.SelectFiles = func(files []string, baseDir string) ([]string, error) {
		return nil, nil
	}

	_, err := s.ScrapeDirectory(src, t.TempDir(), "proj")
	assert.ErrorIs(t, err, ErrAborted)
	assert.NotErrorIs(t, err, ErrNoFilesFound)
}

func TestScrapeDirectorySortedOutputOrder(t *testing.T) {
	src := t.TempDir()
	writeTestFile(t, filepath.Join(src, "z.sol"), "z;")
	writeTestFile(t, filepath.Join(src, "a.sol"), "a;")
	writeTestFile(t, filepath.Join(src, "m", "b.sol"), "b;")

	result, err := NewScraper(testConfig()).ScrapeDirectory(src, t.TempDir(), "proj")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.sol", "m/b.sol", "z.sol"}, result.FilesProcessed)
}
