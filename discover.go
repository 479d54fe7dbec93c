package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	gitignore "github.com/monochromegane/go-gitignore"
)

// Directories never worth scraping, regardless of flags: version control
// metadata, dependency caches, and build artifacts.
var baseExcludedDirs = []string{
	".git",
	"node_modules",
	"out",
	"cache",
	"artifacts",
	"build",
	"coverage",
	".deps",
	"dependencies",
}

// buildExcludedDirs returns the set of directory basenames the walk skips.
// lib, test, and script directories are excluded unless opted in, in both the
// lowercase and capitalized spellings projects actually use.
func buildExcludedDirs(cfg Config) map[string]struct{} {
	excluded := make(map[string]struct{}, len(baseExcludedDirs)+9)
	for _, d := range baseExcludedDirs {
		excluded[d] = struct{}{}
	}

	if !cfg.IncludeLib {
		excluded["lib"] = struct{}{}
	}
	if !cfg.IncludeTest {
		for _, d := range []string{"test", "tests", "Test", "Tests"} {
			excluded[d] = struct{}{}
		}
	}
	if !cfg.IncludeScript {
		for _, d := range []string{"script", "scripts", "Script", "Scripts"} {
			excluded[d] = struct{}{}
		}
	}

	return excluded
}

// findSourceFiles walks root and collects every file with the target
// extension, skipping excluded directory subtrees entirely. The result is
// sorted ascending by path so output order is deterministic. Walk errors are
// fatal: a partially listed tree would silently change the output.
func findSourceFiles(root string, excluded map[string]struct{}, ext string, respectIgnore bool) ([]string, error) {
	var matcher gitignore.IgnoreMatcher
	if respectIgnore {
		// go-gitignore matches against one .gitignore; the root-level file
		// covers the overwhelmingly common layout.
		gitIgnorePath := filepath.Join(root, ".gitignore")
		if _, err := os.Stat(gitIgnorePath); err == nil {
			m, err := gitignore.NewGitIgnore(gitIgnorePath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not parse %s: %v\n", gitIgnorePath, err)
			} else {
				matcher = m
			}
		}
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		if d.IsDir() {
			if _, skip := excluded[d.Name()]; skip {
				return fs.SkipDir
			}
			if matcher != nil && matcher.Match(path, true) {
				return fs.SkipDir
			}
			return nil
		}

		if filepath.Ext(path) != ext {
			return nil
		}
		if matcher != nil && matcher.Match(path, false) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory: %w", err)
	}

	sort.Strings(files)
	return files, nil
}
