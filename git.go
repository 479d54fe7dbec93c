package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// cloneRepository shallow-clones url into a fresh temporary directory and
// returns its path. The caller owns the directory and must remove it when
// done; on clone failure the directory is removed here before returning.
func cloneRepository(url string, progress io.Writer) (string, error) {
	tempDir, err := os.MkdirTemp("", "solscrape-")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary directory: %w", err)
	}

	_, err = git.PlainClone(tempDir, false, &git.CloneOptions{
		URL:           url,
		Depth:         1,
		SingleBranch:  true,
		ReferenceName: plumbing.HEAD,
		Progress:      progress,
	})
	if err != nil {
		_ = os.RemoveAll(tempDir)
		return "", fmt.Errorf("git clone failed: %w", err)
	}

	return tempDir, nil
}

// extractRepoName derives a default output basename from a git URL.
func extractRepoName(url string) string {
	url = strings.TrimRight(url, "/")
	url = strings.TrimSuffix(url, ".git")
	if i := strings.LastIndex(url, "/"); i >= 0 {
		url = url[i+1:]
	}
	if url == "" {
		return "repository"
	}
	return url
}
