package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
)

// fetchDocsPage downloads one documentation page, reduces it to readable
// Markdown, and writes it beside the scraped output as {name}_docs.md. The
// caller treats any error here as a warning; the scrape result stands on its
// own.
func fetchDocsPage(url, destination, outputName string) (string, error) {
	res, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", fmt.Errorf("failed to fetch %s: status code %d", url, res.StatusCode)
	}
	contentType := res.Header.Get("Content-Type")
	if !strings.Contains(strings.ToLower(contentType), "text/html") {
		return "", fmt.Errorf("unsupported content type %q for %s", contentType, url)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body from %s: %w", url, err)
	}

	markdown, err := htmlToMarkdown(body)
	if err != nil {
		return "", err
	}

	outputPath := filepath.Join(destination, outputName+"_docs.md")
	if err := os.WriteFile(outputPath, []byte(markdown), 0o644); err != nil {
		return "", fmt.Errorf("failed to write docs file: %w", err)
	}
	return outputPath, nil
}

// htmlToMarkdown strips non-content nodes and converts what remains.
func htmlToMarkdown(body []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find("script, style, nav, header, footer, aside").Remove()

	html, err := doc.Find("body").Html()
	if err != nil {
		return "", fmt.Errorf("failed to extract page body: %w", err)
	}

	converter := md.NewConverter("", true, nil)
	markdown, err := converter.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to Markdown: %w", err)
	}
	return markdown, nil
}
