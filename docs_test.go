package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLToMarkdownStripsChrome(t *testing.T) {
	page := []byte(`<html><head><title>t</title></head><body>
<nav><a href="/">home</a></nav>
<script>alert("x")</script>
<h1>Protocol Docs</h1>
<p>Read the <strong>overview</strong> first.</p>
<footer>copyright</footer>
</body></html>`)

	markdown, err := htmlToMarkdown(page)
	require.NoError(t, err)

	assert.Contains(t, markdown, "# Protocol Docs")
	assert.Contains(t, markdown, "**overview**")
	assert.NotContains(t, markdown, "alert")
	assert.NotContains(t, markdown, "copyright")
	assert.NotContains(t, markdown, "home")
}
