package main

// Config carries every option the scrape pipeline reads. It is assembled once
// in main from flags, the config file, and the environment, and never mutated
// afterwards.
type Config struct {
	IncludeLib    bool // keep lib/ dependency trees
	IncludeTest   bool // keep test directories
	IncludeScript bool // keep script directories
	NoHeaders     bool // omit per-file separator headers
	NoIgnore      bool // don't respect a root .gitignore during discovery
	Quiet         bool
	Profile       Profile // language being scraped
}

// ScrapeResult describes one completed run.
type ScrapeResult struct {
	OutputPath     string
	FileCount      int
	LineCount      int
	FilesProcessed []string // relative paths, in output order
	Document       string   // the aggregate document as written to disk
}
