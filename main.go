package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Output
	outputName    string
	noHeaders     bool
	copyClipboard bool
	pdfOutputFile string
	docsURL       string

	// Source handling
	isLocal bool
	quiet   bool

	// Filtering
	includeLib      bool
	includeTest     bool
	includeScript   bool
	noIgnore        bool
	langName        string
	interactiveMode bool

	// Token counting
	disableTokens  bool
	tokenizerType  string
	tokenizerModel string
	tokenizerFile  string
)

// version is set via ldflags at release time.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "solscrape [OPTIONS] <source> [destination]",
	Short: "Scrape a repository's source code into one LLM-ready file",
	Long: `Solscrape clones a git repository (or reads a local directory), strips
comments and blank lines from every source file, and concatenates the result
into a single normalized output file suitable for LLM context windows.`,
	Version:       version,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringVarP(&outputName, "output", "o", "", "Custom output basename (without the _scraped suffix)")
	viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	rootCmd.Flags().BoolVarP(&isLocal, "local", "l", false, "Treat source as a local directory path")
	viper.BindPFlag("local", rootCmd.Flags().Lookup("local"))
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output (only print the result path)")
	viper.BindPFlag("quiet", rootCmd.Flags().Lookup("quiet"))

	rootCmd.Flags().BoolVar(&includeLib, "include-lib", false, "Include lib/ dependencies")
	viper.BindPFlag("include_lib", rootCmd.Flags().Lookup("include-lib"))
	rootCmd.Flags().BoolVar(&includeTest, "include-test", false, "Include test files")
	viper.BindPFlag("include_test", rootCmd.Flags().Lookup("include-test"))
	rootCmd.Flags().BoolVar(&includeScript, "include-script", false, "Include script files")
	viper.BindPFlag("include_script", rootCmd.Flags().Lookup("include-script"))
	rootCmd.Flags().BoolVar(&noHeaders, "no-headers", false, "Omit file separator headers in the output")
	viper.BindPFlag("no_headers", rootCmd.Flags().Lookup("no-headers"))
	rootCmd.Flags().BoolVar(&noIgnore, "no-ignore", false, "Don't respect the source's root .gitignore")
	viper.BindPFlag("no_ignore", rootCmd.Flags().Lookup("no-ignore"))
	rootCmd.Flags().StringVar(&langName, "lang", "solidity", "Language profile to scrape")
	viper.BindPFlag("lang", rootCmd.Flags().Lookup("lang"))
	rootCmd.Flags().BoolVar(&interactiveMode, "interactive", false, "Pick files to include with a fuzzy finder")
	viper.BindPFlag("interactive", rootCmd.Flags().Lookup("interactive"))

	rootCmd.Flags().BoolVarP(&copyClipboard, "clipboard", "c", false, "Copy the aggregate document to the clipboard")
	viper.BindPFlag("clipboard", rootCmd.Flags().Lookup("clipboard"))
	rootCmd.Flags().StringVar(&pdfOutputFile, "pdf", "", "Additionally render the output as a syntax-highlighted PDF")
	viper.BindPFlag("pdf", rootCmd.Flags().Lookup("pdf"))
	rootCmd.Flags().StringVar(&docsURL, "docs", "", "Fetch a documentation page and save it as Markdown next to the output")
	viper.BindPFlag("docs", rootCmd.Flags().Lookup("docs"))

	rootCmd.Flags().BoolVar(&disableTokens, "no-tokens", false, "Disable token counting")
	viper.BindPFlag("no_tokens", rootCmd.Flags().Lookup("no-tokens"))
	rootCmd.Flags().StringVar(&tokenizerType, "tokenizer", "tiktoken", "Tokenizer to use: tiktoken or huggingface")
	viper.BindPFlag("tokenizer", rootCmd.Flags().Lookup("tokenizer"))
	rootCmd.Flags().StringVar(&tokenizerModel, "model", "", "Model name for the tokenizer (e.g. gpt-4o, gpt2)")
	viper.BindPFlag("model", rootCmd.Flags().Lookup("model"))
	rootCmd.Flags().StringVar(&tokenizerFile, "tokenizer-file", "", "Path to a local tokenizer file")
	viper.BindPFlag("tokenizer_file", rootCmd.Flags().Lookup("tokenizer-file"))

	viper.SetDefault("lang", "solidity")
	viper.SetDefault("tokenizer", "tiktoken")
	viper.SetDefault("no_tokens", false)
	viper.SetDefault("no_ignore", false)
}

// initConfig reads the config file and SOLSCRAPE_* environment variables.
func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "solscrape"))
	}
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.SetEnvPrefix("SOLSCRAPE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
		}
	}

	syncFromViper()
}

// syncFromViper copies the resolved value of every option the user did not
// set on the command line back into its flag variable, so values flow
// Default < Config < Env < Flag. BindPFlag registers each flag's default
// with viper, so an option absent from config and environment reads back
// unchanged.
func syncFromViper() {
	flags := rootCmd.Flags()
	sync := []struct {
		flag string
		set  func()
	}{
		{"output", func() { outputName = viper.GetString("output") }},
		{"local", func() { isLocal = viper.GetBool("local") }},
		{"quiet", func() { quiet = viper.GetBool("quiet") }},
		{"include-lib", func() { includeLib = viper.GetBool("include_lib") }},
		{"include-test", func() { includeTest = viper.GetBool("include_test") }},
		{"include-script", func() { includeScript = viper.GetBool("include_script") }},
		{"no-headers", func() { noHeaders = viper.GetBool("no_headers") }},
		{"no-ignore", func() { noIgnore = viper.GetBool("no_ignore") }},
		{"lang", func() { langName = viper.GetString("lang") }},
		{"interactive", func() { interactiveMode = viper.GetBool("interactive") }},
		{"clipboard", func() { copyClipboard = viper.GetBool("clipboard") }},
		{"pdf", func() { pdfOutputFile = viper.GetString("pdf") }},
		{"docs", func() { docsURL = viper.GetString("docs") }},
		{"no-tokens", func() { disableTokens = viper.GetBool("no_tokens") }},
		{"tokenizer", func() { tokenizerType = viper.GetString("tokenizer") }},
		{"model", func() { tokenizerModel = viper.GetString("model") }},
		{"tokenizer-file", func() { tokenizerFile = viper.GetString("tokenizer_file") }},
	}
	for _, s := range sync {
		if !flags.Changed(s.flag) {
			s.set()
		}
	}
}

func run(cmd *cobra.Command, args []string) error {
	profile, err := resolveProfile(langName)
	if err != nil {
		return err
	}

	cfg := Config{
		IncludeLib:    includeLib,
		IncludeTest:   includeTest,
		IncludeScript: includeScript,
		NoHeaders:     noHeaders,
		NoIgnore:      noIgnore,
		Quiet:         quiet,
		Profile:       profile,
	}

	source := args[0]
	destination := "."
	if len(args) == 2 {
		destination = args[1]
	}

	if !quiet {
		printBanner()
		fmt.Printf("Source:      %s\n", source)
		fmt.Printf("Destination: %s\n", destination)
		fmt.Println()
	}

	// Resolve the directory to scrape and the output basename. The remote
	// path goes through a temp clone that is removed on every exit path.
	var sourceDir, name string
	if isLocal {
		info, statErr := os.Stat(source)
		if statErr != nil {
			return fmt.Errorf("source path does not exist: %s", source)
		}
		if !info.IsDir() {
			return fmt.Errorf("source path is not a directory: %s", source)
		}
		if !quiet {
			fmt.Println("Scanning local directory...")
		}
		sourceDir = source
		name = filepath.Base(filepath.Clean(source))
		if name == "." || name == string(filepath.Separator) {
			name = "local"
		}
	} else {
		if !quiet {
			fmt.Println("Cloning repository...")
		}
		progress := io.Writer(nil)
		if !quiet {
			progress = os.Stdout
		}
		tempDir, cloneErr := cloneRepository(source, progress)
		if cloneErr != nil {
			return cloneErr
		}
		defer os.RemoveAll(tempDir)
		if !quiet {
			fmt.Println("Processing files...")
		}
		sourceDir = tempDir
		name = extractRepoName(source)
	}
	if outputName != "" {
		name = outputName
	}

	scraper := NewScraper(cfg)
	if quiet {
		scraper.Warn = io.Discard
	}
	if interactiveMode {
		scraper.SelectFiles = selectFilesInteractively
	}

	result, err := scraper.ScrapeDirectory(sourceDir, destination, name)
	if err != nil {
		if errors.Is(err, ErrAborted) {
			fmt.Println("Aborted.")
			return nil
		}
		return err
	}

	var tokenCount int
	tokensCounted := false
	if !disableTokens {
		tk, tkErr := getTokenizer(tokenizerType, tokenizerModel, tokenizerFile)
		if tkErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: token counting disabled: %v\n", tkErr)
		} else {
			tokenCount = tk.CountTokens(result.Document)
			tokensCounted = true
			tk.Close()
		}
	}

	if pdfOutputFile != "" {
		if pdfErr := writePDF(result.Document, name, pdfOutputFile, profile); pdfErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", pdfErr)
		} else if !quiet {
			fmt.Printf("PDF saved to %s\n", pdfOutputFile)
		}
	}

	if docsURL != "" {
		docsPath, docsErr := fetchDocsPage(docsURL, destination, name)
		if docsErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not capture docs page: %v\n", docsErr)
		} else if !quiet {
			fmt.Printf("Docs saved to %s\n", docsPath)
		}
	}

	if copyClipboard {
		if clipErr := clipboard.WriteAll(result.Document); clipErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not copy to clipboard: %v\n", clipErr)
		} else if !quiet {
			fmt.Println("Output copied to clipboard.")
		}
	}

	if quiet {
		fmt.Println(result.OutputPath)
	} else {
		printSummary(os.Stdout, result, tokenCount, tokensCounted)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		os.Exit(1)
	}
}
