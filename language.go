package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Profile describes the language being scraped: which files to pick up and
// which chroma lexer renders them. The cleaning pass itself is the same for
// every profile; all of these share C-family comment and string syntax.
type Profile struct {
	Name      string `yaml:"name"`
	Extension string `yaml:"extension"`
	Lexer     string `yaml:"lexer"`
}

var builtinProfiles = map[string]Profile{
	"solidity":   {Name: "Solidity", Extension: ".sol", Lexer: "Solidity"},
	"javascript": {Name: "JavaScript", Extension: ".js", Lexer: "JavaScript"},
	"typescript": {Name: "TypeScript", Extension: ".ts", Lexer: "TypeScript"},
	"c":          {Name: "C", Extension: ".c", Lexer: "C"},
	"cpp":        {Name: "C++", Extension: ".cpp", Lexer: "C++"},
	"java":       {Name: "Java", Extension: ".java", Lexer: "Java"},
	"go":         {Name: "Go", Extension: ".go", Lexer: "Go"},
	"rust":       {Name: "Rust", Extension: ".rs", Lexer: "Rust"},
}

// loadProfiles merges an optional languages.yml over the builtin table. The
// file is looked up in ~/.config/solscrape and the current directory, the same
// places the config file lives.
func loadProfiles() map[string]Profile {
	profiles := make(map[string]Profile, len(builtinProfiles))
	for name, p := range builtinProfiles {
		profiles[name] = p
	}

	searchDirs := []string{}
	if home, err := os.UserHomeDir(); err == nil {
		searchDirs = append(searchDirs, filepath.Join(home, ".config", "solscrape"))
	}
	searchDirs = append(searchDirs, ".")

	for _, dir := range searchDirs {
		path := filepath.Join(dir, "languages.yml")
		raw, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var extra map[string]Profile
		if err := yaml.Unmarshal(raw, &extra); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not parse %s: %v\n", path, err)
			continue
		}
		for name, p := range extra {
			profiles[strings.ToLower(name)] = p
		}
		break
	}

	return profiles
}

// resolveProfile looks up the profile for lang, case-insensitively.
func resolveProfile(lang string) (Profile, error) {
	profiles := loadProfiles()
	p, ok := profiles[strings.ToLower(lang)]
	if !ok {
		known := make([]string, 0, len(profiles))
		for name := range profiles {
			known = append(known, name)
		}
		sort.Strings(known)
		return Profile{}, fmt.Errorf("unknown language %q (known: %s)", lang, strings.Join(known, ", "))
	}
	if p.Extension != "" && !strings.HasPrefix(p.Extension, ".") {
		p.Extension = "." + p.Extension
	}
	return p, nil
}
