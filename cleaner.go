package main

import (
	"strings"
	"unicode"
)

// parserState is the lexical context the cleaner is in at the current
// position. Exactly one state is active at a time.
type parserState int

const (
	stateNormal parserState = iota
	stateStringDouble
	stateStringSingle
	stateLineComment
	stateBlockComment
)

// removeComments strips // and /* */ comments from C-family source code in a
// single forward pass. String literal contents are reproduced byte-for-byte,
// including comment-looking sequences and backslash escapes. The newline that
// terminates a line comment is kept so line numbering survives cleaning.
func removeComments(code string) string {
	var out strings.Builder
	out.Grow(len(code))
	state := stateNormal

	for i := 0; i < len(code); {
		c := code[i]
		switch state {
		case stateNormal:
			switch {
			case c == '"':
				state = stateStringDouble
				out.WriteByte(c)
				i++
			case c == '\'':
				state = stateStringSingle
				out.WriteByte(c)
				i++
			case c == '/' && i+1 < len(code) && code[i+1] == '/':
				state = stateLineComment
				i += 2
			case c == '/' && i+1 < len(code) && code[i+1] == '*':
				state = stateBlockComment
				i += 2
			default:
				out.WriteByte(c)
				i++
			}

		case stateStringDouble, stateStringSingle:
			out.WriteByte(c)
			if c == '\\' && i+1 < len(code) {
				// Escaped character passes through unconditionally, so an
				// escaped quote never closes the string.
				out.WriteByte(code[i+1])
				i += 2
				continue
			}
			quote := byte('"')
			if state == stateStringSingle {
				quote = '\''
			}
			if c == quote {
				state = stateNormal
			}
			i++

		case stateLineComment:
			if c == '\n' {
				out.WriteByte('\n')
				state = stateNormal
			}
			i++

		case stateBlockComment:
			if c == '*' && i+1 < len(code) && code[i+1] == '/' {
				state = stateNormal
				i += 2
			} else {
				// An unterminated block comment swallows the rest of the
				// input without complaint.
				i++
			}
		}
	}

	return out.String()
}

// removeBlankLines drops empty and whitespace-only lines and trims trailing
// whitespace from the survivors. Leading indentation is untouched. The result
// carries no trailing newline.
func removeBlankLines(code string) string {
	lines := strings.Split(code, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRightFunc(line, unicode.IsSpace)
		if line == "" {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// clean is the full cleaning pipeline for one file's text.
func clean(code string) string {
	return removeBlankLines(removeComments(code))
}
