package sweep

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// decision is the per-line outcome of classification.
type decision int

const (
	// decisionPreserve emits the line verbatim.
	decisionPreserve decision = iota
	// decisionTruncate keeps the code prefix and discards the comment.
	decisionTruncate
	// decisionDrop omits the line entirely.
	decisionDrop
)

// state carries the per-file classifier state across lines.
type state struct {
	inBlockComment bool
	headerDone     bool
}

// headerWindow is the number of leading lines within which blank lines
// still count as part of the file header.
const headerWindow = 5

// compilePreservePatterns builds the preserved-comment matchers: file-level
// docs (//!), item docs (///), and one pattern per marker keyword
// (TODO, FIXME, ...), matched case-insensitively at the start of the line.
func compilePreservePatterns(markers []string) []*regexp.Regexp {
	patterns := []*regexp.Regexp{
		regexp.MustCompile(`^\s*//!`),
		regexp.MustCompile(`^\s*///`),
	}
	for _, m := range markers {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}
		patterns = append(patterns, regexp.MustCompile(`(?i)^\s*//\s*`+regexp.QuoteMeta(m)))
	}
	return patterns
}

func (s *Sweeper) preserved(line string) bool {
	for _, p := range s.preserve {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

// classify decides the fate of a single line, threading the block-comment
// and header state. It never fails: anything ambiguous is preserved.
// For decisionTruncate the second return value is the emitted line.
func (s *Sweeper) classify(line string, st *state, lineNum int) (decision, string) {
	if s.preserved(line) {
		return decisionPreserve, ""
	}

	// Block comments are kept whole, including their open and close lines.
	if st.inBlockComment {
		if strings.Contains(line, "*/") {
			st.inBlockComment = false
		}
		return decisionPreserve, ""
	}
	if strings.Contains(line, "/*") && !strings.Contains(line, "*/") {
		st.inBlockComment = true
		return decisionPreserve, ""
	}

	// Keep the leading file header (license block, blank padding) intact.
	// Once a non-header line is seen the header is locked done for good.
	if !st.headerDone {
		stripped := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(stripped, "/*"), strings.HasPrefix(stripped, "*"):
			return decisionPreserve, ""
		case stripped == "" && lineNum < headerWindow:
			return decisionPreserve, ""
		default:
			st.headerDone = true
		}
	}

	pos, ok := findLineComment(line)
	if !ok {
		return decisionPreserve, ""
	}

	code := strings.TrimRight(line[:pos], " \t")
	if strings.TrimSpace(code) != "" {
		return decisionTruncate, code
	}

	// Standalone comment: drop only what looks trivial, unless the sweep
	// is running in aggressive mode.
	if s.opts.Aggressive {
		return decisionDrop, ""
	}
	body := strings.ToLower(strings.TrimSpace(line[pos+2:]))
	if utf8.RuneCountInString(body) < s.opts.ShortCommentLimit {
		return decisionDrop, ""
	}
	for _, phrase := range s.opts.TrivialPhrases {
		if phrase != "" && strings.Contains(body, phrase) {
			return decisionDrop, ""
		}
	}
	return decisionPreserve, ""
}

// findLineComment returns the index of the first // that starts a removable
// comment: it must sit outside any string literal and must not be a doc
// token (/// or //!). Quote tracking toggles on " and ' and honors
// backslash escapes; raw-string syntax is not modeled. A doc token outside
// a string ends the scan so that text inside a doc comment (a URL, say)
// is never mistaken for a comment start.
func findLineComment(line string) (int, bool) {
	inString := false
	var quote byte
	escaped := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		if inString {
			if escaped {
				escaped = false
				continue
			}
			if ch == '\\' {
				escaped = true
				continue
			}
			if ch == quote {
				inString = false
			}
			continue
		}
		switch ch {
		case '"', '\'':
			inString = true
			quote = ch
		case '/':
			if i+1 >= len(line) || line[i+1] != '/' {
				continue
			}
			if i+2 < len(line) && (line[i+2] == '/' || line[i+2] == '!') {
				return 0, false
			}
			return i, true
		}
	}
	return 0, false
}
