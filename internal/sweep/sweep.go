// Package sweep removes inline and standalone // comments from C-like
// source text while preserving doc comments (/// and //!), marker comments
// (TODO, FIXME, ...), block comments, and leading file headers. It is a
// line-oriented heuristic, deliberately biased toward preservation: when a
// line cannot be classified with confidence it is emitted unchanged.
package sweep

import (
	"regexp"
	"strings"
)

// Options tunes the classifier. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	// ShortCommentLimit is the rune count below which a standalone
	// comment counts as trivial and is dropped.
	ShortCommentLimit int

	// TrivialPhrases are lowercase substrings that mark a standalone
	// comment as restating the obvious ("get", "update", ...).
	TrivialPhrases []string

	// PreserveMarkers are comment keywords that are always kept
	// regardless of length (TODO, FIXME, SAFETY, ...).
	PreserveMarkers []string

	// Aggressive drops every standalone non-doc, non-marker comment,
	// not just trivial ones.
	Aggressive bool
}

// DefaultOptions returns the built-in tuning.
func DefaultOptions() Options {
	return Options{
		ShortCommentLimit: 15,
		TrivialPhrases: []string{
			"update", "set", "get", "return", "create", "init",
			"check", "validate", "handle", "process", "load",
		},
		PreserveMarkers: []string{"TODO", "FIXME", "NOTE", "SAFETY", "HACK", "XXX"},
	}
}

// Sweeper applies the comment-removal policy to file contents.
type Sweeper struct {
	opts     Options
	preserve []*regexp.Regexp
}

// New builds a Sweeper for the given options.
func New(opts Options) *Sweeper {
	return &Sweeper{
		opts:     opts,
		preserve: compilePreservePatterns(opts.PreserveMarkers),
	}
}

// File rewrites content, removing eligible comments, and reports how many
// comments were removed (truncated trailing comments plus dropped lines).
// The output never has more lines or more bytes than the input, and a
// second pass over the output removes nothing further.
func (s *Sweeper) File(content string) (string, int) {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	removed := 0
	var st state

	for n, line := range lines {
		d, kept := s.classify(line, &st, n)
		switch d {
		case decisionPreserve:
			out = append(out, line)
		case decisionTruncate:
			out = append(out, kept)
			removed++
		case decisionDrop:
			removed++
		}
	}

	// Dropped comment-only lines can leave runs of blanks at the end of
	// the file; collapse those to a single blank line.
	for len(out) > 1 && out[len(out)-1] == "" && out[len(out)-2] == "" {
		out = out[:len(out)-1]
	}

	return strings.Join(out, "\n"), removed
}
