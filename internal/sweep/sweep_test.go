package sweep

import (
	"strings"
	"testing"
)

func newDefault(t *testing.T) *Sweeper {
	t.Helper()
	return New(DefaultOptions())
}

func TestTrailingCommentTruncated(t *testing.T) {
	out, removed := newDefault(t).File("let x = 5; // set x")
	if out != "let x = 5;" {
		t.Fatalf("got %q", out)
	}
	if removed != 1 {
		t.Fatalf("removed=%d, want 1", removed)
	}
}

func TestItemDocCommentPreserved(t *testing.T) {
	in := "/// Computes the checksum."
	out, removed := newDefault(t).File(in)
	if out != in || removed != 0 {
		t.Fatalf("got %q removed=%d", out, removed)
	}
}

func TestFileDocCommentPreserved(t *testing.T) {
	in := "//! Module-level documentation."
	out, removed := newDefault(t).File(in)
	if out != in || removed != 0 {
		t.Fatalf("got %q removed=%d", out, removed)
	}
}

func TestMarkerCommentsPreserved(t *testing.T) {
	for _, in := range []string{
		"    // TODO: handle overflow",
		"// FIXME broken on windows",
		"  //NOTE: short",
		"// safety: caller holds the lock",
		"\t// HACK",
		"// xxx revisit",
	} {
		out, removed := newDefault(t).File(in)
		if out != in || removed != 0 {
			t.Fatalf("%q: got %q removed=%d", in, out, removed)
		}
	}
}

func TestTrivialStandaloneCommentDropped(t *testing.T) {
	out, removed := newDefault(t).File("fn f() {}\n    // get value\nfn g() {}")
	if out != "fn f() {}\nfn g() {}" {
		t.Fatalf("got %q", out)
	}
	if removed != 1 {
		t.Fatalf("removed=%d, want 1", removed)
	}
}

func TestLongStandaloneCommentPreserved(t *testing.T) {
	in := "fn f() {}\n// balances the tree after a left-heavy insertion"
	out, removed := newDefault(t).File(in)
	if out != in || removed != 0 {
		t.Fatalf("got %q removed=%d", out, removed)
	}
}

func TestAggressiveDropsAllStandaloneComments(t *testing.T) {
	opts := DefaultOptions()
	opts.Aggressive = true
	s := New(opts)

	out, removed := s.File("fn f() {}\n// balances the tree after a left-heavy insertion")
	if out != "fn f() {}" {
		t.Fatalf("got %q", out)
	}
	if removed != 1 {
		t.Fatalf("removed=%d, want 1", removed)
	}

	// Markers survive aggressive mode.
	in := "fn f() {}\n// TODO: rebalance lazily"
	out, removed = s.File(in)
	if out != in || removed != 0 {
		t.Fatalf("got %q removed=%d", out, removed)
	}
}

func TestCommentTokenInsideStringPreserved(t *testing.T) {
	for _, in := range []string{
		`let url = "https://example.com/path";`,
		`let s = "quoted \" // still inside";`,
		`let c = '/'; let d = '/';`,
	} {
		out, removed := newDefault(t).File(in)
		if out != in || removed != 0 {
			t.Fatalf("%q: got %q removed=%d", in, out, removed)
		}
	}
}

func TestCommentAfterStringTruncated(t *testing.T) {
	out, removed := newDefault(t).File(`let s = "ok"; // explain s`)
	if out != `let s = "ok";` {
		t.Fatalf("got %q", out)
	}
	if removed != 1 {
		t.Fatalf("removed=%d, want 1", removed)
	}
}

func TestBlockCommentPreserved(t *testing.T) {
	in := strings.Join([]string{
		"fn f() {}",
		"/* multi",
		"   // looks like a line comment",
		"   line */",
		"fn g() {}",
	}, "\n")
	out, removed := newDefault(t).File(in)
	if out != in || removed != 0 {
		t.Fatalf("got %q removed=%d", out, removed)
	}
}

func TestFileHeaderPreserved(t *testing.T) {
	in := strings.Join([]string{
		"/* Copyright 2026.",
		" * All rights reserved.",
		" */",
		"",
		"fn f() {} // trailing",
	}, "\n")
	want := strings.Join([]string{
		"/* Copyright 2026.",
		" * All rights reserved.",
		" */",
		"",
		"fn f() {}",
	}, "\n")
	out, removed := newDefault(t).File(in)
	if out != want {
		t.Fatalf("got %q", out)
	}
	if removed != 1 {
		t.Fatalf("removed=%d, want 1", removed)
	}
}

func TestHeaderLockedAfterFirstCodeLine(t *testing.T) {
	// A * line past the header must not be treated as header material,
	// but it carries no // so it is preserved anyway; the comment next
	// to it is still removed.
	in := "fn f() {}\nlet y = 2; // set y"
	out, _ := newDefault(t).File(in)
	if out != "fn f() {}\nlet y = 2;" {
		t.Fatalf("got %q", out)
	}
}

func TestAllDocFileUntouched(t *testing.T) {
	in := strings.Join([]string{
		"//! Crate docs.",
		"/// Item docs.",
		"// TODO: expand docs",
	}, "\n")
	out, removed := newDefault(t).File(in)
	if out != in {
		t.Fatalf("got %q", out)
	}
	if removed != 0 {
		t.Fatalf("removed=%d, want 0", removed)
	}
}

func TestIdempotent(t *testing.T) {
	in := strings.Join([]string{
		"/* header */",
		"",
		"//! Crate docs.",
		"fn f() { let x = 1; } // set x",
		"// get",
		"// a comment long enough to survive the trivial filter",
		`let url = "https://example.com"; // trailing`,
		"",
		"",
	}, "\n")
	s := newDefault(t)
	once, removed1 := s.File(in)
	twice, removed2 := s.File(once)
	if twice != once {
		t.Fatalf("second pass changed output:\nonce:  %q\ntwice: %q", once, twice)
	}
	if removed1 == 0 || removed2 != 0 {
		t.Fatalf("removed1=%d removed2=%d", removed1, removed2)
	}
}

func TestMonotonicShrink(t *testing.T) {
	inputs := []string{
		"let x = 5; // set x\n// get\nfn f() {}",
		"/// docs\nfn f() {}\n\n\n",
		"// 日本語のコメント\nlet x = 1;",
		"",
	}
	s := newDefault(t)
	for _, in := range inputs {
		out, _ := s.File(in)
		if len(out) > len(in) {
			t.Fatalf("output grew: %d > %d for %q", len(out), len(in), in)
		}
		if strings.Count(out, "\n") > strings.Count(in, "\n") {
			t.Fatalf("line count grew for %q", in)
		}
	}
}

func TestTrailingBlankRunsCollapsed(t *testing.T) {
	in := "fn f() {}\n\n// get\n// set\n"
	out, removed := newDefault(t).File(in)
	if out != "fn f() {}\n" {
		t.Fatalf("got %q", out)
	}
	if removed != 2 {
		t.Fatalf("removed=%d, want 2", removed)
	}
}

func TestTruncationTrimsTrailingWhitespace(t *testing.T) {
	out, _ := newDefault(t).File("let x = 5;   \t// set x")
	if out != "let x = 5;" {
		t.Fatalf("got %q", out)
	}
}

func TestShortCommentLimitCountsRunes(t *testing.T) {
	opts := DefaultOptions()
	opts.TrivialPhrases = nil
	s := New(opts)

	// 14 runes: dropped. The same text padded past the limit survives.
	out, removed := s.File("// 日本語日本語日本語日本語日本")
	if out != "" || removed != 1 {
		t.Fatalf("got %q removed=%d", out, removed)
	}
	in := "// 日本語日本語日本語日本語日本語日本語"
	out, removed = s.File(in)
	if out != in || removed != 0 {
		t.Fatalf("got %q removed=%d", out, removed)
	}
}

func TestFindLineComment(t *testing.T) {
	cases := []struct {
		line string
		pos  int
		ok   bool
	}{
		{"let x = 1; // c", 11, true},
		{"// standalone", 0, true},
		{"/// doc", 0, false},
		{"//! doc", 0, false},
		{`"//"`, 0, false},
		{"let x = 1;", 0, false},
		{"a / b // ratio", 6, true},
	}
	for _, c := range cases {
		pos, ok := findLineComment(c.line)
		if ok != c.ok || (ok && pos != c.pos) {
			t.Fatalf("%q: got pos=%d ok=%v, want pos=%d ok=%v", c.line, pos, ok, c.pos, c.ok)
		}
	}
}
