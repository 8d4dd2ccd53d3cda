package rex_test

import (
	"testing"

	"github.com/rexlang/rex"
)

func TestCompileMatchScenarios(t *testing.T) {
	tests := []struct {
		pattern, input, want string
		wantMatch            bool
	}{
		{"aa", "aabyeh", "aa", true},
		{"a|", "biujwk", "", true},
		{"a(b|c)+\\1", "abcc", "abcc", true},
		{"a(b|c)+\\1", "abcb", "", false},
		{"(a+|b*c)[]-][a-z]+", "c]aby{z", "c]aby", true},
	}

	for _, tt := range tests {
		re, err := rex.Compile(tt.pattern)
		if err != nil {
			t.Fatalf("Compile(%q): %v", tt.pattern, err)
		}
		m, ok := re.Match(tt.input)
		if ok != tt.wantMatch {
			t.Fatalf("Compile(%q).Match(%q) ok = %v, want %v", tt.pattern, tt.input, ok, tt.wantMatch)
		}
		if !ok {
			continue
		}
		got, _ := m.Group(0)
		if got != tt.want {
			t.Fatalf("Compile(%q).Match(%q).Group(0) = %q, want %q", tt.pattern, tt.input, got, tt.want)
		}
	}
}

func TestFindAllStarYieldsFiveMatches(t *testing.T) {
	re := rex.MustCompile("a*")
	matches := re.FindAll("bcdaaaa")
	var got []string
	for _, m := range matches {
		s, _ := m.Group(0)
		got = append(got, s)
	}
	want := []string{"", "", "", "aaaa", ""}
	if len(got) != len(want) {
		t.Fatalf("got %d matches %q, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("match %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSearchNestedBackReferences(t *testing.T) {
	re := rex.MustCompile(`(([A-Za-z_]+)[0-9]+) \2\1`)
	m, ok := re.Search("123abc123 abcabc123", 0)
	if !ok {
		t.Fatal("expected a match")
	}
	start, end, _ := m.Span(0)
	if start != 3 || end != 19 {
		t.Fatalf("Span(0) = (%d,%d), want (3,19)", start, end)
	}
	if got, _ := m.Group(0); got != "abc123 abcabc123" {
		t.Fatalf("Group(0) = %q, want %q", got, "abc123 abcabc123")
	}
}

func TestFindAllStarMatchesOneRun(t *testing.T) {
	re := rex.MustCompile("a*")
	matches := re.FindAll("bcdaaaa")
	var nonEmpty []string
	for _, m := range matches {
		if s, _ := m.Group(0); s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	if len(nonEmpty) != 1 || nonEmpty[0] != "aaaa" {
		t.Fatalf("nonEmpty = %v, want [aaaa]", nonEmpty)
	}
}

func TestFindIterStopsEarly(t *testing.T) {
	re := rex.MustCompile("a")
	it := re.FindIter("aaaa")
	n := 0
	for {
		_, ok := it.Next()
		if !ok {
			break
		}
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("stopped iteration early: got %d matches, want 2", n)
	}
}

func TestSearchSkipsToFirstMatch(t *testing.T) {
	re := rex.MustCompile("cd")
	m, ok := re.Search("abcdef", 0)
	if !ok {
		t.Fatal("expected a match")
	}
	start, end, _ := m.Span(0)
	if start != 2 || end != 4 {
		t.Fatalf("Span(0) = (%d,%d), want (2,4)", start, end)
	}
}

func TestNamedModuleLevelFunctions(t *testing.T) {
	m, ok, err := rex.Search("b+", "aabbbcc")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if !ok {
		t.Fatal("expected a match")
	}
	got, _ := m.Group(0)
	if got != "bbb" {
		t.Fatalf("Group(0) = %q, want %q", got, "bbb")
	}
}

func TestCompileOptLevelsAreEquivalent(t *testing.T) {
	for _, opt := range []string{rex.OptNone, rex.OptBasic} {
		re, err := rex.CompileOpt("a(b|c)+", opt)
		if err != nil {
			t.Fatalf("CompileOpt(%q): %v", opt, err)
		}
		m, ok := re.Match("abcc")
		if !ok {
			t.Fatalf("opt %q: expected a match", opt)
		}
		if got, _ := m.Group(0); got != "abcc" {
			t.Fatalf("opt %q: Group(0) = %q, want %q", opt, got, "abcc")
		}
	}

	if _, err := rex.CompileOpt("a", "O9"); err == nil {
		t.Fatal("expected an error for an unknown optimization level")
	}
}

func TestInvalidBackReferenceIsParseError(t *testing.T) {
	_, err := rex.Compile(`\1`)
	if err == nil {
		t.Fatal("expected a parse error for a back-reference to a nonexistent group")
	}
}

func TestMaxRecursionDepthRejectsDeepNesting(t *testing.T) {
	pattern := ""
	for i := 0; i < 50; i++ {
		pattern += "("
	}
	pattern += "a"
	for i := 0; i < 50; i++ {
		pattern += ")"
	}

	cfg := rex.DefaultConfig()
	cfg.MaxRecursionDepth = 5
	_, err := rex.CompileWithConfig(pattern, cfg)
	if err == nil {
		t.Fatal("expected a parse error from the recursion-depth limit")
	}
}
