// Package rex is a backtracking regex engine: a recursive-descent parser,
// a Thompson-construction NFA builder, and a depth-first execution engine
// with capture groups and back-reference support.
//
// Basic usage:
//
//	re, err := rex.Compile(`a(b|c)+\1`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m, ok := re.Match("abcc")
//	if ok {
//	    g, _ := m.Group(0)
//	    fmt.Println(g) // abcc
//	}
//
// Scope: this is the core matching engine only. There is no DFA
// compilation, no runtime anchor enforcement, no lookaround, and no
// bounded repetition ({m,n}).
package rex

import (
	"fmt"

	"github.com/rexlang/rex/ast"
	"github.com/rexlang/rex/backtrack"
	"github.com/rexlang/rex/nfa"
	"github.com/rexlang/rex/parser"
)

// Regex is a compiled pattern, ready to match against input strings.
//
// A Regex is immutable after Compile returns and is safe to use
// concurrently from multiple goroutines.
type Regex struct {
	pattern   string
	ast       ast.Node
	graph     *nfa.NFA
	engine    *backtrack.Engine
	numGroups int
}

// NumGroups returns how many capture groups the pattern defines, not
// counting group 0 (the whole match).
func (r *Regex) NumGroups() int { return r.numGroups }

// Compile parses and builds pattern with DefaultConfig.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileOpt is Compile at an explicit optimization level: OptNone ("O0")
// or OptBasic ("O1"). The two compile identical automata today — no
// optimization pass is defined — so the level has no observable effect on
// matching.
func CompileOpt(pattern, opt string) (*Regex, error) {
	cfg := DefaultConfig()
	cfg.OptLevel = opt
	return CompileWithConfig(pattern, cfg)
}

// MustCompile is Compile but panics on error, for patterns known to be
// valid ahead of time (e.g. package-level vars).
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("rex: Compile(%q): %v", pattern, err))
	}
	return re
}

// CompileWithConfig compiles pattern under the given Config: cfg.Optimize
// runs over the parsed tree before it is compiled to an NFA, and
// cfg.MaxRecursionDepth bounds the parser's own recursion.
func CompileWithConfig(pattern string, cfg Config) (*Regex, error) {
	switch cfg.OptLevel {
	case "", OptNone, OptBasic:
	default:
		return nil, fmt.Errorf("rex: unknown optimization level %q", cfg.OptLevel)
	}

	tree, numGroups, err := parser.ParseCounting(pattern, cfg.MaxRecursionDepth)
	if err != nil {
		return nil, err
	}

	optimize := cfg.Optimize
	if optimize == nil {
		optimize = identityOptimize
	}
	tree = optimize(tree)

	graph, err := nfa.Build(tree)
	if err != nil {
		return nil, err
	}

	return &Regex{
		pattern:   pattern,
		ast:       tree,
		graph:     graph,
		engine:    backtrack.New(graph),
		numGroups: numGroups,
	}, nil
}

// String returns the source pattern Compile was given.
func (r *Regex) String() string { return r.pattern }

// Match attempts a single match anchored at offset 0 of input.
func (r *Regex) Match(input string) (*Match, bool) {
	runes := []rune(input)
	raw, ok := r.engine.Match(runes)
	if !ok {
		return nil, false
	}
	return newMatch(runes, raw), true
}

// Search finds the first match starting at or after rune offset from.
func (r *Regex) Search(input string, from int) (*Match, bool) {
	runes := []rune(input)
	raw, ok := r.engine.Search(runes, from)
	if !ok {
		return nil, false
	}
	return newMatch(runes, raw), true
}

// FindAll returns every non-overlapping match in input, left to right.
func (r *Regex) FindAll(input string) []*Match {
	runes := []rune(input)
	raws := r.engine.FindAll(runes)
	out := make([]*Match, len(raws))
	for i, raw := range raws {
		out[i] = newMatch(runes, raw)
	}
	return out
}

// Iter is a lazy cursor over successive non-overlapping matches.
type Iter struct {
	runes []rune
	inner *backtrack.Iter
}

// Next returns the next match, or ok == false once input is exhausted.
func (it *Iter) Next() (*Match, bool) {
	raw, ok := it.inner.Next()
	if !ok {
		return nil, false
	}
	return newMatch(it.runes, raw), true
}

// FindIter returns a lazy iterator over input's matches, for callers that
// want to stop early without the cost of scanning the whole string.
func (r *Regex) FindIter(input string) *Iter {
	runes := []rune(input)
	return &Iter{runes: runes, inner: r.engine.Iterate(runes)}
}

// DumpAST returns the parsed AST of the compiled pattern, for debugging.
// It is a convenience sink, not part of the matching contract.
func (r *Regex) DumpAST() ast.Node { return r.ast }

// DumpNFA returns the compiled NFA graph, for debugging. Like DumpAST,
// this is a convenience sink.
func (r *Regex) DumpNFA() *nfa.NFA { return r.graph }

// The functions below mirror Regex's methods as package-level
// convenience functions, each compiling a fresh Regex per call — the same
// shape as Python's module-level re.match/re.search/re.findall.

// MatchString compiles pattern and attempts a single match anchored at
// offset 0 of input.
func MatchString(pattern, input string) (*Match, bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return nil, false, err
	}
	m, ok := re.Match(input)
	return m, ok, nil
}

// Search compiles pattern and finds the first match anywhere in input.
func Search(pattern, input string) (*Match, bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return nil, false, err
	}
	m, ok := re.Search(input, 0)
	return m, ok, nil
}

// FindAll compiles pattern and returns every non-overlapping match in
// input.
func FindAll(pattern, input string) ([]*Match, error) {
	re, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	return re.FindAll(input), nil
}

// FindIter compiles pattern and returns a lazy iterator over input's
// matches.
func FindIter(pattern, input string) (*Iter, error) {
	re, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	return re.FindIter(input), nil
}
