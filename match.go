package rex

import "github.com/rexlang/rex/backtrack"

// Match is the result of a successful match attempt: the overall span
// (group 0) plus every numbered capture group the pattern recorded along
// the winning branch.
type Match struct {
	input  []rune
	groups map[int]group
}

type group struct {
	start, end int
	ok         bool
}

func newMatch(input []rune, raw *backtrack.Match) *Match {
	m := &Match{input: input, groups: make(map[int]group, len(raw.Groups))}
	for k, c := range raw.Groups {
		if c.Closed {
			m.groups[k] = group{start: c.Start, end: c.End, ok: true}
		}
	}
	return m
}

// Group returns the text captured by group k (k == 0 is the whole match).
// The second result is false if group k never participated in the match,
// in which case the string is empty.
func (m *Match) Group(k int) (string, bool) {
	g, ok := m.groups[k]
	if !ok {
		return "", false
	}
	return string(m.input[g.start:g.end]), true
}

// Span returns group k's [start, end) rune offsets into the original
// input, and whether k participated in the match.
func (m *Match) Span(k int) (start, end int, ok bool) {
	g, present := m.groups[k]
	if !present {
		return 0, 0, false
	}
	return g.start, g.end, true
}

// Start returns group k's start offset, or -1 if k did not participate.
func (m *Match) Start(k int) int {
	if g, ok := m.groups[k]; ok {
		return g.start
	}
	return -1
}

// End returns group k's end offset, or -1 if k did not participate.
func (m *Match) End(k int) int {
	if g, ok := m.groups[k]; ok {
		return g.end
	}
	return -1
}
