package nfa

// Capture records one completed or in-progress capture of a group: the
// input offset it opened at, and, once Closed, the offset it closed at and
// the substring between the two. Start/End are rune offsets into the input
// slice the engine is matching over.
type Capture struct {
	Start  int
	End    int
	Closed bool
	Text   []rune
}

// Len reports how many runes this capture spans. An unclosed or absent
// capture has length 0.
func (c Capture) Len() int {
	if !c.Closed {
		return 0
	}
	return c.End - c.Start
}

// Captures maps a group index to its most recent capture record. It is
// passed by value at call sites that need to branch (the backtrack engine
// clones it per frame); the map itself is shared until a write forces a
// copy, which callers must do explicitly — Matcher implementations never
// mutate it.
type Captures map[int]Capture

// Matcher is the label on an NFA transition: it decides whether the
// transition is viable at input position i, and how many runes it
// consumes if taken. A matcher's epsilon-ness can depend on captures (see
// BackReference), so it is never fixed at construction time.
type Matcher interface {
	// Matches reports whether this matcher can be taken at position i of
	// input, given the captures recorded so far on the current branch.
	Matches(input []rune, i int, captures Captures) bool

	// Consumed returns how many runes taking this matcher consumes, given
	// the current captures. Undefined unless Matches has already reported
	// true for the same captures.
	Consumed(captures Captures) int

	// IsEpsilon reports whether this matcher consumes zero runes given
	// captures. It is always Consumed(captures) == 0; kept as its own
	// method because the traversal checks it directly and some matchers
	// can answer it without doing the work Consumed would.
	IsEpsilon(captures Captures) bool
}

// CharacterMatcher matches one exact rune.
type CharacterMatcher struct {
	Char rune
}

func (m *CharacterMatcher) Matches(input []rune, i int, _ Captures) bool {
	return i < len(input) && input[i] == m.Char
}
func (m *CharacterMatcher) Consumed(_ Captures) int   { return 1 }
func (m *CharacterMatcher) IsEpsilon(_ Captures) bool { return false }

// RangeMatcher matches any rune in [Lo, Hi] inclusive.
type RangeMatcher struct {
	Lo, Hi rune
}

func (m *RangeMatcher) Matches(input []rune, i int, _ Captures) bool {
	return i < len(input) && input[i] >= m.Lo && input[i] <= m.Hi
}
func (m *RangeMatcher) Consumed(_ Captures) int  { return 1 }
func (m *RangeMatcher) IsEpsilon(_ Captures) bool { return false }

// EpsilonMatcher matches the empty string unconditionally. Group-boundary
// transitions use this matcher too; their group semantics live on the
// Transition, not the Matcher.
type EpsilonMatcher struct{}

func (m *EpsilonMatcher) Matches(_ []rune, _ int, _ Captures) bool { return true }
func (m *EpsilonMatcher) Consumed(_ Captures) int                   { return 0 }
func (m *EpsilonMatcher) IsEpsilon(_ Captures) bool                 { return true }

// BackReferenceMatcher matches the text most recently captured by group
// Index. If that group has never been recorded, or was opened but not yet
// closed on this branch, the reference matches trivially and consumes
// nothing — it behaves exactly like an empty group would have. Otherwise
// it requires the next len(captured text) runes of input to equal the
// captured text exactly.
type BackReferenceMatcher struct {
	Index int
}

func (m *BackReferenceMatcher) capture(captures Captures) (Capture, bool) {
	c, ok := captures[m.Index]
	if !ok || !c.Closed {
		return Capture{}, false
	}
	return c, true
}

func (m *BackReferenceMatcher) Matches(input []rune, i int, captures Captures) bool {
	c, ok := m.capture(captures)
	if !ok {
		return true
	}
	n := c.Len()
	if i+n > len(input) {
		return false
	}
	for k := 0; k < n; k++ {
		if input[i+k] != c.Text[k] {
			return false
		}
	}
	return true
}

func (m *BackReferenceMatcher) Consumed(captures Captures) int {
	c, ok := m.capture(captures)
	if !ok {
		return 0
	}
	return c.Len()
}

func (m *BackReferenceMatcher) IsEpsilon(captures Captures) bool {
	return m.Consumed(captures) == 0
}

// InverseMatcher matches any single rune that Inner does not match at the
// same position, given the same captures. It always consumes exactly one
// rune, even when Inner is a zero-width matcher. No
// current grammar production constructs one; it exists to complete the
// matcher set and is exercised directly by package tests.
type InverseMatcher struct {
	Inner Matcher
}

func (m *InverseMatcher) Matches(input []rune, i int, captures Captures) bool {
	if i >= len(input) {
		return false
	}
	return !m.Inner.Matches(input, i, captures)
}
func (m *InverseMatcher) Consumed(_ Captures) int  { return 1 }
func (m *InverseMatcher) IsEpsilon(_ Captures) bool { return false }
