// Package backtrack implements the depth-first execution engine that walks
// an epsilon-NFA (built by the nfa package) against an input string,
// producing capture groups.
//
// The engine is a single explicit LIFO stack of frames rather than native
// Go recursion, matching the algorithm the matching semantics are defined
// in terms of: push every viable outgoing transition of the popped frame,
// in reverse insertion order, and stop at the first frame whose state is
// accepting. Because pushes happen in reverse order, the first-inserted
// transition out of a state ends up on top of the stack and is explored
// first. The NFA builder relies on this: it inserts the branch it wants
// tried first — the loop-back edge for `*`/`+`, the right alternative for
// `|` — before the alternative, so that "first inserted" lines up with
// "first explored" here.
package backtrack

import (
	"github.com/rexlang/rex/internal/sparse"
	"github.com/rexlang/rex/nfa"
)

// Match is one successful match: the offsets it spans and every capture
// group recorded along the winning branch, keyed by group index. Group 0
// is always present on a successful match, since Parse always wraps the
// whole pattern in group 0.
type Match struct {
	Groups nfa.Captures
}

// Span returns group k's [start, end) offsets and whether it participated
// in the match at all.
func (m *Match) Span(k int) (start, end int, ok bool) {
	c, present := m.Groups[k]
	if !present || !c.Closed {
		return 0, 0, false
	}
	return c.Start, c.End, true
}

// Engine runs find_from against a compiled graph.
type Engine struct {
	graph *nfa.NFA
}

// New wraps g for execution.
func New(g *nfa.NFA) *Engine {
	return &Engine{graph: g}
}

// FindFrom runs the core search algorithm starting at input offset start:
// a single attempt, anchored at exactly that offset, exploring every
// branch the automaton allows (in priority order) until one reaches an
// accepting state or the search space is exhausted.
func (e *Engine) FindFrom(input []rune, start int) (*Match, bool) {
	stack := []frame{{
		matchStart: start,
		cursor:     start,
		state:      e.graph.Start(),
		captures:   nfa.Captures{},
	}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if e.graph.IsAccept(f.state) {
			return &Match{Groups: f.captures}, true
		}

		st := e.graph.State(f.state)
		if st == nil {
			continue
		}
		trans := st.Transitions()
		for i := len(trans) - 1; i >= 0; i-- {
			t := trans[i]
			if !t.Matcher.Matches(input, f.cursor, f.captures) {
				continue
			}
			isEps := t.Matcher.IsEpsilon(f.captures)
			if isEps && f.hasVisited(f.state) {
				continue
			}

			var cycle *sparse.SparseSet
			if isEps {
				cycle = f.cloneCycle(f.state, e.graph.NumStates())
			}

			consumed := t.Matcher.Consumed(f.captures)
			newCursor := f.cursor + consumed
			captures := f.captures

			switch {
			case t.StartGroup != nfa.NoGroup:
				idx := t.StartGroup
				captures = f.cloneCaptures(func(c nfa.Captures) {
					c[idx] = nfa.Capture{Start: f.cursor}
				})
			case t.EndGroup != nfa.NoGroup:
				idx := t.EndGroup
				prior := f.captures[idx]
				captures = f.cloneCaptures(func(c nfa.Captures) {
					c[idx] = nfa.Capture{
						Start:  prior.Start,
						End:    f.cursor,
						Closed: true,
						Text:   append([]rune(nil), input[prior.Start:f.cursor]...),
					}
				})
			}

			stack = append(stack, frame{
				matchStart: f.matchStart,
				cursor:     newCursor,
				state:      t.Target,
				cycle:      cycle,
				captures:   captures,
			})
		}
	}

	return nil, false
}

// Match anchors the attempt at offset 0 only.
func (e *Engine) Match(input []rune) (*Match, bool) {
	return e.FindFrom(input, 0)
}

// Search tries successive start offsets beginning at from, returning the
// first that yields a match. A zero-length match at from itself is a
// valid result.
func (e *Engine) Search(input []rune, from int) (*Match, bool) {
	for i := from; i <= len(input); i++ {
		if m, ok := e.FindFrom(input, i); ok {
			return m, true
		}
	}
	return nil, false
}

// FindAll returns every non-overlapping match in input, scanning
// left to right. After each match it resumes the scan at the match's end,
// or one rune past its start if the match was zero-length, so an
// infinitely-repeatable empty match can't stall the scan.
func (e *Engine) FindAll(input []rune) []*Match {
	var out []*Match
	pos := 0
	for pos <= len(input) {
		m, ok := e.Search(input, pos)
		if !ok {
			break
		}
		out = append(out, m)
		start, end, _ := m.Span(0)
		if end > start {
			pos = end
		} else {
			pos = end + 1
		}
	}
	return out
}

// Iter is a stateful cursor over successive matches, for callers that want
// to stop early without paying for the full FindAll scan.
type Iter struct {
	engine *Engine
	input  []rune
	pos    int
	done   bool
}

// Iterate returns an Iter positioned at the start of input.
func (e *Engine) Iterate(input []rune) *Iter {
	return &Iter{engine: e, input: input}
}

// Next returns the next match, or ok == false once the scan is exhausted.
func (it *Iter) Next() (*Match, bool) {
	if it.done {
		return nil, false
	}
	for it.pos <= len(it.input) {
		m, ok := it.engine.Search(it.input, it.pos)
		if !ok {
			it.done = true
			return nil, false
		}
		start, end, _ := m.Span(0)
		if end > start {
			it.pos = end
		} else {
			it.pos = end + 1
		}
		return m, true
	}
	it.done = true
	return nil, false
}
