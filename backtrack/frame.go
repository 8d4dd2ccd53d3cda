package backtrack

import (
	"github.com/rexlang/rex/internal/conv"
	"github.com/rexlang/rex/internal/sparse"
	"github.com/rexlang/rex/nfa"
)

// frame is one entry on the traversal stack: the position the overall
// match attempt started at, the input offset the automaton has consumed
// up to, the state to resume from, the set of states whose pure-epsilon
// transitions have already been taken since the last consuming step, and
// the captures recorded on this branch so far.
//
// cycle is nil (meaning empty) whenever a transition consumes at least one
// rune; it exists only to stop a branch looping forever around a cycle of
// zero-width transitions.
type frame struct {
	matchStart int
	cursor     int
	state      nfa.StateID
	cycle      *sparse.SparseSet
	captures   nfa.Captures
}

// hasVisited reports whether state is already in f.cycle.
func (f frame) hasVisited(state nfa.StateID) bool {
	return f.cycle != nil && f.cycle.Contains(stateValue(state))
}

// cloneCycle returns a copy of f.cycle with state added, sized to hold up
// to numStates states. The traversal never mutates a frame already pushed
// onto the stack, so every push gets its own set.
func (f frame) cloneCycle(state nfa.StateID, numStates int) *sparse.SparseSet {
	var next *sparse.SparseSet
	if f.cycle != nil {
		next = f.cycle.Clone()
	} else {
		next = sparse.NewSparseSet(stateValue(nfa.StateID(numStates)))
	}
	next.Insert(stateValue(state))
	return next
}

// stateValue narrows a StateID down to the uint32 the sparse set stores.
// Cycle tracking only ever inserts states popped off the stack, which are
// always valid (non-negative) state IDs; conv panics if that invariant
// is ever violated.
func stateValue(id nfa.StateID) uint32 {
	return conv.IntToUint32(int(id))
}

// cloneCaptures returns a copy of f.captures, optionally with one entry
// added or overwritten by apply. Branches must never share a mutable
// captures map: each one records independent state as it explores.
func (f frame) cloneCaptures(apply func(nfa.Captures)) nfa.Captures {
	next := make(nfa.Captures, len(f.captures)+1)
	for k, v := range f.captures {
		next[k] = v
	}
	if apply != nil {
		apply(next)
	}
	return next
}
