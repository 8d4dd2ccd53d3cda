package nfa

import "fmt"

// BuildError reports a failure during NFA construction through AddTransition
// or Build. It always indicates a builder bug — a well-formed AST never
// triggers one — not a malformed pattern; ParseError is what user input
// produces.
type BuildError struct {
	Message string
	StateID StateID
}

func (e *BuildError) Error() string {
	if e.StateID != InvalidState {
		return fmt.Sprintf("nfa build error at state %d: %s", e.StateID, e.Message)
	}
	return fmt.Sprintf("nfa build error: %s", e.Message)
}
