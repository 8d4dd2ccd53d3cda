package parser

import "fmt"

// ParseError reports a malformed pattern. It is the only error kind the
// parser produces; a failed Parse yields no AST. Pattern and Pos are
// stamped on by the top-level parse entry points: Pos is the rune offset
// the cursor had reached when the error was raised.
type ParseError struct {
	Pattern string
	Pos     int
	Msg     string
}

func (e *ParseError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("parsing %q at offset %d: %s", e.Pattern, e.Pos, e.Msg)
	}
	return e.Msg
}

func errUnmatchedParens() error {
	return &ParseError{Msg: "Unmatched parentheses"}
}

func errTrailingInput() error {
	return &ParseError{Msg: "Unknown error in consuming entire input"}
}

func errBackReference(k int) error {
	return &ParseError{Msg: fmt.Sprintf("invalid back-reference to group %d", k)}
}

func errTooDeep(limit int) error {
	return &ParseError{Msg: fmt.Sprintf("pattern nesting exceeds configured limit of %d", limit)}
}

func errExpected(want string, got rune) error {
	return &ParseError{Msg: fmt.Sprintf("Expected one of %s, received %s", want, renderChar(got))}
}

func renderChar(r rune) string {
	if r == eof {
		return ""
	}
	return string(r)
}
