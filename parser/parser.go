// Package parser implements the recursive-descent parser that turns a
// regex pattern string into an ast.Node tree.
//
// Grammar (ε = empty):
//
//	expr     := term ( '|' expr )?
//	term     := atom ( term )?        -- stops on ')' or '|' or EOF
//	atom     := group | dot | set | anchor | escape | literal ; then quantifier?
//	group    := '(' expr ')'
//	set      := '[' set_items ']'
//	quantifier := '*' | '+'
//	anchor   := '^' | '$'
//	escape   := '\' escape_body
//
// Operator precedence, tightest first: quantifier, concatenation,
// alternation. Alternation is right-associative. Group numbers are
// assigned left-to-right starting at 1 as '(' is encountered; Parse wraps
// the whole tree in group 0.
package parser

import (
	"strings"

	"github.com/rexlang/rex/ast"
)

// metachars that must be escaped to appear literally, by context.
const (
	outerMeta = "\\^$[.|()?*+{"
	setMeta   = "\\^-[]"
)

type parser struct {
	*cursor
	nextGroup int
	closed    map[int]bool
	maxDepth  int
	depth     int
}

func newParser(pattern string) *parser {
	return &parser{
		cursor:    newCursor(pattern),
		nextGroup: 1,
		closed:    make(map[int]bool),
	}
}

// Parse parses pattern into an AST, wrapping the whole expression in group
// 0 so the whole-match span is recorded like any other capture. It never
// limits recursion depth; use ParseWithLimit to guard against
// pathologically nested patterns.
func Parse(pattern string) (ast.Node, error) {
	return ParseWithLimit(pattern, 0)
}

// ParseWithLimit is Parse with a cap on how deeply parseExpr/parseTerm/
// parseAtom/parseGroup may recurse into each other. maxDepth <= 0 means no
// limit. Exceeding it yields a *ParseError rather than overflowing the Go
// call stack on adversarial input.
func ParseWithLimit(pattern string, maxDepth int) (ast.Node, error) {
	n, _, err := ParseCounting(pattern, maxDepth)
	return n, err
}

// ParseCounting is ParseWithLimit but also returns how many capture
// groups (not counting group 0) the pattern defines, so a caller can
// enumerate Match.Group(1..numGroups) without guessing.
func ParseCounting(pattern string, maxDepth int) (ast.Node, int, error) {
	p := newParser(pattern)
	p.maxDepth = maxDepth

	body, err := p.parseExpr()
	if err != nil {
		return nil, 0, p.annotate(err)
	}

	if !p.eof() {
		if p.peek() == ')' {
			return nil, 0, p.annotate(errUnmatchedParens())
		}
		return nil, 0, p.annotate(errTrailingInput())
	}

	return &ast.Group{Child: body, Index: 0}, p.nextGroup - 1, nil
}

// annotate stamps the source pattern and the cursor's current rune offset
// onto a ParseError raised somewhere inside the grammar, so the caller
// sees where in which pattern parsing stopped.
func (p *parser) annotate(err error) error {
	if pe, ok := err.(*ParseError); ok {
		pe.Pattern = string(p.runes)
		pe.Pos = p.pos
	}
	return err
}

// enterRecursion and leaveRecursion bound the combined depth of
// parseExpr/parseTerm/parseGroup's mutual recursion, guarding against
// stack overflow on adversarially nested patterns (many '(' or many '|' in
// a row) when a limit was configured via ParseWithLimit.
func (p *parser) enterRecursion() error {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		return errTooDeep(p.maxDepth)
	}
	return nil
}

func (p *parser) leaveRecursion() {
	p.depth--
}

func (p *parser) parseExpr() (ast.Node, error) {
	if err := p.enterRecursion(); err != nil {
		return nil, err
	}
	defer p.leaveRecursion()

	lhs, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	if p.peek() == '|' {
		p.advance()
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.Or{Left: lhs, Right: rhs}, nil
	}

	return lhs, nil
}

func (p *parser) stopsTerm() bool {
	return p.eof() || p.peek() == '|' || p.peek() == ')'
}

func (p *parser) parseTerm() (ast.Node, error) {
	if p.stopsTerm() {
		return &ast.Epsilon{}, nil
	}

	if err := p.enterRecursion(); err != nil {
		return nil, err
	}
	defer p.leaveRecursion()

	lhs, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	if p.stopsTerm() {
		return lhs, nil
	}

	rhs, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return &ast.Sequence{Left: lhs, Right: rhs}, nil
}

func (p *parser) parseAtom() (ast.Node, error) {
	var atom ast.Node
	var err error

	switch p.peek() {
	case '(':
		atom, err = p.parseGroup()
	case '.':
		p.advance()
		atom = &ast.Dot{}
	case '[':
		atom, err = p.parseSet()
	case '^':
		p.advance()
		atom = &ast.StartAnchor{}
	case '$':
		p.advance()
		atom = &ast.EndAnchor{}
	case '\\':
		p.advance()
		atom, _, _, err = p.parseEscape(outerMeta)
	default:
		atom = lit(p.advance())
	}

	if err != nil {
		return nil, err
	}
	return p.parseQuantifier(atom)
}

func (p *parser) parseQuantifier(atom ast.Node) (ast.Node, error) {
	switch p.peek() {
	case '*':
		p.advance()
		return &ast.KleeneStar{Child: atom}, nil
	case '+':
		p.advance()
		return &ast.KleenePlus{Child: atom}, nil
	}
	return atom, nil
}

func (p *parser) parseGroup() (ast.Node, error) {
	p.advance() // consume '('
	idx := p.nextGroup
	p.nextGroup++

	child, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.peek() != ')' {
		return nil, errExpected(")", p.peek())
	}
	p.advance()
	p.closed[idx] = true

	return &ast.Group{Child: child, Index: idx}, nil
}

// parseSet parses a '[' set_items ']' bracket expression.
//
// A ']' appearing immediately after '[' is a literal, not the closing
// delimiter (so "[]-]" is the two-item set {']', '-'}, while "[]-z]" is
// the range ']'-'z'). A '-' forms a range only when it is neither the
// first nor the last element of the set and is not itself followed by a
// literal dash-then-close; see dashIsLiteralAhead.
func (p *parser) parseSet() (ast.Node, error) {
	p.advance() // consume '['

	var items []ast.Node
	for first := true; ; first = false {
		if p.eof() {
			return nil, errExpected("]", p.peek())
		}
		if p.peek() == ']' && !first {
			break
		}

		atomNode, atomRune, isRune, err := p.parseSetAtom()
		if err != nil {
			return nil, err
		}
		items = append(items, atomNode)

		if isRune && p.peek() == '-' && !p.dashIsLiteralAhead() {
			p.advance() // consume '-'
			_, hiRune, hiIsRune, err := p.parseSetAtom()
			if err != nil {
				return nil, err
			}
			if !hiIsRune {
				return nil, errExpected("a literal range endpoint", p.peek())
			}
			items[len(items)-1] = rng(atomRune, hiRune)
		}
	}
	p.advance() // consume ']'

	return foldOr(items), nil
}

// dashIsLiteralAhead reports whether the '-' currently under the cursor
// must be read as a literal rather than a range operator: either it is
// immediately followed by the closing ']' (it is the set's last element),
// or it is immediately followed by "-]" (the "[a--]" edge case).
func (p *parser) dashIsLiteralAhead() bool {
	n1 := p.peekAt(1)
	n2 := p.peekAt(2)
	if n1 == ']' {
		return true
	}
	if n1 == '-' && n2 == ']' {
		return true
	}
	return false
}

func (p *parser) parseSetAtom() (node ast.Node, r rune, isRune bool, err error) {
	if p.eof() {
		return nil, 0, false, errExpected("]", p.peek())
	}
	if p.peek() == '\\' {
		p.advance()
		return p.parseEscape(setMeta)
	}
	c := p.advance()
	return lit(c), c, true, nil
}

// parseEscape parses the body of a '\' escape already consumed by the
// caller. meta is the set of characters that are literal-by-escape in the
// current context (outerMeta outside brackets, setMeta inside them).
func (p *parser) parseEscape(meta string) (node ast.Node, r rune, isRune bool, err error) {
	if p.eof() {
		return nil, 0, false, errExpected("an escape sequence", p.peek())
	}

	c := p.advance()

	if isDigit(c) {
		digits := []rune{c}
		for len(digits) < 3 && isDigit(p.peek()) {
			digits = append(digits, p.advance())
		}
		k := digitsToInt(digits)
		if !p.closed[k] {
			return nil, 0, false, errBackReference(k)
		}
		return &ast.BackReference{Index: k}, 0, false, nil
	}

	if strings.ContainsRune(meta, c) {
		return lit(c), c, true, nil
	}

	switch c {
	case 'a':
		return lit(rune(0x07)), rune(0x07), true, nil
	case 'e':
		return lit(rune(0x1e)), rune(0x1e), true, nil
	case 'f':
		return lit(rune(0x0c)), rune(0x0c), true, nil
	case 'n':
		return lit(rune(0x0a)), rune(0x0a), true, nil
	case 'r':
		return lit(rune(0x0d)), rune(0x0d), true, nil
	case 't':
		return lit(rune(0x09)), rune(0x09), true, nil
	case 'd':
		return digitClass(), 0, false, nil
	case 'w':
		return wordClass(), 0, false, nil
	case 'v':
		return verticalClass(), 0, false, nil
	case 'h':
		return horizontalClass(), 0, false, nil
	case 's':
		return whitespaceClass(), 0, false, nil
	default:
		return lit(c), c, true, nil
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func digitsToInt(digits []rune) int {
	n := 0
	for _, d := range digits {
		n = n*10 + int(d-'0')
	}
	return n
}
