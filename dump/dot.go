// Package dump renders an AST or a compiled NFA as Graphviz DOT text — a
// convenience sink for inspecting a compiled pattern, not part of the
// matching contract.
package dump

import (
	"fmt"
	"strings"

	"github.com/rexlang/rex/ast"
	"github.com/rexlang/rex/nfa"
)

// NFA renders g as a DOT digraph: one node per state, one edge per
// transition, labeled with the matcher and any group annotation.
func NFA(g *nfa.NFA) string {
	var b strings.Builder
	b.WriteString("digraph NFA {\n")
	b.WriteString("\trankdir=LR;\n")

	for id := 0; id < g.NumStates(); id++ {
		shape := "circle"
		if g.IsAccept(nfa.StateID(id)) {
			shape = "doublecircle"
		}
		fmt.Fprintf(&b, "\t%d [shape=%s];\n", id, shape)
	}
	fmt.Fprintf(&b, "\tstart [shape=point];\n\tstart -> %d;\n", g.Start())

	for id := 0; id < g.NumStates(); id++ {
		st := g.State(nfa.StateID(id))
		for _, t := range st.Transitions() {
			fmt.Fprintf(&b, "\t%d -> %d [label=%q];\n", id, t.Target, transitionLabel(t))
		}
	}

	b.WriteString("}\n")
	return b.String()
}

func transitionLabel(t nfa.Transition) string {
	label := matcherLabel(t.Matcher)
	switch {
	case t.StartGroup != nfa.NoGroup:
		return fmt.Sprintf("%s (open %d)", label, t.StartGroup)
	case t.EndGroup != nfa.NoGroup:
		return fmt.Sprintf("%s (close %d)", label, t.EndGroup)
	default:
		return label
	}
}

func matcherLabel(m nfa.Matcher) string {
	switch v := m.(type) {
	case *nfa.CharacterMatcher:
		return string(v.Char)
	case *nfa.RangeMatcher:
		return fmt.Sprintf("%c-%c", v.Lo, v.Hi)
	case *nfa.EpsilonMatcher:
		return "ε"
	case *nfa.BackReferenceMatcher:
		return fmt.Sprintf("\\%d", v.Index)
	case *nfa.InverseMatcher:
		return fmt.Sprintf("^(%s)", matcherLabel(v.Inner))
	default:
		return "?"
	}
}

// AST renders tree as a DOT digraph: one node per AST node, labeled by
// node kind, one edge per parent-child link.
func AST(tree ast.Node) string {
	var b strings.Builder
	b.WriteString("digraph AST {\n")
	w := &astWriter{b: &b, next: 0}
	w.walk(tree)
	b.WriteString("}\n")
	return b.String()
}

type astWriter struct {
	b    *strings.Builder
	next int
}

func (w *astWriter) node(label string) int {
	id := w.next
	w.next++
	fmt.Fprintf(w.b, "\tn%d [label=%q];\n", id, label)
	return id
}

func (w *astWriter) edge(parent, child int) {
	fmt.Fprintf(w.b, "\tn%d -> n%d;\n", parent, child)
}

// walk returns the DOT node id assigned to n.
func (w *astWriter) walk(n ast.Node) int {
	switch v := n.(type) {
	case *ast.Epsilon:
		return w.node("ε")
	case *ast.Literal:
		return w.node(fmt.Sprintf("literal %c", v.Char))
	case *ast.BackReference:
		return w.node(fmt.Sprintf("\\%d", v.Index))
	case *ast.Range:
		return w.node(fmt.Sprintf("[%c-%c]", v.Lo, v.Hi))
	case *ast.Dot:
		return w.node(".")
	case *ast.StartAnchor:
		return w.node("^")
	case *ast.EndAnchor:
		return w.node("$")
	case *ast.Sequence:
		id := w.node("seq")
		w.edge(id, w.walk(v.Left))
		w.edge(id, w.walk(v.Right))
		return id
	case *ast.Or:
		id := w.node("|")
		w.edge(id, w.walk(v.Left))
		w.edge(id, w.walk(v.Right))
		return id
	case *ast.KleeneStar:
		id := w.node("*")
		w.edge(id, w.walk(v.Child))
		return id
	case *ast.KleenePlus:
		id := w.node("+")
		w.edge(id, w.walk(v.Child))
		return id
	case *ast.Group:
		id := w.node(fmt.Sprintf("group %d", v.Index))
		w.edge(id, w.walk(v.Child))
		return id
	default:
		return w.node("?")
	}
}
