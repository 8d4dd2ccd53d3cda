package nfa

import (
	"testing"

	"github.com/rexlang/rex/ast"
)

func TestBuildLiteral(t *testing.T) {
	g, err := Build(&ast.Literal{Char: 'x'})
	if err != nil {
		t.Fatal(err)
	}
	start := g.State(g.Start())
	if len(start.Transitions()) != 1 {
		t.Fatalf("start has %d transitions, want 1", len(start.Transitions()))
	}
	tr := start.Transitions()[0]
	if _, ok := tr.Matcher.(*CharacterMatcher); !ok {
		t.Fatalf("matcher = %#v, want *CharacterMatcher", tr.Matcher)
	}
	if !g.IsAccept(tr.Target) {
		t.Fatal("literal's target state should be the accept state")
	}
}

func TestBuildEpsilonEntryEqualsExit(t *testing.T) {
	g, err := Build(&ast.Epsilon{})
	if err != nil {
		t.Fatal(err)
	}
	if g.Start() != StateID(0) {
		t.Fatalf("Start = %d, want 0", g.Start())
	}
	if !g.IsAccept(g.Start()) {
		t.Fatal("epsilon fragment's single state should be accepting")
	}
}

// VisitOr must insert the right branch's entry transition before the
// left's, so that reverse-insertion-order traversal tries right first.
func TestBuildOrInsertsRightBranchFirst(t *testing.T) {
	tree := &ast.Or{Left: &ast.Literal{Char: 'l'}, Right: &ast.Literal{Char: 'r'}}
	g, err := Build(tree)
	if err != nil {
		t.Fatal(err)
	}
	start := g.State(g.Start())
	trans := start.Transitions()
	if len(trans) != 2 {
		t.Fatalf("start has %d transitions, want 2", len(trans))
	}

	firstTarget := g.State(trans[0].Target)
	secondTarget := g.State(trans[1].Target)
	firstChar := firstTarget.Transitions()[0].Matcher.(*CharacterMatcher).Char
	secondChar := secondTarget.Transitions()[0].Matcher.(*CharacterMatcher).Char

	if firstChar != 'r' {
		t.Fatalf("first-inserted branch matches %q, want 'r'", firstChar)
	}
	if secondChar != 'l' {
		t.Fatalf("second-inserted branch matches %q, want 'l'", secondChar)
	}
}

// VisitKleeneStar must insert the loop-back transition before the exit
// transition at both decision points, for greedy matching.
func TestBuildKleeneStarLoopBackInsertedFirst(t *testing.T) {
	tree := &ast.KleeneStar{Child: &ast.Literal{Char: 'a'}}
	g, err := Build(tree)
	if err != nil {
		t.Fatal(err)
	}

	start := g.State(g.Start())
	if len(start.Transitions()) != 2 {
		t.Fatalf("start has %d transitions, want 2", len(start.Transitions()))
	}
	// First-inserted transition from start must lead into the loop body,
	// not straight to the (accepting) exit state.
	if g.IsAccept(start.Transitions()[0].Target) {
		t.Fatal("first-inserted transition from start should enter the loop body, not exit")
	}
}

func TestBuildGroupAnnotatesOpenAndClose(t *testing.T) {
	tree := &ast.Group{Child: &ast.Literal{Char: 'a'}, Index: 3}
	g, err := Build(tree)
	if err != nil {
		t.Fatal(err)
	}
	openTr := g.State(g.Start()).Transitions()[0]
	if openTr.StartGroup != 3 {
		t.Fatalf("StartGroup = %d, want 3", openTr.StartGroup)
	}

	// Walk to the literal's target, whose single outgoing transition
	// should be the group-close.
	literalTarget := g.State(openTr.Target).Transitions()[0].Target
	closeTr := g.State(literalTarget).Transitions()[0]
	if closeTr.EndGroup != 3 {
		t.Fatalf("EndGroup = %d, want 3", closeTr.EndGroup)
	}
}

func TestBuildSequenceChainsExitToEntry(t *testing.T) {
	tree := &ast.Sequence{Left: &ast.Literal{Char: 'a'}, Right: &ast.Literal{Char: 'b'}}
	g, err := Build(tree)
	if err != nil {
		t.Fatal(err)
	}
	// start --a--> mid --eps--> mid2 --b--> accept
	if g.NumStates() != 4 {
		t.Fatalf("NumStates = %d, want 4", g.NumStates())
	}
}
