package nfa

import "github.com/rexlang/rex/ast"

// Build compiles an AST produced by the parser into an epsilon-NFA. It
// walks the tree once, bottom-up, via the ast.Visitor interface: every
// node compiles to a (entry, exit) pair of states, wired together by its
// parent according to the construction rules below.
func Build(root ast.Node) (*NFA, error) {
	b := &builder{nfa: NewNFA()}
	res, err := root.Accept(b)
	if err != nil {
		return nil, err
	}
	frag := res.(fragment)
	b.nfa.SetStart(frag.entry)
	b.nfa.AddAccept(frag.exit)
	return b.nfa, nil
}

// fragment is the (entry, exit) pair every Visit method returns, boxed in
// the `any` Accept requires.
type fragment struct {
	entry, exit StateID
}

type builder struct {
	nfa *NFA
}

func (b *builder) add(from, to StateID, m Matcher, startGroup, endGroup int) error {
	return b.nfa.AddTransition(from, to, m, startGroup, endGroup)
}

// VisitEpsilon: a single state, entry == exit. Nothing ever needs to be
// traversed to "pass through" it.
func (b *builder) VisitEpsilon(_ *ast.Epsilon) (any, error) {
	s := b.nfa.AddState()
	return fragment{s, s}, nil
}

// VisitLiteral: two states joined by one CharacterMatcher transition.
func (b *builder) VisitLiteral(n *ast.Literal) (any, error) {
	s1, s2 := b.nfa.AddState(), b.nfa.AddState()
	if err := b.add(s1, s2, &CharacterMatcher{Char: n.Char}, NoGroup, NoGroup); err != nil {
		return nil, err
	}
	return fragment{s1, s2}, nil
}

// VisitRange: two states joined by one RangeMatcher transition.
func (b *builder) VisitRange(n *ast.Range) (any, error) {
	s1, s2 := b.nfa.AddState(), b.nfa.AddState()
	if err := b.add(s1, s2, &RangeMatcher{Lo: n.Lo, Hi: n.Hi}, NoGroup, NoGroup); err != nil {
		return nil, err
	}
	return fragment{s1, s2}, nil
}

// VisitDot: the widest range that still means "one rune", i.e. the full
// rune space. The core places no newline exclusion on it.
func (b *builder) VisitDot(_ *ast.Dot) (any, error) {
	s1, s2 := b.nfa.AddState(), b.nfa.AddState()
	if err := b.add(s1, s2, &RangeMatcher{Lo: 0, Hi: 0x10FFFF}, NoGroup, NoGroup); err != nil {
		return nil, err
	}
	return fragment{s1, s2}, nil
}

// VisitBackReference: two states joined by one BackReferenceMatcher
// transition.
func (b *builder) VisitBackReference(n *ast.BackReference) (any, error) {
	s1, s2 := b.nfa.AddState(), b.nfa.AddState()
	if err := b.add(s1, s2, &BackReferenceMatcher{Index: n.Index}, NoGroup, NoGroup); err != nil {
		return nil, err
	}
	return fragment{s1, s2}, nil
}

// VisitStartAnchor, VisitEndAnchor: the core parses '^' and '$' but does
// not enforce them at match time (runtime anchor enforcement is out of
// scope); both compile to a no-op epsilon fragment, same as Epsilon.
func (b *builder) VisitStartAnchor(_ *ast.StartAnchor) (any, error) {
	s := b.nfa.AddState()
	return fragment{s, s}, nil
}

func (b *builder) VisitEndAnchor(_ *ast.EndAnchor) (any, error) {
	s := b.nfa.AddState()
	return fragment{s, s}, nil
}

// VisitSequence: Left's exit joins Right's entry by a plain epsilon.
func (b *builder) VisitSequence(n *ast.Sequence) (any, error) {
	left, err := n.Left.Accept(b)
	if err != nil {
		return nil, err
	}
	right, err := n.Right.Accept(b)
	if err != nil {
		return nil, err
	}
	l := left.(fragment)
	r := right.(fragment)
	if err := b.add(l.exit, r.entry, &EpsilonMatcher{}, NoGroup, NoGroup); err != nil {
		return nil, err
	}
	return fragment{l.entry, r.exit}, nil
}

// VisitOr: a new entry s1 and exit s2 wrap both branches.
//
// s1's two outgoing epsilons are inserted right-branch first, then
// left-branch. Reverse-insertion-order traversal over a LIFO therefore
// explores the right branch first when both are viable at the same
// position, which is the alternation-preference the executor is required
// to exhibit — see the backtrack package's engine doc comment for the
// worked-out reasoning. The two inbound epsilons into s2 (from each
// branch's exit) are unordered relative to each other, since they share a
// single target.
func (b *builder) VisitOr(n *ast.Or) (any, error) {
	left, err := n.Left.Accept(b)
	if err != nil {
		return nil, err
	}
	right, err := n.Right.Accept(b)
	if err != nil {
		return nil, err
	}
	l := left.(fragment)
	r := right.(fragment)

	s1, s2 := b.nfa.AddState(), b.nfa.AddState()
	if err := b.add(s1, r.entry, &EpsilonMatcher{}, NoGroup, NoGroup); err != nil {
		return nil, err
	}
	if err := b.add(s1, l.entry, &EpsilonMatcher{}, NoGroup, NoGroup); err != nil {
		return nil, err
	}
	if err := b.add(l.exit, s2, &EpsilonMatcher{}, NoGroup, NoGroup); err != nil {
		return nil, err
	}
	if err := b.add(r.exit, s2, &EpsilonMatcher{}, NoGroup, NoGroup); err != nil {
		return nil, err
	}
	return fragment{s1, s2}, nil
}

// VisitKleeneStar: s1 can skip straight to s2 (zero reps) or enter the
// loop body; the loop body's exit can repeat or leave. The loop-back
// transition is inserted before the exit transition at both decision
// points, so it is tried first — greedy, preferring more repetitions.
func (b *builder) VisitKleeneStar(n *ast.KleeneStar) (any, error) {
	child, err := n.Child.Accept(b)
	if err != nil {
		return nil, err
	}
	c := child.(fragment)

	s1, s2 := b.nfa.AddState(), b.nfa.AddState()
	if err := b.add(s1, c.entry, &EpsilonMatcher{}, NoGroup, NoGroup); err != nil {
		return nil, err
	}
	if err := b.add(s1, s2, &EpsilonMatcher{}, NoGroup, NoGroup); err != nil {
		return nil, err
	}
	if err := b.add(c.exit, c.entry, &EpsilonMatcher{}, NoGroup, NoGroup); err != nil {
		return nil, err
	}
	if err := b.add(c.exit, s2, &EpsilonMatcher{}, NoGroup, NoGroup); err != nil {
		return nil, err
	}
	return fragment{s1, s2}, nil
}

// VisitKleenePlus: like KleeneStar but the first repetition is mandatory,
// so s1 has only the one transition into the loop body.
func (b *builder) VisitKleenePlus(n *ast.KleenePlus) (any, error) {
	child, err := n.Child.Accept(b)
	if err != nil {
		return nil, err
	}
	c := child.(fragment)

	s1, s2 := b.nfa.AddState(), b.nfa.AddState()
	if err := b.add(s1, c.entry, &EpsilonMatcher{}, NoGroup, NoGroup); err != nil {
		return nil, err
	}
	if err := b.add(c.exit, c.entry, &EpsilonMatcher{}, NoGroup, NoGroup); err != nil {
		return nil, err
	}
	if err := b.add(c.exit, s2, &EpsilonMatcher{}, NoGroup, NoGroup); err != nil {
		return nil, err
	}
	return fragment{s1, s2}, nil
}

// VisitGroup: wraps Child between a group-open and a group-close
// transition, both pure epsilon matchers annotated with n.Index.
func (b *builder) VisitGroup(n *ast.Group) (any, error) {
	child, err := n.Child.Accept(b)
	if err != nil {
		return nil, err
	}
	c := child.(fragment)

	s1, s2 := b.nfa.AddState(), b.nfa.AddState()
	if err := b.add(s1, c.entry, &EpsilonMatcher{}, n.Index, NoGroup); err != nil {
		return nil, err
	}
	if err := b.add(c.exit, s2, &EpsilonMatcher{}, NoGroup, n.Index); err != nil {
		return nil, err
	}
	return fragment{s1, s2}, nil
}
