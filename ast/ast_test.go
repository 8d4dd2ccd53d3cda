package ast

import "testing"

type countingVisitor struct{ visited string }

func (v *countingVisitor) VisitEpsilon(*Epsilon) (any, error)             { v.visited = "epsilon"; return nil, nil }
func (v *countingVisitor) VisitLiteral(*Literal) (any, error)             { v.visited = "literal"; return nil, nil }
func (v *countingVisitor) VisitBackReference(*BackReference) (any, error) { v.visited = "backref"; return nil, nil }
func (v *countingVisitor) VisitSequence(*Sequence) (any, error)           { v.visited = "sequence"; return nil, nil }
func (v *countingVisitor) VisitOr(*Or) (any, error)                       { v.visited = "or"; return nil, nil }
func (v *countingVisitor) VisitKleeneStar(*KleeneStar) (any, error)       { v.visited = "star"; return nil, nil }
func (v *countingVisitor) VisitKleenePlus(*KleenePlus) (any, error)       { v.visited = "plus"; return nil, nil }
func (v *countingVisitor) VisitGroup(*Group) (any, error)                 { v.visited = "group"; return nil, nil }
func (v *countingVisitor) VisitRange(*Range) (any, error)                 { v.visited = "range"; return nil, nil }
func (v *countingVisitor) VisitDot(*Dot) (any, error)                     { v.visited = "dot"; return nil, nil }
func (v *countingVisitor) VisitStartAnchor(*StartAnchor) (any, error)     { v.visited = "start"; return nil, nil }
func (v *countingVisitor) VisitEndAnchor(*EndAnchor) (any, error)         { v.visited = "end"; return nil, nil }

func TestAcceptDispatchesToMatchingVisitMethod(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{&Epsilon{}, "epsilon"},
		{&Literal{Char: 'a'}, "literal"},
		{&BackReference{Index: 1}, "backref"},
		{&Sequence{Left: &Epsilon{}, Right: &Epsilon{}}, "sequence"},
		{&Or{Left: &Epsilon{}, Right: &Epsilon{}}, "or"},
		{&KleeneStar{Child: &Epsilon{}}, "star"},
		{&KleenePlus{Child: &Epsilon{}}, "plus"},
		{&Group{Child: &Epsilon{}, Index: 0}, "group"},
		{&Range{Lo: 'a', Hi: 'z'}, "range"},
		{&Dot{}, "dot"},
		{&StartAnchor{}, "start"},
		{&EndAnchor{}, "end"},
	}

	for _, tt := range tests {
		v := &countingVisitor{}
		if _, err := tt.node.Accept(v); err != nil {
			t.Fatalf("Accept(%#v): %v", tt.node, err)
		}
		if v.visited != tt.want {
			t.Fatalf("Accept(%#v) visited %q, want %q", tt.node, v.visited, tt.want)
		}
	}
}
