package nfa

import "testing"

func TestCharacterMatcher(t *testing.T) {
	m := &CharacterMatcher{Char: 'x'}
	input := []rune("axb")
	if m.Matches(input, 0, nil) {
		t.Fatal("should not match 'a' at position 0")
	}
	if !m.Matches(input, 1, nil) {
		t.Fatal("should match 'x' at position 1")
	}
	if m.Consumed(nil) != 1 {
		t.Fatalf("Consumed = %d, want 1", m.Consumed(nil))
	}
	if m.IsEpsilon(nil) {
		t.Fatal("CharacterMatcher is never epsilon")
	}
}

func TestRangeMatcher(t *testing.T) {
	m := &RangeMatcher{Lo: 'a', Hi: 'z'}
	input := []rune("aZ")
	if !m.Matches(input, 0, nil) {
		t.Fatal("'a' should be in [a-z]")
	}
	if m.Matches(input, 1, nil) {
		t.Fatal("'Z' should not be in [a-z]")
	}
}

func TestEpsilonMatcher(t *testing.T) {
	m := &EpsilonMatcher{}
	if !m.Matches([]rune(""), 0, nil) {
		t.Fatal("epsilon must match at eof")
	}
	if m.Consumed(nil) != 0 || !m.IsEpsilon(nil) {
		t.Fatal("epsilon must consume 0 and report IsEpsilon true")
	}
}

func TestBackReferenceMatcherAbsentGroupIsEpsilon(t *testing.T) {
	m := &BackReferenceMatcher{Index: 1}
	captures := Captures{}
	if !m.Matches([]rune("anything"), 0, captures) {
		t.Fatal("back-reference to an unrecorded group should match trivially")
	}
	if m.Consumed(captures) != 0 {
		t.Fatalf("Consumed = %d, want 0", m.Consumed(captures))
	}
}

func TestBackReferenceMatcherRecordedGroup(t *testing.T) {
	m := &BackReferenceMatcher{Index: 1}
	captures := Captures{1: Capture{Start: 0, End: 2, Closed: true, Text: []rune("ab")}}
	input := []rune("ab ab")
	if !m.Matches(input, 3, captures) {
		t.Fatal(`expected \1 to match "ab" at offset 3`)
	}
	if m.Consumed(captures) != 2 {
		t.Fatalf("Consumed = %d, want 2", m.Consumed(captures))
	}
}

func TestBackReferenceMatcherMismatch(t *testing.T) {
	m := &BackReferenceMatcher{Index: 1}
	captures := Captures{1: Capture{Start: 0, End: 2, Closed: true, Text: []rune("ab")}}
	if m.Matches([]rune("ab cd"), 3, captures) {
		t.Fatal(`expected \1 not to match "cd"`)
	}
}

func TestInverseMatcher(t *testing.T) {
	inner := &CharacterMatcher{Char: 'x'}
	m := &InverseMatcher{Inner: inner}
	input := []rune("xy")
	if m.Matches(input, 0, nil) {
		t.Fatal("inverse of 'x' should not match 'x'")
	}
	if !m.Matches(input, 1, nil) {
		t.Fatal("inverse of 'x' should match 'y'")
	}
	if m.Matches([]rune(""), 0, nil) {
		t.Fatal("inverse should not match past the end of input")
	}
	if m.Consumed(nil) != 1 {
		t.Fatalf("Consumed = %d, want 1", m.Consumed(nil))
	}
}
