package spellcheck

import "testing"

func TestCompileConditionDot(t *testing.T) {
	re, err := compileCondition(KindSuffix, ".")
	if err != nil {
		t.Fatalf("compileCondition(.): %v", err)
	}
	if re != nil {
		t.Error("condition '.' should compile to nil (unconditional)")
	}
	if !conditionMatches(re, "anything") {
		t.Error("nil condition should match anything")
	}
}

func TestCompileConditionAnchoring(t *testing.T) {
	pre, err := compileCondition(KindPrefix, "un")
	if err != nil {
		t.Fatalf("compileCondition(prefix, un): %v", err)
	}
	if !conditionMatches(pre, "undo") {
		t.Error("prefix condition 'un' should match 'undo'")
	}
	if conditionMatches(pre, "fundo") {
		t.Error("prefix condition 'un' should not match 'fundo' (not anchored at start)")
	}

	suf, err := compileCondition(KindSuffix, "[^y]")
	if err != nil {
		t.Fatalf("compileCondition(suffix, [^y]): %v", err)
	}
	if !conditionMatches(suf, "walk") {
		t.Error("suffix condition '[^y]' should match 'walk'")
	}
	if conditionMatches(suf, "day") {
		t.Error("suffix condition '[^y]' should reject 'day'")
	}
}

func TestStripLiteral(t *testing.T) {
	if got := stripLiteral(KindSuffix, "walking", "ing"); got != "walk" {
		t.Errorf("stripLiteral(suffix, walking, ing) = %q, want walk", got)
	}
	if got := stripLiteral(KindPrefix, "redo", "re"); got != "do" {
		t.Errorf("stripLiteral(prefix, redo, re) = %q, want do", got)
	}
	if got := stripLiteral(KindSuffix, "cat", "ing"); got != "cat" {
		t.Errorf("stripLiteral should leave w unchanged when strip does not match, got %q", got)
	}
	if got := stripLiteral(KindSuffix, "cat", ""); got != "cat" {
		t.Errorf("stripLiteral with empty strip should be a no-op, got %q", got)
	}
}
