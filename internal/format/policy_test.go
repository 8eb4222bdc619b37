package format

import (
	"testing"

	"esfmt/internal/token"
)

func TestPlanSpace(t *testing.T) {
	c := prepared(t, "a=b;", DefaultOptions())
	eq := findTok(t, c, "=")

	if got := c.plan(eq, "AssignmentOperator", Before, Space); got != actSpace {
		t.Fatalf("before: want actSpace got %v", got)
	}
	if got := c.plan(eq, "NoSuchLabel", Before, Space); got != actNone {
		t.Fatalf("unknown label: want actNone got %v", got)
	}
	c.SpaceBefore(eq, "AssignmentOperator")
	if got := c.plan(eq, "AssignmentOperator", Before, Space); got != actNone {
		t.Fatalf("second request: want actNone got %v", got)
	}
	if got := c.plan(findTok(t, c, ";"), "AssignmentOperator", After, Space); got != actNone {
		t.Fatalf("end of file: want actNone got %v", got)
	}
}

func TestPlanLineBreak(t *testing.T) {
	c := prepared(t, "foo();bar();", DefaultOptions())
	foo, bar := findTok(t, c, "foo"), findTok(t, c, "bar")
	semi := bar.Prev

	if got := c.plan(foo, "CallExpression", Before, LineBreak); got != actNone {
		t.Fatalf("first token: want actNone got %v", got)
	}
	if got := c.plan(semi, "CallExpression", After, LineBreak); got != actLineBreak {
		t.Fatalf("same line: want actLineBreak got %v", got)
	}
	if got := c.plan(bar, "CallExpression", Before, LineBreak); got != actLineBreak {
		t.Fatalf("same line before: want actLineBreak got %v", got)
	}
	if got := c.plan(c.tokens.Last, "CallExpression", After, LineBreak); got != actLineBreak {
		t.Fatalf("end of file: want actLineBreak got %v", got)
	}
	if got := c.plan(semi, "Property", After, LineBreak); got != actNone {
		t.Fatalf("disabled label: want actNone got %v", got)
	}
}

func TestPlanLineBreakRespectsLayout(t *testing.T) {
	c := prepared(t, "foo();\nbar();", DefaultOptions())
	bar := findTok(t, c, "bar")
	if got := c.plan(bar, "CallExpression", Before, LineBreak); got != actNone {
		t.Fatalf("after line break: want actNone got %v", got)
	}
	// токены уже на разных строках исходника
	c.RemoveRunBefore(bar, token.LineBreak)
	if got := c.plan(bar, "CallExpression", Before, LineBreak); got != actNone {
		t.Fatalf("split in source: want actNone got %v", got)
	}

	c = prepared(t, "foo(); // c\nbar();", DefaultOptions())
	if got := c.plan(findTok(t, c, ";"), "CallExpression", After, LineBreak); got != actNone {
		t.Fatalf("comment follows: want actNone got %v", got)
	}

	opts := DefaultOptions()
	opts.WhiteSpace.RemoveTrailing = false
	c = prepared(t, "foo();  \nbar();", opts)
	if got := c.plan(findTok(t, c, ";"), "CallExpression", After, LineBreak); got != actNone {
		t.Fatalf("trailing blank: want actNone got %v", got)
	}
}

func TestNeedsLookups(t *testing.T) {
	c := prepared(t, "a;", DefaultOptions())
	if !c.NeedsSpace(Before, "IfTest") || c.NeedsSpace(After, "ArgumentList") {
		t.Fatal("space lookups disagree with defaults")
	}
	if !c.NeedsLineBreak(Before, "Property") || c.NeedsLineBreak(After, "Property") {
		t.Fatal("line break lookups disagree with defaults")
	}
	if c.NeedsLineBreak(Before, "Missing") {
		t.Fatal("absent label must mean no")
	}
}
