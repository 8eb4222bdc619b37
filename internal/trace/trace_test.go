package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestStreamTracerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)

	span := Begin(tr, ScopePass, "parse", 0)
	Point(tr, ScopeNode, "hook", span.ID(), "IfStatement")
	span.WithExtra("nodes", "12").End("")

	out := buf.String()
	if !strings.Contains(out, "pass:parse") {
		t.Fatalf("missing pass span in %q", out)
	}
	if strings.Contains(out, "hook") {
		t.Fatalf("node events must be filtered at phase level, got %q", out)
	}
	if !strings.Contains(out, "{nodes=12}") {
		t.Fatalf("missing extra in %q", out)
	}
}

func TestNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	Point(tr, ScopeNode, "hook", 7, "CallExpression")

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if got["scope"] != "node" || got["detail"] != "CallExpression" || got["parent_id"] != float64(7) {
		t.Fatalf("unexpected event %v", got)
	}
}

func TestContextPropagation(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatalf("empty context must yield Nop")
	}
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatText)
	ctx := WithTracer(context.Background(), tr)
	span := Begin(FromContext(ctx), ScopeFile, "file:a.js", 0)
	ctx = WithSpan(ctx, span)
	if CurrentSpan(ctx) != span.ID() || span.ID() == 0 {
		t.Fatalf("want span %d got %d", span.ID(), CurrentSpan(ctx))
	}
}

func TestDisabledSpanKeepsParent(t *testing.T) {
	s := Begin(Nop, ScopePass, "walk", 42)
	if s.ID() != 42 {
		t.Fatalf("want 42 got %d", s.ID())
	}
	if d := s.End(""); d != 0 {
		t.Fatalf("disabled span must not time itself")
	}
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "error", "phase", "detail", "debug"} {
		l, err := ParseLevel(s)
		if err != nil || l.String() != s {
			t.Fatalf("ParseLevel(%q) = %v, %v", s, l, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error")
	}
}
