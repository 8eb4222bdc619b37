package ui

import (
	"errors"
	"strings"
	"testing"

	"esfmt/internal/driver"
)

func newTestModel(files ...string) *progressModel {
	return NewProgressModel("esfmt", files, make(chan driver.Event)).(*progressModel)
}

func TestApplyEventTracksFiles(t *testing.T) {
	m := newTestModel("a.js", "b.js", "c.js")

	m.applyEvent(driver.Event{File: "a.js", Stage: driver.StageFormat, Status: driver.StatusWorking})
	if got := m.items[0].status; got != "formatting" {
		t.Fatalf("want %q got %q", "formatting", got)
	}
	m.applyEvent(driver.Event{File: "a.js", Stage: driver.StageFormat, Status: driver.StatusDone, Changed: true})
	m.applyEvent(driver.Event{File: "b.js", Stage: driver.StageFormat, Status: driver.StatusDone})
	m.applyEvent(driver.Event{File: "c.js", Stage: driver.StageRead, Status: driver.StatusError, Err: errors.New("boom")})

	want := []string{"changed", "unchanged", "error"}
	for i, w := range want {
		if got := m.items[i].status; got != w {
			t.Fatalf("item %d: want %q got %q", i, w, got)
		}
	}
	if m.changed != 1 || m.failed != 1 || m.finished() != 3 {
		t.Fatalf("want changed=1 failed=1 finished=3, got %d %d %d", m.changed, m.failed, m.finished())
	}
	if p := m.percent(); p != 1.0 {
		t.Fatalf("want 1.0 got %v", p)
	}
}

func TestApplyEventIgnoresLateEvents(t *testing.T) {
	m := newTestModel("a.js")
	m.applyEvent(driver.Event{File: "a.js", Stage: driver.StageFormat, Status: driver.StatusDone})
	m.applyEvent(driver.Event{File: "a.js", Stage: driver.StageWrite, Status: driver.StatusWorking})
	if got := m.items[0].status; got != "unchanged" {
		t.Fatalf("want %q got %q", "unchanged", got)
	}
	if cmd := m.applyEvent(driver.Event{File: "other.js", Status: driver.StatusDone}); cmd != nil {
		t.Fatalf("unknown file must be ignored")
	}
}

func TestPercentFromStages(t *testing.T) {
	m := newTestModel("a.js", "b.js")
	m.applyEvent(driver.Event{File: "a.js", Stage: driver.StageWrite, Status: driver.StatusWorking})
	if p := m.percent(); p != 0.45 {
		t.Fatalf("want 0.45 got %v", p)
	}
}

func TestViewListsFiles(t *testing.T) {
	m := newTestModel("src/a.js")
	m.applyEvent(driver.Event{File: "src/a.js", Stage: driver.StageFormat, Status: driver.StatusDone, Changed: true})
	view := m.View()
	for _, want := range []string{"esfmt (1/1, 1 changed)", "changed", "src/a.js"} {
		if !strings.Contains(view, want) {
			t.Fatalf("want %q in view:\n%s", want, view)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short.js", 20, "short.js"},
		{"very/long/path/to/file.js", 10, "very/lo..."},
		{"abcdef", 2, "ab"},
		{"漢字漢字.js", 7, "漢字..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Fatalf("truncate(%q, %d): want %q got %q", tt.in, tt.width, tt.want, got)
		}
	}
}
