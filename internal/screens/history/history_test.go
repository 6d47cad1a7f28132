package history

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	histsvc "github.com/mathmate/mathmate/internal/history"
)

type memKV struct {
	data map[string][]byte
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string][]byte)}
}

func (m *memKV) Get(key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(key string, value []byte) error {
	m.data[key] = value
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testHistoryScreen(t *testing.T) *HistoryScreen {
	t.Helper()
	svc := histsvc.NewService(newMemKV())
	entries := []histsvc.ExerciseResult{
		{ID: "a", Timestamp: 1700000000000, IsCorrect: true, Topic: "Fractions"},
		{ID: "b", Timestamp: 1700000100000, IsCorrect: false, Topic: "Linear Equations",
			Mistakes:  []histsvc.Mistake{{Description: "Sign flip on the second step"}},
			NextSteps: []string{"Redo with signs tracked"}},
	}
	for _, e := range entries {
		if err := svc.Append(e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	return New(svc)
}

func TestHistoryScreen_EmptyState(t *testing.T) {
	s := New(histsvc.NewService(newMemKV()))
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty empty-state view")
	}
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints in empty state")
	}
}

func TestHistoryScreen_NewestFirst(t *testing.T) {
	s := testHistoryScreen(t)
	if len(s.entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(s.entries))
	}
	if s.entries[0].ID != "b" {
		t.Errorf("first entry = %q, want b (newest)", s.entries[0].ID)
	}
}

func TestHistoryScreen_ExpandCollapse(t *testing.T) {
	s := testHistoryScreen(t)

	scr, _ := s.Update(specialKey(tea.KeyEnter))
	s = scr.(*HistoryScreen)
	if !s.expanded {
		t.Fatal("expected entry expanded after Enter")
	}
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty expanded view")
	}

	// Moving the cursor collapses the detail.
	scr, _ = s.Update(keyPress('j'))
	s = scr.(*HistoryScreen)
	if s.expanded {
		t.Error("expected detail collapsed after cursor move")
	}
	if s.cursor != 1 {
		t.Errorf("cursor = %d, want 1", s.cursor)
	}
}
