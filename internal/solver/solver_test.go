package solver

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mathmate/mathmate/internal/history"
	"github.com/mathmate/mathmate/internal/llm"
)

type memKV struct {
	data map[string][]byte
}

func newMemKV() *memKV { return &memKV{data: make(map[string][]byte)} }

func (m *memKV) Get(key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(key string, value []byte) error {
	m.data[key] = value
	return nil
}

type fakeTracker struct {
	tracked []string
	hints   []string
}

func (f *fakeTracker) TrackMistake(skillID, nameHint string) {
	f.tracked = append(f.tracked, skillID)
	f.hints = append(f.hints, nameHint)
}

func newSolver(responses ...llm.MockResponse) (*Service, *history.Service, *fakeTracker, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	hist := history.NewService(newMemKV())
	tracker := &fakeTracker{}
	svc := NewService(mock, hist, tracker)
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }
	svc.newID = func() string { return "result-1" }
	return svc, hist, tracker, mock
}

func gradingJSON() json.RawMessage {
	return json.RawMessage(`{
		"isCorrect": false,
		"transcribed_lines": ["2x + 5 = 15 =", "2x = 10 \\\\", "x = 4"],
		"topic": "Linear Equations",
		"skillId": "EQ.LIN.ONEVAR",
		"mistakes": [{"description": "Dividing $10$ by $2$ gives $5$, not $4$.", "box_2d": [620, 100, 700, 400]}],
		"nextSteps": ["Redo the final division: $x = 10 / 2$."],
		"stepDetails": [{"text": "2x", "explanation": "A linear term."}],
		"explanation": "The isolation steps are right but the last division is off.",
		"ruleApplications": [{"name": "Division Property", "generic": "If $ax=b$ then $x=b/a$", "specific": "$x = 10/2$"}]
	}`)
}

func TestSolveImage_BuildsResult(t *testing.T) {
	svc, hist, _, _ := newSolver(llm.MockResponse{Content: gradingJSON()})

	result, err := svc.SolveImage(context.Background(), llm.Image{MIMEType: "image/png", Data: []byte{1}})
	if err != nil {
		t.Fatalf("SolveImage: %v", err)
	}

	if result.ID != "result-1" || result.Timestamp != 1700000000000 {
		t.Errorf("identity = %q/%d", result.ID, result.Timestamp)
	}
	if result.IsCorrect {
		t.Error("result should be incorrect")
	}
	want := `\begin{gather*} 2x + 5 = 15 = \\ 2x = 10 \\ x = 4 \end{gather*}`
	if result.ProblemStatement != want {
		t.Errorf("problem statement = %q, want %q", result.ProblemStatement, want)
	}
	if len(result.Mistakes) != 1 || len(result.Mistakes[0].Box) != 4 {
		t.Errorf("mistakes = %+v", result.Mistakes)
	}
	if len(result.RuleApplications) != 1 || result.RuleApplications[0].Name != "Division Property" {
		t.Errorf("rule applications = %+v", result.RuleApplications)
	}

	entries := hist.List()
	if len(entries) != 1 || entries[0].ID != "result-1" {
		t.Fatalf("history = %+v", entries)
	}
}

func TestSolveImage_TracksMistakeBySkillID(t *testing.T) {
	svc, _, tracker, _ := newSolver(llm.MockResponse{Content: gradingJSON()})

	if _, err := svc.SolveImage(context.Background(), llm.Image{MIMEType: "image/png", Data: []byte{1}}); err != nil {
		t.Fatal(err)
	}
	if len(tracker.tracked) != 1 || tracker.tracked[0] != "EQ.LIN.ONEVAR" {
		t.Errorf("tracked = %v", tracker.tracked)
	}
	if tracker.hints[0] != "Linear Equations" {
		t.Errorf("hint = %q", tracker.hints[0])
	}
}

func TestSolveImage_TracksByTopicWithoutSkillID(t *testing.T) {
	resp := json.RawMessage(`{
		"isCorrect": false,
		"transcribed_lines": ["1 + 1 = 3"],
		"topic": "Arithmetic",
		"mistakes": [{"description": "Sum is wrong."}],
		"nextSteps": [],
		"explanation": "One plus one is two."
	}`)
	svc, _, tracker, _ := newSolver(llm.MockResponse{Content: resp})

	if _, err := svc.SolveImage(context.Background(), llm.Image{MIMEType: "image/png", Data: []byte{1}}); err != nil {
		t.Fatal(err)
	}
	if len(tracker.tracked) != 1 || tracker.tracked[0] != "Arithmetic" {
		t.Errorf("tracked = %v", tracker.tracked)
	}
}

func TestSolveImage_CorrectWorkNotTracked(t *testing.T) {
	resp := json.RawMessage(`{
		"isCorrect": true,
		"transcribed_lines": ["2x = 10 =", "x = 5"],
		"topic": "Linear Equations",
		"skillId": "EQ.LIN.ONEVAR",
		"mistakes": [],
		"nextSteps": [],
		"explanation": "All steps check out."
	}`)
	svc, _, tracker, _ := newSolver(llm.MockResponse{Content: resp})

	if _, err := svc.SolveImage(context.Background(), llm.Image{MIMEType: "image/png", Data: []byte{1}}); err != nil {
		t.Fatal(err)
	}
	if len(tracker.tracked) != 0 {
		t.Errorf("correct work tracked: %v", tracker.tracked)
	}
}

func TestSolveImage_TopicDefault(t *testing.T) {
	resp := json.RawMessage(`{
		"isCorrect": true,
		"transcribed_lines": ["x = 1"],
		"topic": "",
		"mistakes": [],
		"nextSteps": [],
		"explanation": "ok"
	}`)
	svc, _, _, _ := newSolver(llm.MockResponse{Content: resp})

	result, err := svc.SolveImage(context.Background(), llm.Image{MIMEType: "image/png", Data: []byte{1}})
	if err != nil {
		t.Fatal(err)
	}
	if result.Topic != "Math Problem" {
		t.Errorf("topic = %q", result.Topic)
	}
}

func TestSolveImage_ProviderErrorLeavesHistoryEmpty(t *testing.T) {
	svc, hist, _, _ := newSolver(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})

	if _, err := svc.SolveImage(context.Background(), llm.Image{MIMEType: "image/png", Data: []byte{1}}); err == nil {
		t.Fatal("expected error")
	}
	if len(hist.List()) != 0 {
		t.Error("failed solve wrote history")
	}
}

func TestReSolve_UpdatesEntryInPlace(t *testing.T) {
	regraded := json.RawMessage(`{
		"isCorrect": true,
		"topic": "Linear Equations",
		"skillId": "EQ.LIN.ONEVAR",
		"problemStatement": "2x + 5 = 15 \\\\ 2x = 10 \\\\ x = 5",
		"mistakes": [],
		"nextSteps": [],
		"explanation": "The corrected division is right."
	}`)
	svc, hist, tracker, mock := newSolver(llm.MockResponse{Content: gradingJSON()}, llm.MockResponse{Content: regraded})

	prior, err := svc.SolveImage(context.Background(), llm.Image{MIMEType: "image/png", Data: []byte{1}})
	if err != nil {
		t.Fatal(err)
	}
	trackedBefore := len(tracker.tracked)

	edited := svc.EditableText(*prior)
	updated, err := svc.ReSolve(context.Background(), *prior, strings.Replace(edited, "x = 4", "x = 5", 1))
	if err != nil {
		t.Fatalf("ReSolve: %v", err)
	}

	if updated.ID != prior.ID || updated.Timestamp != prior.Timestamp {
		t.Errorf("identity changed: %q/%d", updated.ID, updated.Timestamp)
	}
	if !updated.IsCorrect {
		t.Error("regrade should be correct")
	}
	if !strings.HasPrefix(updated.ProblemStatement, `\begin{gather*}`) {
		t.Errorf("statement not wrapped: %q", updated.ProblemStatement)
	}
	if updated.Approach != "" {
		t.Errorf("approach carried over: %q", updated.Approach)
	}

	entries := hist.List()
	if len(entries) != 1 {
		t.Fatalf("history = %d entries, want 1", len(entries))
	}
	if !entries[0].IsCorrect {
		t.Error("history entry not updated in place")
	}
	if len(tracker.tracked) != trackedBefore {
		t.Errorf("correct regrade tracked a mistake: %v", tracker.tracked)
	}

	msg := mock.Calls[1].Messages[0].Content
	if !strings.Contains(msg, "x = 5") {
		t.Errorf("edited latex missing from prompt:\n%s", msg)
	}
	if mock.Calls[1].Schema != TextSchema {
		t.Error("text schema not attached to regrade")
	}
}

func TestReSolve_FallsBackToEditedLatex(t *testing.T) {
	regraded := json.RawMessage(`{
		"isCorrect": false,
		"topic": "Arithmetic",
		"mistakes": [{"description": "Still wrong."}],
		"nextSteps": [],
		"explanation": "The sum is still off."
	}`)
	svc, _, _, _ := newSolver(llm.MockResponse{Content: regraded})

	prior := history.ExerciseResult{ID: "abc", Timestamp: 42}
	updated, err := svc.ReSolve(context.Background(), prior, `1 + 1 = 3`)
	if err != nil {
		t.Fatal(err)
	}
	if updated.ProblemStatement != `\begin{gather*} 1 + 1 = 3 \end{gather*}` {
		t.Errorf("statement = %q", updated.ProblemStatement)
	}
}
