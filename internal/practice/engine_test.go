package practice

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mathmate/mathmate/internal/problemgen"
)

// fakeMastery implements MasteryState for tests.
type fakeMastery struct {
	active   []string
	resolved []string
}

func (f *fakeMastery) ActiveSkillIDs() []string { return f.active }
func (f *fakeMastery) ResolveSkill(skillID string) {
	f.resolved = append(f.resolved, skillID)
}

func problemsFor(skillID string, n int) []problemgen.Problem {
	out := make([]problemgen.Problem, n)
	for i := range out {
		out[i] = problemgen.Problem{
			ID:            fmt.Sprintf("%s-%d", skillID, i),
			Question:      fmt.Sprintf("Problem %d for %s", i, skillID),
			CorrectAnswer: "42",
			Explanation:   "Because.",
			Difficulty:    problemgen.DifficultyMedium,
			Topic:         "Test",
			SkillID:       skillID,
		}
	}
	return out
}

// startSession starts a session and applies an initial batch.
func startSession(t *testing.T, e *Engine, target string, batch []problemgen.Problem) {
	t.Helper()
	req, err := e.Start(target)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !e.ApplyBatch(req.Generation, batch) {
		t.Fatal("initial batch rejected")
	}
}

// answerCorrect reveals and evaluates one correct answer, feeding any
// requested batch immediately.
func answerCorrect(t *testing.T, e *Engine, nextBatch []problemgen.Problem) {
	t.Helper()
	e.RevealAnswer()
	if req := e.Evaluate(true); req != nil && nextBatch != nil {
		if !e.ApplyBatch(req.Generation, nextBatch) {
			t.Fatal("replenishment batch rejected")
		}
	}
}

func TestStart_GeneralWithNoActiveSkills(t *testing.T) {
	e := NewEngine(&fakeMastery{})
	_, err := e.Start("")
	if !errors.Is(err, ErrNothingToPractice) {
		t.Fatalf("err = %v, want ErrNothingToPractice", err)
	}
	if e.Phase() != PhaseDashboard {
		t.Error("failed start changed phase")
	}
}

func TestStart_SpecificNormalizesTarget(t *testing.T) {
	e := NewEngine(&fakeMastery{})
	req, err := e.Start("eq.quad.factor")
	if err != nil {
		t.Fatal(err)
	}
	if e.Mode() != ModeSpecific {
		t.Error("mode should be specific")
	}
	if len(req.TargetIDs) != 1 || req.TargetIDs[0] != "EQ.QUAD.FACTOR" {
		t.Errorf("targets = %v", req.TargetIDs)
	}
}

func TestSpecificSession_FiveCorrectsMastersSkill(t *testing.T) {
	tracker := &fakeMastery{}
	e := NewEngine(tracker)
	startSession(t, e, "EQ.QUAD.FACTOR", problemsFor("EQ.QUAD.FACTOR", 3))

	for i := 0; i < MasteryGoal; i++ {
		if e.Phase() != PhaseSession {
			t.Fatalf("left session after %d corrects", i)
		}
		answerCorrect(t, e, problemsFor("EQ.QUAD.FACTOR", 3))
	}

	if e.Phase() != PhaseSuccess {
		t.Fatalf("phase = %v, want success", e.Phase())
	}
	if len(tracker.resolved) != 1 || tracker.resolved[0] != "EQ.QUAD.FACTOR" {
		t.Errorf("resolved = %v", tracker.resolved)
	}
}

func TestGeneralSession_ResolvesTargetsOneByOne(t *testing.T) {
	tracker := &fakeMastery{active: []string{"SKILL.A", "SKILL.B"}}
	e := NewEngine(tracker)

	batch := append(problemsFor("SKILL.A", 5), problemsFor("SKILL.B", 5)...)
	startSession(t, e, "", batch)
	if e.Mode() != ModeGeneral {
		t.Fatal("mode should be general")
	}

	// Five corrects on A's problems resolve A but keep the session alive.
	for i := 0; i < MasteryGoal; i++ {
		answerCorrect(t, e, problemsFor("SKILL.B", 3))
	}
	if e.Phase() != PhaseSession {
		t.Fatalf("phase = %v after resolving first target", e.Phase())
	}
	if got := e.Targets(); len(got) != 1 || got[0] != "SKILL.B" {
		t.Fatalf("targets = %v, want [SKILL.B]", got)
	}
	if len(tracker.resolved) != 1 || tracker.resolved[0] != "SKILL.A" {
		t.Fatalf("resolved = %v", tracker.resolved)
	}

	// Five corrects on B finish the session.
	for i := 0; i < MasteryGoal; i++ {
		answerCorrect(t, e, problemsFor("SKILL.B", 3))
	}
	if e.Phase() != PhaseSuccess {
		t.Fatalf("phase = %v, want success", e.Phase())
	}
	if len(tracker.resolved) != 2 || tracker.resolved[1] != "SKILL.B" {
		t.Errorf("resolved = %v", tracker.resolved)
	}
}

func TestEvaluate_IncorrectBlocksAndDropsNoProgress(t *testing.T) {
	e := NewEngine(&fakeMastery{})
	startSession(t, e, "SKILL.A", problemsFor("SKILL.A", 3))

	e.RevealAnswer()
	if req := e.Evaluate(false); req != nil {
		t.Error("incorrect answer should not trigger a fetch")
	}
	if !e.HasMistake() {
		t.Fatal("mistake flag not set")
	}
	if e.Progress("SKILL.A") != 0 {
		t.Error("incorrect answer incremented progress")
	}
	if got := e.Targets(); len(got) != 1 {
		t.Errorf("targets changed: %v", got)
	}

	// Evaluate is blocked until the mistake is acknowledged.
	before, _ := e.CurrentProblem()
	e.AcknowledgeMistake()
	after, _ := e.CurrentProblem()
	if before.ID == after.ID {
		t.Error("acknowledge did not advance")
	}
	if e.HasMistake() {
		t.Error("mistake flag not cleared on advance")
	}
}

func TestEvaluate_UntaggedProblemSpecificModeFallback(t *testing.T) {
	tracker := &fakeMastery{}
	e := NewEngine(tracker)

	batch := problemsFor("", 6)
	startSession(t, e, "SKILL.A", batch)

	for i := 0; i < MasteryGoal; i++ {
		answerCorrect(t, e, problemsFor("", 3))
	}
	if e.Phase() != PhaseSuccess {
		t.Fatal("untagged problems should credit the sole specific target")
	}
	if len(tracker.resolved) != 1 || tracker.resolved[0] != "SKILL.A" {
		t.Errorf("resolved = %v", tracker.resolved)
	}
}

func TestEvaluate_UntaggedProblemGeneralModeDropsProgress(t *testing.T) {
	tracker := &fakeMastery{active: []string{"SKILL.A", "SKILL.B"}}
	e := NewEngine(tracker)
	startSession(t, e, "", problemsFor("", 4))

	before, _ := e.CurrentProblem()
	answerCorrect(t, e, nil)
	after, _ := e.CurrentProblem()

	if before.ID == after.ID {
		t.Error("session did not advance")
	}
	if e.Progress("SKILL.A") != 0 || e.Progress("SKILL.B") != 0 {
		t.Error("untagged problem credited a skill in general mode")
	}
	if len(tracker.resolved) != 0 {
		t.Error("untagged problem resolved a skill")
	}
}

func TestEvaluate_TaggedProblemOutsideTargetsResolvesAtGoal(t *testing.T) {
	tracker := &fakeMastery{active: []string{"SKILL.A"}}
	e := NewEngine(tracker)
	startSession(t, e, "", problemsFor("SKILL.X", 6))

	for i := 0; i < MasteryGoal; i++ {
		answerCorrect(t, e, problemsFor("SKILL.X", 3))
	}

	// A skill tagged outside the target set still accrues progress and
	// resolves at the mastery goal; only its target-set removal is a
	// no-op, so the session stays open on the real targets.
	if e.Progress("SKILL.X") != MasteryGoal {
		t.Errorf("progress = %d", e.Progress("SKILL.X"))
	}
	if len(tracker.resolved) != 1 || tracker.resolved[0] != "SKILL.X" {
		t.Errorf("resolved = %v, want [SKILL.X]", tracker.resolved)
	}
	if e.Phase() != PhaseSession {
		t.Error("session ended without resolving its targets")
	}
	if got := e.Targets(); len(got) != 1 || got[0] != "SKILL.A" {
		t.Errorf("targets = %v, want [SKILL.A]", got)
	}
}

func TestEvaluate_IgnoredWhileMistakeUnacknowledged(t *testing.T) {
	tracker := &fakeMastery{}
	e := NewEngine(tracker)
	startSession(t, e, "SKILL.A", problemsFor("SKILL.A", 3))

	e.RevealAnswer()
	e.Evaluate(false)
	if !e.HasMistake() {
		t.Fatal("expected mistake flag")
	}

	// Evaluations are dead until the mistake is acknowledged.
	if req := e.Evaluate(true); req != nil {
		t.Error("blocked evaluate issued a fetch")
	}
	if e.Progress("SKILL.A") != 0 {
		t.Errorf("progress = %d, want 0 while blocked", e.Progress("SKILL.A"))
	}
	if !e.HasMistake() {
		t.Error("blocked evaluate cleared the mistake flag")
	}

	e.AcknowledgeMistake()
	e.RevealAnswer()
	e.Evaluate(true)
	if e.Progress("SKILL.A") != 1 {
		t.Errorf("progress = %d, want 1 after acknowledgement", e.Progress("SKILL.A"))
	}
}

func TestAdvance_ExhaustionRequestsBatchAndAdvancesIndex(t *testing.T) {
	e := NewEngine(&fakeMastery{})
	startSession(t, e, "SKILL.A", problemsFor("SKILL.A", 1))

	e.RevealAnswer()
	req := e.Evaluate(true)
	if req == nil {
		t.Fatal("exhausted batch should request replenishment")
	}

	// Index advanced past the batch: no problem while loading.
	if _, ok := e.CurrentProblem(); ok {
		t.Error("problem available while batch is loading")
	}
	if !e.Fetching() {
		t.Error("fetch-in-flight flag not set")
	}

	// A second advance must not issue a duplicate fetch.
	if dup := e.RetryFetch(); dup != nil {
		t.Error("duplicate fetch issued while one is outstanding")
	}

	if !e.ApplyBatch(req.Generation, problemsFor("SKILL.A", 3)) {
		t.Fatal("batch rejected")
	}
	if _, ok := e.CurrentProblem(); !ok {
		t.Error("problem not available after batch applied")
	}
	if e.Fetching() {
		t.Error("fetch flag not cleared")
	}
}

func TestApplyBatch_StaleGenerationIgnored(t *testing.T) {
	e := NewEngine(&fakeMastery{active: []string{"SKILL.A"}})
	req, err := e.Start("")
	if err != nil {
		t.Fatal(err)
	}

	e.Exit()
	if e.ApplyBatch(req.Generation, problemsFor("SKILL.A", 3)) {
		t.Error("stale batch applied after exit")
	}

	// A fresh session must not see the abandoned session's problems.
	req2, err := e.Start("")
	if err != nil {
		t.Fatal(err)
	}
	if e.ApplyBatch(req.Generation, problemsFor("SKILL.A", 3)) {
		t.Error("old generation accepted into new session")
	}
	if !e.ApplyBatch(req2.Generation, problemsFor("SKILL.A", 3)) {
		t.Error("current generation rejected")
	}
}

func TestFetchFailed_KeepsUserOnLastProblem(t *testing.T) {
	e := NewEngine(&fakeMastery{})
	startSession(t, e, "SKILL.A", problemsFor("SKILL.A", 1))

	e.RevealAnswer()
	req := e.Evaluate(true)
	if req == nil {
		t.Fatal("expected fetch request")
	}

	e.FetchFailed(req.Generation, errors.New("generator down"))
	if e.FetchErr() == nil {
		t.Error("fetch error not surfaced")
	}
	if _, ok := e.CurrentProblem(); !ok {
		t.Error("user advanced into undefined state after failed fetch")
	}

	// Retry issues a fresh request and clears the error.
	retry := e.RetryFetch()
	if retry == nil {
		t.Fatal("retry not issued")
	}
	if e.FetchErr() != nil {
		t.Error("fetch error not cleared on retry")
	}
	if !e.ApplyBatch(retry.Generation, problemsFor("SKILL.A", 3)) {
		t.Error("retry batch rejected")
	}
}

func TestExit_DiscardsPartialProgress(t *testing.T) {
	tracker := &fakeMastery{}
	e := NewEngine(tracker)
	startSession(t, e, "SKILL.A", problemsFor("SKILL.A", 5))

	answerCorrect(t, e, nil)
	answerCorrect(t, e, nil)
	if e.Progress("SKILL.A") != 2 {
		t.Fatalf("progress = %d", e.Progress("SKILL.A"))
	}

	e.Exit()
	if e.Phase() != PhaseDashboard {
		t.Error("exit did not return to dashboard")
	}
	if len(tracker.resolved) != 0 {
		t.Error("partial progress resolved a skill")
	}

	// A restarted session begins from zero.
	startSession(t, e, "SKILL.A", problemsFor("SKILL.A", 5))
	if e.Progress("SKILL.A") != 0 {
		t.Error("partial progress survived a restart")
	}
}

func TestAcknowledge_ReturnsToDashboard(t *testing.T) {
	e := NewEngine(&fakeMastery{})
	startSession(t, e, "SKILL.A", problemsFor("SKILL.A", 6))
	for i := 0; i < MasteryGoal; i++ {
		answerCorrect(t, e, nil)
	}
	if e.Phase() != PhaseSuccess {
		t.Fatal("session not completed")
	}

	e.Acknowledge()
	if e.Phase() != PhaseDashboard {
		t.Error("acknowledge did not return to dashboard")
	}
}

func TestRevealAnswer_ResetsOnAdvance(t *testing.T) {
	e := NewEngine(&fakeMastery{})
	startSession(t, e, "SKILL.A", problemsFor("SKILL.A", 3))

	e.RevealAnswer()
	if !e.AnswerShown() {
		t.Fatal("answer not shown")
	}
	e.Evaluate(true)
	if e.AnswerShown() {
		t.Error("reveal state survived the advance")
	}
}
