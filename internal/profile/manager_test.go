package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mathmate/mathmate/internal/history"
	"github.com/mathmate/mathmate/internal/store"
)

// memKV is an in-memory store.KV for tests.
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

// fakeTracker records TrackMistake calls.
type fakeTracker struct {
	calls []string // "id|hint"
}

func (f *fakeTracker) TrackMistake(skillID, nameHint string) {
	f.calls = append(f.calls, skillID+"|"+nameHint)
}

// fakeVerifier returns a fixed verdict or error.
type fakeVerifier struct {
	verdict *Correction
	err     error

	gotProblem string
	gotWork    string
}

func (f *fakeVerifier) VerifyCorrection(_ context.Context, problem, work string) (*Correction, error) {
	f.gotProblem = problem
	f.gotWork = work
	if f.err != nil {
		return nil, f.err
	}
	return f.verdict, nil
}

func newTestManager(kv store.KV, tracker MistakeTracker) *Manager {
	m := NewManager(kv, tracker, history.NewService(kv))
	m.now = func() time.Time { return time.UnixMilli(1700000000000) }
	seq := 0
	m.newID = func() string {
		seq++
		return "id-" + string(rune('a'+seq-1))
	}
	return m
}

func sampleAnalysis() Analysis {
	return Analysis{
		Strengths: []IdentifiedSkill{
			{ID: "NUM.FRAC.ADD", Name: "Adding Fractions", Explanation: "Consistent"},
		},
		Weaknesses: []IdentifiedSkill{
			{ID: "EQ.QUAD.FACTOR", Name: "Factoring", Explanation: "Sign errors"},
			{ID: "ALG.EXPR.SIMP", Name: "Simplifying", Explanation: "Drops terms"},
		},
		TopicsIdentified:    []string{"Quadratics"},
		Recommendations:     []string{"Review factoring patterns"},
		EstimatedSkillLevel: 62,
		MistakeExamples: []MistakeExample{
			{Problem: "x^2-4=0", StudentWork: "(x-2)(x-2)=0", MistakeExplanation: "Wrong pair", Correction: "(x-2)(x+2)=0", SkillID: "EQ.QUAD.FACTOR"},
			{Problem: "2+2", StudentWork: "5", MistakeExplanation: "Arithmetic", Correction: "4"},
		},
	}
}

func TestApplyAnalysis_ReplacesProfileWholesale(t *testing.T) {
	kv := newMemKV()
	mgr := newTestManager(kv, &fakeTracker{})

	p, err := mgr.ApplyAnalysis(sampleAnalysis())
	if err != nil {
		t.Fatalf("ApplyAnalysis: %v", err)
	}
	if p.SkillLevel != 62 {
		t.Errorf("SkillLevel = %d, want 62", p.SkillLevel)
	}
	if len(p.MistakeExamples) != 2 {
		t.Fatalf("examples = %d, want 2", len(p.MistakeExamples))
	}
	for i, ex := range p.MistakeExamples {
		if ex.ID == "" {
			t.Errorf("example %d missing assigned id", i)
		}
	}
	if p.LastAnalysis != 1700000000000 {
		t.Errorf("LastAnalysis = %d", p.LastAnalysis)
	}

	reloaded := mgr.Load()
	if reloaded == nil {
		t.Fatal("profile not persisted")
	}
	if len(reloaded.Weaknesses) != 2 {
		t.Errorf("reloaded weaknesses = %d, want 2", len(reloaded.Weaknesses))
	}
}

func TestApplyAnalysis_TracksMistakesAndUncoveredWeaknesses(t *testing.T) {
	tracker := &fakeTracker{}
	mgr := newTestManager(newMemKV(), tracker)

	if _, err := mgr.ApplyAnalysis(sampleAnalysis()); err != nil {
		t.Fatalf("ApplyAnalysis: %v", err)
	}

	want := []string{
		"EQ.QUAD.FACTOR|Analyzed Weakness",           // example with skill id
		"GENERAL_WEAKNESS|General Analysis Mistake",  // example without
		"ALG.EXPR.SIMP|Simplifying",                  // weakness not covered by examples
	}
	if len(tracker.calls) != len(want) {
		t.Fatalf("tracker calls = %v, want %v", tracker.calls, want)
	}
	for i, w := range want {
		if tracker.calls[i] != w {
			t.Errorf("call %d = %q, want %q", i, tracker.calls[i], w)
		}
	}
}

func TestApplyAnalysis_AppendsHistoryEntry(t *testing.T) {
	kv := newMemKV()
	mgr := newTestManager(kv, &fakeTracker{})

	if _, err := mgr.ApplyAnalysis(sampleAnalysis()); err != nil {
		t.Fatalf("ApplyAnalysis: %v", err)
	}

	entries := history.NewService(kv).List()
	if len(entries) != 1 {
		t.Fatalf("history entries = %d, want 1", len(entries))
	}
	e := entries[0]
	if e.Topic != "Skill Analysis" || e.SkillID != "ANALYSIS" {
		t.Errorf("entry topic/skill = %q/%q", e.Topic, e.SkillID)
	}
	if e.IsCorrect {
		t.Error("analysis with weaknesses marked correct")
	}
	if len(e.Mistakes) != 2 || e.Mistakes[0].Description != "Factoring" {
		t.Errorf("mistakes = %+v", e.Mistakes)
	}
}

func TestApplyAnalysis_NoWeaknessesIsCorrect(t *testing.T) {
	kv := newMemKV()
	mgr := newTestManager(kv, &fakeTracker{})

	res := sampleAnalysis()
	res.Weaknesses = nil
	res.MistakeExamples = nil
	if _, err := mgr.ApplyAnalysis(res); err != nil {
		t.Fatalf("ApplyAnalysis: %v", err)
	}

	entries := history.NewService(kv).List()
	if len(entries) != 1 || !entries[0].IsCorrect {
		t.Error("clean analysis should record a correct history entry")
	}
}

func TestCorrectMistakeExample_OutOfRange(t *testing.T) {
	kv := newMemKV()
	mgr := newTestManager(kv, &fakeTracker{})
	if _, err := mgr.ApplyAnalysis(sampleAnalysis()); err != nil {
		t.Fatal(err)
	}
	before, _, _ := kv.Get(store.KeyProfile)

	_, _, err := mgr.CorrectMistakeExample(context.Background(), 5, "p", "w", &fakeVerifier{})
	if !errors.Is(err, ErrExampleNotFound) {
		t.Fatalf("err = %v, want ErrExampleNotFound", err)
	}

	after, _, _ := kv.Get(store.KeyProfile)
	if string(before) != string(after) {
		t.Error("out-of-range correction modified the profile")
	}
}

func TestCorrectMistakeExample_VerifiedCorrectRemovesExampleAndWeakness(t *testing.T) {
	mgr := newTestManager(newMemKV(), &fakeTracker{})
	if _, err := mgr.ApplyAnalysis(sampleAnalysis()); err != nil {
		t.Fatal(err)
	}

	// Example 0 is the only one tied to EQ.QUAD.FACTOR.
	v := &fakeVerifier{verdict: &Correction{IsCorrect: true}}
	p, verdict, err := mgr.CorrectMistakeExample(context.Background(), 0, "x^2-4=0", "(x-2)(x+2)=0", v)
	if err != nil {
		t.Fatalf("CorrectMistakeExample: %v", err)
	}
	if !verdict.IsCorrect {
		t.Fatal("verdict should be correct")
	}
	if len(p.MistakeExamples) != 1 {
		t.Fatalf("examples = %d, want 1", len(p.MistakeExamples))
	}
	for _, w := range p.Weaknesses {
		if w.ID == "EQ.QUAD.FACTOR" {
			t.Error("weakness with no remaining examples not removed")
		}
	}
	// The other weakness is untouched.
	if len(p.Weaknesses) != 1 || p.Weaknesses[0].ID != "ALG.EXPR.SIMP" {
		t.Errorf("weaknesses = %+v", p.Weaknesses)
	}
}

func TestCorrectMistakeExample_VerifiedCorrectKeepsWeaknessWithOtherExamples(t *testing.T) {
	mgr := newTestManager(newMemKV(), &fakeTracker{})
	res := sampleAnalysis()
	res.MistakeExamples = append(res.MistakeExamples, MistakeExample{
		Problem: "x^2-9=0", StudentWork: "(x-3)(x-3)=0", Correction: "(x-3)(x+3)=0", SkillID: "EQ.QUAD.FACTOR",
	})
	if _, err := mgr.ApplyAnalysis(res); err != nil {
		t.Fatal(err)
	}

	v := &fakeVerifier{verdict: &Correction{IsCorrect: true}}
	p, _, err := mgr.CorrectMistakeExample(context.Background(), 0, "x^2-4=0", "(x-2)(x+2)=0", v)
	if err != nil {
		t.Fatal(err)
	}

	found := false
	for _, w := range p.Weaknesses {
		if w.ID == "EQ.QUAD.FACTOR" {
			found = true
		}
	}
	if !found {
		t.Error("weakness removed while another example still references it")
	}
}

func TestCorrectMistakeExample_StillIncorrectReplacesInPlace(t *testing.T) {
	mgr := newTestManager(newMemKV(), &fakeTracker{})
	if _, err := mgr.ApplyAnalysis(sampleAnalysis()); err != nil {
		t.Fatal(err)
	}

	v := &fakeVerifier{verdict: &Correction{
		IsCorrect:   false,
		Correction:  "(x-2)(x+2)=0",
		Explanation: "Still the wrong sign",
		SkillID:     "ALG.EXPR.SIMP",
	}}
	p, _, err := mgr.CorrectMistakeExample(context.Background(), 0, "x^2-4=0", "(x-2)(x-2)=0", v)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.MistakeExamples) != 2 {
		t.Fatalf("examples = %d, want 2", len(p.MistakeExamples))
	}
	ex := p.MistakeExamples[0]
	if ex.Correction != "(x-2)(x+2)=0" || ex.MistakeExplanation != "Still the wrong sign" {
		t.Errorf("example not updated: %+v", ex)
	}
	if ex.SkillID != "ALG.EXPR.SIMP" {
		t.Errorf("skill id not re-classified: %q", ex.SkillID)
	}
}

func TestCorrectMistakeExample_WrapsMultilineLatex(t *testing.T) {
	mgr := newTestManager(newMemKV(), &fakeTracker{})
	if _, err := mgr.ApplyAnalysis(sampleAnalysis()); err != nil {
		t.Fatal(err)
	}

	v := &fakeVerifier{verdict: &Correction{IsCorrect: false}}
	_, _, err := mgr.CorrectMistakeExample(context.Background(), 0, `x=1 \\ y=2`, `x+y \\ =3`, v)
	if err != nil {
		t.Fatal(err)
	}
	if v.gotProblem != `\begin{gather*} x=1 \\ y=2 \end{gather*}` {
		t.Errorf("problem sent to verifier = %q", v.gotProblem)
	}
	if v.gotWork != `\begin{gather*} x+y \\ =3 \end{gather*}` {
		t.Errorf("work sent to verifier = %q", v.gotWork)
	}
}

func TestCorrectMistakeExample_VerifierFailureLeavesProfileUntouched(t *testing.T) {
	kv := newMemKV()
	mgr := newTestManager(kv, &fakeTracker{})
	if _, err := mgr.ApplyAnalysis(sampleAnalysis()); err != nil {
		t.Fatal(err)
	}
	before, _, _ := kv.Get(store.KeyProfile)

	v := &fakeVerifier{err: errors.New("model unavailable")}
	_, _, err := mgr.CorrectMistakeExample(context.Background(), 0, "p", "w", v)
	if err == nil {
		t.Fatal("expected error")
	}

	after, _, _ := kv.Get(store.KeyProfile)
	if string(before) != string(after) {
		t.Error("failed verification modified the profile")
	}
}

func TestLoad_MissingOrCorruptReturnsNil(t *testing.T) {
	kv := newMemKV()
	mgr := newTestManager(kv, &fakeTracker{})
	if mgr.Load() != nil {
		t.Error("missing profile should load as nil")
	}
	kv.Set(store.KeyProfile, []byte("{corrupt"))
	if mgr.Load() != nil {
		t.Error("corrupt profile should load as nil")
	}
}

func TestProfile_RoundTrip(t *testing.T) {
	kv := newMemKV()
	mgr := newTestManager(kv, &fakeTracker{})
	saved, err := mgr.ApplyAnalysis(sampleAnalysis())
	if err != nil {
		t.Fatal(err)
	}

	loaded := mgr.Load()
	if loaded == nil {
		t.Fatal("profile not persisted")
	}
	if len(loaded.Strengths) != len(saved.Strengths) ||
		len(loaded.Weaknesses) != len(saved.Weaknesses) ||
		len(loaded.MistakeExamples) != len(saved.MistakeExamples) {
		t.Errorf("round-trip mismatch: %+v vs %+v", loaded, saved)
	}
	if loaded.MistakeExamples[0].ID != saved.MistakeExamples[0].ID {
		t.Error("example ids not preserved across round-trip")
	}
}
