package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mathmate/mathmate/internal/history"
	"github.com/mathmate/mathmate/internal/latexfmt"
	"github.com/mathmate/mathmate/internal/store"
)

// MistakeTracker receives mastery side effects when an analysis lands.
// Satisfied by *mastery.Tracker.
type MistakeTracker interface {
	TrackMistake(skillID, nameHint string)
}

// HistoryAppender records the analysis run in the exercise history.
// Satisfied by *history.Service.
type HistoryAppender interface {
	Append(entry history.ExerciseResult) error
}

// Manager owns the persisted skill profile.
type Manager struct {
	kv      store.KV
	tracker MistakeTracker
	hist    HistoryAppender
	now     func() time.Time
	newID   func() string
}

// NewManager creates a profile manager over the given store.
func NewManager(kv store.KV, tracker MistakeTracker, hist HistoryAppender) *Manager {
	return &Manager{
		kv:      kv,
		tracker: tracker,
		hist:    hist,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
}

// Load returns the current profile, or nil if none is saved. A corrupt
// record loads as nil rather than failing.
func (m *Manager) Load() *SkillProfile {
	raw, ok, err := m.kv.Get(store.KeyProfile)
	if err != nil || !ok {
		return nil
	}
	var p SkillProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil
	}
	return &p
}

// ApplyAnalysis replaces the current profile wholesale with the result
// of a completed analysis pass. Side effects: the run is appended to
// the exercise history, and every mistake example and uncovered
// weakness is tracked against the mastery map so it surfaces on the
// practice dashboard.
func (m *Manager) ApplyAnalysis(res Analysis) (*SkillProfile, error) {
	nowMillis := m.now().UnixMilli()

	examples := make([]MistakeExample, len(res.MistakeExamples))
	copy(examples, res.MistakeExamples)
	for i := range examples {
		if examples[i].ID == "" {
			examples[i].ID = m.newID()
		}
	}

	p := &SkillProfile{
		Strengths:       res.Strengths,
		Weaknesses:      res.Weaknesses,
		RecentTopics:    res.TopicsIdentified,
		Recommendations: res.Recommendations,
		SkillLevel:      res.EstimatedSkillLevel,
		MistakeExamples: examples,
		LastAnalysis:    nowMillis,
	}

	if err := m.save(p); err != nil {
		return nil, err
	}

	mistakes := make([]history.Mistake, len(res.Weaknesses))
	for i, w := range res.Weaknesses {
		mistakes[i] = history.Mistake{Description: w.Name}
	}
	entry := history.ExerciseResult{
		ID:        m.newID(),
		Timestamp: nowMillis,
		IsCorrect: len(res.Weaknesses) == 0,
		Mistakes:  mistakes,
		NextSteps: res.Recommendations,
		Explanation: fmt.Sprintf("Skill Analysis Result. Strengths: %d, Weaknesses: %d.",
			len(res.Strengths), len(res.Weaknesses)),
		Topic:   "Skill Analysis",
		SkillID: "ANALYSIS",
	}
	if err := m.hist.Append(entry); err != nil {
		return nil, fmt.Errorf("append analysis to history: %w", err)
	}

	// Surface weaknesses on the practice dashboard. Examples without a
	// skill id fall into the general bucket; weaknesses with no literal
	// example still get tracked under their own id.
	tracked := make(map[string]bool)
	for _, ex := range examples {
		if ex.SkillID != "" {
			m.tracker.TrackMistake(ex.SkillID, "Analyzed Weakness")
			tracked[ex.SkillID] = true
		} else {
			m.tracker.TrackMistake("GENERAL_WEAKNESS", "General Analysis Mistake")
		}
	}
	for _, w := range res.Weaknesses {
		if w.ID != "" && !tracked[w.ID] {
			m.tracker.TrackMistake(w.ID, w.Name)
		}
	}

	return p, nil
}

// CorrectMistakeExample re-verifies an edited problem/work pair for the
// example at index. A verified-correct edit removes the example; if it
// was the last example for its skill id, the skill leaves the weakness
// list too. A still-incorrect edit replaces the example in place,
// re-classifying its skill id when the verifier returns a different
// one. Both texts are normalized so stored LaTeX renders standalone.
//
// The profile is untouched when the verifier fails.
func (m *Manager) CorrectMistakeExample(ctx context.Context, index int, problem, studentWork string, v Verifier) (*SkillProfile, *Correction, error) {
	p := m.Load()
	if p == nil || index < 0 || index >= len(p.MistakeExamples) {
		return nil, nil, ErrExampleNotFound
	}
	target := p.MistakeExamples[index]

	problem = latexfmt.WrapEnvironment(problem)
	studentWork = latexfmt.WrapEnvironment(studentWork)

	verdict, err := v.VerifyCorrection(ctx, problem, studentWork)
	if err != nil {
		return nil, nil, fmt.Errorf("verify correction: %w", err)
	}

	if verdict.IsCorrect {
		p.MistakeExamples = append(p.MistakeExamples[:index], p.MistakeExamples[index+1:]...)

		if target.SkillID != "" {
			remaining := 0
			for _, ex := range p.MistakeExamples {
				if ex.SkillID == target.SkillID {
					remaining++
				}
			}
			if remaining == 0 {
				kept := p.Weaknesses[:0:0]
				for _, w := range p.Weaknesses {
					if w.ID != target.SkillID {
						kept = append(kept, w)
					}
				}
				p.Weaknesses = kept
			}
		}
	} else {
		ex := &p.MistakeExamples[index]
		ex.Problem = problem
		ex.StudentWork = studentWork
		ex.Correction = verdict.Correction
		ex.MistakeExplanation = verdict.Explanation
		if ex.MistakeExplanation == "" {
			ex.MistakeExplanation = "No explanation provided."
		}
		if verdict.SkillID != "" {
			ex.SkillID = verdict.SkillID
		}
	}

	if err := m.save(p); err != nil {
		return nil, nil, err
	}
	return p, verdict, nil
}

func (m *Manager) save(p *SkillProfile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	if err := m.kv.Set(store.KeyProfile, data); err != nil {
		return fmt.Errorf("persist profile: %w", err)
	}
	return nil
}
