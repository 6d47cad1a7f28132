// Package history keeps the append-only list of analyzed exercises,
// newest first. Entries are immutable once created, with one exception:
// re-analyzing a corrected submission updates the entry in place by id.
package history

import (
	"encoding/json"
	"fmt"

	"github.com/mathmate/mathmate/internal/store"
)

// Mistake is one identified error. The bounding box, when present, is
// normalized to 0–1000 as [ymin, xmin, ymax, xmax].
type Mistake struct {
	Description string `json:"description"`
	Box         []int  `json:"box_2d,omitempty"`
}

// UnmarshalJSON accepts both the structured shape and the legacy bare
// string form.
func (m *Mistake) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		m.Description = s
		m.Box = nil
		return nil
	}

	type alias Mistake
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*m = Mistake(a)
	return nil
}

// StepDetail is an extracted term with its explanation.
type StepDetail struct {
	Text        string `json:"text"`
	Explanation string `json:"explanation"`
}

// RuleApplication names a rule used in the work, in both its generic
// form and as applied to this problem.
type RuleApplication struct {
	Name     string `json:"name"`
	Generic  string `json:"generic"`
	Specific string `json:"specific"`
}

// ExerciseResult is one history entry.
type ExerciseResult struct {
	ID               string            `json:"id"`
	Timestamp        int64             `json:"timestamp"`
	IsCorrect        bool              `json:"isCorrect"`
	Mistakes         []Mistake         `json:"mistakes"`
	NextSteps        []string          `json:"nextSteps"`
	Explanation      string            `json:"explanation"`
	Topic            string            `json:"topic"`
	SkillID          string            `json:"skillId,omitempty"`
	ProblemStatement string            `json:"problemStatement,omitempty"`
	Approach         string            `json:"approach,omitempty"`
	RuleApplications []RuleApplication `json:"ruleApplications,omitempty"`
	StepDetails      []StepDetail      `json:"stepDetails,omitempty"`
}

// Service reads and writes the history record.
type Service struct {
	kv store.KV
}

// NewService creates a history service over the given store.
func NewService(kv store.KV) *Service {
	return &Service{kv: kv}
}

// List returns all entries, newest first. Missing or corrupt records
// load as an empty list.
func (s *Service) List() []ExerciseResult {
	raw, ok, err := s.kv.Get(store.KeyHistory)
	if err != nil || !ok {
		return nil
	}
	var entries []ExerciseResult
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	return entries
}

// Append prepends a new entry.
func (s *Service) Append(entry ExerciseResult) error {
	entries := append([]ExerciseResult{entry}, s.List()...)
	return s.save(entries)
}

// Update replaces the entry with a matching id in place, or appends the
// entry as new when no match exists.
func (s *Service) Update(entry ExerciseResult) error {
	entries := s.List()
	for i := range entries {
		if entries[i].ID == entry.ID {
			entries[i] = entry
			return s.save(entries)
		}
	}
	return s.Append(entry)
}

func (s *Service) save(entries []ExerciseResult) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	return s.kv.Set(store.KeyHistory, data)
}
