// Package profile manages the learner's persisted skill profile: the
// strengths, weaknesses, and mistake examples produced by a skill
// analysis, plus the correction workflow for individual examples.
package profile

import (
	"context"
	"errors"
)

// ErrExampleNotFound is returned when a mistake-example index is out of
// range of the current profile.
var ErrExampleNotFound = errors.New("mistake example not found")

// IdentifiedSkill is a strength or weakness reported by the analyzer.
// The id is expected to come from the taxonomy but is treated as an
// untrusted string.
type IdentifiedSkill struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Explanation string `json:"explanation"`
}

// MistakeExample is one extracted calculation error. The id is assigned
// at creation time and is required for safe list-splice updates.
type MistakeExample struct {
	ID                 string `json:"id"`
	Problem            string `json:"problem"`
	StudentWork        string `json:"studentWork"`
	MistakeExplanation string `json:"mistakeExplanation"`
	Correction         string `json:"correction"`
	SkillID            string `json:"skillId,omitempty"`
}

// SkillProfile is the learner's current analysis snapshot. It is
// replaced wholesale on each analysis run; only mistake-example
// corrections mutate it in place.
//
// Invariant: a weakness with no remaining mistake examples after a
// correction is removed from Weaknesses. A weakness with no evidence
// left is no longer a weakness.
type SkillProfile struct {
	Strengths       []IdentifiedSkill `json:"strengths"`
	Weaknesses      []IdentifiedSkill `json:"weaknesses"`
	RecentTopics    []string          `json:"recentTopics"`
	LastAnalysis    int64             `json:"lastAnalysis"`
	Recommendations []string          `json:"recommendations"`
	SkillLevel      int               `json:"skillLevel"`
	MistakeExamples []MistakeExample  `json:"mistakeExamples,omitempty"`
}

// Analysis is the output shape of a completed skill-analysis pass.
type Analysis struct {
	Strengths           []IdentifiedSkill `json:"strengths"`
	Weaknesses          []IdentifiedSkill `json:"weaknesses"`
	TopicsIdentified    []string          `json:"topicsIdentified"`
	Recommendations     []string          `json:"recommendations"`
	EstimatedSkillLevel int               `json:"estimatedSkillLevel"`
	MistakeExamples     []MistakeExample  `json:"mistakeExamples"`
}

// Correction is the verifier's verdict on an edited problem/work pair.
type Correction struct {
	IsCorrect   bool   `json:"isCorrect"`
	Correction  string `json:"correction"`
	Explanation string `json:"explanation"`
	SkillID     string `json:"skillId,omitempty"`
}

// Verifier checks whether an edited calculation is now mathematically
// valid. Implemented by the analyzer collaborator.
type Verifier interface {
	VerifyCorrection(ctx context.Context, problem, studentWork string) (*Correction, error)
}
