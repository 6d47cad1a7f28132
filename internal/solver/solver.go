// Package solver grades photographed or hand-edited math work: it
// transcribes the calculation, verifies every step, records the result
// in history, and feeds identified mistakes into the mastery tracker.
package solver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mathmate/mathmate/internal/history"
	"github.com/mathmate/mathmate/internal/latexfmt"
	"github.com/mathmate/mathmate/internal/llm"
)

const (
	maxTokens    = 8192
	defaultTopic = "Math Problem"
)

// MistakeTracker receives the skill behind each incorrect submission.
// Satisfied by *mastery.Tracker.
type MistakeTracker interface {
	TrackMistake(skillID, nameHint string)
}

// Service runs the grading flows. Both run at temperature zero.
type Service struct {
	provider llm.Provider
	hist     *history.Service
	tracker  MistakeTracker

	now   func() time.Time
	newID func() string
}

// NewService creates a solver over the given provider, recording results
// to hist and mistakes to tracker.
func NewService(provider llm.Provider, hist *history.Service, tracker MistakeTracker) *Service {
	return &Service{
		provider: provider,
		hist:     hist,
		tracker:  tracker,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
}

// solveOutput is the raw LLM response for both grading flows.
type solveOutput struct {
	IsCorrect        bool                      `json:"isCorrect"`
	TranscribedLines []string                  `json:"transcribed_lines"`
	ProblemStatement string                    `json:"problemStatement"`
	Mistakes         []history.Mistake         `json:"mistakes"`
	NextSteps        []string                  `json:"nextSteps"`
	Explanation      string                    `json:"explanation"`
	Topic            string                    `json:"topic"`
	SkillID          string                    `json:"skillId"`
	Approach         string                    `json:"approach"`
	RuleApplications []history.RuleApplication `json:"ruleApplications"`
	StepDetails      []history.StepDetail      `json:"stepDetails"`
}

// SolveImage transcribes and grades one photographed calculation. The
// result is appended to history; an incorrect result is also tracked as
// a mistake against the identified skill.
func (s *Service) SolveImage(ctx context.Context, img llm.Image) (*history.ExerciseResult, error) {
	ctx = llm.WithPurpose(ctx, "exercise-solve")

	req := llm.Request{
		System: ocrSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: imagePrompt, Images: []llm.Image{img}},
		},
		Schema:    ImageSchema,
		MaxTokens: maxTokens,
	}

	parsed, err := s.generate(ctx, req)
	if err != nil {
		return nil, err
	}

	statement := latexfmt.JoinSteps(parsed.TranscribedLines)
	if statement == "" {
		statement = ensureEnvironment(parsed.ProblemStatement)
	}

	result := s.buildResult(parsed, statement)
	result.ID = s.newID()
	result.Timestamp = s.now().UnixMilli()

	if err := s.hist.Append(*result); err != nil {
		return nil, fmt.Errorf("record result: %w", err)
	}
	s.trackIfIncorrect(result)
	return result, nil
}

// ReSolve re-grades a manually edited transcription of a prior result.
// The history entry is updated in place, keeping its id and timestamp.
func (s *Service) ReSolve(ctx context.Context, prior history.ExerciseResult, editedLatex string) (*history.ExerciseResult, error) {
	ctx = llm.WithPurpose(ctx, "exercise-regrade")

	req := llm.Request{
		System: jsonSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildTextPrompt(editedLatex)},
		},
		Schema:    TextSchema,
		MaxTokens: maxTokens,
	}

	parsed, err := s.generate(ctx, req)
	if err != nil {
		return nil, err
	}

	statement := parsed.ProblemStatement
	if statement == "" {
		statement = editedLatex
	}

	result := s.buildResult(parsed, ensureEnvironment(statement))
	result.ID = prior.ID
	result.Timestamp = prior.Timestamp
	result.Approach = ""

	if err := s.hist.Update(*result); err != nil {
		return nil, fmt.Errorf("record result: %w", err)
	}
	s.trackIfIncorrect(result)
	return result, nil
}

// EditableText returns the problem statement of a result stripped of its
// outer environment, ready for manual editing.
func (s *Service) EditableText(result history.ExerciseResult) string {
	return latexfmt.StripEnvironment(result.ProblemStatement)
}

func (s *Service) generate(ctx context.Context, req llm.Request) (*solveOutput, error) {
	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("grading failed: %w", err)
	}
	var parsed solveOutput
	if err := json.Unmarshal(resp.Content, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse grading response: %w", err)
	}
	return &parsed, nil
}

func (s *Service) buildResult(parsed *solveOutput, statement string) *history.ExerciseResult {
	topic := parsed.Topic
	if topic == "" {
		topic = defaultTopic
	}
	mistakes := parsed.Mistakes
	if mistakes == nil {
		mistakes = []history.Mistake{}
	}
	nextSteps := parsed.NextSteps
	if nextSteps == nil {
		nextSteps = []string{}
	}
	return &history.ExerciseResult{
		IsCorrect:        parsed.IsCorrect,
		Mistakes:         mistakes,
		NextSteps:        nextSteps,
		Explanation:      parsed.Explanation,
		Topic:            topic,
		SkillID:          parsed.SkillID,
		ProblemStatement: statement,
		Approach:         parsed.Approach,
		RuleApplications: parsed.RuleApplications,
		StepDetails:      parsed.StepDetails,
	}
}

// trackIfIncorrect records the mistake against the identified skill id,
// falling back to the topic name when no taxonomy id was returned.
func (s *Service) trackIfIncorrect(result *history.ExerciseResult) {
	if result.IsCorrect || len(result.Mistakes) == 0 {
		return
	}
	trackingID := result.SkillID
	if trackingID == "" {
		trackingID = result.Topic
	}
	if trackingID != "" {
		s.tracker.TrackMistake(trackingID, result.Topic)
	}
}

func ensureEnvironment(latex string) string {
	trimmed := strings.TrimSpace(latex)
	if trimmed == "" || strings.HasPrefix(trimmed, `\begin`) {
		return trimmed
	}
	return `\begin{gather*} ` + trimmed + ` \end{gather*}`
}
