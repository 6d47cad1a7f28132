// Package analyzer runs the LLM-backed skill analysis over photographed
// student work and verifies edited mistake corrections. It produces the
// structures the profile package persists.
package analyzer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mathmate/mathmate/internal/latexfmt"
	"github.com/mathmate/mathmate/internal/llm"
	"github.com/mathmate/mathmate/internal/profile"
)

const maxTokens = 8192

// Service wraps the provider for the analysis flows. Both calls run at
// temperature zero; grading must be repeatable.
type Service struct {
	provider llm.Provider
}

// NewService creates an analyzer over the given provider.
func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

// Analyze grades one or more photographed work pages and returns the
// structured analysis. Mistake-example ids are assigned later, when the
// profile is saved.
func (s *Service) Analyze(ctx context.Context, images []llm.Image) (*profile.Analysis, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("no images to analyze")
	}
	ctx = llm.WithPurpose(ctx, "skill-analysis")

	req := llm.Request{
		System: jsonSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAnalysisPrompt(), Images: images},
		},
		Schema:    AnalysisSchema,
		MaxTokens: maxTokens,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("skill analysis failed: %w", err)
	}

	var analysis profile.Analysis
	if err := json.Unmarshal(resp.Content, &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse analysis response: %w", err)
	}

	// Stored work fragments must render standalone.
	for i := range analysis.MistakeExamples {
		analysis.MistakeExamples[i].StudentWork = latexfmt.WrapEnvironment(analysis.MistakeExamples[i].StudentWork)
	}

	return &analysis, nil
}

// VerifyCorrection checks whether an edited problem/work pair is now
// mathematically valid. Satisfies profile.Verifier.
func (s *Service) VerifyCorrection(ctx context.Context, problem, studentWork string) (*profile.Correction, error) {
	ctx = llm.WithPurpose(ctx, "mistake-verify")

	req := llm.Request{
		System: jsonSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildCorrectionPrompt(problem, studentWork)},
		},
		Schema:    CorrectionSchema,
		MaxTokens: maxTokens,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("correction verification failed: %w", err)
	}

	var correction profile.Correction
	if err := json.Unmarshal(resp.Content, &correction); err != nil {
		return nil, fmt.Errorf("failed to parse correction response: %w", err)
	}
	return &correction, nil
}
