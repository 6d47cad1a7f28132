package problemgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/mathmate/mathmate/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// batchOutput is the raw LLM response before validation.
type batchOutput struct {
	Problems []struct {
		Question      string `json:"question"`
		CorrectAnswer string `json:"correctAnswer"`
		Explanation   string `json:"explanation"`
		Difficulty    string `json:"difficulty"`
		Topic         string `json:"topic"`
		SkillID       string `json:"skillId"`
	} `json:"problems"`
}

// GenerateBatch produces a batch of problems for the given input.
func (g *LLMGenerator) GenerateBatch(ctx context.Context, input GenerateInput) ([]Problem, error) {
	ctx = llm.WithPurpose(ctx, "practice-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      BatchSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	if len(raw.Problems) == 0 {
		return nil, fmt.Errorf("generator returned no problems")
	}

	problems := make([]Problem, 0, len(raw.Problems))
	for _, rp := range raw.Problems {
		p := Problem{
			ID:            uuid.New().String(),
			Question:      rp.Question,
			CorrectAnswer: rp.CorrectAnswer,
			Explanation:   rp.Explanation,
			Difficulty:    Difficulty(rp.Difficulty),
			Topic:         rp.Topic,
			SkillID:       rp.SkillID,
		}

		// Run validators in order.
		for _, v := range g.config.Validators {
			if verr := v.Validate(&p, input); verr != nil {
				return nil, verr
			}
		}

		problems = append(problems, p)
	}

	return problems, nil
}
