package problemgen

import "github.com/mathmate/mathmate/internal/llm"

// BatchSchema defines the JSON schema for LLM problem-batch responses.
var BatchSchema = &llm.Schema{
	Name:        "practice-problems",
	Description: "A batch of targeted math practice problems",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"problems": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The problem prompt, LaTeX allowed",
						},
						"correctAnswer": map[string]any{
							"type":        "string",
							"description": "The correct answer, concise and in simplest form",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Step-by-step worked solution",
						},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"Easy", "Medium", "Hard"},
						},
						"topic": map[string]any{
							"type":        "string",
							"description": "Short topic label for the problem",
						},
						"skillId": map[string]any{
							"type":        "string",
							"description": "Taxonomy skill id this problem practices, if known",
						},
					},
					"required": []any{"question", "correctAnswer", "explanation", "difficulty", "topic"},
				},
			},
		},
		"required": []any{"problems"},
	},
}
