package analyzer

import "github.com/mathmate/mathmate/internal/llm"

// identifiedSkillItems is shared by the strengths and weaknesses arrays.
var identifiedSkillItems = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id": map[string]any{
			"type":        "string",
			"description": "Valid taxonomy id",
		},
		"name":        map[string]any{"type": "string"},
		"explanation": map[string]any{"type": "string"},
	},
	"required": []any{"id", "name", "explanation"},
}

// AnalysisSchema defines the JSON schema for skill-analysis responses.
var AnalysisSchema = &llm.Schema{
	Name:        "skill-analysis",
	Description: "Strengths, weaknesses, and extracted mistakes from photographed math work",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"strengths": map[string]any{
				"type":  "array",
				"items": identifiedSkillItems,
			},
			"weaknesses": map[string]any{
				"type":  "array",
				"items": identifiedSkillItems,
			},
			"topicsIdentified": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"recommendations": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"estimatedSkillLevel": map[string]any{
				"type":        "number",
				"description": "Overall level from 0 to 100",
			},
			"mistakeExamples": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"problem":            map[string]any{"type": "string"},
						"studentWork":        map[string]any{"type": "string"},
						"mistakeExplanation": map[string]any{"type": "string"},
						"correction":         map[string]any{"type": "string"},
						"skillId":            map[string]any{"type": "string"},
					},
					"required": []any{"problem", "studentWork", "mistakeExplanation", "correction"},
				},
			},
		},
		"required": []any{
			"strengths", "weaknesses", "topicsIdentified",
			"recommendations", "estimatedSkillLevel", "mistakeExamples",
		},
	},
}

// CorrectionSchema defines the JSON schema for correction-verification
// responses.
var CorrectionSchema = &llm.Schema{
	Name:        "mistake-correction",
	Description: "Verdict on an edited problem and its reworked solution",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"isCorrect": map[string]any{"type": "boolean"},
			"correction": map[string]any{
				"type":        "string",
				"description": "LaTeX of the correct steps",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Why the work is wrong, or a confirmation when correct",
			},
			"skillId": map[string]any{
				"type":        "string",
				"description": "Taxonomy id of the math skill involved",
			},
		},
		"required": []any{"isCorrect", "correction", "explanation"},
	},
}
