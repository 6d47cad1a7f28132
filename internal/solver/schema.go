package solver

import "github.com/mathmate/mathmate/internal/llm"

var ruleApplicationItems = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name":     map[string]any{"type": "string"},
		"generic":  map[string]any{"type": "string"},
		"specific": map[string]any{"type": "string"},
	},
	"required": []any{"name", "generic", "specific"},
}

var stepDetailItems = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"text":        map[string]any{"type": "string"},
		"explanation": map[string]any{"type": "string"},
	},
	"required": []any{"text", "explanation"},
}

// ImageSchema defines the JSON schema for photographed-work grading
// responses. The bounding boxes locate each mistake in the image,
// normalized to 0-1000.
var ImageSchema = &llm.Schema{
	Name:        "exercise-grading",
	Description: "Transcription and verification of photographed math work",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"isCorrect": map[string]any{"type": "boolean"},
			"transcribed_lines": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
				"description": "Array of LaTeX strings. Split chained equations (A=B=C) " +
					"into separate items ['A=', 'B=', 'C'].",
			},
			"topic": map[string]any{"type": "string"},
			"skillId": map[string]any{
				"type":        "string",
				"description": "Taxonomy ID like EQ.QUAD.FACTOR",
			},
			"ruleApplications": map[string]any{
				"type":  "array",
				"items": ruleApplicationItems,
			},
			"mistakes": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"description": map[string]any{"type": "string"},
						"box_2d": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "number"},
						},
					},
					"required": []any{"description"},
				},
			},
			"nextSteps": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"stepDetails": map[string]any{
				"type":  "array",
				"items": stepDetailItems,
			},
			"explanation": map[string]any{"type": "string"},
		},
		"required": []any{"isCorrect", "transcribed_lines", "topic", "mistakes", "nextSteps", "explanation"},
	},
}

// TextSchema defines the JSON schema for re-grading manually edited
// LaTeX. No bounding boxes: there is no image to locate mistakes in.
var TextSchema = &llm.Schema{
	Name:        "exercise-regrading",
	Description: "Verification of a manually edited LaTeX calculation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"isCorrect":        map[string]any{"type": "boolean"},
			"topic":            map[string]any{"type": "string"},
			"skillId":          map[string]any{"type": "string"},
			"problemStatement": map[string]any{"type": "string"},
			"ruleApplications": map[string]any{
				"type":  "array",
				"items": ruleApplicationItems,
			},
			"mistakes": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"description": map[string]any{"type": "string"},
					},
					"required": []any{"description"},
				},
			},
			"nextSteps": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"stepDetails": map[string]any{
				"type":  "array",
				"items": stepDetailItems,
			},
			"explanation": map[string]any{"type": "string"},
		},
		"required": []any{"isCorrect", "topic", "mistakes", "nextSteps", "explanation"},
	},
}
