package question

import "github.com/studialabs/studia/internal/llm"

// QuestionsSchema is the JSON contract for the question-generation call.
// Only the fields the assessment cannot run without are required; the
// rest are optional enrichment.
var QuestionsSchema = &llm.Schema{
	Name:        "question-generation",
	Description: "Typed quiz questions generated for one learning concept",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "string",
							"description": "Stable identifier, assigned if omitted",
						},
						"type": map[string]any{
							"type": "string",
							"enum": []any{
								"multiple-choice", "true-false",
								"short-answer", "fill-blank",
							},
						},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"Beginner", "Intermediate", "Advanced"},
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The prompt shown to the learner",
						},
						"context": map[string]any{
							"type":        "string",
							"description": "Optional scenario or passage the question refers to",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"id":          map[string]any{"type": "string"},
									"text":        map[string]any{"type": "string"},
									"explanation": map[string]any{"type": "string"},
								},
								"required":             []any{"id", "text"},
								"additionalProperties": false,
							},
							"description": "Choices for multiple-choice questions, 4 options",
						},
						"correctAnswer": map[string]any{
							"type":        "string",
							"description": "Option id for multiple-choice, true/false, or the expected answer text",
						},
						"sampleAnswers": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Acceptable phrasings for short-answer questions",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Worked explanation of the correct answer",
						},
						"learningObjective": map[string]any{"type": "string"},
						"bloomsLevel":       map[string]any{"type": "string"},
						"estimatedTime":     map[string]any{"type": "string"},
					},
					"required": []any{
						"type", "difficulty", "question", "correctAnswer",
					},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
