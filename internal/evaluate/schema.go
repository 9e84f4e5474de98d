package evaluate

import "github.com/studialabs/studia/internal/llm"

// EvaluationSchema is the JSON contract for the answer-evaluation call.
var EvaluationSchema = &llm.Schema{
	Name:        "answer-evaluation",
	Description: "Graded result for one free-form answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"isCorrect": map[string]any{
				"type":        "boolean",
				"description": "Whether the answer demonstrates the expected understanding",
			},
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Partial-credit score from 0 to 100",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "One or two sentences addressed to the learner",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Explanation of the correct answer",
			},
			"areasForImprovement": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"hints": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Hints to guide a retry, without revealing the answer",
			},
			"nextSteps": map[string]any{
				"type":        "string",
				"description": "What to study next",
			},
		},
		"required":             []any{"isCorrect", "score", "feedback", "explanation"},
		"additionalProperties": false,
	},
}
