package analyze

import "github.com/studialabs/studia/internal/llm"

// AnalysisSchema is the JSON contract for the content-analysis call.
// Every field except prerequisites is required; a response missing any of
// them fails schema validation at the provider boundary.
var AnalysisSchema = &llm.Schema{
	Name:        "content-analysis",
	Description: "Structured analysis of an uploaded study document",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"subject": map[string]any{
				"type":        "string",
				"description": "Broad academic subject, e.g. Biology, History",
			},
			"topic": map[string]any{
				"type":        "string",
				"description": "Specific topic the document covers",
			},
			"difficulty": map[string]any{
				"type":        "string",
				"enum":        []any{"Beginner", "Intermediate", "Advanced"},
				"description": "Overall difficulty of the material",
			},
			"keyConcepts": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Names of the main concepts in the document",
			},
			"learningObjectives": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "What a learner should be able to do after studying",
			},
			"prerequisites": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Knowledge assumed by the document, empty if none",
			},
			"estimatedTime": map[string]any{
				"type":        "string",
				"description": "Estimated study time, e.g. \"45 min\" or \"2 hours\"",
			},
			"summary": map[string]any{
				"type":        "string",
				"description": "Two to four sentence summary of the document",
			},
		},
		"required": []any{
			"subject", "topic", "difficulty", "keyConcepts",
			"learningObjectives", "estimatedTime", "summary",
		},
		"additionalProperties": false,
	},
}
