package concept

import "github.com/studialabs/studia/internal/llm"

func stringArray(desc string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": desc,
	}
}

// ExtractSchema is the JSON contract for the concept-extraction call.
// Only the core identity fields are required; list fields may be omitted
// and are normalized to empty slices after decoding.
var ExtractSchema = &llm.Schema{
	Name:        "concept-extraction",
	Description: "Discrete learning concepts decomposed from analyzed material",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"concepts": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "string",
							"description": "Stable identifier, assigned if omitted",
						},
						"name": map[string]any{
							"type":        "string",
							"description": "Short concept name",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "One to three sentence explanation",
						},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"Beginner", "Intermediate", "Advanced"},
						},
						"prerequisites":  stringArray("Knowledge this concept builds on"),
						"subConcepts":    stringArray("Smaller pieces within the concept"),
						"examples":       stringArray("Concrete instances of the concept"),
						"misconceptions": stringArray("Common wrong beliefs"),
						"keyPrinciples":  stringArray("Rules or principles to retain"),
						"estimatedTime": map[string]any{
							"type":        "string",
							"description": "Study time, e.g. \"20 min\" or \"1 hour\"",
						},
						"bloomsLevel": map[string]any{
							"type":        "string",
							"description": "Bloom's taxonomy level the concept targets",
						},
					},
					"required": []any{
						"name", "description", "difficulty", "estimatedTime",
					},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"concepts"},
		"additionalProperties": false,
	},
}
