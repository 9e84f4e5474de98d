// Package analyze turns a raw document into a structured content analysis
// via the LLM. It is the first step of the learning pipeline; its output
// feeds concept extraction.
package analyze

// ContentAnalysis is the model's reading of an uploaded document.
type ContentAnalysis struct {
	Subject            string   `json:"subject"`
	Topic              string   `json:"topic"`
	Difficulty         string   `json:"difficulty"`
	KeyConcepts        []string `json:"keyConcepts"`
	LearningObjectives []string `json:"learningObjectives"`
	Prerequisites      []string `json:"prerequisites"`
	EstimatedTime      string   `json:"estimatedTime"`
	Summary            string   `json:"summary"`
}

// Config controls the analyzer's LLM calls.
type Config struct {
	// MaxTokens is the token budget for the analysis response.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64

	// MaxInputChars truncates very long documents before prompting.
	MaxInputChars int
}

// DefaultConfig returns recommended analyzer defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:     1024,
		Temperature:   0.3,
		MaxInputChars: 24000,
	}
}
