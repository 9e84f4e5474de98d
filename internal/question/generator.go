package question

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/studialabs/studia/internal/concept"
	"github.com/studialabs/studia/internal/llm"
)

const systemPrompt = `You are an expert assessment designer writing quiz questions for a single learning concept.

Rules:
- Produce exactly the requested number of questions, using only the requested types.
- multiple-choice questions have exactly 4 options with ids "a" through "d"; correctAnswer is the id of the right option.
- true-false questions have correctAnswer "true" or "false".
- short-answer and fill-blank questions have correctAnswer as the expected text; include sampleAnswers with acceptable phrasings.
- Target the requested difficulty; do not drift easier or harder.
- Questions must be answerable from the concept alone, without outside material.`

// Config controls the question-generation call.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns recommended generation defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}

// Generator produces quiz questions for a concept through the AI provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// NewGenerator creates a Generator with the given provider and config.
func NewGenerator(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// questionOutput is the raw LLM question shape before validation.
type questionOutput struct {
	ID                string   `json:"id"`
	Type              string   `json:"type"`
	Difficulty        string   `json:"difficulty"`
	Question          string   `json:"question"`
	Context           string   `json:"context"`
	Options           []Option `json:"options"`
	CorrectAnswer     string   `json:"correctAnswer"`
	SampleAnswers     []string `json:"sampleAnswers"`
	Explanation       string   `json:"explanation"`
	LearningObjective string   `json:"learningObjective"`
	BloomsLevel       string   `json:"bloomsLevel"`
	EstimatedTime     string   `json:"estimatedTime"`
}

type generateOutput struct {
	Questions []questionOutput `json:"questions"`
}

// Generate produces a question set for one concept. Questions arriving
// without an id are backfilled with "{conceptID}_q{n}" (1-based).
func (g *Generator) Generate(ctx context.Context, c concept.Concept, opts GenerateOptions) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	if opts.QuestionCount <= 0 {
		opts.QuestionCount = 5
	}
	if len(opts.QuestionTypes) == 0 {
		opts.QuestionTypes = DefaultTypes
	}
	difficulty := opts.DifficultyLevel
	if difficulty == "" {
		difficulty = c.Difficulty
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGenerateMessage(c, opts, difficulty)},
		},
		Schema:      QuestionsSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}

	var raw generateOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}
	if len(raw.Questions) == 0 {
		return nil, fmt.Errorf("failed to generate questions: model returned none")
	}

	questions := make([]Question, len(raw.Questions))
	for i, rq := range raw.Questions {
		id := rq.ID
		if id == "" {
			id = fmt.Sprintf("%s_q%d", c.ID, i+1)
		}
		questions[i] = Question{
			ID:                id,
			Type:              Type(rq.Type),
			Difficulty:        rq.Difficulty,
			Question:          rq.Question,
			Context:           rq.Context,
			Options:           rq.Options,
			CorrectAnswer:     rq.CorrectAnswer,
			SampleAnswers:     rq.SampleAnswers,
			Explanation:       rq.Explanation,
			LearningObjective: rq.LearningObjective,
			BloomsLevel:       rq.BloomsLevel,
			EstimatedTime:     rq.EstimatedTime,
			ConceptID:         c.ID,
			Number:            i + 1,
		}
	}

	for i := range questions {
		if err := validateQuestion(&questions[i]); err != nil {
			return nil, fmt.Errorf("failed to generate questions: %w", err)
		}
	}

	return questions, nil
}

func buildGenerateMessage(c concept.Concept, opts GenerateOptions, difficulty concept.Difficulty) string {
	types := make([]string, len(opts.QuestionTypes))
	for i, t := range opts.QuestionTypes {
		types[i] = string(t)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Concept: %s\n", c.Name)
	fmt.Fprintf(&b, "Description: %s\n", c.Description)
	if len(c.KeyPrinciples) > 0 {
		fmt.Fprintf(&b, "Key principles: %s\n", strings.Join(c.KeyPrinciples, "; "))
	}
	if len(c.Examples) > 0 {
		fmt.Fprintf(&b, "Examples: %s\n", strings.Join(c.Examples, "; "))
	}
	if len(c.Misconceptions) > 0 {
		fmt.Fprintf(&b, "Common misconceptions: %s\n", strings.Join(c.Misconceptions, "; "))
	}
	fmt.Fprintf(&b, "\nGenerate %d questions.\n", opts.QuestionCount)
	fmt.Fprintf(&b, "Allowed types: %s\n", strings.Join(types, ", "))
	fmt.Fprintf(&b, "Difficulty: %s\n", difficulty)
	if opts.IncludeExplanations {
		b.WriteString("Include a worked explanation for every question.\n")
	}
	return b.String()
}
