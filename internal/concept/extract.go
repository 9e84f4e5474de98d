package concept

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/studialabs/studia/internal/analyze"
	"github.com/studialabs/studia/internal/llm"
)

const extractSystemPrompt = `You are an expert learning designer decomposing study material into discrete concepts.

Rules:
- Produce between 3 and 10 concepts, each a self-contained unit of learnable material.
- Order concepts so that earlier ones do not depend on later ones.
- prerequisites must name knowledge the concept builds on, using the names of other concepts where applicable.
- subConcepts break the concept into smaller pieces; examples are concrete instances; misconceptions are common wrong beliefs.
- estimatedTime uses plain phrasing like "20 min" or "1 hour".
- difficulty is Beginner, Intermediate, or Advanced.
- bloomsLevel is the Bloom's taxonomy level the concept targets.`

// ExtractConfig controls the concept-extraction call.
type ExtractConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultExtractConfig returns recommended extraction defaults.
func DefaultExtractConfig() ExtractConfig {
	return ExtractConfig{
		MaxTokens:   2048,
		Temperature: 0.4,
	}
}

// Extractor performs the concept-extraction AI call.
type Extractor struct {
	provider llm.Provider
	config   ExtractConfig
}

// NewExtractor creates an Extractor with the given provider and config.
func NewExtractor(provider llm.Provider, cfg ExtractConfig) *Extractor {
	return &Extractor{provider: provider, config: cfg}
}

// conceptOutput is the raw LLM concept shape before normalization.
type conceptOutput struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Difficulty     string   `json:"difficulty"`
	Prerequisites  []string `json:"prerequisites"`
	SubConcepts    []string `json:"subConcepts"`
	Examples       []string `json:"examples"`
	Misconceptions []string `json:"misconceptions"`
	KeyPrinciples  []string `json:"keyPrinciples"`
	EstimatedTime  string   `json:"estimatedTime"`
	BloomsLevel    string   `json:"bloomsLevel"`
}

type extractOutput struct {
	Concepts []conceptOutput `json:"concepts"`
}

// Extract turns a content analysis into a list of concepts. Concepts
// arriving without an id are backfilled with "concept_{n}" (1-based).
func (e *Extractor) Extract(ctx context.Context, analysis *analyze.ContentAnalysis) ([]Concept, error) {
	ctx = llm.WithPurpose(ctx, "concept-extract")

	req := llm.Request{
		System: extractSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExtractMessage(analysis)},
		},
		Schema:      ExtractSchema,
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to extract concepts: %w", err)
	}

	var raw extractOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to extract concepts: %w", err)
	}
	if len(raw.Concepts) == 0 {
		return nil, fmt.Errorf("failed to extract concepts: model returned none")
	}

	concepts := make([]Concept, len(raw.Concepts))
	for i, rc := range raw.Concepts {
		id := rc.ID
		if id == "" {
			id = fmt.Sprintf("concept_%d", i+1)
		}
		concepts[i] = Concept{
			ID:             id,
			Name:           rc.Name,
			Description:    rc.Description,
			Difficulty:     Difficulty(rc.Difficulty),
			Prerequisites:  orEmpty(rc.Prerequisites),
			SubConcepts:    orEmpty(rc.SubConcepts),
			Examples:       orEmpty(rc.Examples),
			Misconceptions: orEmpty(rc.Misconceptions),
			KeyPrinciples:  orEmpty(rc.KeyPrinciples),
			EstimatedTime:  rc.EstimatedTime,
			BloomsLevel:    rc.BloomsLevel,
		}
	}

	return concepts, nil
}

func buildExtractMessage(a *analyze.ContentAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Subject: %s\n", a.Subject)
	fmt.Fprintf(&b, "Topic: %s\n", a.Topic)
	fmt.Fprintf(&b, "Overall difficulty: %s\n", a.Difficulty)
	fmt.Fprintf(&b, "Key concepts: %s\n", strings.Join(a.KeyConcepts, ", "))
	fmt.Fprintf(&b, "Learning objectives: %s\n", strings.Join(a.LearningObjectives, "; "))
	if len(a.Prerequisites) > 0 {
		fmt.Fprintf(&b, "Assumed prerequisites: %s\n", strings.Join(a.Prerequisites, ", "))
	}
	fmt.Fprintf(&b, "\nSummary:\n%s\n", a.Summary)
	b.WriteString("\nDecompose this material into learning concepts.")
	return b.String()
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
