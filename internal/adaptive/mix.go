package adaptive

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/studialabs/studia/internal/concept"
	"github.com/studialabs/studia/internal/question"
)

// Generator produces questions for one concept. *question.Generator
// satisfies it; tests substitute their own.
type Generator interface {
	Generate(ctx context.Context, c concept.Concept, opts question.GenerateOptions) ([]question.Question, error)
}

const (
	maxWeakConcepts   = 3
	questionsPerWeak  = 3
	maxMixedConcepts  = 2
	questionsPerMixed = 2
)

// BuildMix assembles an adaptive question set from the full concept list
// and recorded performance:
//
//   - up to the first 3 weak concepts contribute 3 questions each, at the
//     difficulty AdjustDifficulty picks from their mastery;
//   - up to the first 2 concepts of the original list contribute 2
//     mixed-type questions each, unless classified weak (same pointer,
//     not same id) — weak concepts beyond the top 3 still consume their
//     slot without contributing questions;
//   - the single strongest concept, if any, contributes 1 question forced
//     to Advanced.
//
// Generation calls run concurrently. Any single failure fails the whole
// mix with no partial result; results concatenate in plan order, then a
// uniform shuffle renumbers them 1..N.
func BuildMix(ctx context.Context, gen Generator, concepts []*concept.Concept, perf PerformanceMap) ([]question.Question, error) {
	type plan struct {
		concept *concept.Concept
		opts    question.GenerateOptions
	}

	var plans []plan

	allWeak := WeakAreas(concepts, perf)
	weak := allWeak
	if len(weak) > maxWeakConcepts {
		weak = weak[:maxWeakConcepts]
	}
	for _, c := range weak {
		plans = append(plans, plan{
			concept: c,
			opts: question.GenerateOptions{
				QuestionCount:       questionsPerWeak,
				DifficultyLevel:     AdjustDifficulty(c, perf),
				IncludeExplanations: true,
			},
		})
	}

	// The mixed-slot skip checks the full weak classification, not just
	// the three selected above.
	inWeak := func(c *concept.Concept) bool {
		for _, w := range allWeak {
			if w == c {
				return true
			}
		}
		return false
	}

	mixed := 0
	for _, c := range concepts {
		if mixed >= maxMixedConcepts {
			break
		}
		mixed++
		if inWeak(c) {
			continue
		}
		plans = append(plans, plan{
			concept: c,
			opts: question.GenerateOptions{
				QuestionCount:       questionsPerMixed,
				QuestionTypes:       question.DefaultTypes,
				IncludeExplanations: true,
			},
		})
	}

	if strong := StrongAreas(concepts, perf); len(strong) > 0 {
		plans = append(plans, plan{
			concept: strong[0],
			opts: question.GenerateOptions{
				QuestionCount:       1,
				DifficultyLevel:     concept.Advanced,
				IncludeExplanations: true,
			},
		})
	}

	if len(plans) == 0 {
		return nil, fmt.Errorf("failed to generate questions: no concepts to draw from")
	}

	results := make([][]question.Question, len(plans))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range plans {
		g.Go(func() error {
			qs, err := gen.Generate(gctx, *p.concept, p.opts)
			if err != nil {
				return err
			}
			results[i] = qs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}

	var all []question.Question
	for _, qs := range results {
		all = append(all, qs...)
	}
	return question.Shuffle(all), nil
}
