package question

import "fmt"

// DemoSet returns a small static question set about study technique.
// It is the fallback when generation fails or no provider is configured,
// so the assessment flow stays usable end to end.
func DemoSet(conceptID string) []Question {
	if conceptID == "" {
		conceptID = "demo"
	}

	qs := []Question{
		{
			Type:       MultipleChoice,
			Difficulty: "Beginner",
			Question:   "Which study technique involves recalling material from memory rather than re-reading it?",
			Options: []Option{
				{ID: "a", Text: "Highlighting"},
				{ID: "b", Text: "Active recall"},
				{ID: "c", Text: "Skimming"},
				{ID: "d", Text: "Copying notes"},
			},
			CorrectAnswer: "b",
			Explanation:   "Active recall strengthens memory by forcing retrieval instead of passive review.",
		},
		{
			Type:          TrueFalse,
			Difficulty:    "Beginner",
			Question:      "Spacing study sessions over several days leads to better retention than one long session.",
			CorrectAnswer: "true",
			Explanation:   "Spaced repetition outperforms massed practice for long-term retention.",
		},
		{
			Type:          ShortAnswer,
			Difficulty:    "Intermediate",
			Question:      "What is the name of the effect where testing yourself improves retention more than re-studying?",
			CorrectAnswer: "testing effect",
			SampleAnswers: []string{"the testing effect", "retrieval practice effect"},
			Explanation:   "The testing effect shows retrieval practice is itself a powerful learning event.",
		},
		{
			Type:          FillBlank,
			Difficulty:    "Intermediate",
			Question:      "Explaining a topic in your own words as if teaching someone else is known as the ____ technique.",
			CorrectAnswer: "Feynman",
			Explanation:   "The Feynman technique exposes gaps by forcing a plain-language explanation.",
		},
	}

	for i := range qs {
		qs[i].ID = fmt.Sprintf("%s_q%d", conceptID, i+1)
		qs[i].ConceptID = conceptID
		qs[i].Number = i + 1
	}
	return qs
}
