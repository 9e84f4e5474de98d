package question

import "math/rand/v2"

// Shuffle returns a uniformly shuffled copy of the question set, with
// Number rewritten 1..N in the new order. Everything else is untouched.
func Shuffle(questions []Question) []Question {
	return shuffleWith(questions, rand.IntN)
}

// shuffleWith runs a Fisher-Yates pass using the given IntN source, so
// tests can drive it deterministically.
func shuffleWith(questions []Question, intN func(int) int) []Question {
	shuffled := make([]Question, len(questions))
	copy(shuffled, questions)

	for i := len(shuffled) - 1; i > 0; i-- {
		j := intN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	for i := range shuffled {
		shuffled[i].Number = i + 1
	}
	return shuffled
}
