package generation

import (
	"github.com/fletcherw/flashquiz/internal/domain"
)

// Generator defines the interface for producing quiz questions from an
// in-memory flashcard collection. This interface is the boundary between
// the presentation layer and the question-synthesis algorithm.
//
// Implementations are pure and synchronous: every call runs to completion
// in O(pool size) with no I/O, so no context or cancellation is involved.
type Generator interface {
	// GenerateQuizQuestions produces up to numQuestions questions for the
	// given topic, drawing distractors first from each card's own
	// author-supplied list, then from other answers in the same topic, then
	// from the whole collection, and finally from synthetic filler.
	//
	// Parameters:
	//   - topic: The topic whose cards are quizzed
	//   - cards: The full flashcard collection, used both for topic
	//     filtering and as the fallback distractor pool
	//   - numQuestions: The target question count (positive)
	//
	// Returns:
	//   - A slice of questions, each satisfying domain.QuizQuestion.Validate.
	//     A topic with no usable cards yields an empty slice, never an error.
	GenerateQuizQuestions(topic string, cards []domain.Flashcard, numQuestions int) []domain.QuizQuestion
}
