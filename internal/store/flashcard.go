package store

import (
	"github.com/fletcherw/flashquiz/internal/domain"
)

// FlashcardStore defines the interface for topic-organized flashcard access.
//
// Implementations hold the full flashcard collection loaded once per session
// and answer topic queries deterministically; no method involves randomness
// or mutation, so implementations are safe for reentrant use.
type FlashcardStore interface {
	// Topics returns every distinct non-empty topic value appearing in the
	// collection, in alphabetical order. An empty or malformed collection
	// yields an empty slice, never an error, so callers can render a
	// "no data" state without special-casing.
	Topics() []string

	// CardsForTopic returns all cards whose topic equals the given value,
	// preserving the collection's original relative order. Unknown topics
	// yield an empty slice, never an error.
	CardsForTopic(topic string) []domain.Flashcard

	// All returns the entire collection in its original order. The quiz
	// generator uses this as the global fallback pool for distractors.
	All() []domain.Flashcard

	// Len returns the number of cards in the collection.
	Len() int
}
