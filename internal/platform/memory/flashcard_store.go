// Package memory provides the in-memory implementation of the store
// interfaces. The whole flashcard collection lives in a slice loaded once
// per session; the store never mutates it afterwards.
package memory

import (
	"sort"

	"github.com/fletcherw/flashquiz/internal/domain"
)

// FlashcardStore holds an immutable flashcard collection and answers topic
// queries over it. It implements store.FlashcardStore.
type FlashcardStore struct {
	cards []domain.Flashcard
}

// NewFlashcardStore creates a store over the given collection. The slice is
// copied so later changes by the caller cannot alter query results.
func NewFlashcardStore(cards []domain.Flashcard) *FlashcardStore {
	held := make([]domain.Flashcard, len(cards))
	copy(held, cards)
	return &FlashcardStore{cards: held}
}

// Topics returns the distinct non-empty topics in alphabetical order.
// Cards with an empty topic are excluded from listings entirely.
func (s *FlashcardStore) Topics() []string {
	seen := make(map[string]struct{})
	topics := make([]string, 0)
	for _, card := range s.cards {
		if card.Topic == "" {
			continue
		}
		if _, ok := seen[card.Topic]; ok {
			continue
		}
		seen[card.Topic] = struct{}{}
		topics = append(topics, card.Topic)
	}

	sort.Strings(topics)
	return topics
}

// CardsForTopic returns the cards with the given topic in their original
// relative order.
func (s *FlashcardStore) CardsForTopic(topic string) []domain.Flashcard {
	matched := make([]domain.Flashcard, 0)
	for _, card := range s.cards {
		if card.Topic == topic {
			matched = append(matched, card)
		}
	}
	return matched
}

// All returns the full collection in its original order.
func (s *FlashcardStore) All() []domain.Flashcard {
	return s.cards
}

// Len returns the number of cards held.
func (s *FlashcardStore) Len() int {
	return len(s.cards)
}
