package domain

import (
	"errors"
	"fmt"
)

// Flashcard-specific validation errors
var (
	// ErrFlashcardIDEmpty is returned when a flashcard ID is empty.
	ErrFlashcardIDEmpty = errors.New("flashcard ID cannot be empty")

	// ErrFlashcardPromptEmpty is returned when a flashcard's prompt is empty.
	ErrFlashcardPromptEmpty = errors.New("flashcard prompt cannot be empty")
)

// Flashcard represents a single fact to be studied: a prompt shown to the
// learner and the one correct answer, grouped under a topic.
//
// All fields beyond topic/prompt/answer are optional descriptive metadata.
// Distractors, when present, are author-supplied wrong answers and are the
// preferred source of multiple-choice options during quiz generation.
type Flashcard struct {
	ID          string   `json:"id"`
	Topic       string   `json:"topic"`
	Prompt      string   `json:"prompt"`
	Answer      string   `json:"answer"`
	Difficulty  string   `json:"difficulty,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Distractors []string `json:"distractors,omitempty"`
}

// SynthesizeFlashcardID builds a deterministic identifier for a card that
// was loaded without one, from its topic and zero-based position in the
// source collection. Determinism matters: downstream answer comparisons key
// off the ID, so reloading the same source must yield the same IDs.
func SynthesizeFlashcardID(topic string, index int) string {
	if topic == "" {
		topic = "untitled"
	}
	return fmt.Sprintf("%s-%d", topic, index)
}

// Validate checks if the Flashcard has valid data.
// Returns an error if any field fails validation.
func (f *Flashcard) Validate() error {
	if f.ID == "" {
		return ErrFlashcardIDEmpty
	}

	if f.Prompt == "" {
		return ErrFlashcardPromptEmpty
	}

	return nil
}

// QuizEligible reports whether the card can appear in a generated quiz.
// A card without an answer has nothing to score against and is excluded;
// a card without a topic never appears in topic listings, so it can only
// ever serve as a global distractor source.
func (f *Flashcard) QuizEligible() bool {
	return f.Answer != ""
}
