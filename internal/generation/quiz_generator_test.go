package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fletcherw/flashquiz/internal/domain"
)

func sampleCollection() []domain.Flashcard {
	return []domain.Flashcard{
		{ID: "m1", Topic: "Math", Prompt: "2+2?", Answer: "4"},
		{ID: "m2", Topic: "Math", Prompt: "3+3?", Answer: "6"},
		{ID: "m3", Topic: "Math", Prompt: "5*5?", Answer: "25"},
		{ID: "m4", Topic: "Math", Prompt: "10/2?", Answer: "5"},
		{ID: "m5", Topic: "Math", Prompt: "7-3?", Answer: "4"},
		{ID: "h1", Topic: "History", Prompt: "First Roman emperor?", Answer: "Augustus"},
		{ID: "h2", Topic: "History", Prompt: "Year of the French Revolution?", Answer: "1789"},
	}
}

// requireValidQuestions asserts the postconditions that must hold for every
// generated question: exactly four mutually distinct options with the
// correct answer among them exactly once.
func requireValidQuestions(t *testing.T, questions []domain.QuizQuestion) {
	t.Helper()

	for _, q := range questions {
		require.NoError(t, q.Validate(), "question for card %s violates postconditions", q.FlashcardID)

		occurrences := 0
		for _, opt := range q.Options {
			if opt == q.CorrectAnswer {
				occurrences++
			}
		}
		assert.Equal(t, 1, occurrences,
			"correct answer must appear in options exactly once for card %s", q.FlashcardID)
	}
}

func TestGenerateReturnsMinOfPoolAndRequested(t *testing.T) {
	t.Parallel()

	cards := sampleCollection()
	g := NewSeededQuizGenerator(42)

	// More requested than available: all topic cards are used.
	questions := g.GenerateQuizQuestions("History", cards, 10)
	assert.Len(t, questions, 2)

	// Fewer requested than available: exactly the requested count.
	questions = g.GenerateQuizQuestions("Math", cards, 3)
	assert.Len(t, questions, 3)

	requireValidQuestions(t, questions)
}

func TestGenerateSamplesWithoutReplacement(t *testing.T) {
	t.Parallel()

	g := NewSeededQuizGenerator(7)
	questions := g.GenerateQuizQuestions("Math", sampleCollection(), 3)
	require.Len(t, questions, 3)

	seen := make(map[string]struct{})
	for _, q := range questions {
		_, dup := seen[q.FlashcardID]
		assert.False(t, dup, "card %s selected twice", q.FlashcardID)
		seen[q.FlashcardID] = struct{}{}
	}
}

func TestGenerateEmptyTopic(t *testing.T) {
	t.Parallel()

	g := NewSeededQuizGenerator(1)

	// A topic with no cards is not an error.
	questions := g.GenerateQuizQuestions("Geography", sampleCollection(), 5)
	require.NotNil(t, questions)
	assert.Empty(t, questions)

	// Same for an empty collection or a non-positive target.
	assert.Empty(t, g.GenerateQuizQuestions("Math", nil, 5))
	assert.Empty(t, g.GenerateQuizQuestions("Math", sampleCollection(), 0))
}

func TestGenerateDeterministicUnderSeed(t *testing.T) {
	t.Parallel()

	cards := sampleCollection()

	first := NewSeededQuizGenerator(99).GenerateQuizQuestions("Math", cards, 4)
	second := NewSeededQuizGenerator(99).GenerateQuizQuestions("Math", cards, 4)

	// Same cards, same option sets, same order.
	assert.Equal(t, first, second)
}

func TestGeneratePrefersAuthorSuppliedDistractors(t *testing.T) {
	t.Parallel()

	cards := []domain.Flashcard{
		{
			ID:          "m1",
			Topic:       "Math",
			Prompt:      "2+2?",
			Answer:      "4",
			Distractors: []string{"3", "5", "22"},
		},
		{ID: "m2", Topic: "Math", Prompt: "3+3?", Answer: "6"},
		{ID: "m3", Topic: "Math", Prompt: "5*5?", Answer: "25"},
	}

	g := NewSeededQuizGenerator(11)
	questions := g.GenerateQuizQuestions("Math", cards, 10)
	require.Len(t, questions, 3)

	for _, q := range questions {
		if q.FlashcardID != "m1" {
			continue
		}
		// With a full author-supplied set, the fallback pools must not be
		// consulted: options are exactly the answer plus its distractors.
		assert.ElementsMatch(t, []string{"4", "3", "5", "22"}, q.Options)
	}
}

func TestGenerateSkipsDistractorsEqualToAnswer(t *testing.T) {
	t.Parallel()

	cards := []domain.Flashcard{
		{
			ID:          "m1",
			Topic:       "Math",
			Prompt:      "2+2?",
			Answer:      "4",
			Distractors: []string{"4", "4", "3", "", "5", "22"},
		},
	}

	g := NewSeededQuizGenerator(5)
	questions := g.GenerateQuizQuestions("Math", cards, 1)
	require.Len(t, questions, 1)

	// The duplicates and the answer-colliding entry are skipped; the three
	// usable author-supplied distractors remain.
	assert.ElementsMatch(t, []string{"4", "3", "5", "22"}, questions[0].Options)
}

func TestGenerateFallsBackToSameTopicAnswers(t *testing.T) {
	t.Parallel()

	cards := []domain.Flashcard{
		{ID: "m1", Topic: "Math", Prompt: "2+2?", Answer: "4"},
		{ID: "m2", Topic: "Math", Prompt: "3+3?", Answer: "6"},
		{ID: "m3", Topic: "Math", Prompt: "5*5?", Answer: "25"},
		{ID: "m4", Topic: "Math", Prompt: "10/2?", Answer: "5"},
	}

	g := NewSeededQuizGenerator(3)
	questions := g.GenerateQuizQuestions("Math", cards, 10)
	require.Len(t, questions, 4)
	requireValidQuestions(t, questions)

	// Four cards with four distinct answers: every option set is drawn
	// entirely from real answers, no filler needed.
	answers := map[string]struct{}{"4": {}, "6": {}, "25": {}, "5": {}}
	for _, q := range questions {
		for _, opt := range q.Options {
			_, known := answers[opt]
			assert.True(t, known, "option %q should come from the topic's answers", opt)
		}
	}
}

func TestGenerateScarcityPadsWithFiller(t *testing.T) {
	t.Parallel()

	// One card in the topic, no author-supplied distractors, and a global
	// pool with a single other distinct answer: two filler options needed.
	cards := []domain.Flashcard{
		{ID: "s1", Topic: "Solo", Prompt: "only question?", Answer: "only answer"},
		{ID: "x1", Topic: "Other", Prompt: "something else?", Answer: "other answer"},
	}

	g := NewSeededQuizGenerator(8)
	questions := g.GenerateQuizQuestions("Solo", cards, 1)
	require.Len(t, questions, 1)
	requireValidQuestions(t, questions)

	assert.Contains(t, questions[0].Options, "only answer")
	assert.Contains(t, questions[0].Options, "other answer")
	assert.Contains(t, questions[0].Options, "Option 1")
	assert.Contains(t, questions[0].Options, "Option 2")
}

func TestGenerateSingleCardCollection(t *testing.T) {
	t.Parallel()

	// Degenerate case: nothing anywhere but the card itself.
	cards := []domain.Flashcard{
		{ID: "s1", Topic: "Solo", Prompt: "only question?", Answer: "only answer"},
	}

	g := NewSeededQuizGenerator(13)
	questions := g.GenerateQuizQuestions("Solo", cards, 5)
	require.Len(t, questions, 1)
	requireValidQuestions(t, questions)
}

func TestGenerateExcludesAnswerlessCards(t *testing.T) {
	t.Parallel()

	cards := []domain.Flashcard{
		{ID: "m1", Topic: "Math", Prompt: "2+2?", Answer: "4"},
		{ID: "m2", Topic: "Math", Prompt: "unanswerable?"},
	}

	g := NewSeededQuizGenerator(21)
	questions := g.GenerateQuizQuestions("Math", cards, 10)

	// The answerless card has nothing to score against and is skipped.
	require.Len(t, questions, 1)
	assert.Equal(t, "m1", questions[0].FlashcardID)
	requireValidQuestions(t, questions)
}

func TestGenerateDuplicateAnswersCollapse(t *testing.T) {
	t.Parallel()

	// Several cards share the answer "4"; after dedup the option set must
	// still reach four unique entries.
	cards := []domain.Flashcard{
		{ID: "m1", Topic: "Math", Prompt: "2+2?", Answer: "4"},
		{ID: "m2", Topic: "Math", Prompt: "8/2?", Answer: "4"},
		{ID: "m3", Topic: "Math", Prompt: "1+3?", Answer: "4"},
		{ID: "m4", Topic: "Math", Prompt: "3+3?", Answer: "6"},
	}

	g := NewSeededQuizGenerator(17)
	questions := g.GenerateQuizQuestions("Math", cards, 10)
	require.Len(t, questions, 4)
	requireValidQuestions(t, questions)
}

func TestGenerateEndToEndSeeded(t *testing.T) {
	t.Parallel()

	cards := []domain.Flashcard{
		{ID: "a1", Topic: "Math", Prompt: "2+2?", Answer: "4"},
		{ID: "a2", Topic: "Math", Prompt: "3+3?", Answer: "6"},
	}

	questions := NewSeededQuizGenerator(1).GenerateQuizQuestions("Math", cards, 10)
	require.Len(t, questions, 2)
	requireValidQuestions(t, questions)

	for _, q := range questions {
		switch q.FlashcardID {
		case "a1":
			assert.Equal(t, "2+2?", q.Prompt)
			assert.Equal(t, "4", q.CorrectAnswer)
		case "a2":
			assert.Equal(t, "3+3?", q.Prompt)
			assert.Equal(t, "6", q.CorrectAnswer)
		default:
			t.Errorf("unexpected flashcard ID %q", q.FlashcardID)
		}
	}

	// The run is fixed for a fixed seed.
	replay := NewSeededQuizGenerator(1).GenerateQuizQuestions("Math", cards, 10)
	assert.Equal(t, questions, replay)
}
