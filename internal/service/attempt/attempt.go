// Package attempt models one run of a generated quiz: the questions, the
// learner's in-progress answers, and the score. The Attempt value is owned
// by the caller (one value per active quiz); no state lives in the package
// itself, so independent attempts never interfere.
package attempt

import (
	"errors"

	"github.com/google/uuid"

	"github.com/fletcherw/flashquiz/internal/domain"
)

// Status represents where an attempt is in its lifecycle.
type Status string

// Possible attempt status values
const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusFinished   Status = "finished"
)

// Common error types for attempt operations
var (
	// ErrNotInProgress is returned when submitting or advancing an attempt
	// that is not currently in progress.
	ErrNotInProgress = errors.New("attempt is not in progress")

	// ErrIndexOutOfRange is returned when the question index does not exist
	// in this attempt.
	ErrIndexOutOfRange = errors.New("question index out of range")

	// ErrNoChoiceSelected is returned when submitting without a choice.
	ErrNoChoiceSelected = errors.New("no option selected")

	// ErrAlreadySubmitted is returned when submitting a second answer for a
	// question index that is already locked. The first answer stands and
	// the score is unchanged.
	ErrAlreadySubmitted = errors.New("answer already submitted for this question")
)

// RecordedAnswer is the per-question slot in an attempt's answer log.
// Submitted distinguishes an empty slot from an actual answer; once set,
// the slot is locked.
type RecordedAnswer struct {
	Choice    string `json:"choice"`
	Submitted bool   `json:"submitted"`
	Correct   bool   `json:"correct"`
}

// Attempt is one learner's run through a generated question sequence.
//
// All mutating methods are synchronous and operate only on the receiver;
// callers needing multiple simultaneous attempts (e.g. several browser
// tabs) hold one Attempt value each.
type Attempt struct {
	ID           uuid.UUID
	Topic        string
	Status       Status
	Questions    []domain.QuizQuestion
	CurrentIndex int
	Score        int

	answers []RecordedAnswer
}

// newAttempt builds an attempt over already-generated questions. An empty
// question sequence (the topic had no material) stays NotStarted so the
// caller can render a "nothing to study" state; otherwise the attempt is
// immediately in progress at index 0 with an empty answer slot per question
// and score 0.
func newAttempt(topic string, questions []domain.QuizQuestion) *Attempt {
	a := &Attempt{
		ID:        uuid.New(),
		Topic:     topic,
		Status:    StatusNotStarted,
		Questions: questions,
		answers:   make([]RecordedAnswer, len(questions)),
	}

	if len(questions) > 0 {
		a.Status = StatusInProgress
	}

	return a
}

// Empty reports whether the attempt has no questions to ask.
func (a *Attempt) Empty() bool {
	return len(a.Questions) == 0
}

// Current returns the question at the attempt's current index.
// Returns ErrNotInProgress if the attempt is not running.
func (a *Attempt) Current() (*domain.QuizQuestion, error) {
	if a.Status != StatusInProgress {
		return nil, ErrNotInProgress
	}
	return &a.Questions[a.CurrentIndex], nil
}

// Submit records the learner's choice for the question at the given index
// and increments the score when it matches that question's correct answer.
//
// Submit is valid exactly once per index: a second submit at a locked index
// is rejected with ErrAlreadySubmitted and leaves both the recorded answer
// and the score unchanged. Submitting an empty choice is rejected with
// ErrNoChoiceSelected before any state changes.
func (a *Attempt) Submit(index int, choice string) error {
	if a.Status != StatusInProgress {
		return ErrNotInProgress
	}

	if index < 0 || index >= len(a.Questions) {
		return ErrIndexOutOfRange
	}

	if choice == "" {
		return ErrNoChoiceSelected
	}

	if a.answers[index].Submitted {
		return ErrAlreadySubmitted
	}

	correct := a.Questions[index].IsCorrect(choice)
	a.answers[index] = RecordedAnswer{
		Choice:    choice,
		Submitted: true,
		Correct:   correct,
	}

	if correct {
		a.Score++
	}

	return nil
}

// Submitted reports whether the question at the given index is locked.
func (a *Attempt) Submitted(index int) bool {
	return index >= 0 && index < len(a.answers) && a.answers[index].Submitted
}

// Next advances the attempt to the following question. At the last index it
// transitions the attempt to Finished instead.
// Returns ErrNotInProgress if the attempt is not running.
func (a *Attempt) Next() error {
	if a.Status != StatusInProgress {
		return ErrNotInProgress
	}

	if a.CurrentIndex < len(a.Questions)-1 {
		a.CurrentIndex++
		return nil
	}

	a.Status = StatusFinished
	return nil
}

// Restart clears all per-attempt state and returns the attempt to
// NotStarted. The caller starts a fresh attempt (with newly generated
// questions) through the service afterwards.
func (a *Attempt) Restart() {
	a.Status = StatusNotStarted
	a.Questions = nil
	a.answers = nil
	a.CurrentIndex = 0
	a.Score = 0
}

// Answers returns a copy of the per-question answer log, index-aligned with
// Questions. Plain data, directly renderable by any presentation layer.
func (a *Attempt) Answers() []RecordedAnswer {
	log := make([]RecordedAnswer, len(a.answers))
	copy(log, a.answers)
	return log
}
