package domain

import "errors"

// QuizQuestion-specific validation errors
var (
	// ErrQuestionFlashcardIDEmpty is returned when a question's flashcard
	// back-reference is empty.
	ErrQuestionFlashcardIDEmpty = errors.New("question flashcard ID cannot be empty")

	// ErrQuestionOptionCount is returned when a question does not carry
	// exactly the required number of options.
	ErrQuestionOptionCount = errors.New("question must have exactly 4 options")

	// ErrQuestionOptionsNotUnique is returned when two options collide.
	ErrQuestionOptionsNotUnique = errors.New("question options must be unique")

	// ErrQuestionAnswerMissing is returned when the correct answer is not
	// among the options.
	ErrQuestionAnswerMissing = errors.New("correct answer must appear in options")
)

// OptionCount is the number of choices every generated question carries:
// the correct answer plus three distractors.
const OptionCount = 4

// QuizQuestion is a generated, immutable unit of assessment. FlashcardID is
// a back-reference to the source card (lookup only, not ownership); Prompt
// and CorrectAnswer are copied from the card at generation time so the
// question stays self-contained for the duration of one attempt.
type QuizQuestion struct {
	FlashcardID   string   `json:"flashcard_id"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// Validate checks the postconditions every generated question must satisfy:
// exactly OptionCount mutually distinct options, with the correct answer
// present among them. Returns an error describing the first violation.
func (q *QuizQuestion) Validate() error {
	if q.FlashcardID == "" {
		return ErrQuestionFlashcardIDEmpty
	}

	if len(q.Options) != OptionCount {
		return ErrQuestionOptionCount
	}

	seen := make(map[string]struct{}, len(q.Options))
	answerPresent := false
	for _, opt := range q.Options {
		if _, dup := seen[opt]; dup {
			return ErrQuestionOptionsNotUnique
		}
		seen[opt] = struct{}{}
		if opt == q.CorrectAnswer {
			answerPresent = true
		}
	}

	if !answerPresent {
		return ErrQuestionAnswerMissing
	}

	return nil
}

// IsCorrect reports whether the given choice matches the question's
// recorded correct answer.
func (q *QuizQuestion) IsCorrect(choice string) bool {
	return choice == q.CorrectAnswer
}
