package attempt

import (
	"log/slog"

	"github.com/fletcherw/flashquiz/internal/generation"
	"github.com/fletcherw/flashquiz/internal/store"
)

// Service starts quiz attempts by generating a fresh question sequence from
// the flashcard store. It holds no per-attempt state; the returned Attempt
// value is owned entirely by the caller, so the service is reentrant.
type Service struct {
	generator generation.Generator
	cards     store.FlashcardStore
	logger    *slog.Logger
}

// NewService creates an attempt service with the given question generator
// and flashcard store. A nil logger falls back to the default logger.
func NewService(generator generation.Generator, cards store.FlashcardStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		generator: generator,
		cards:     cards,
		logger:    logger,
	}
}

// Start generates up to numQuestions questions for the topic and returns a
// new attempt over them. A topic with no material yields an empty attempt
// (never an error); callers check Empty() and render a "nothing to study"
// state.
func (s *Service) Start(topic string, numQuestions int) *Attempt {
	questions := s.generator.GenerateQuizQuestions(topic, s.cards.All(), numQuestions)

	a := newAttempt(topic, questions)

	s.logger.Info("quiz attempt started",
		"attempt_id", a.ID,
		"topic", topic,
		"requested", numQuestions,
		"questions", len(questions))

	return a
}
