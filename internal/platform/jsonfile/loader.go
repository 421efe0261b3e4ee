// Package jsonfile loads the flashcard collection from its JSON backing
// file. This is the only place the application touches storage: the parsed
// collection is handed to the in-memory store and read from there for the
// rest of the session.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/fletcherw/flashquiz/internal/domain"
)

// Loading errors. The two kinds are deliberately distinct so the
// presentation layer can show a "file missing" message for one and a
// "check the file format" message for the other.
var (
	// ErrSourceNotFound is returned when the backing flashcard file does
	// not exist.
	ErrSourceNotFound = errors.New("flashcard source not found")

	// ErrSourceMalformed is returned when the backing file exists but does
	// not parse into the flashcard schema. The wrapped error carries the
	// parse detail.
	ErrSourceMalformed = errors.New("flashcard source malformed")
)

// Load reads and parses the flashcard collection at path. The file must
// contain a top-level JSON array of flashcard objects.
//
// Default substitution for loose optional fields happens here, once, so the
// core never re-checks: a card missing an id gets a deterministic one
// synthesized from its topic and position, and nil distractor/tag slices
// are left as-is (empty and missing are equivalent downstream). Cards
// missing an answer are kept; the generator excludes them from quizzes but
// they still appear in study mode.
//
// Returns:
//   - (cards, nil) on success
//   - (nil, ErrSourceNotFound) when the file does not exist
//   - (nil, ErrSourceMalformed) when the file cannot be parsed, with the
//     underlying cause wrapped for logging
func Load(path string) ([]domain.Flashcard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cards []domain.Flashcard
	if err := json.Unmarshal(data, &cards); err != nil {
		// Covers both invalid JSON and a non-array top level.
		return nil, fmt.Errorf("%w: %v", ErrSourceMalformed, err)
	}

	for i := range cards {
		if cards[i].ID == "" {
			cards[i].ID = domain.SynthesizeFlashcardID(cards[i].Topic, i)
		}
	}

	return cards, nil
}
