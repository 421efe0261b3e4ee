package generation

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/fletcherw/flashquiz/internal/domain"
)

// numDistractors is the number of wrong answers synthesized per question.
// Together with the correct answer this yields domain.OptionCount options.
const numDistractors = domain.OptionCount - 1

// QuizGenerator is the default Generator implementation. Its randomness
// source is an explicit dependency rather than the process-wide one, so a
// seeded generator replays the exact same selection, distractor order, and
// option order, and concurrent attempts can each hold their own instance.
//
// A QuizGenerator is not safe for concurrent use; it is intended for one
// learner's active attempt at a time.
type QuizGenerator struct {
	rng *rand.Rand
}

// NewQuizGenerator creates a generator seeded from the current time, for
// normal interactive use where each quiz should differ.
func NewQuizGenerator() *QuizGenerator {
	return NewSeededQuizGenerator(time.Now().UnixNano())
}

// NewSeededQuizGenerator creates a generator whose entire run is reproducible
// from the given seed. Two generators with the same seed produce identical
// question sequences for the same topic and collection.
func NewSeededQuizGenerator(seed int64) *QuizGenerator {
	return &QuizGenerator{rng: rand.New(rand.NewSource(seed))}
}

// GenerateQuizQuestions implements Generator.
//
// Card selection: when the topic holds no more cards than requested, all of
// them are used in randomized order; otherwise exactly numQuestions cards
// are sampled uniformly without replacement. Cards without an answer are
// disqualified from selection up front (they still serve no distractor
// purpose either, having nothing to contribute).
func (g *QuizGenerator) GenerateQuizQuestions(
	topic string,
	cards []domain.Flashcard,
	numQuestions int,
) []domain.QuizQuestion {
	questions := make([]domain.QuizQuestion, 0)
	if numQuestions <= 0 || len(cards) == 0 {
		return questions
	}

	topicPool := make([]domain.Flashcard, 0)
	for _, card := range cards {
		if card.Topic == topic && card.QuizEligible() {
			topicPool = append(topicPool, card)
		}
	}
	if len(topicPool) == 0 {
		// The topic legitimately has no material.
		return questions
	}

	chosen := g.selectCards(topicPool, numQuestions)

	for _, card := range chosen {
		sameTopic := make([]domain.Flashcard, 0, len(topicPool)-1)
		for _, other := range topicPool {
			if other.ID != card.ID {
				sameTopic = append(sameTopic, other)
			}
		}

		distractors := g.collectDistractors(card, sameTopic, cards)
		options := g.assembleOptions(card, distractors, cards)

		questions = append(questions, domain.QuizQuestion{
			FlashcardID:   card.ID,
			Prompt:        card.Prompt,
			Options:       options,
			CorrectAnswer: card.Answer,
		})
	}

	return questions
}

// selectCards picks the cards to quiz: the whole pool shuffled when it fits
// within the target, otherwise a uniform sample without replacement.
func (g *QuizGenerator) selectCards(pool []domain.Flashcard, numQuestions int) []domain.Flashcard {
	if len(pool) <= numQuestions {
		chosen := make([]domain.Flashcard, len(pool))
		copy(chosen, pool)
		g.rng.Shuffle(len(chosen), func(i, j int) {
			chosen[i], chosen[j] = chosen[j], chosen[i]
		})
		return chosen
	}

	chosen := make([]domain.Flashcard, 0, numQuestions)
	for _, idx := range g.rng.Perm(len(pool))[:numQuestions] {
		chosen = append(chosen, pool[idx])
	}
	return chosen
}

// collectDistractors builds up to numDistractors wrong answers for a card,
// in strict priority order: the card's own author-supplied distractors in
// their given order, then other answers from the same topic in randomized
// order, then answers from the whole collection in randomized order, then
// synthetic filler. Each layer runs only if the previous supplied too few.
// Every distractor is distinct and never equals the correct answer.
func (g *QuizGenerator) collectDistractors(
	card domain.Flashcard,
	sameTopic []domain.Flashcard,
	global []domain.Flashcard,
) []string {
	distractors := make([]string, 0, numDistractors)

	// 1) author-supplied, in the order the author gave them
	for _, d := range card.Distractors {
		if d == "" || d == card.Answer || contains(distractors, d) {
			continue
		}
		distractors = append(distractors, d)
		if len(distractors) >= numDistractors {
			return distractors
		}
	}

	// 2) other answers from the same topic
	distractors = g.pullFromPool(distractors, sameTopic, card.Answer)

	// 3) fall back to the global pool
	if len(distractors) < numDistractors {
		distractors = g.pullFromPool(distractors, global, card.Answer)
	}

	// 4) synthetic filler when the data is too scarce for three genuine
	// wrong answers
	filler := 1
	for len(distractors) < numDistractors {
		candidate := fillerOption(filler)
		if candidate != card.Answer && !contains(distractors, candidate) {
			distractors = append(distractors, candidate)
		}
		filler++
	}

	return distractors
}

// pullFromPool appends distinct answers drawn from the pool in randomized
// order, skipping empty answers, the correct answer, and anything already
// chosen, until the distractor target is met or the pool is exhausted.
func (g *QuizGenerator) pullFromPool(
	distractors []string,
	pool []domain.Flashcard,
	correctAnswer string,
) []string {
	candidates := make([]string, 0, len(pool))
	for _, card := range pool {
		if card.Answer != "" && card.Answer != correctAnswer {
			candidates = append(candidates, card.Answer)
		}
	}

	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for _, c := range candidates {
		if contains(distractors, c) {
			continue
		}
		distractors = append(distractors, c)
		if len(distractors) >= numDistractors {
			break
		}
	}

	return distractors
}

// assembleOptions turns the correct answer plus distractors into the final
// option list: dedup preserving first occurrence, top up from the global
// pool if duplicates collapsed the set below the target, pad with filler,
// then randomize the display order.
func (g *QuizGenerator) assembleOptions(
	card domain.Flashcard,
	distractors []string,
	global []domain.Flashcard,
) []string {
	options := make([]string, 0, domain.OptionCount)
	options = append(options, card.Answer)
	for _, d := range distractors {
		if !contains(options, d) {
			options = append(options, d)
		}
	}

	if len(options) < domain.OptionCount {
		extras := make([]string, 0, len(global))
		for _, other := range global {
			if other.Answer != "" && other.Answer != card.Answer && !contains(options, other.Answer) {
				extras = append(extras, other.Answer)
			}
		}
		g.rng.Shuffle(len(extras), func(i, j int) {
			extras[i], extras[j] = extras[j], extras[i]
		})
		for _, ex := range extras {
			if contains(options, ex) {
				continue
			}
			options = append(options, ex)
			if len(options) >= domain.OptionCount {
				break
			}
		}
	}

	pad := 1
	for len(options) < domain.OptionCount {
		candidate := fillerOption(pad)
		if candidate != card.Answer && !contains(options, candidate) {
			options = append(options, candidate)
		}
		pad++
	}

	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return options
}

// fillerOption returns the nth synthetic placeholder option.
func fillerOption(n int) string {
	return fmt.Sprintf("Option %d", n)
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
