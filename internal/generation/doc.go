// Package generation builds multiple-choice quiz questions from a topic's
// flashcards. It selects a bounded number of cards and synthesizes plausible,
// unique, randomized options for each, guaranteeing the correct answer is
// present exactly once and the option set reaches its target size even when
// the underlying card pool is too small to supply three genuine wrong
// answers.
package generation
