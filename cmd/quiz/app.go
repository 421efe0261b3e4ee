package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/fletcherw/flashquiz/internal/config"
	"github.com/fletcherw/flashquiz/internal/generation"
	"github.com/fletcherw/flashquiz/internal/platform/jsonfile"
	"github.com/fletcherw/flashquiz/internal/platform/logger"
	"github.com/fletcherw/flashquiz/internal/platform/memory"
	"github.com/fletcherw/flashquiz/internal/service/attempt"
	"github.com/fletcherw/flashquiz/internal/store"
)

// application bundles the wired-up components behind the interactive loop.
type application struct {
	cfg      *config.Config
	logger   *slog.Logger
	cards    store.FlashcardStore
	attempts *attempt.Service
}

// initializeApp loads configuration, sets up logging, loads the flashcard
// collection, and wires the store, generator, and attempt service together.
// Returns the assembled application and any initialization error.
func initializeApp(dataPath string, seed int64) (*application, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Set up structured logging using the configured log level
	appLogger := logger.Setup(cfg.App)

	if dataPath == "" {
		dataPath = cfg.Data.Path
	}

	// The two loading failure kinds get distinct user-facing messages.
	collection, err := jsonfile.Load(dataPath)
	if err != nil {
		switch {
		case errors.Is(err, jsonfile.ErrSourceNotFound):
			return nil, fmt.Errorf("could not find %s; make sure it exists", dataPath)
		case errors.Is(err, jsonfile.ErrSourceMalformed):
			return nil, fmt.Errorf("failed to parse %s; please check the file format (%v)", dataPath, err)
		default:
			return nil, fmt.Errorf("failed to load flashcards: %w", err)
		}
	}

	cards := memory.NewFlashcardStore(collection)

	var gen generation.Generator
	if seed != 0 {
		gen = generation.NewSeededQuizGenerator(seed)
	} else {
		gen = generation.NewQuizGenerator()
	}

	slog.Info("flashcards loaded",
		"path", dataPath,
		"cards", cards.Len(),
		"topics", len(cards.Topics()))

	return &application{
		cfg:      cfg,
		logger:   appLogger,
		cards:    cards,
		attempts: attempt.NewService(gen, cards, appLogger),
	}, nil
}

// run drives the dashboard loop: list topics, then hand off to study or
// quiz mode for the selected one.
func (app *application) run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		topics := app.cards.Topics()
		if len(topics) == 0 {
			fmt.Fprintln(out, "No revision topics available.")
			return nil
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "Revision topics:")
		for i, topic := range topics {
			fmt.Fprintf(out, "  %d. %s (%d cards)\n", i+1, topic, len(app.cards.CardsForTopic(topic)))
		}
		fmt.Fprintln(out, "Commands: s <n> study, q <n> quiz, x exit")
		fmt.Fprint(out, "> ")

		line, ok := readLine(scanner)
		if !ok {
			return nil
		}

		cmd, topic := parseTopicCommand(line, topics)
		switch cmd {
		case "x":
			return nil
		case "s":
			app.studyMode(scanner, out, topic)
		case "q":
			app.quizMode(scanner, out, topic)
		default:
			fmt.Fprintln(out, "Unrecognized command.")
		}
	}
}

// studyMode iterates a topic's cards one at a time, flipping between prompt
// and answer.
func (app *application) studyMode(scanner *bufio.Scanner, out io.Writer, topic string) {
	if topic == "" {
		fmt.Fprintln(out, "Pick a topic number, e.g. 's 1'.")
		return
	}

	cards := app.cards.CardsForTopic(topic)
	if len(cards) == 0 {
		fmt.Fprintln(out, "No flashcards available for this topic.")
		return
	}

	fmt.Fprintf(out, "\nStudying topic: %s\n", topic)

	idx := 0
	showAnswer := false
	for {
		card := cards[idx]
		if showAnswer {
			fmt.Fprintf(out, "[%d/%d] Answer: %s\n", idx+1, len(cards), card.Answer)
		} else {
			fmt.Fprintf(out, "[%d/%d] Question: %s\n", idx+1, len(cards), card.Prompt)
		}
		fmt.Fprintln(out, "Commands: f flip, n next, p previous, b back")
		fmt.Fprint(out, "> ")

		line, ok := readLine(scanner)
		if !ok {
			return
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "f":
			showAnswer = !showAnswer
		case "n":
			if idx < len(cards)-1 {
				idx++
				showAnswer = false
			}
		case "p":
			if idx > 0 {
				idx--
				showAnswer = false
			}
		case "b":
			return
		}
	}
}

// quizMode runs one quiz attempt for the topic: generate questions, walk
// them one at a time recording answers, then show the results summary.
func (app *application) quizMode(scanner *bufio.Scanner, out io.Writer, topic string) {
	if topic == "" {
		fmt.Fprintln(out, "Pick a topic number, e.g. 'q 1'.")
		return
	}

	numQuestions := app.promptQuestionCount(scanner, out)

	a := app.attempts.Start(topic, numQuestions)
	if a.Empty() {
		fmt.Fprintln(out, "No flashcards available for this selection.")
		return
	}

	total := len(a.Questions)
	for a.Status == attempt.StatusInProgress {
		q, err := a.Current()
		if err != nil {
			break
		}
		idx := a.CurrentIndex

		fmt.Fprintf(out, "\nQuestion %d of %d\n", idx+1, total)
		fmt.Fprintln(out, q.Prompt)
		for i, opt := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", i+1, opt)
		}

		if !a.Submitted(idx) {
			app.promptAnswer(scanner, out, a, idx)
		}

		if err := a.Next(); err != nil {
			break
		}
	}

	app.showResults(out, a)
	a.Restart()
}

// promptQuestionCount asks how many questions to generate; an empty answer
// keeps the configured default, and out-of-range input is clamped to the
// same bounds the config enforces.
func (app *application) promptQuestionCount(scanner *bufio.Scanner, out io.Writer) int {
	fmt.Fprintf(out, "Questions [%d]: ", app.cfg.Quiz.DefaultQuestions)

	line, ok := readLine(scanner)
	if !ok {
		return app.cfg.Quiz.DefaultQuestions
	}

	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return app.cfg.Quiz.DefaultQuestions
	}
	if n < 1 {
		n = 1
	}
	if n > 50 {
		n = 50
	}
	return n
}

// promptAnswer reads an option number until a valid one is submitted for
// the question at idx, then reports whether it was correct.
func (app *application) promptAnswer(scanner *bufio.Scanner, out io.Writer, a *attempt.Attempt, idx int) {
	q := a.Questions[idx]

	for {
		fmt.Fprint(out, "Your answer (1-4): ")
		line, ok := readLine(scanner)
		if !ok {
			return
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < 1 || choice > len(q.Options) {
			fmt.Fprintln(out, "Please select an option before submitting.")
			continue
		}

		if err := a.Submit(idx, q.Options[choice-1]); err != nil {
			fmt.Fprintf(out, "Submission rejected: %v\n", err)
			return
		}

		if a.Answers()[idx].Correct {
			fmt.Fprintln(out, "Correct!")
		} else {
			fmt.Fprintf(out, "Incorrect. The correct answer is: %s\n", q.CorrectAnswer)
		}
		return
	}
}

// showResults prints the per-question answer log and the final score.
func (app *application) showResults(out io.Writer, a *attempt.Attempt) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Quiz results")
	fmt.Fprintf(out, "Your score: %d / %d\n", a.Score, len(a.Questions))

	answers := a.Answers()
	for i, q := range a.Questions {
		status := "incorrect"
		chosen := "<no answer>"
		if answers[i].Submitted {
			chosen = answers[i].Choice
		}
		if answers[i].Correct {
			status = "correct"
		}
		fmt.Fprintf(out, "  %d. %s | you answered %q, correct answer %q (%s)\n",
			i+1, q.Prompt, chosen, q.CorrectAnswer, status)
	}
}

// parseTopicCommand splits a dashboard command into its verb and, when a
// valid topic number follows, the topic it names.
func parseTopicCommand(line string, topics []string) (cmd string, topic string) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(line)))
	if len(fields) == 0 {
		return "", ""
	}

	cmd = fields[0]
	if len(fields) > 1 {
		if n, err := strconv.Atoi(fields[1]); err == nil && n >= 1 && n <= len(topics) {
			topic = topics[n-1]
		}
	}
	return cmd, topic
}

// readLine reads one line of input, reporting false on EOF.
func readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return scanner.Text(), true
}
