// Package main implements the entry point for the flashquiz terminal
// application, which lets a learner study topic-organized flashcards and
// take auto-generated multiple-choice quizzes built from them.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	dataPath := flag.String("data", "", "path to the flashcards JSON file (overrides FLASHQUIZ_DATA_PATH)")
	seed := flag.Int64("seed", 0, "seed for reproducible quizzes (0 means randomized)")
	flag.Parse()

	app, err := initializeApp(*dataPath, *seed)
	if err != nil {
		// Loading failures are the only fatal user flow; everything past
		// this point degrades gracefully instead of erroring.
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
