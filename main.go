package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/amitrohan/sequence-llm/predict"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var (
	fHistorySize = flag.Int("N", 3, "the number of trailing words used as prediction context")
	fMaxSteps    = flag.Int("steps", 10, "the maximum number of words appended per prompt in interactive mode")
	fInteractive = flag.Bool("interactive", false, "read prompts from stdin instead of running the fixed demonstration")
	fVerbose     = flag.Bool("verbose", false, "trace every context probe at debug level")
)

func main() {
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger().Level(zerolog.InfoLevel)
	if *fVerbose {
		logger = logger.Level(zerolog.DebugLevel)
	}

	llm := predict.New(
		predict.NewPhraseMap(dialogues),
		predict.WithHistorySize(*fHistorySize),
		predict.WithLogger(logger),
	)

	if *fInteractive {
		if err := runInteractive(llm, *fMaxSteps); err != nil {
			logger.Fatal().Err(err).Msg("interactive session failed")
		}
		return
	}

	runDemo(llm)
}

func runDemo(llm *predict.Predictor) {
	fmt.Println("नमस्ते! Let's play a game. I'll start a famous dialogue, and you'll guess what comes next.")
	fmt.Println("Then, we'll see how my simple 'LLM brain' completes it, using a bit of 'memory'.")
	fmt.Println()
	fmt.Println(strings.Repeat("-", 81))

	demos := []struct {
		dialogue string
		maxSteps int
	}{
		{"Kitne aadmi", 5},
		{"Bade bade deshon mein", 10},
		{"chai", 5},
	}

	for _, demo := range demos {
		fmt.Printf("**Your Turn!** What comes after '%s'?\n", demo.dialogue)
		fmt.Println("Wait for the 'LLM' to respond...")

		result := llm.Generate(demo.dialogue, demo.maxSteps)

		fmt.Printf("My LLM says: '%s'\n", result.Text)
		fmt.Println(strings.Repeat("-", 75))
	}
}

// runInteractive completes prompts read from stdin, one per line, until EOF.
// Stages communicate over channels so slow terminals never block generation.
func runInteractive(llm *predict.Predictor, maxSteps int) error {
	g, ctx := errgroup.WithContext(context.Background())

	promptCh := make(chan string, 16)
	resultCh := make(chan predict.Result, 16)

	g.Go(func() error {
		defer close(promptCh)

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			prompt := strings.TrimSpace(scanner.Text())
			if prompt == "" {
				continue
			}

			select {
			case promptCh <- prompt:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		return scanner.Err()
	})

	g.Go(func() error {
		defer close(resultCh)

		for prompt := range promptCh {
			resultCh <- llm.Generate(prompt, maxSteps)
		}

		return nil
	})

	g.Go(func() error {
		for result := range resultCh {
			fmt.Printf("My LLM says: '%s'\n", result.Text)
		}

		return nil
	})

	return g.Wait()
}
