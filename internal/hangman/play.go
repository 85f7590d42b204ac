// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package hangman

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/pocket/internal/console"
)

// ErrAbandoned is returned by Play when input ends before the round does.
var ErrAbandoned = errors.New("game abandoned before it ended")

// Play runs g to completion, reading one guess per prompt from c. It
// returns nil once the round is won or lost.
func Play(ctx context.Context, c *console.Console, g *Game, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("hangman")

	c.Println("=== Welcome to Hangman ===")
	c.Println("Guess the word letter by letter!")
	c.Printf("You have %d incorrect guesses.\n\n", MaxWrong)

	for !g.Over() {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.Println("Word:", g.Masked())
		c.Println("Guessed letters:", strings.Join(g.Guessed(), " "))
		c.Println("Attempts left:", g.AttemptsLeft())
		c.Println(Stage(g.Wrong()))

		input, err := c.Prompt("Enter a letter: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Info("input closed mid-game", zap.Int("wrong", g.Wrong()))
				return ErrAbandoned
			}
			return fmt.Errorf("reading guess: %w", err)
		}

		outcome := g.Guess(input)
		log.Debug("guess", zap.String("input", input), zap.Stringer("outcome", outcome))

		switch outcome {
		case Invalid:
			c.Warn("Please enter a single letter.\n")
		case Repeated:
			c.Warn("You already guessed that letter!\n")
		case Correct:
			c.Success("Correct guess!\n")
		case Wrong:
			c.Error("Wrong guess!\n")
		}
	}

	c.Println("\n=== FINAL RESULT ===")
	c.Println(Stage(g.Wrong()))
	c.Println("The word was:", g.Word())
	if g.Won() {
		c.Success("You WIN! Great job!")
	} else {
		c.Error("You LOST! Better luck next time.")
	}
	log.Info("game over", zap.Bool("won", g.Won()), zap.Int("wrong", g.Wrong()))
	return nil
}
