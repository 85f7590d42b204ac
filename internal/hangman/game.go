// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package hangman implements a single-player word-guessing game. Game holds
// the rules and state and never prints; Play drives a game over a console.
package hangman

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxWrong is the number of wrong guesses that loses the game. It matches
// the last of the gallows figures.
const MaxWrong = 6

// Outcome is the result of a single guess.
type Outcome int

const (
	// Invalid means the input was not exactly one letter.
	Invalid Outcome = iota
	// Repeated means the letter was guessed before; nothing changes.
	Repeated
	// Correct means the letter occurs in the word and was revealed.
	Correct
	// Wrong means the letter does not occur; one attempt was used.
	Wrong
	// Finished means the game was already over.
	Finished
)

func (o Outcome) String() string {
	switch o {
	case Invalid:
		return "invalid"
	case Repeated:
		return "repeated"
	case Correct:
		return "correct"
	case Wrong:
		return "wrong"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Game is the state of one round.
type Game struct {
	word     []rune
	revealed []bool
	guessed  []rune
	wrong    int
}

// NewGame starts a round with word as the secret. The word is lower-cased.
func NewGame(word string) *Game {
	w := []rune(strings.ToLower(word))
	return &Game{
		word:     w,
		revealed: make([]bool, len(w)),
	}
}

// Pick returns a word chosen by intn, which must return a value in [0, n).
// It panics when words is empty.
func Pick(words []string, intn func(n int) int) string {
	return words[intn(len(words))]
}

// Guess applies one guess. Input is lower-cased and must be a single
// letter.
func (g *Game) Guess(input string) Outcome {
	if g.Over() {
		return Finished
	}

	input = strings.ToLower(input)
	if utf8.RuneCountInString(input) != 1 {
		return Invalid
	}
	letter, _ := utf8.DecodeRuneInString(input)
	if !unicode.IsLetter(letter) {
		return Invalid
	}

	for _, r := range g.guessed {
		if r == letter {
			return Repeated
		}
	}
	g.guessed = append(g.guessed, letter)

	hit := false
	for i, r := range g.word {
		if r == letter {
			g.revealed[i] = true
			hit = true
		}
	}
	if hit {
		return Correct
	}
	g.wrong++
	return Wrong
}

// Word returns the secret word.
func (g *Game) Word() string { return string(g.word) }

// Masked returns the word with unrevealed letters shown as "_", letters
// separated by spaces.
func (g *Game) Masked() string {
	parts := make([]string, len(g.word))
	for i, r := range g.word {
		if g.revealed[i] {
			parts[i] = string(r)
		} else {
			parts[i] = "_"
		}
	}
	return strings.Join(parts, " ")
}

// Guessed returns the guessed letters in the order they were tried.
func (g *Game) Guessed() []string {
	out := make([]string, len(g.guessed))
	for i, r := range g.guessed {
		out[i] = string(r)
	}
	return out
}

// Wrong returns the number of wrong guesses so far.
func (g *Game) Wrong() int { return g.wrong }

// AttemptsLeft returns the wrong guesses still allowed.
func (g *Game) AttemptsLeft() int { return MaxWrong - g.wrong }

// Won reports whether every letter is revealed.
func (g *Game) Won() bool {
	for _, ok := range g.revealed {
		if !ok {
			return false
		}
	}
	return true
}

// Lost reports whether the wrong-guess limit was reached.
func (g *Game) Lost() bool { return g.wrong >= MaxWrong }

// Over reports whether the round has ended.
func (g *Game) Over() bool { return g.Won() || g.Lost() }
