// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package hangman

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pocket/internal/console"
)

func play(t *testing.T, word, input string) (string, *Game, error) {
	t.Helper()
	var out bytes.Buffer
	c := console.New(strings.NewReader(input), &out)
	g := NewGame(word)
	err := Play(context.Background(), c, g, nil)
	return out.String(), g, err
}

func TestPlayWin(t *testing.T) {
	out, g, err := play(t, "chair", "c\nz\nc\n7\nh\na\ni\nr\n")
	require.NoError(t, err)
	assert.True(t, g.Won())

	assert.Contains(t, out, "=== Welcome to Hangman ===")
	assert.Contains(t, out, "You have 6 incorrect guesses.")
	assert.Contains(t, out, "Word: _ _ _ _ _")
	assert.Contains(t, out, "Word: c _ _ _ _")
	assert.Contains(t, out, "Guessed letters: c z")
	assert.Contains(t, out, "Attempts left: 5")
	assert.Contains(t, out, "Correct guess!")
	assert.Contains(t, out, "Wrong guess!")
	assert.Contains(t, out, "You already guessed that letter!")
	assert.Contains(t, out, "Please enter a single letter.")
	assert.Contains(t, out, "=== FINAL RESULT ===")
	assert.Contains(t, out, "The word was: chair")
	assert.Contains(t, out, "You WIN! Great job!")
	assert.NotContains(t, out, "You LOST!")
}

func TestPlayLose(t *testing.T) {
	out, g, err := play(t, "apple", "b\nc\nd\nf\ng\nh\n")
	require.NoError(t, err)
	assert.True(t, g.Lost())
	assert.Contains(t, out, "You LOST! Better luck next time.")
	assert.Contains(t, out, "The word was: apple")

	final := out[strings.Index(out, "=== FINAL RESULT ==="):]
	assert.Contains(t, final, Stage(MaxWrong))
}

func TestPlayStopsAtGameEnd(t *testing.T) {
	out, _, err := play(t, "bread", "b\nr\ne\na\nd\nx\ny\n")
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(out, "Enter a letter: "), "no prompt after the word is solved")
}

func TestPlayAbandoned(t *testing.T) {
	out, g, err := play(t, "house", "h\n")
	require.ErrorIs(t, err, ErrAbandoned)
	assert.False(t, g.Over())
	assert.NotContains(t, out, "=== FINAL RESULT ===")
}

func TestPlayCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	err := Play(ctx, console.New(strings.NewReader("a\n"), &out), NewGame("apple"), nil)
	require.ErrorIs(t, err, context.Canceled)
}
