// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/pocket/internal/catalog"
	"github.com/pdiddy/pocket/internal/hangman"
)

var hangmanCmd = &cobra.Command{
	Use:   "hangman",
	Short: "Play one round of hangman",
	Long: `Hangman picks a secret word from the word list and asks for one letter
at a time. Six wrong guesses lose the round. The built-in list can be
replaced with a YAML file (hangman.words_file).`,
	Args: cobra.NoArgs,
	RunE: runHangman,
}

func init() {
	hangmanCmd.Flags().String("words", "", "YAML word list replacing the built-in one")
	_ = viper.BindPFlag("hangman.words_file", hangmanCmd.Flags().Lookup("words"))

	rootCmd.AddCommand(hangmanCmd)
}

func runHangman(cmd *cobra.Command, args []string) error {
	cfg := loadConfig().Hangman

	words, err := catalog.LoadWords(cfg.WordsFile)
	if err != nil {
		return err
	}
	logger.Debug("word list loaded", zap.Int("words", len(words)), zap.String("file", cfg.WordsFile))

	con := newConsole(cmd)
	game := hangman.NewGame(hangman.Pick(words, rand.IntN))
	err = hangman.Play(cmd.Context(), con, game, logger)
	if errors.Is(err, hangman.ErrAbandoned) {
		con.Warn("\nGame abandoned. The word was: %s", game.Word())
		return nil
	}
	return err
}
