// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog loads the fixed lookup tables the tools run against: the
// hangman word list and the portfolio stock table. Both ship embedded as
// YAML and can be replaced by a file of the same shape.
package catalog

import (
	"embed"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pocket/pkg/types"
)

//go:embed defaults/*.yaml
var defaults embed.FS

const (
	defaultWords  = "defaults/words.yaml"
	defaultStocks = "defaults/stocks.yaml"
)

// WordsFile is the on-disk shape of a word list.
type WordsFile struct {
	Words []string `yaml:"words"`
}

// StocksFile is the on-disk shape of a stock table. Order is preserved and
// used for display.
type StocksFile struct {
	Stocks []types.Stock `yaml:"stocks"`
}

// LoadWords reads the word list at path, or the built-in list when path is
// empty.
func LoadWords(path string) ([]string, error) {
	data, err := readSource(path, defaultWords)
	if err != nil {
		return nil, err
	}
	return ParseWords(data)
}

// ParseWords decodes and validates a word list. Words are trimmed and
// lower-cased; each must be made of letters only.
func ParseWords(data []byte) ([]string, error) {
	var f WordsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing word list: %w", err)
	}
	if len(f.Words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}

	words := make([]string, 0, len(f.Words))
	for i, w := range f.Words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			return nil, fmt.Errorf("word %d is empty", i)
		}
		for _, r := range w {
			if !unicode.IsLetter(r) {
				return nil, fmt.Errorf("word %d %q: only letters are allowed", i, w)
			}
		}
		words = append(words, w)
	}
	return words, nil
}

// LoadStocks reads the stock table at path, or the built-in table when path
// is empty.
func LoadStocks(path string) ([]types.Stock, error) {
	data, err := readSource(path, defaultStocks)
	if err != nil {
		return nil, err
	}
	return ParseStocks(data)
}

// ParseStocks decodes and validates a stock table. Symbols are trimmed,
// upper-cased, and must be unique.
func ParseStocks(data []byte) ([]types.Stock, error) {
	var f StocksFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing stock table: %w", err)
	}
	if len(f.Stocks) == 0 {
		return nil, fmt.Errorf("stock table is empty")
	}

	seen := make(map[string]bool, len(f.Stocks))
	stocks := make([]types.Stock, 0, len(f.Stocks))
	for i, s := range f.Stocks {
		s.Symbol = strings.ToUpper(strings.TrimSpace(s.Symbol))
		s.Name = strings.TrimSpace(s.Name)
		switch {
		case s.Symbol == "":
			return nil, fmt.Errorf("stock %d: missing symbol", i)
		case s.Name == "":
			return nil, fmt.Errorf("stock %s: missing name", s.Symbol)
		case s.Price < 0 || s.Cost < 0:
			return nil, fmt.Errorf("stock %s: price and cost must not be negative", s.Symbol)
		case seen[s.Symbol]:
			return nil, fmt.Errorf("stock %s: duplicate symbol", s.Symbol)
		}
		seen[s.Symbol] = true
		stocks = append(stocks, s)
	}
	return stocks, nil
}

// EncodeStocks writes stocks in the stock table file shape.
func EncodeStocks(w io.Writer, stocks []types.Stock) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(StocksFile{Stocks: stocks}); err != nil {
		return fmt.Errorf("encoding stock table: %w", err)
	}
	return enc.Close()
}

func readSource(path, fallback string) ([]byte, error) {
	if path == "" {
		data, err := defaults.ReadFile(fallback)
		if err != nil {
			return nil, fmt.Errorf("reading built-in %s: %w", fallback, err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
