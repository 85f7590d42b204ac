// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package emails scans a text file for email-like substrings, removes
// duplicates, and writes a sorted report with match counts.
//
// Matching is permissive and accepts strings no mail server would, such as
// "a@b..com".
package emails

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/pdiddy/pocket/internal/fsutil"
	"github.com/pdiddy/pocket/pkg/types"
)

// Pattern is the email-like expression: a local part, "@", a domain label,
// a dot, and a tail that may itself contain further dots.
const Pattern = `[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9.-]+`

var defaultPattern = regexp.MustCompile(Pattern)

// Extractor runs the extraction pipeline. The zero value is not usable;
// construct one with New.
type Extractor struct {
	pattern *regexp.Regexp
	log     *zap.Logger
}

// New returns an Extractor using Pattern. A nil logger disables logging.
func New(log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{pattern: defaultPattern, log: log.Named("emails")}
}

// Extract runs the pipeline with a non-logging Extractor.
func Extract(inputPath, outputPath string) (types.EmailReport, error) {
	return New(nil).Extract(inputPath, outputPath)
}

// Extract reads inputPath, collects every match, and writes the sorted,
// deduplicated report to outputPath, replacing any existing file.
//
// It returns ErrNotFound when inputPath does not exist, a *ReadError when
// the file cannot be read as UTF-8 text, ErrNoEmails when nothing matched,
// and a *WriteError when the report cannot be written. Only the last case
// touches outputPath.
func (e *Extractor) Extract(inputPath, outputPath string) (types.EmailReport, error) {
	text, err := e.load(inputPath)
	if err != nil {
		return types.EmailReport{}, err
	}

	candidates := e.FindCandidates(text)
	e.log.Debug("scanned input",
		zap.String("input", inputPath),
		zap.Int("bytes", len(text)),
		zap.Int("candidates", len(candidates)))
	if len(candidates) == 0 {
		return types.EmailReport{}, ErrNoEmails
	}

	report := Summarize(candidates)

	err = fsutil.WriteAtomic(outputPath, func(w io.Writer) error {
		return WriteReport(w, report)
	})
	if err != nil {
		e.log.Warn("report write failed", zap.String("output", outputPath), zap.Error(err))
		return report, &WriteError{Path: outputPath, Err: err}
	}

	e.log.Info("report written",
		zap.String("output", outputPath),
		zap.Int("total", report.Total),
		zap.Int("unique", report.Unique))
	return report, nil
}

func (e *Extractor) load(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", &ReadError{Path: path, Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &ReadError{Path: path, Err: errInvalidUTF8}
	}
	return string(data), nil
}

// FindCandidates returns every non-overlapping match in text, left to
// right, duplicates included.
func (e *Extractor) FindCandidates(text string) []string {
	return e.pattern.FindAllString(text, -1)
}

// FindCandidates matches text against Pattern.
func FindCandidates(text string) []string {
	return defaultPattern.FindAllString(text, -1)
}

// Summarize deduplicates candidates by exact, case-sensitive equality and
// sorts the survivors by code point.
func Summarize(candidates []string) types.EmailReport {
	seen := make(map[string]struct{}, len(candidates))
	unique := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		unique = append(unique, c)
	}
	sort.Strings(unique)

	return types.EmailReport{
		Emails: unique,
		Total:  len(candidates),
		Unique: len(unique),
	}
}
