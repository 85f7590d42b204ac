//go:build mage

// Package main contains Mage build targets for pocket developer tooling.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "pocket"
	cmdPkg  = "./cmd/pocket"
)

// Default is the target run by a bare `mage`.
var Default = Build

// sampleInput seeds the email extractor with a file that exercises
// duplicates, case, and the permissive domain tail.
const sampleInput = `Reach the team at support@example.com or Sales@Example.com.
Billing questions: billing+invoices@pay.example.co.uk
Duplicate on purpose: support@example.com
Not an address: support@localhost
`

const sampleConfig = `emails:
  input: email_source.txt
  output: extracted_emails.txt
portfolio:
  report_txt: portfolio_report.txt
  report_csv: portfolio_report.csv
log:
  level: ""
  file: stderr
`

// Init writes a sample email_source.txt and pocket.yaml into the working
// directory. Existing files are left alone.
func Init() error {
	for _, f := range []struct{ name, body string }{
		{"email_source.txt", sampleInput},
		{"pocket.yaml", sampleConfig},
	} {
		if _, err := os.Stat(f.name); err == nil {
			fmt.Println("   kept", f.name)
			continue
		}
		if err := os.WriteFile(f.name, []byte(f.body), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", f.name, err)
		}
		fmt.Println("  wrote", f.name)
	}
	return nil
}

// Build compiles the CLI binary into bin/, stamping the version from
// `git describe` when available.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	version := "dev"
	if v, err := sh.Output("git", "describe", "--tags", "--always", "--dirty"); err == nil && v != "" {
		version = v
	}
	out := filepath.Join(binDir, binName)
	ldflags := "-X main.version=" + version
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s (%s)\n", out, version)
	return nil
}

// Test runs the unit tests after a successful build.
func Test() error {
	mg.Deps(Build)
	return sh.RunV("go", "test", "./...")
}

// Clean removes build output and the files the tools write.
func Clean() error {
	for _, p := range []string{binDir, "extracted_emails.txt", "portfolio_report.txt", "portfolio_report.csv"} {
		if err := sh.Rm(p); err != nil {
			return err
		}
	}
	return nil
}

// Stats prints project metrics: Go production/test lines and the word count
// of the Markdown documents at the repository root.
func Stats() error {
	prod, tests, err := countGoLines(".")
	if err != nil {
		return err
	}
	words, err := countDocWords(".")
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prod)
	fmt.Printf("Lines of code (Go, tests):      %d\n", tests)
	fmt.Printf("Words (documentation):           %d\n", words)
	return nil
}

// countGoLines counts non-blank lines in Go files, split into production
// and _test.go totals. Hidden and underscore-prefixed directories are skipped.
func countGoLines(root string) (prod, tests int, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		n, err := nonBlankLines(path)
		if err != nil {
			return err
		}
		if strings.HasSuffix(path, "_test.go") {
			tests += n
		} else {
			prod += n
		}
		return nil
	})
	return prod, tests, err
}

func nonBlankLines(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	n := 0
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			n++
		}
	}
	return n, sc.Err()
}

// countDocWords counts whitespace-separated words in the .md files directly
// under root.
func countDocWords(root string) (int, error) {
	matches, err := filepath.Glob(filepath.Join(root, "*.md"))
	if err != nil {
		return 0, err
	}
	total := 0
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			return 0, fmt.Errorf("reading %s: %w", path, err)
		}
		total += len(strings.Fields(string(data)))
	}
	return total, nil
}
