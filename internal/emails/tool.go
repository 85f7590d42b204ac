// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emails

import (
	"context"
	"errors"
	"fmt"

	"github.com/pdiddy/pocket/internal/console"
	"github.com/pdiddy/pocket/internal/menu"
	"github.com/pdiddy/pocket/pkg/types"
)

// Tool is the interactive front end of the extractor.
type Tool struct {
	ex  *Extractor
	cfg types.EmailConfig
	con *console.Console
}

// NewTool binds an extractor to the configured paths and a console.
func NewTool(ex *Extractor, cfg types.EmailConfig, con *console.Console) *Tool {
	return &Tool{ex: ex, cfg: cfg, con: con}
}

// Menu returns the extraction menu: option 1 extracts, option 2 exits.
func (t *Tool) Menu() *menu.Menu {
	return &menu.Menu{
		Title: "EMAIL EXTRACTION TOOL",
		Intro: "Please choose an option:",
		Options: []menu.Option{
			{
				Key:   "1",
				Label: fmt.Sprintf("Extract emails from '%s'", t.cfg.InputPath),
				Run: func(ctx context.Context) error {
					// Outcome already shown; the session goes on regardless.
					_ = t.Extract(ctx)
					return nil
				},
			},
			{Key: "2", Label: "Exit", Exit: true},
		},
		Prompt:   "Enter your choice (1/2): ",
		Invalid:  "Invalid choice! Please enter 1 or 2.",
		Farewell: "Program exited successfully. Goodbye!",
	}
}

// Run starts the interactive session.
func (t *Tool) Run(ctx context.Context) error {
	return t.Menu().Run(ctx, t.con)
}

// Extract runs one extraction and prints its outcome. An empty result is
// reported as a notice and returns nil; every other failure is printed and
// returned.
func (t *Tool) Extract(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.con.Info("\nStarting Email Extraction Process...")
	report, err := t.ex.Extract(t.cfg.InputPath, t.cfg.OutputPath)

	var readErr *ReadError
	var writeErr *WriteError
	switch {
	case err == nil:
		t.con.Success("Email Extraction Completed Successfully!")
		t.con.Printf("Total emails found: %d\n", report.Total)
		t.con.Printf("Unique emails saved: %d\n", report.Unique)
		t.con.Printf("Output file created: %s\n\n", t.cfg.OutputPath)
		return nil
	case errors.Is(err, ErrNoEmails):
		t.con.Warn("No emails found in the file.")
		return nil
	case errors.Is(err, ErrNotFound):
		t.con.Error("Error: The file '%s' does not exist.", t.cfg.InputPath)
	case errors.As(err, &readErr):
		t.con.Error("An error occurred during processing.")
		t.con.Printf("Details: %v\n", readErr.Err)
	case errors.As(err, &writeErr):
		t.con.Error("An error occurred during processing.")
		t.con.Printf("Details: %v\n", writeErr.Err)
	default:
		t.con.Error("An error occurred during processing.")
		t.con.Printf("Details: %v\n", err)
	}
	return err
}
