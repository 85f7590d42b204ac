// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emails

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pocket/internal/console"
	"github.com/pdiddy/pocket/pkg/types"
)

func newTestTool(t *testing.T, input string, cfg types.EmailConfig) (*Tool, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	con := console.New(strings.NewReader(input), &out)
	return NewTool(New(nil), cfg, con), &out
}

func TestToolSession(t *testing.T) {
	tests := []struct {
		name     string
		source   string // empty means the input file is absent
		input    string
		wantOut  []string
		wantFile bool
	}{
		{
			name:   "extract then exit",
			source: "a@b.com a@b.com c@d.org",
			input:  "1\n2\n",
			wantOut: []string{
				"Email Extraction Completed Successfully!",
				"Total emails found: 3",
				"Unique emails saved: 2",
				"Output file created: ",
				"Program exited successfully. Goodbye!",
			},
			wantFile: true,
		},
		{
			name:    "missing input keeps the loop alive",
			input:   "1\n1\n2\n",
			wantOut: []string{"does not exist.", "Goodbye!"},
		},
		{
			name:    "no matches",
			source:  "nothing here",
			input:   "1\n2\n",
			wantOut: []string{"No emails found in the file."},
		},
		{
			name:    "invalid choice",
			input:   "3\nx\n2\n",
			wantOut: []string{"Invalid choice! Please enter 1 or 2."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			cfg := types.EmailConfig{
				InputPath:  filepath.Join(dir, "email_source.txt"),
				OutputPath: filepath.Join(dir, "extracted_emails.txt"),
			}
			if tt.source != "" {
				require.NoError(t, os.WriteFile(cfg.InputPath, []byte(tt.source), 0o644))
			}

			tool, out := newTestTool(t, tt.input, cfg)
			require.NoError(t, tool.Run(context.Background()))

			for _, s := range tt.wantOut {
				assert.Contains(t, out.String(), s)
			}
			_, err := os.Stat(cfg.OutputPath)
			assert.Equal(t, tt.wantFile, err == nil)
		})
	}
}

func TestToolMenuLabelsInputPath(t *testing.T) {
	tool, out := newTestTool(t, "2\n", types.EmailConfig{InputPath: "email_source.txt"})
	require.NoError(t, tool.Run(context.Background()))
	assert.Contains(t, out.String(), "1. Extract emails from 'email_source.txt'")
	assert.Contains(t, out.String(), "2. Exit")
	assert.Contains(t, out.String(), "EMAIL EXTRACTION TOOL")
}

func TestToolExtractReturnsFailures(t *testing.T) {
	dir := t.TempDir()
	cfg := types.EmailConfig{
		InputPath:  filepath.Join(dir, "email_source.txt"),
		OutputPath: filepath.Join(dir, "missing", "out.txt"),
	}

	tool, out := newTestTool(t, "", cfg)
	require.ErrorIs(t, tool.Extract(context.Background()), ErrNotFound)

	require.NoError(t, os.WriteFile(cfg.InputPath, []byte("nothing"), 0o644))
	require.NoError(t, tool.Extract(context.Background()), "empty result is a notice")

	require.NoError(t, os.WriteFile(cfg.InputPath, []byte("x@y.zz"), 0o644))
	var writeErr *WriteError
	require.ErrorAs(t, tool.Extract(context.Background()), &writeErr)
	assert.Contains(t, out.String(), "An error occurred during processing.")
	assert.Contains(t, out.String(), "Details: ")
}
