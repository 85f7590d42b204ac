// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emails

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pocket/pkg/types"
)

// --- test helpers ---

func writeInput(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "email_source.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// reportEmails returns the email lines of a rendered report.
func reportEmails(t *testing.T, content string) []string {
	t.Helper()
	lines := strings.Split(content, "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	require.Equal(t, ReportHeader, lines[0])
	require.Equal(t, "", lines[1])

	var emails []string
	for _, line := range lines[2:] {
		if line == "" {
			break
		}
		emails = append(emails, line)
	}
	return emails
}

// --- FindCandidates ---

func TestFindCandidates(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "simple address",
			text: "write to alice@example.com today",
			want: []string{"alice@example.com"},
		},
		{
			name: "local part punctuation",
			text: "john.doe+news_2@mail.example.co.uk",
			want: []string{"john.doe+news_2@mail.example.co.uk"},
		},
		{
			name: "order of occurrence with duplicates",
			text: "b@x.io a@x.io b@x.io",
			want: []string{"b@x.io", "a@x.io", "b@x.io"},
		},
		{
			name: "adjacent punctuation is not consumed",
			text: "<mailto:me@ex.io>, (you@ex.io); them@ex.io!",
			want: []string{"me@ex.io", "you@ex.io", "them@ex.io"},
		},
		{
			name: "separated only by semicolon",
			text: "first@a.com;second@b.org",
			want: []string{"first@a.com", "second@b.org"},
		},
		{
			name: "domain without a dot is ignored",
			text: "root@localhost",
			want: nil,
		},
		{
			name: "consecutive dots in the domain tail are kept",
			text: "a@b..com",
			want: []string{"a@b..com"},
		},
		{
			name: "trailing dot is kept",
			text: "end of sentence x@y.com.",
			want: []string{"x@y.com."},
		},
		{
			name: "hyphenated domain",
			text: "ops@my-host.example-site.net",
			want: []string{"ops@my-host.example-site.net"},
		},
		{
			name: "second at sign stops the tail",
			text: "a@b.c@d.e",
			want: []string{"a@b.c"},
		},
		{
			name: "non-ascii letters are outside the local part",
			text: "über@x.com",
			want: []string{"ber@x.com"},
		},
		{
			name: "no matches",
			text: "nothing to see here @ all .",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindCandidates(tt.text)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, New(nil).FindCandidates(tt.text))
		})
	}
}

// --- Summarize ---

func TestSummarize(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		want       types.EmailReport
	}{
		{
			name:       "duplicates counted once",
			candidates: []string{"k@x.io", "k@x.io", "k@x.io"},
			want:       types.EmailReport{Emails: []string{"k@x.io"}, Total: 3, Unique: 1},
		},
		{
			name:       "case sensitive",
			candidates: []string{"a@b.com", "A@b.com"},
			want:       types.EmailReport{Emails: []string{"A@b.com", "a@b.com"}, Total: 2, Unique: 2},
		},
		{
			name:       "code point order",
			candidates: []string{"z@x.io", "_a@x.io", "0@x.io", "Z@x.io", "a@x.io", "+a@x.io"},
			want: types.EmailReport{
				Emails: []string{"+a@x.io", "0@x.io", "Z@x.io", "_a@x.io", "a@x.io", "z@x.io"},
				Total:  6,
				Unique: 6,
			},
		},
		{
			name:       "empty",
			candidates: nil,
			want:       types.EmailReport{Emails: []string{}, Total: 0, Unique: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.candidates)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, got.Unique, got.Total)
		})
	}
}

// --- Extract ---

func TestExtractEndToEnd(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "Contact: foo@bar.com, FOO@bar.com, foo@bar.com!")
	out := filepath.Join(dir, "extracted_emails.txt")

	assert.Equal(t,
		[]string{"foo@bar.com", "FOO@bar.com", "foo@bar.com"},
		FindCandidates("Contact: foo@bar.com, FOO@bar.com, foo@bar.com!"))

	report, err := Extract(in, out)
	require.NoError(t, err)
	assert.Equal(t, types.EmailReport{
		Emails: []string{"FOO@bar.com", "foo@bar.com"},
		Total:  3,
		Unique: 2,
	}, report)

	want := "======= Extracted Emails =======\n" +
		"\n" +
		"FOO@bar.com\n" +
		"foo@bar.com\n" +
		"\n" +
		"Total Emails Found: 3\n" +
		"Unique Emails: 2\n"
	assert.Equal(t, want, readOutput(t, out))
}

func TestExtractIdempotent(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "x@a.io y@b.io\nx@a.io Z@c.io\n")
	out := filepath.Join(dir, "out.txt")

	_, err := Extract(in, out)
	require.NoError(t, err)
	first := readOutput(t, out)

	_, err = Extract(in, out)
	require.NoError(t, err)
	assert.Equal(t, first, readOutput(t, out))
}

func TestExtractDedup(t *testing.T) {
	for _, k := range []int{2, 3, 10} {
		dir := t.TempDir()
		text := strings.Repeat("reach me at same@dup.org or ", k) + "other@dup.org"
		in := writeInput(t, dir, text)
		out := filepath.Join(dir, "out.txt")

		report, err := Extract(in, out)
		require.NoError(t, err)
		assert.Equal(t, k+1, report.Total)
		assert.Equal(t, 2, report.Unique)

		content := readOutput(t, out)
		assert.Equal(t, 1, strings.Count(content, "same@dup.org\n"), "k=%d", k)
		assert.Equal(t, []string{"other@dup.org", "same@dup.org"}, reportEmails(t, content))
	}
}

func TestExtractCaseSensitive(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "A@b.com and a@b.com")
	out := filepath.Join(dir, "out.txt")

	report, err := Extract(in, out)
	require.NoError(t, err)
	assert.Equal(t, []string{"A@b.com", "a@b.com"}, report.Emails)
	assert.Equal(t, 2, report.Unique)
}

func TestExtractSortOrder(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "m@x.io b@x.io Q@x.io 9@x.io b@x.io ~@x.io z@x.io")
	out := filepath.Join(dir, "out.txt")

	_, err := Extract(in, out)
	require.NoError(t, err)

	emails := reportEmails(t, readOutput(t, out))
	assert.True(t, sort.StringsAreSorted(emails))
	for i := 1; i < len(emails); i++ {
		assert.Less(t, emails[i-1], emails[i], "list must be strictly ascending")
	}
}

func TestExtractMissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")

	_, err := Extract(filepath.Join(dir, "nope.txt"), out)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "nope.txt")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no output file expected")
}

func TestExtractNoMatches(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "no addresses here, only user@localhost and @handles")
	out := filepath.Join(dir, "out.txt")

	_, err := Extract(in, out)
	require.ErrorIs(t, err, ErrNoEmails)
	assert.False(t, errors.Is(err, ErrNotFound))

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no output file expected")
}

func TestExtractNoMatchesKeepsExistingOutput(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(out, []byte("previous run\n"), 0o644))

	_, err := Extract(in, out)
	require.ErrorIs(t, err, ErrNoEmails)
	assert.Equal(t, "previous run\n", readOutput(t, out))
}

func TestExtractReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, dir string) string
	}{
		{
			name: "invalid utf-8",
			setup: func(t *testing.T, dir string) string {
				path := filepath.Join(dir, "bin.txt")
				require.NoError(t, os.WriteFile(path, []byte{'a', '@', 'b', '.', 'c', 0xff, 0xfe}, 0o644))
				return path
			},
		},
		{
			name: "directory instead of file",
			setup: func(t *testing.T, dir string) string {
				path := filepath.Join(dir, "folder")
				require.NoError(t, os.Mkdir(path, 0o755))
				return path
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			in := tt.setup(t, dir)
			out := filepath.Join(dir, "out.txt")

			_, err := Extract(in, out)
			var readErr *ReadError
			require.ErrorAs(t, err, &readErr)
			assert.Equal(t, in, readErr.Path)
			assert.NotNil(t, readErr.Unwrap())

			_, statErr := os.Stat(out)
			assert.True(t, os.IsNotExist(statErr))
		})
	}
}

func TestExtractWriteError(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "a@b.com")
	out := filepath.Join(dir, "missing-dir", "out.txt")

	report, err := Extract(in, out)
	var writeErr *WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, out, writeErr.Path)
	assert.Equal(t, 1, report.Total, "report is still returned for display")
}

func TestWriteReportEmptyList(t *testing.T) {
	var b strings.Builder
	require.NoError(t, WriteReport(&b, types.EmailReport{}))
	assert.Equal(t, ReportHeader+"\n\n\nTotal Emails Found: 0\nUnique Emails: 0\n", b.String())
}
