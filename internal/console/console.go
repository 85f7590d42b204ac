// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package console handles line-oriented terminal interaction: prompting for
// input and printing colored status messages. Colors are dropped
// automatically when the output is not a terminal.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ANSI palette indices, matching the bright colors classic console
// scripts use for status lines.
var (
	colorSuccess = lipgloss.Color("10")
	colorError   = lipgloss.Color("9")
	colorWarn    = lipgloss.Color("11")
	colorInfo    = lipgloss.Color("14")
)

// Console reads answers from in and writes everything else to out.
type Console struct {
	in  *bufio.Reader
	out io.Writer

	success lipgloss.Style
	failure lipgloss.Style
	warn    lipgloss.Style
	info    lipgloss.Style
}

// New returns a Console bound to in and out. The color profile is detected
// from out.
func New(in io.Reader, out io.Writer) *Console {
	r := lipgloss.NewRenderer(out)
	return &Console{
		in:      bufio.NewReader(in),
		out:     out,
		success: r.NewStyle().Foreground(colorSuccess),
		failure: r.NewStyle().Foreground(colorError),
		warn:    r.NewStyle().Foreground(colorWarn),
		info:    r.NewStyle().Foreground(colorInfo),
	}
}

// Out returns the underlying writer.
func (c *Console) Out() io.Writer { return c.out }

// Prompt prints label and returns the next input line without its line
// terminator. It returns io.EOF once input is exhausted; a final line
// lacking a newline is still returned.
func (c *Console) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Println writes an uncolored line.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Printf writes uncolored formatted output.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Success prints a green line.
func (c *Console) Success(format string, a ...any) {
	c.styled(c.success, format, a...)
}

// Error prints a red line.
func (c *Console) Error(format string, a ...any) {
	c.styled(c.failure, format, a...)
}

// Warn prints a yellow line.
func (c *Console) Warn(format string, a ...any) {
	c.styled(c.warn, format, a...)
}

// Info prints a cyan line.
func (c *Console) Info(format string, a ...any) {
	c.styled(c.info, format, a...)
}

// Good colors s green for inline use.
func (c *Console) Good(s string) string { return paint(c.success, s) }

// Bad colors s red for inline use.
func (c *Console) Bad(s string) string { return paint(c.failure, s) }

// Caution colors s yellow for inline use.
func (c *Console) Caution(s string) string { return paint(c.warn, s) }

func (c *Console) styled(st lipgloss.Style, format string, a ...any) {
	fmt.Fprintln(c.out, paint(st, fmt.Sprintf(format, a...)))
}

// paint styles each line on its own so multi-line text keeps its exact
// shape; rendering a block at once pads every line to the widest one.
func paint(st lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = st.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
