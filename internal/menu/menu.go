// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package menu implements the numbered-choice loop shared by the
// interactive tools: show the options, read a token, dispatch to its
// handler, repeat until an exit option is chosen.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/pocket/internal/console"
)

// RuleWidth is the width of the "=" rules framing a menu.
const RuleWidth = 59

// Handler runs one menu option. Returning io.EOF ends the session as if
// the user had exited; any other error is shown and the loop continues.
type Handler func(ctx context.Context) error

// Option binds an input token to a handler.
type Option struct {
	Key   string
	Label string
	Run   Handler

	// Exit ends the loop. Run is ignored.
	Exit bool
}

// Menu is a titled list of options.
type Menu struct {
	Title   string
	Intro   string
	Options []Option

	// Prompt is printed before reading a choice.
	Prompt string

	// Invalid is shown for tokens that match no option.
	Invalid string

	// Farewell is shown when the loop ends normally.
	Farewell string
}

// Run shows the menu and dispatches choices until an exit option is
// chosen, input ends, or ctx is done. Only ctx errors and console read
// failures are returned; handler errors are reported to the user.
func (m *Menu) Run(ctx context.Context, c *console.Console) error {
	byKey, err := m.index()
	if err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.render(c)
		choice, err := c.Prompt(m.Prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				m.farewell(c)
				return nil
			}
			return fmt.Errorf("reading choice: %w", err)
		}

		opt, ok := byKey[strings.TrimSpace(choice)]
		if !ok {
			c.Error("%s", m.Invalid)
			continue
		}
		if opt.Exit {
			m.farewell(c)
			return nil
		}

		if err := opt.Run(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				m.farewell(c)
				return nil
			}
			c.Error("%v", err)
		}
	}
}

func (m *Menu) index() (map[string]Option, error) {
	byKey := make(map[string]Option, len(m.Options))
	for _, opt := range m.Options {
		if opt.Key == "" {
			return nil, fmt.Errorf("menu %q: option %q has no key", m.Title, opt.Label)
		}
		if _, dup := byKey[opt.Key]; dup {
			return nil, fmt.Errorf("menu %q: duplicate key %q", m.Title, opt.Key)
		}
		if !opt.Exit && opt.Run == nil {
			return nil, fmt.Errorf("menu %q: option %q has no handler", m.Title, opt.Key)
		}
		byKey[opt.Key] = opt
	}
	return byKey, nil
}

func (m *Menu) render(c *console.Console) {
	rule := strings.Repeat("=", RuleWidth)

	var b strings.Builder
	b.WriteString("\n" + rule + "\n")
	b.WriteString(Center(m.Title, RuleWidth) + "\n")
	b.WriteString(rule + "\n")
	if m.Intro != "" {
		b.WriteString(m.Intro + "\n")
	}
	for _, opt := range m.Options {
		fmt.Fprintf(&b, "%s. %s\n", opt.Key, opt.Label)
	}
	b.WriteString(rule)
	c.Info("%s", b.String())
}

func (m *Menu) farewell(c *console.Console) {
	if m.Farewell != "" {
		c.Success("%s", m.Farewell)
	}
}

// Center pads s with leading spaces so it sits in the middle of width
// columns. Text at least width long is returned unchanged.
func Center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return strings.Repeat(" ", (width-n)/2) + s
}
