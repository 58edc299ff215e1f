// Package render turns session log lines into terminal output or an HTML
// transcript.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/glo0ml34f/fauxterm/internal/session"
)

const clearScreen = "\033[H\033[2J"

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// TerminalOptions configures a Terminal renderer.
type TerminalOptions struct {
	// Plain disables colors, markdown rendering and screen clearing.
	Plain bool
	// EchoPrompts prints prompt lines. Interactive line editors already show
	// them, piped input does not.
	EchoPrompts bool
	Width       int
}

// Terminal writes appended lines to w. It implements session.Observer.
type Terminal struct {
	w    io.Writer
	opts TerminalOptions
	md   *glamour.TermRenderer
}

// NewTerminal creates a renderer writing to w.
func NewTerminal(w io.Writer, opts TerminalOptions) *Terminal {
	t := &Terminal{w: w, opts: opts}
	if opts.Width <= 0 {
		t.opts.Width = 80
	}
	if !opts.Plain {
		md, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(t.opts.Width),
		)
		if err == nil {
			t.md = md
		}
	}
	return t
}

// Appended prints lines in order.
func (t *Terminal) Appended(lines []session.Line) {
	for _, l := range lines {
		if l.Kind == session.KindPrompt && !t.opts.EchoPrompts {
			continue
		}
		fmt.Fprintln(t.w, t.Format(l))
	}
}

// Cleared wipes the screen.
func (t *Terminal) Cleared() {
	if !t.opts.Plain {
		fmt.Fprint(t.w, clearScreen)
	}
}

// Format renders a single line.
func (t *Terminal) Format(l session.Line) string {
	if t.opts.Plain {
		return l.Text
	}
	switch l.Kind {
	case session.KindPrompt:
		return formatPrompt(l.Text)
	case session.KindError:
		return errorStyle.Render(l.Text)
	case session.KindJSON:
		return t.markdown("```json\n" + l.Text + "\n```")
	case session.KindMarkdown:
		return t.markdown(l.Text)
	default:
		return t.wrap(l.Text)
	}
}

// wrap breaks text wider than the terminal at word boundaries. The text
// itself is not interpreted.
func (t *Terminal) wrap(text string) string {
	if lipgloss.Width(text) <= t.opts.Width {
		return text
	}
	out := lipgloss.NewStyle().Width(t.opts.Width).Render(text)
	lines := strings.Split(out, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}

func (t *Terminal) markdown(src string) string {
	if t.md == nil {
		return src
	}
	out, err := t.md.Render(src)
	if err != nil {
		return src
	}
	return strings.Trim(out, "\n")
}

func formatPrompt(text string) string {
	prompt, rest, found := strings.Cut(text, " ")
	if !found {
		return promptStyle.Render(text)
	}
	return promptStyle.Render(prompt) + " " + rest
}

// PromptLabel styles the live input prompt.
func PromptLabel(prompt string, plain bool) string {
	if plain {
		return prompt + " "
	}
	return promptStyle.Render(prompt) + " "
}
