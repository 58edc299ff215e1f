package input

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/glo0ml34f/fauxterm/internal/command"
)

func testInfos() []command.Info {
	return command.Builtin(command.Sources{}).Infos()
}

func TestCompleterCommandNames(t *testing.T) {
	c := &autoCompleter{infos: testInfos}
	got, n := c.Do([]rune("c"), 1)
	if n != 1 {
		t.Fatalf("prefix length=%d", n)
	}
	var names []string
	for _, r := range got {
		names = append(names, string(r))
	}
	if strings.Join(names, ",") != "racco ,lear " {
		t.Fatalf("unexpected suggestions: %q", names)
	}

	got, _ = c.Do([]rune(""), 0)
	if len(got) != len(testInfos()) {
		t.Fatalf("blank line should list all commands, got %d", len(got))
	}
}

func TestCompleterIgnoresArguments(t *testing.T) {
	c := &autoCompleter{infos: testInfos}
	line := []rune("meteo ro")
	if got, _ := c.Do(line, len(line)); len(got) != 0 {
		t.Fatalf("arguments should not be completed: %q", got)
	}
}

func TestInlineHelp(t *testing.T) {
	got := InlineHelp(testInfos(), "meteo")
	if len(got) != 2 || !strings.HasPrefix(got[0], "meteo [city] - ") || !strings.Contains(got[1], "city") {
		t.Fatalf("unexpected help: %q", got)
	}
	if all := InlineHelp(testInfos(), ""); len(all) != len(testInfos()) {
		t.Fatalf("blank line should show all commands: %q", all)
	}
}

func TestHelpListenerRemovesQuestionMark(t *testing.T) {
	var printed string
	h := &helpListener{infos: testInfos, out: func(s string) { printed += s }}
	line, pos, ok := h.OnChange([]rune("help?"), 5, '?')
	if !ok || string(line) != "help" || pos != 4 {
		t.Fatalf("unexpected state: %q %d %v", string(line), pos, ok)
	}
	if !strings.Contains(printed, "show this list of commands") {
		t.Fatalf("unexpected help output: %q", printed)
	}
	if _, _, ok := h.OnChange([]rune("x"), 1, 'x'); ok {
		t.Fatalf("other keys must pass through")
	}
}

func TestPlainReader(t *testing.T) {
	r := NewPlain(strings.NewReader("help\n\nmeteo Rome\n"), io.Discard, io.Discard)
	var lines []string
	for {
		l, err := r.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadLine: %v", err)
		}
		lines = append(lines, l)
	}
	if strings.Join(lines, "|") != "help||meteo Rome" {
		t.Fatalf("unexpected lines: %q", lines)
	}
	if r.Interactive() {
		t.Fatalf("plain reader is not interactive")
	}
}

func TestPlainReaderCloseUnblocksRead(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	r := NewPlain(pr, io.Discard, io.Discard)

	done := make(chan error, 1)
	go func() {
		_, err := r.ReadLine()
		done <- err
	}()
	time.Sleep(20 * time.Millisecond)
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	select {
	case err := <-done:
		if err == nil {
			t.Fatalf("expected read error after close")
		}
	case <-time.After(time.Second):
		t.Fatalf("ReadLine still blocked after Close")
	}
}
