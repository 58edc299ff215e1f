package input

import (
	"bufio"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/glo0ml34f/fauxterm/internal/command"
)

// Reader yields submitted lines. Output written through Stdout and Stderr
// does not corrupt a line being edited.
type Reader interface {
	ReadLine() (string, error)
	Stdout() io.Writer
	Stderr() io.Writer
	Interactive() bool
	Close() error
}

// IsTerminal reports whether stdin is attached to a terminal.
func IsTerminal() bool { return term.IsTerminal(int(os.Stdin.Fd())) }

// New returns a readline backed reader when stdin is a terminal and a plain
// line scanner otherwise.
func New(prompt string, infos func() []command.Info) (Reader, error) {
	if !IsTerminal() {
		return NewPlain(os.Stdin, os.Stdout, os.Stderr), nil
	}
	return NewReadline(prompt, infos)
}

type lineEditor struct {
	rl   *readline.Instance
	once sync.Once
	err  error
}

// NewReadline creates an interactive reader with command completion and '?'
// inline help. History is kept off.
func NewReadline(prompt string, infos func() []command.Info) (Reader, error) {
	var rl *readline.Instance
	cfg := &readline.Config{
		Prompt:          prompt,
		AutoComplete:    &autoCompleter{infos: infos},
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		HistoryLimit:    -1,
		Listener: &helpListener{infos: infos, out: func(s string) {
			if rl != nil {
				io.WriteString(rl.Config.Stdout, strings.ReplaceAll(s, "\n", "\r\n"))
			}
		}},
	}
	var err error
	rl, err = readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}
	return &lineEditor{rl: rl}, nil
}

func (e *lineEditor) ReadLine() (string, error) { return e.rl.Readline() }
func (e *lineEditor) Stdout() io.Writer         { return e.rl.Stdout() }
func (e *lineEditor) Stderr() io.Writer         { return e.rl.Stderr() }
func (e *lineEditor) Interactive() bool         { return true }

// Close releases the terminal. It unblocks a pending ReadLine and is safe to
// call more than once.
func (e *lineEditor) Close() error {
	e.once.Do(func() { e.err = e.rl.Close() })
	return e.err
}

type plainReader struct {
	sc   *bufio.Scanner
	src  io.Reader
	out  io.Writer
	err  io.Writer
	once sync.Once
}

// NewPlain reads newline separated commands from r, for piped input. Close
// closes r when it is an io.Closer.
func NewPlain(r io.Reader, stdout, stderr io.Writer) Reader {
	return &plainReader{sc: bufio.NewScanner(r), src: r, out: stdout, err: stderr}
}

func (p *plainReader) ReadLine() (string, error) {
	if p.sc.Scan() {
		return p.sc.Text(), nil
	}
	if err := p.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (p *plainReader) Stdout() io.Writer { return p.out }
func (p *plainReader) Stderr() io.Writer { return p.err }
func (p *plainReader) Interactive() bool { return false }

func (p *plainReader) Close() error {
	var err error
	p.once.Do(func() {
		if c, ok := p.src.(io.Closer); ok {
			err = c.Close()
		}
	})
	return err
}

// ErrInterrupt is returned by ReadLine when the user presses Ctrl+C.
var ErrInterrupt = readline.ErrInterrupt
