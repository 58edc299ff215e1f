package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/glo0ml34f/fauxterm/internal/command"
	"github.com/glo0ml34f/fauxterm/internal/config"
	"github.com/glo0ml34f/fauxterm/internal/fetch"
	"github.com/glo0ml34f/fauxterm/internal/input"
	"github.com/glo0ml34f/fauxterm/internal/recipe"
	"github.com/glo0ml34f/fauxterm/internal/render"
	"github.com/glo0ml34f/fauxterm/internal/session"
	"github.com/glo0ml34f/fauxterm/internal/weather"
)

const asciiArt = `
  __                  _
 / _| __ _ _   ___  _| |_ ___ _ __ _ __ ___
| |_ / _' | | | \ \/ / __/ _ \ '__| '_ ' _ \
|  _| (_| | |_| |>  <| ||  __/ |  | | | | | |
|_|  \__,_|\__,_/_/\_\\__\___|_|  |_| |_| |_|
`

// Sources builds the remote backends for cfg.
func Sources(cfg *config.Config) command.Sources {
	hc := &http.Client{Timeout: cfg.HTTPTimeout}
	return command.Sources{
		Weather:    weather.NewClient(cfg.Weather.URL, cfg.Weather.APIKey, hc),
		Meals:      recipe.NewClient(cfg.Recipe.URL, hc),
		Fetcher:    fetch.NewClient(hc),
		DateLayout: cfg.Terminal.DateLayout,
	}
}

// Run launches the interactive terminal until exit, EOF or ctx is done.
func Run(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	var opts []session.Option
	if cfg.Terminal.Prompt != "" {
		opts = append(opts, session.WithPrompt(cfg.Terminal.Prompt))
	}
	s := session.New(opts...)
	reg := command.Builtin(Sources(cfg))

	plain := cfg.Terminal.Plain || !input.IsTerminal()
	r, err := input.New(render.PromptLabel(s.Prompt, plain), reg.Infos)
	if err != nil {
		return fmt.Errorf("input: %w", err)
	}
	defer r.Close()
	if cfg.Log.File == "" {
		logger.SetOutput(r.Stderr())
	}
	entry := logger.WithField("session", s.ID)
	for _, w := range cfg.Warnings() {
		entry.Warn(w)
	}

	s.Log.Subscribe(render.NewTerminal(r.Stdout(), render.TerminalOptions{
		Plain:       plain,
		EchoPrompts: !r.Interactive(),
	}))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	d := command.NewDispatcher(ctx, s, reg, logger)

	if r.Interactive() {
		fmt.Fprintln(r.Stdout(), asciiArt+"\nWelcome to fauxterm! Type 'help' for the list of commands.")
	}
	entry.Info("session started")
	err = Loop(ctx, d, r)
	if !r.Interactive() {
		d.Wait()
	}
	entry.Info("session ended")

	if cfg.Terminal.Transcript != "" {
		if terr := writeTranscript(cfg.Terminal.Transcript, s); terr != nil {
			entry.WithError(terr).Error("transcript not written")
			if err == nil {
				err = terr
			}
		}
	}
	return err
}

// Loop reads lines from r and dispatches them until exit, EOF or ctx is
// done. Cancelling ctx closes r so a blocked read does not hold the loop.
func Loop(ctx context.Context, d *command.Dispatcher, r input.Reader) error {
	stop := context.AfterFunc(ctx, func() { r.Close() })
	defer stop()

	type read struct {
		line string
		err  error
	}
	for {
		if ctx.Err() != nil {
			return nil
		}
		next := make(chan read, 1)
		go func() {
			line, err := r.ReadLine()
			next <- read{line, err}
		}()
		var in read
		select {
		case <-ctx.Done():
			return nil
		case in = <-next:
		}
		line, err := in.line, in.err
		if errors.Is(err, input.ErrInterrupt) {
			if strings.TrimSpace(line) == "" {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if isExit(line) {
			return nil
		}
		d.Dispatch(line)
	}
}

func isExit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "exit", "quit":
		return true
	}
	return false
}

func writeTranscript(path string, s *session.Session) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.WriteHTML(f, "fauxterm "+s.ID, s.Prompt, s.Log.Lines()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
