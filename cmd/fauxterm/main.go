package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/glo0ml34f/fauxterm/internal/config"
	"github.com/glo0ml34f/fauxterm/internal/logging"
	"github.com/glo0ml34f/fauxterm/internal/repl"
)

// version is set at build time using -ldflags. Default is "dev".
var version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "print version")
	envFile := flag.String("env", "", "load environment from this file instead of ./.env")
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error)")
	plain := flag.Bool("plain", false, "disable colors and markdown rendering")
	transcript := flag.String("transcript", "", "write an HTML transcript of the session on exit")
	prompt := flag.String("prompt", "", "prompt label, default user@host:$")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *plain {
		cfg.Terminal.Plain = true
	}
	if *transcript != "" {
		cfg.Terminal.Transcript = *transcript
	}
	if *prompt != "" {
		cfg.Terminal.Prompt = *prompt
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := logging.New(cfg.Log.Level, cfg.Log.File, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closer.Close()
	logger.WithField("version", version).Debug("starting fauxterm")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if err := repl.Run(ctx, cfg, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		closer.Close()
		os.Exit(1)
	}
}
