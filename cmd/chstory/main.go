package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/clubhouse-tools/chstory/internal/clubhouse"
	"github.com/clubhouse-tools/chstory/internal/config"
	"github.com/clubhouse-tools/chstory/internal/prompt"
	"github.com/clubhouse-tools/chstory/internal/setup"
	"github.com/clubhouse-tools/chstory/internal/wizard"
	"github.com/clubhouse-tools/chstory/internal/workspace"
)

func main() {
	if err := run(); err != nil {
		// Ctrl+C at a prompt ends the session, not the world
		if errors.Is(err, prompt.ErrAborted) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if !cfg.Configured() {
		cfg, err = setup.Run()
		if err != nil {
			return err
		}
	}

	client := clubhouse.NewClient(cfg.Token)

	ws, err := workspace.Fetch(client, cfg)
	if err != nil {
		return err
	}

	return wizard.NewSession(ws, client).Run()
}
