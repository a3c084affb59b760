package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"kennel/internal/adapters/editor"
	"kennel/internal/adapters/tui"
	"kennel/internal/app"
	"kennel/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(nil)
	if err != nil {
		return err
	}

	ctx := context.Background()
	svc, err := app.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer svc.Close()

	// Create and run TUI app
	model, err := tui.NewApp(ctx, svc.Repo, svc.Prefs, svc.ListDefaults(), tui.WithEditor(editor.NewOpener()))
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
