package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prism/internal/config"
	"github.com/alexisbeaulieu97/prism/internal/gallery"
	"github.com/alexisbeaulieu97/prism/internal/tui"
)

var errNotTerminal = errors.New("showcase needs an interactive terminal; use 'prism render' instead")

var runProgram = func(model tea.Model) error {
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func newShowcaseCmd(root *rootFlags) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Browse components interactively",
		Long: `Showcase opens a full-screen gallery. Without --config it shows a built-in
demo of every component. Logs are only written when --log-file is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowcase(root, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a gallery manifest (defaults to the built-in demo)")

	return cmd
}

func runShowcase(root *rootFlags, path string) error {
	if !isTerminal(int(os.Stdin.Fd())) || !isTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	var (
		manifest *config.Manifest
		err      error
	)
	if path == "" {
		manifest, err = gallery.DemoManifest()
	} else {
		if err := validateConfigPath(path); err != nil {
			return err
		}
		manifest, err = config.ParseManifest(path)
	}
	if err != nil {
		return fmt.Errorf("showcase: %w", err)
	}

	log, closeLog, err := root.newLogger(nil)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	theme, err := root.resolveTheme(manifest)
	if err != nil {
		return err
	}

	g, err := gallery.Build(manifest, theme)
	if err != nil {
		return err
	}

	log.WithFields(map[string]any{"sections": g.Len(), "theme": theme.Name}).Info("launching showcase")
	if err := runProgram(tui.NewModel(g, log)); err != nil {
		log.Error(err, "showcase failed")
		return fmt.Errorf("run showcase: %w", err)
	}
	log.Info("showcase closed")
	return nil
}
