package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prism/internal/config"
	"github.com/alexisbeaulieu97/prism/internal/logger"
	"github.com/alexisbeaulieu97/prism/internal/ui/components"
)

type rootFlags struct {
	logLevel string
	logFile  string
	theme    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "prism",
		Short:         "prism renders and showcases themeable terminal UI components",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file instead of stderr")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Theme to render with (auto, light, dark); overrides the manifest")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newShowcaseCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger builds the command logger. Without --log-file, entries go to
// fallback; a nil fallback discards them.
func (f *rootFlags) newLogger(fallback io.Writer) (*logger.Logger, func() error, error) {
	noop := func() error { return nil }

	if f.logFile != "" {
		file, err := os.OpenFile(f.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, noop, fmt.Errorf("open log file: %w", err)
		}
		log, err := logger.New(logger.Options{Level: f.logLevel, Writer: file})
		if err != nil {
			_ = file.Close()
			return nil, noop, err
		}
		return log, file.Close, nil
	}

	if fallback == nil {
		log, err := logger.New(logger.Options{Level: f.logLevel, Writer: io.Discard})
		return log, noop, err
	}

	log, err := logger.New(logger.Options{Level: f.logLevel, HumanReadable: true, Writer: fallback})
	if err != nil {
		return nil, noop, err
	}
	return log, noop, nil
}

// resolveTheme picks --theme over the manifest theme.
func (f *rootFlags) resolveTheme(m *config.Manifest) (components.Theme, error) {
	name := f.theme
	if name == "" && m != nil {
		name = m.Theme
	}
	theme, err := components.ThemeByName(name)
	if err != nil {
		return components.Theme{}, fmt.Errorf("resolve theme: %w", err)
	}
	return theme, nil
}
