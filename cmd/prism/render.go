package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prism/internal/config"
	"github.com/alexisbeaulieu97/prism/internal/gallery"
	"github.com/alexisbeaulieu97/prism/internal/ui/components"
)

const defaultRenderWidth = 80

type renderOptions struct {
	ConfigPath     string
	Width          int
	Variant        string
	Snapshot       string
	UpdateSnapshot bool
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a component gallery manifest to stdout",
		Long: `Render reads a gallery manifest, builds every component it lists and prints
the resulting page. The width defaults to the terminal width, or 80 columns
when stdout is not a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to the gallery manifest")
	cmd.Flags().IntVar(&opts.Width, "width", 0, "Render width in columns (0 detects the terminal width)")
	cmd.Flags().StringVar(&opts.Variant, "variant", "", "Force every component to this variant")
	cmd.Flags().StringVar(&opts.Snapshot, "snapshot", "", "Compare the plain-text page with this file and fail on drift")
	cmd.Flags().BoolVar(&opts.UpdateSnapshot, "update-snapshot", false, "Write the page to --snapshot instead of comparing")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags, opts renderOptions) error {
	if err := validateConfigPath(opts.ConfigPath); err != nil {
		return err
	}
	if opts.Width < 0 {
		return fmt.Errorf("width must not be negative")
	}
	if opts.UpdateSnapshot && opts.Snapshot == "" {
		return fmt.Errorf("--update-snapshot needs --snapshot")
	}

	log, closeLog, err := root.newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	manifest, err := config.ParseManifest(opts.ConfigPath)
	if err != nil {
		log.Error(err, "manifest rejected")
		return fmt.Errorf("render %s: %w", opts.ConfigPath, err)
	}

	theme, err := root.resolveTheme(manifest)
	if err != nil {
		return err
	}

	g, err := gallery.Build(manifest, theme)
	if err != nil {
		return err
	}

	ctx := components.DefaultContext().WithTheme(theme).WithWidth(renderWidth(cmd, opts.Width))
	if opts.Variant != "" {
		variant, err := components.ParseVariant(opts.Variant)
		if err != nil {
			return fmt.Errorf("--variant: %w", err)
		}
		ctx = ctx.WithVariantOverride(variant)
	}

	log.WithFields(map[string]any{
		"manifest": opts.ConfigPath,
		"sections": g.Len(),
		"theme":    theme.Name,
		"width":    ctx.Width,
	}).Debug("rendering gallery")

	page := g.Render(ctx)
	if opts.Snapshot != "" {
		return checkSnapshot(cmd, log, opts, page)
	}

	fmt.Fprintln(cmd.OutOrStdout(), page)
	return nil
}

func renderWidth(cmd *cobra.Command, requested int) int {
	if requested > 0 {
		return requested
	}
	if width, ok := terminalWidth(cmd.OutOrStdout()); ok {
		return width
	}
	return defaultRenderWidth
}
