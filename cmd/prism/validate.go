package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/prism/internal/config"
)

const validateParallelism = 4

type validateResult struct {
	path     string
	manifest *config.Manifest
	err      error
}

func newValidateCmd(root *rootFlags) *cobra.Command {
	var paths []string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check one or more gallery manifests without rendering them",
		Long: `Validate parses every manifest given with -c and reports each result in
order. The command fails with the exit code of the first invalid manifest.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, root, paths)
		},
	}

	cmd.Flags().StringSliceVarP(&paths, "config", "c", nil, "Path to a gallery manifest (repeatable)")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runValidate(cmd *cobra.Command, root *rootFlags, paths []string) error {
	log, closeLog, err := root.newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	results := make([]validateResult, len(paths))
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(validateParallelism)

	for i, path := range paths {
		g.Go(func() error {
			results[i] = validateOne(root, path)
			return nil
		})
	}
	_ = g.Wait()

	var first error
	for _, res := range results {
		fields := map[string]any{"manifest": res.path}
		if res.err != nil {
			log.WithFields(fields).Error(res.err, "manifest rejected")
			fmt.Fprintf(cmd.OutOrStdout(), "✗ %s: %v\n", res.path, res.err)
			if first == nil {
				first = fmt.Errorf("validate %s: %w", res.path, res.err)
			}
			continue
		}
		kinds := res.manifest.Kinds()
		fields["kinds"] = len(kinds)
		log.WithFields(fields).Debug("manifest valid")
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid (%d component kinds)\n", res.manifest.Name, len(kinds))
	}

	return first
}

func validateOne(root *rootFlags, path string) validateResult {
	res := validateResult{path: path}
	if res.err = validateConfigPath(path); res.err != nil {
		return res
	}
	if res.manifest, res.err = config.ParseManifest(path); res.err != nil {
		return res
	}
	_, res.err = root.resolveTheme(res.manifest)
	return res
}
