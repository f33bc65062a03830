package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prism/internal/logger"
	"github.com/alexisbeaulieu97/prism/pkg/diff"
)

var errSnapshotDrift = errors.New("rendered page differs from snapshot")

// checkSnapshot compares page, stripped of escape codes, with the stored
// snapshot or rewrites the snapshot when asked to.
func checkSnapshot(cmd *cobra.Command, log *logger.Logger, opts renderOptions, page string) error {
	plain := ansi.Strip(page) + "\n"
	fields := map[string]any{"snapshot": opts.Snapshot}

	if opts.UpdateSnapshot {
		if err := os.WriteFile(opts.Snapshot, []byte(plain), 0o644); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
		log.WithFields(fields).Info("snapshot updated")
		fmt.Fprintf(cmd.OutOrStdout(), "snapshot written to %s\n", opts.Snapshot)
		return nil
	}

	stored, err := os.ReadFile(opts.Snapshot)
	if err != nil {
		return fmt.Errorf("read snapshot (run with --update-snapshot to create it): %w", err)
	}

	res := diff.Lines(string(stored), plain, opts.Snapshot, "render")
	if !res.Changed() {
		log.WithFields(fields).Debug("snapshot matches")
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s matches\n", opts.Snapshot)
		return nil
	}

	fields["added"] = res.Added
	fields["removed"] = res.Removed
	log.WithFields(fields).Warn("snapshot drift")
	fmt.Fprint(cmd.OutOrStdout(), res.Text)
	return fmt.Errorf("%s: %w", opts.Snapshot, errSnapshotDrift)
}
