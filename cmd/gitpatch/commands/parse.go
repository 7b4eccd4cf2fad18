// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/bartekus/gitpatch/cmd/gitpatch/internal/clierr"
	"github.com/bartekus/gitpatch/internal/projection"
	"github.com/bartekus/gitpatch/internal/report"
)

// Feature: CLI_COMMAND_PARSE
// Spec: spec/cli/parse.md

// NewParseCommand returns the `gitpatch parse` command.
func NewParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Parse a patch series into commit records",
		Long: `Parse the output of git format-patch (one or more concatenated commits)
into commit records with sha, author, date, message and diff.

Reads from stdin when no file or "-" is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runParse,
	}

	// Flags in alphabetical order for deterministic help output
	cmd.Flags().String("format", "json", "Output format: json (default), yaml or markdown")
	cmd.Flags().String("output", "", "Write to this file atomically instead of stdout")
	cmd.Flags().String("policy", "strict", "Diff capture policy: strict (default) or permissive")

	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	policy, err := cfg.ParsedPolicy()
	if err != nil {
		return clierr.Usage("parse", err)
	}
	format, err := cfg.ParsedFormat()
	if err != nil {
		return clierr.Usage("parse", err)
	}

	commits, err := historySource(cmd, args, policy).Commits()
	if err != nil {
		return clierr.Wrap(clierr.ExitFailure, "parse: reading series", err)
	}
	verbosef(cmd, "parsed %d commit(s) with %s policy\n", len(commits), policy)

	if cfg.Output == "" {
		if err := report.Render(cmd.OutOrStdout(), format, commits); err != nil {
			return clierr.Wrap(clierr.ExitFailure, "parse: rendering", err)
		}
		return nil
	}

	var buf bytes.Buffer
	if err := report.Render(&buf, format, commits); err != nil {
		return clierr.Wrap(clierr.ExitFailure, "parse: rendering", err)
	}
	if err := projection.AtomicWrite(cfg.Output, buf.Bytes()); err != nil {
		return clierr.Wrap(clierr.ExitFailure, "parse: writing output", err)
	}
	verbosef(cmd, "wrote %s\n", cfg.Output)
	return nil
}
