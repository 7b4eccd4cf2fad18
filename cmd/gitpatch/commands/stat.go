// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"github.com/spf13/cobra"

	"github.com/bartekus/gitpatch/cmd/gitpatch/internal/clierr"
	"github.com/bartekus/gitpatch/internal/report"
)

// Feature: CLI_COMMAND_STAT
// Spec: spec/cli/stat.md

// NewStatCommand returns the `gitpatch stat` command.
func NewStatCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stat [file|-]",
		Short: "Summarize per-file changes of every commit in a patch series",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			policy, err := cfg.ParsedPolicy()
			if err != nil {
				return clierr.Usage("stat", err)
			}

			commits, err := historySource(cmd, args, policy).Commits()
			if err != nil {
				return clierr.Wrap(clierr.ExitFailure, "stat: reading series", err)
			}

			if err := report.RenderStat(cmd.OutOrStdout(), commits); err != nil {
				return clierr.Wrap(clierr.ExitFailure, "stat: rendering", err)
			}
			return nil
		},
	}

	cmd.Flags().String("policy", "strict", "Diff capture policy: strict (default) or permissive")

	return cmd
}
