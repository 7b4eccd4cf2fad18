// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Gitpatch - Gitpatch parses git format-patch series into structured commit records.
It segments mailbox-style patch exports into per-commit sections and exposes them as JSON, YAML or Markdown.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package commands contains the Cobra command tree for the gitpatch CLI.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bartekus/gitpatch/internal/config"
)

// NewRootCmd constructs the gitpatch root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("GITPATCH_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "gitpatch",
		Short:         "Gitpatch - structured views of git format-patch series",
		Long:          "Gitpatch parses mailbox-style patch series into commit records and renders them as JSON, YAML or Markdown.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().String("config", config.DefaultPath, "path to the gitpatch config file")
	cmd.PersistentFlags().String("env-file", config.DefaultDotEnvPath, "path to a dotenv file with GITPATCH_* settings")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of gitpatch",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "gitpatch version %s\n", version)
		},
	})

	cmd.AddCommand(NewParseCommand())
	cmd.AddCommand(NewStatCommand())
	cmd.AddCommand(NewValidateCommand())

	return cmd
}
