// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bartekus/gitpatch/cmd/gitpatch/internal/clierr"
	"github.com/bartekus/gitpatch/internal/schema"
)

// Feature: CLI_COMMAND_VALIDATE
// Spec: spec/cli/validate.md

// NewValidateCommand returns the `gitpatch validate` command.
func NewValidateCommand() *cobra.Command {
	var printSchema bool

	cmd := &cobra.Command{
		Use:   "validate <file|->",
		Short: "Validate a JSON commit list against the gitpatch schema",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if printSchema {
				_, err := cmd.OutOrStdout().Write(schema.Raw())
				return err
			}
			if len(args) == 0 {
				return clierr.New(clierr.ExitUsage, "validate: missing file argument")
			}
			return runValidate(cmd, args[0])
		},
	}

	cmd.Flags().BoolVar(&printSchema, "print-schema", false, "Print the JSON Schema and exit")

	return cmd
}

func runValidate(cmd *cobra.Command, path string) error {
	var (
		data []byte
		err  error
	)
	if path == stdinArg {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path) //nolint:gosec // G304: path comes from the command line
	}
	if err != nil {
		return clierr.Wrap(clierr.ExitFailure, "validate: reading input", err)
	}

	if err := schema.Validate(data); err != nil {
		var verr *schema.ValidationError
		if errors.As(err, &verr) {
			for _, issue := range verr.Issues {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", issue)
			}
			return clierr.Newf(clierr.ExitFailure, "validate: %s has %d schema issue(s)", path, len(verr.Issues))
		}
		return clierr.Wrap(clierr.ExitFailure, "validate", err)
	}

	var commits []json.RawMessage
	if err := json.Unmarshal(data, &commits); err != nil {
		return clierr.Wrap(clierr.ExitFailure, "validate: decoding", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "ok: %s (%d commits)\n", path, len(commits))
	return nil
}
