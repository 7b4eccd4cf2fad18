// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bartekus/gitpatch/cmd/gitpatch/internal/clierr"
	"github.com/bartekus/gitpatch/internal/config"
	"github.com/bartekus/gitpatch/internal/patch"
	"github.com/bartekus/gitpatch/internal/series"
)

const stdinArg = "-"

// resolveConfig layers defaults, config file, environment and explicit flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	envPath, _ := cmd.Flags().GetString("env-file")

	cfg, err := config.Load(configPath, !cmd.Flags().Changed("config"))
	if err != nil {
		return nil, clierr.Usage("loading config", err)
	}

	lookup, err := config.EnvLookup(envPath)
	if err != nil {
		return nil, clierr.Usage("loading environment", err)
	}
	cfg.ApplyEnv(lookup)

	for name, dst := range map[string]*string{
		"policy": &cfg.Policy,
		"format": &cfg.Format,
		"output": &cfg.Output,
	} {
		if cmd.Flags().Lookup(name) == nil || !cmd.Flags().Changed(name) {
			continue
		}
		v, err := cmd.Flags().GetString(name)
		if err != nil {
			return nil, clierr.Usage(fmt.Sprintf("get %s flag", name), err)
		}
		*dst = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, clierr.Usage("invalid configuration", err)
	}

	verbosef(cmd, "config: policy=%s format=%s output=%q\n", cfg.Policy, cfg.Format, cfg.Output)
	return cfg, nil
}

// historySource reads the named file, or stdin when no file or "-" is given.
func historySource(cmd *cobra.Command, args []string, policy patch.Policy) series.HistorySource {
	if len(args) == 0 || args[0] == stdinArg {
		return series.ReaderSource{Reader: cmd.InOrStdin(), Policy: policy}
	}
	return series.FileSource{Path: args[0], Policy: policy}
}

func verbosef(cmd *cobra.Command, format string, args ...any) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), format, args...)
}
