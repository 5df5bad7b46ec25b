// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// version is overridden at link time with -ldflags "-X main.version=...".
var version = "dev"

// rootState is shared by every subcommand after PersistentPreRunE ran.
type rootState struct {
	configPath string
	logLevel   string
	cfg        *Config
}

// Execute runs the wcorr command tree under ctx.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	st := &rootState{}
	root := &cobra.Command{
		Use:           "wcorr",
		Short:         "Weighted Pearson correlation engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(st.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = st.logLevel
			}
			lvl, err := zerolog.ParseLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
			}
			zerolog.SetGlobalLevel(lvl)
			st.cfg = cfg
			log.Debug().Str("config", st.configPath).Str("level", lvl.String()).Msg("configuration loaded")

			return nil
		},
	}
	root.PersistentFlags().StringVar(&st.configPath, "config", "", "optional YAML config file")
	root.PersistentFlags().StringVar(&st.logLevel, "log-level", defaultLogLevel, "log level: debug|info|warn|error")

	root.AddCommand(computeCmd(st))
	root.AddCommand(versionCmd())

	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the wcorr version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wcorr %s\n", version)

			return err
		},
	}
}
