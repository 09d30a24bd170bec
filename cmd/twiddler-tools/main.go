// Package main provides the CLI entrypoint for twiddler-tools.
//
// twiddler-tools works on Twiddler chorded keyboard configurations:
//   - expand: adds Shift/Ctrl/Alt thumb-button variants of every keyboard
//     chord to a V6 CSV config
//   - tutor: converts a chord CSV into the JSON read by the Tutor app
//   - init: writes a default twiddler.yaml
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"twiddler-tools/internal/config"
	"twiddler-tools/internal/logging"
)

type rootOptions struct {
	configPath string
	verbosity  int
	jsonLogs   bool
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	logging.Logger.Debugw("configuration loaded",
		"config", o.configPath, "input", cfg.Input, "combine", cfg.Combine)

	return cfg, nil
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "twiddler-tools",
		Short: "Transform Twiddler chord configuration tables",
		Long: `twiddler-tools transforms Twiddler chorded keyboard configurations.

Examples:
  twiddler-tools expand tabspace_twiddler_V6.csv   # add modifier variants
  twiddler-tools tutor twiddler_cfg.csv            # build Tutor JSON
  twiddler-tools init                              # write twiddler.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.Initialize(opts.jsonLogs, opts.verbosity); err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: ./twiddler.yaml if present)")
	cmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "increase log verbosity (-v, -vv)")
	cmd.PersistentFlags().BoolVar(&opts.jsonLogs, "json-logs", false, "emit logs as JSON")

	cmd.AddCommand(newExpandCmd(opts))
	cmd.AddCommand(newTutorCmd(opts))
	cmd.AddCommand(newInitCmd())

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)

		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}

		os.Exit(1)
	}
}
