package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"twiddler-tools/internal/logging"
	"twiddler-tools/internal/tutor"
)

func newTutorCmd(root *rootOptions) *cobra.Command {
	var (
		output string
		quiet  bool
	)

	cmd := &cobra.Command{
		Use:   "tutor [input.csv]",
		Short: "Convert a chord CSV into Twiddler Tutor JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}

			input := cfg.Tutor.Input
			if len(args) == 1 {
				input = args[0]
			}

			if output == "" {
				output = cfg.Tutor.Output
			}

			n, err := tutor.ConvertFile(input, output)
			if err != nil {
				return err
			}

			logging.Logger.Infow("tutor document written", "input", input, "output", output, "chords", n)

			if !quiet {
				pterm.Success.Printf("Wrote %d chords to %s\n", n, output)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output JSON file")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print a summary")

	return cmd
}
