package main

import (
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"twiddler-tools/internal/csvio"
	"twiddler-tools/internal/expand"
	"twiddler-tools/internal/logging"
)

type expandOptions struct {
	output  string
	combine string
	quiet   bool
}

func newExpandCmd(root *rootOptions) *cobra.Command {
	opts := &expandOptions{}

	cmd := &cobra.Command{
		Use:   "expand [input.csv]",
		Short: "Add Shift/Ctrl/Alt variants of every keyboard chord",
		Long: `Reads a Twiddler V6 chord table (Thumbs,Fingers,Actions) and writes a copy
that also binds every [KB] chord combined with the modifier thumb buttons.

The output is written next to the input with "_w_modifiers" inserted before
the extension unless --output is given. Unsorted thumb entries and chords
that would be redefined are reported as warnings; they never stop the run.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpand(cmd, root, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file")
	cmd.Flags().StringVar(&opts.combine, "combine", "", "combination policy: eligible or any")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "do not print a summary")

	return cmd
}

func runExpand(cmd *cobra.Command, root *rootOptions, opts *expandOptions, args []string) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("combine") {
		cfg.Combine = opts.combine
	}

	xopts, err := cfg.ExpandOptions()
	if err != nil {
		return err
	}

	input := cfg.Input
	if len(args) == 1 {
		input = args[0]
	}

	output := opts.output
	if output == "" {
		output = csvio.OutputPath(input, cfg.OutputSuffix)
	}

	if samePath(output, input) {
		return errors.WithHint(errors.Newf("output %s would overwrite the input", output),
			"pass a different --output or set output_suffix")
	}

	entries, err := csvio.ReadFile(input)
	if err != nil {
		return err
	}

	res, err := expand.Expand(entries, xopts)
	if err != nil {
		return err
	}

	logging.Diagnostics(logging.Logger, &res.Diagnostics)

	if err := csvio.WriteFile(output, res.Entries); err != nil {
		return err
	}

	logging.Logger.Infow("chord table expanded",
		"input", input,
		"output", output,
		"rows_in", res.Stats.Input,
		"rows_out", res.Stats.Accepted,
		"synthesized", res.Stats.Synthesized,
		"conflicts", res.Stats.Conflicts)

	if !opts.quiet {
		printExpandSummary(output, res)
	}

	return nil
}

func printExpandSummary(output string, res *expand.Result) {
	s := res.Stats

	pterm.Success.Printf("Wrote %d rows to %s\n", s.Accepted, output)
	pterm.Info.Printf("%d input rows, %d variants added, %d duplicates absorbed\n",
		s.Input, s.Synthesized, s.Duplicates)

	if n := len(res.Diagnostics.Warnings); n > 0 {
		pterm.Warning.Printf("%d warnings: %d conflicting chords skipped, %d unsorted thumb entries fixed\n",
			n, s.Conflicts, s.Normalized)
	}
}

// samePath reports whether a and b name the same file once made absolute.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)

	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}

	return absA == absB
}
