package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scrubsi/internal/logging"
	"scrubsi/internal/scrubber"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "scrubsi <file>",
		Short: "Remove invisible Unicode characters from a text file",
		Long: `scrubsi removes a fixed set of invisible Unicode characters (no-break
spaces, zero-width joiners, the word joiner, BOM, invisible math operators,
and Hangul fillers, among others) from a text file. The cleaned copy is
written next to the input with a ".si" suffix; when that path is taken a
numeric counter is appended so earlier scrubs are never overwritten.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Argument and flag mistakes above printed usage; from here on
			// failures are reported as plain errors.
			cmd.SilenceUsage = true

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			result, err := scrubber.New(cfg, logger).Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := reportColorize(out, cfg.Report.Color)
			for _, line := range renderReport(result, cfg.Report.ShowContent, colorize) {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newCharsCommand())
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
