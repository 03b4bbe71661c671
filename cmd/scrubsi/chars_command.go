package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/runenames"

	"scrubsi/internal/scrub"
)

func newCharsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chars",
		Short: "List the invisible characters that get removed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := table.NewWriter()
			tw.SetStyle(table.StyleRounded)
			tw.AppendHeader(table.Row{"Code Point", "Name"})
			for _, r := range scrub.Runes() {
				tw.AppendRow(table.Row{fmt.Sprintf("U+%04X", r), runenames.Name(r)})
			}
			tw.SetColumnConfigs([]table.ColumnConfig{
				{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
				{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
			})
			fmt.Fprintln(cmd.OutOrStdout(), tw.Render())
			return nil
		},
	}
}
