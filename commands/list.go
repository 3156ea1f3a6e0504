package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/temps-cli/temps/internal/data/logfile"
	"github.com/temps-cli/temps/internal/presentation/formatter"
)

var (
	listOutput string

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List raw data",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listOutput, "output", "o", "table",
		"Output format (table, json)")
}

func runList(cmd *cobra.Command, args []string) error {
	entries, err := logfile.Read(opts.path, opts.loc)
	if err != nil {
		return err
	}

	if listOutput == "json" {
		return formatter.WriteJSON(cmd.OutOrStdout(), entries)
	}

	table := formatter.NewTable("Project", "Start", "End")
	for _, e := range entries {
		end := ""
		if e.End != nil {
			end = e.End.Format(time.RFC3339)
		}
		table.Row(e.Project, e.Start.Format(time.RFC3339), end)
	}
	fmt.Fprint(cmd.OutOrStdout(), table)
	return nil
}
