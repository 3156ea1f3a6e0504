package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temps-cli/temps/internal/core/timeline"
	"github.com/temps-cli/temps/internal/data/logfile"
	"github.com/temps-cli/temps/internal/util"
)

var vizCmd = &cobra.Command{
	Use:   "viz [DATE]",
	Short: "Visualize time spent on a given day",
	Long: `Render one day of tracked time as a quarter-hour block timeline.

DATE accepts YYYY-MM-DD, 'today', 'yesterday', or 'N days ago' and
defaults to today.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runViz,
}

func init() {
	rootCmd.AddCommand(vizCmd)
}

func runViz(cmd *cobra.Command, args []string) error {
	entries, err := logfile.Read(opts.path, opts.loc)
	if err != nil {
		return err
	}
	now := clockNow()

	day := util.Midnight(now)
	if len(args) == 1 {
		day, err = util.ParseDate(args[0], now)
		if err != nil {
			return err
		}
	}

	slots := timeline.Build(entries, now, day)
	for _, row := range timeline.Render(entries, slots, day) {
		fmt.Fprintln(cmd.OutOrStdout(), row)
	}
	return nil
}
