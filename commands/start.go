package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temps-cli/temps/internal/core/entry"
	"github.com/temps-cli/temps/internal/data/logfile"
	"github.com/temps-cli/temps/internal/util"
)

var (
	startFrom string

	startCmd = &cobra.Command{
		Use:   "start [PROJECT]",
		Short: "Start new timer",
		Long: `Start a new timer, stopping any ongoing one first.

The project name defaults to the last tracked project.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runStart,
	}
)

func init() {
	rootCmd.AddCommand(startCmd)

	startCmd.Flags().StringVarP(&startFrom, "from", "f", "",
		"Start date (defaults to now)")
}

func runStart(cmd *cobra.Command, args []string) error {
	entries, err := logfile.Read(opts.path, opts.loc)
	if err != nil {
		return err
	}
	log := entry.NewLog(entries)
	now := clockNow()

	project := ""
	if len(args) == 1 {
		project = args[0]
	}
	if project == "" {
		project = log.LastProject()
	}
	if project == "" {
		return fmt.Errorf("cannot infer project name, please specify")
	}

	start := now
	if startFrom != "" {
		start, err = util.ParseInstant(startFrom, now)
		if err != nil {
			return err
		}
	}

	stopped, err := log.Start(project, start, now)
	if err != nil {
		return err
	}
	if stopped != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Stopped '%s'.\n", stopped)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Started '%s'.\n", project)

	return logfile.Write(opts.path, log.Entries())
}
