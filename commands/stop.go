package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temps-cli/temps/internal/core/entry"
	"github.com/temps-cli/temps/internal/data/logfile"
	"github.com/temps-cli/temps/internal/util"
)

var (
	stopAt string

	stopCmd = &cobra.Command{
		Use:   "stop",
		Short: "Stop ongoing timer",
		Args:  cobra.NoArgs,
		RunE:  runStop,
	}
)

func init() {
	rootCmd.AddCommand(stopCmd)

	stopCmd.Flags().StringVarP(&stopAt, "at", "a", "",
		"Stop date (defaults to now)")
}

func runStop(cmd *cobra.Command, args []string) error {
	entries, err := logfile.Read(opts.path, opts.loc)
	if err != nil {
		return err
	}
	log := entry.NewLog(entries)
	now := clockNow()

	at := now
	if stopAt != "" {
		at, err = util.ParseInstant(stopAt, now)
		if err != nil {
			return err
		}
	}

	stopped, err := log.Stop(at, now)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Stopped '%s'.\n", stopped.Project)

	return logfile.Write(opts.path, log.Entries())
}
