package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/temps-cli/temps/internal/core/entry"
	"github.com/temps-cli/temps/internal/data/logfile"
)

var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel ongoing timer",
	Args:  cobra.NoArgs,
	RunE:  runCancel,
}

func init() {
	rootCmd.AddCommand(cancelCmd)
}

func runCancel(cmd *cobra.Command, args []string) error {
	entries, err := logfile.Read(opts.path, opts.loc)
	if err != nil {
		return err
	}
	log := entry.NewLog(entries)

	cancelled, err := log.Cancel()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Cancelled '%s' (started at %s).\n",
		cancelled.Project, cancelled.Start.Format(time.RFC3339))

	return logfile.Write(opts.path, log.Entries())
}
