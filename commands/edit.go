package commands

import (
	"github.com/spf13/cobra"

	"github.com/temps-cli/temps/internal/editor"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit raw data with default editor",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return editor.Open(opts.editor, opts.path)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
