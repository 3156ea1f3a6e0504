// Package editor opens the tracking file in the user's editor.
package editor

import (
	"errors"
	"os"
	"os/exec"
)

// Open runs the editor on path with the terminal attached. An empty
// editor falls back to $EDITOR.
func Open(editor, path string) error {
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		return errors.New("no default editor, set the $EDITOR environment variable")
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
