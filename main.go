package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/temps-cli/temps/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		log.Debugf("command failed: %v", err)
		os.Exit(1)
	}
}
