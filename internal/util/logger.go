package util

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// InitLogger configures logging to stderr. Reports go to stdout, so
// logging stays out of the way of piped output.
func InitLogger(debug bool) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}
