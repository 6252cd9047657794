package main

import (
	"os"

	"github.com/madhermit/textdiff/cmd"
	"github.com/madhermit/textdiff/internal/logging"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(logging.Formatter())
	if err := cmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
