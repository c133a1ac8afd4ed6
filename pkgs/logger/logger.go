package logger

import (
	"io"

	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
)

////////////////////////////////////////////////////////////////////////////////
// Logging Configuration Functions
////////////////////////////////////////////////////////////////////////////////

// InitLogger initializes the application logger. Terminal output is colored,
// the file hook writes the same records without ANSI escapes.
func InitLogger(dbg bool, logFile io.Writer) {
	log.SetFormatter(&log.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})

	if dbg {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	if logFile == nil {
		return
	}
	log.AddHook(lfshook.NewHook(logFile, &log.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	}))
}
