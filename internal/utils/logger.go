package utils

import (
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ConfigureLogger sets the global logrus level and format. Production
// gets JSON lines, everything else a readable text format.
func ConfigureLogger(level string, production bool) {
	SetupLogger(os.Stdout, level, production)
}

func SetupLogger(out io.Writer, level string, production bool) {
	log.SetOutput(out)
	if production {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}

// LogEvent prints standardized log line with module/action/request_id.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	log.WithFields(log.Fields{
		"module":     strings.ToUpper(module),
		"action":     action,
		"request_id": strings.TrimSpace(requestID),
	}).Info(message)
}

// LogError is LogEvent at error level with the cause attached.
func LogError(requestID, module, action string, err error) {
	log.WithFields(log.Fields{
		"module":     strings.ToUpper(module),
		"action":     action,
		"request_id": strings.TrimSpace(requestID),
	}).WithError(err).Error(action + " failed")
}
