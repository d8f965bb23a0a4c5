package rosalind

import (
	"os"
	"strings"

	"github.com/avilaHugo/rosalind/config"
	"github.com/charmbracelet/log"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.NewWithOptions(os.Stderr, log.Options{Prefix: "rosalind"})

// setLogLevel sets the stderr logger's level from the settings.
// verbose overrides the log-level setting.
func setLogLevel(conf *config.Config) {
	if conf.Verbose {
		stderr.SetLevel(log.DebugLevel)
		return
	}

	switch strings.ToLower(conf.LogLevel) {
	case "debug":
		stderr.SetLevel(log.DebugLevel)
	case "info", "":
		stderr.SetLevel(log.InfoLevel)
	case "warn", "warning":
		stderr.SetLevel(log.WarnLevel)
	case "error":
		stderr.SetLevel(log.ErrorLevel)
	default:
		stderr.SetLevel(log.InfoLevel)
		stderr.Warn("unknown log-level in settings, defaulting to info", "provided", conf.LogLevel)
	}
}
