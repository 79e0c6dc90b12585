// Package logging configures the process-global logrus logger exactly
// once, from the shell's built-in quiet/verbose flags and an optional
// environment override.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var initOnce sync.Once

// Level maps the built-in flags to a log level. Quiet wins over any
// verbosity; each -v steps one level down from the warn default.
func Level(quiet bool, verbose int) logrus.Level {
	if quiet {
		return logrus.ErrorLevel
	}
	switch verbose {
	case 0:
		return logrus.WarnLevel
	case 1:
		return logrus.InfoLevel
	case 2:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}

// Init configures the process-global logger from the given flags, at most
// once per process. The <NAME>_LOG environment variable, when set to a
// parseable level, overrides the flags entirely. The returned level is the
// one in effect; the bool reports whether this call performed the
// initialization. When several shells race here, the first one's flags
// win and the rest observe the already-configured level.
func Init(name string, quiet bool, verbose int) (logrus.Level, bool) {
	level := resolveLevel(name, quiet, verbose)

	first := false
	initOnce.Do(func() {
		InitWithLogger(logrus.StandardLogger(), level)
		first = true
	})
	return logrus.GetLevel(), first
}

// resolveLevel computes the effective level: the <NAME>_LOG environment
// variable when it parses, the flag mapping otherwise.
func resolveLevel(name string, quiet bool, verbose int) logrus.Level {
	if env := os.Getenv(strings.ToUpper(name) + "_LOG"); env != "" {
		if parsed, err := logrus.ParseLevel(env); err == nil {
			return parsed
		}
	}
	return Level(quiet, verbose)
}

// InitWithLogger applies the shared output, level, and formatter settings
// to an arbitrary logger. Hosts that keep their own logger can call this
// directly and bypass the global once-only gate.
func InitWithLogger(log *logrus.Logger, level logrus.Level) {
	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:   term.IsTerminal(int(os.Stderr.Fd())),
		FullTimestamp: true,
	})
}
