// Package cmd holds setup shared by the binaries under cmd/.
package cmd

import (
	"os"

	"github.com/mattn/go-isatty"             // Check if program is running in a terminal
	"go.uber.org/zap"                        // Logging
	kingpin "gopkg.in/alecthomas/kingpin.v2" // Command line args parser
)

var verboseFlag = kingpin.Flag("verbose", "Show debug logging.").Short('v').Bool()

// SetupLogging sets up zap logging.
// Binaries log human-readable output when attached to a terminal and JSON
// otherwise, and the shared --verbose flag raises the level to debug.
func SetupLogging() *zap.Logger {
	var conf zap.Config
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		conf = zap.NewDevelopmentConfig()
	} else {
		conf = zap.NewProductionConfig()
	}
	if *verboseFlag {
		conf.Level.SetLevel(zap.DebugLevel)
	}
	logger, err := conf.Build()
	if err != nil {
		panic(err)
	}
	_ = zap.ReplaceGlobals(logger) // `zap.L()` returns this logger.
	_ = zap.RedirectStdLog(logger) // Send stdlib `log` output through zap too.
	return logger
}
