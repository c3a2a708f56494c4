// Package logger sets up logrus for the jsonmap command.
package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

type LogOptions struct {
	// Verbose switches the level from info to debug.
	Verbose bool
	// DisableColor if true will disable outputting colors.
	DisableColor bool
	// HideLogTime drops the timestamp from every line.
	HideLogTime bool
	// Output receives the log; nil keeps the current writer (stderr).
	Output io.Writer
}

// Init configures the standard logrus logger.
func Init(options LogOptions) {
	Configure(logrus.StandardLogger(), options)
}

// Configure applies options to l.
func Configure(l *logrus.Logger, options LogOptions) {
	if options.Verbose {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}

	l.SetFormatter(&Formatter{
		DisableColor: options.DisableColor,
		HideLogTime:  options.HideLogTime,
	})

	if options.Output != nil {
		l.SetOutput(options.Output)
	}
}
