package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/termsweeper/internal/config"
	"github.com/vancomm/termsweeper/internal/mines"
)

// setupLogging keeps stderr quiet unless asked otherwise: the terminal is
// where the game is played. With a log file, nothing goes to stderr.
func setupLogging(opts config.Options, stderr io.Writer) error {
	logLevel := logrus.WarnLevel
	if opts.Verbose {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.ReplaceHooks(make(logrus.LevelHooks))
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if opts.LogFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   opts.LogFile,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return fmt.Errorf("unable to open log file %s: %w", opts.LogFile, err)
		}
		log.AddHook(hook)
		log.SetOutput(io.Discard)
	}

	mines.Log = log
	return nil
}
