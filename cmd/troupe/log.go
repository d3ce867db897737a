package main

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
)

var (
	logHandler = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.InfoLevel,
	})
	theLog = slog.New(logHandler)
)

func setVerbose(v bool) {
	if v {
		logHandler.SetLevel(log.DebugLevel)
		return
	}
	logHandler.SetLevel(log.InfoLevel)
}
