package main

import (
	"os"

	"github.com/samcharles93/vfiopatch/internal/logger"
)

// cliLogger builds the logger for one command invocation from the config
// file. Interactive commands default to pretty output on stderr so stdout
// stays clean for prompts and reports.
func cliLogger(cfg Config) logger.Logger {
	level := logger.ParseLevel(cfg.LogLevel)
	if cfg.LogFormat == "json" {
		return logger.JSON(os.Stderr, level)
	}
	return logger.Pretty(os.Stderr, level)
}
