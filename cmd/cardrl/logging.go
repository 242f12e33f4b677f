package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// setupLogger builds a stderr logger at the named level.
func setupLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
	}), nil
}
