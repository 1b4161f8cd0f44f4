package app

import (
	"os"

	"justdeliver-dispatch/internal/logx"
)

// NewLogger returns the process JSON logger writing to stdout.
func NewLogger(level string) logx.Logger {
	return logx.NewJSON(os.Stdout, level)
}
