// Package logx builds the structured loggers used across the service.
package logx

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

const appName = "agora"

// New returns a logger writing to w at the given level. Format is one of
// "text" (default), "logfmt" or "json".
func New(w io.Writer, level, format string) (*log.Logger, error) {
	if strings.TrimSpace(level) == "" {
		level = "info"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse logging level %q: %w", level, err)
	}

	formatter := log.TextFormatter
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
	case "logfmt":
		formatter = log.LogfmtFormatter
	case "json":
		formatter = log.JSONFormatter
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          appName,
		ReportTimestamp: true,
		Formatter:       formatter,
	}), nil
}

// Nop returns a logger that discards everything.
func Nop() *log.Logger {
	return log.New(io.Discard)
}
