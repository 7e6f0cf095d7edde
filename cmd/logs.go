// Package cmd holds the pieces shared by the command line programs.
package cmd

import (
	"flag"
	"io"
	"log/slog"
)

func replAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && len(groups) == 0 {
		return slog.Attr{}
	}
	return a
}

// NewLogger returns a text logger writing to writer. Source locations are
// included at debug level.
func NewLogger(writer io.Writer, level slog.Leveler) *slog.Logger {
	opts := slog.HandlerOptions{
		AddSource:   level.Level() <= slog.LevelDebug,
		Level:       level,
		ReplaceAttr: replAttr,
	}
	return slog.New(slog.NewTextHandler(writer, &opts))
}

// IsFlagPassed reports whether the flag name was set on the command line.
func IsFlagPassed(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
