package logging

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// NewTerminalHandler returns a slog handler writing to stderr. Output is
// colorized only when stderr is attached to a terminal, so piped diagnostics
// stay plain text.
func NewTerminalHandler(verbose bool) slog.Handler {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	w := os.Stderr
	return tint.NewHandler(w, &tint.Options{
		Level:   level,
		NoColor: !isatty.IsTerminal(w.Fd()),
	})
}

// Setup installs the terminal handler as the process-wide default logger.
func Setup(verbose bool) {
	slog.SetDefault(slog.New(NewTerminalHandler(verbose)))
}
