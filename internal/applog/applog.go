// Package applog initialises the global slog logger for the application.
// Call Init once at startup; all other packages use log/slog directly.
package applog

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	slogmulti "github.com/samber/slog-multi"
)

// Init sets up the global slog logger.
// Records go to logPath (a temporary file when empty) as structured text and
// to stderr through pterm. The terminal only shows warnings and errors so
// that command output stays readable; with debug on, both sinks take Debug.
func Init(debug bool, logPath string) {
	fileLevel, consoleLevel := slog.LevelInfo, pterm.LogLevelWarn
	if debug {
		fileLevel, consoleLevel = slog.LevelDebug, pterm.LogLevelDebug
	}
	if logPath == "" {
		logPath = tempLogPath()
	}

	console := pterm.DefaultLogger.WithWriter(os.Stderr).WithLevel(consoleLevel)
	handlers := []slog.Handler{pterm.NewSlogHandler(console)}
	if f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: fileLevel}))
	}
	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))
}

func tempLogPath() string {
	return filepath.Join(os.TempDir(), "gto-poker-ref.log")
}
