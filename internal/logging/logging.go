package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the log file created inside the configured log directory
const FileName = "turmas.log"

// Logger is the global slog instance for the application
var Logger = slog.Default()

// ParseLevel turns a config level ("debug", "info", "warn", "error") into
// a slog.Level. Empty means info.
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if strings.TrimSpace(level) == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q (must be: debug, info, warn, error)", level)
	}
	return l, nil
}

// Init initializes the logging system, writing logs to <dir>/turmas.log.
// Uses text format for human readability. Closing the returned io.Closer
// restores the previous loggers and closes the file.
func Init(dir, level string) (io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	// Open log file in append mode
	file, err := os.OpenFile(filepath.Join(dir, FileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	lf := &logFile{
		file:       file,
		prevLogger: Logger,
		prevSlog:   slog.Default(),
		prevWriter: log.Writer(),
		prevFlags:  log.Flags(),
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: lvl,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output (used by goose) to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return lf, nil
}

// logFile owns the open log file and the loggers it replaced
type logFile struct {
	file       *os.File
	prevLogger *slog.Logger
	prevSlog   *slog.Logger
	prevWriter io.Writer
	prevFlags  int
}

// Close puts the previous loggers back before closing the file, so nothing
// writes to a closed descriptor
func (l *logFile) Close() error {
	Logger = l.prevLogger
	slog.SetDefault(l.prevSlog)
	log.SetOutput(l.prevWriter)
	log.SetFlags(l.prevFlags)
	return l.file.Close()
}
