// ABOUTME: Leveled diagnostics on stderr, kept apart from mocked output on stdout
// ABOUTME: Global level via SetLevel; writer swappable with SetOutput for tests

package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	level atomic.Int64

	mu  sync.Mutex
	out io.Writer = os.Stderr
)

func init() {
	level.Store(int64(LevelInfo))
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return slog.Level(level.Load())
}

// SetOutput redirects log output and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

func emit(l slog.Level, tag, format string, args ...any) {
	if slog.Level(level.Load()) > l {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "["+tag+"] "+format+"\n", args...)
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) { emit(LevelDebug, "DEBUG", format, args...) }

// Info logs an info message if the level allows it.
func Info(format string, args ...any) { emit(LevelInfo, "INFO", format, args...) }

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) { emit(LevelWarn, "WARN", format, args...) }

// Error logs an error message (always emitted).
func Error(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "[ERROR] "+format+"\n", args...)
}
