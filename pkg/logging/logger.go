// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package logging provides structured logging for taskflow components.
//
// The logger is built on Go's standard library slog package with one
// extension: multi-destination output, so the same record can go to stderr
// for humans and to a JSON file for later inspection.
//
//	┌─────────────────────────────────────────────┐
//	│                   Logger                    │
//	│  ┌──────────────┐      ┌─────────────────┐  │
//	│  │    stderr    │      │    log file     │  │
//	│  │  (text/JSON) │      │  (always JSON)  │  │
//	│  └──────────────┘      └─────────────────┘  │
//	└─────────────────────────────────────────────┘
//
// # Basic Usage
//
//	logger := logging.Default()
//	logger.Info("task created", "task_id", id)
//	logger.Error("request failed", "error", err)
//
// # Quiet Mode
//
// The interactive board owns the terminal while it runs; a stray stderr
// line would tear the alternate screen. Board sessions therefore run with
// Quiet set and a LogDir, so records land only in the file:
//
//	logger := logging.New(logging.Config{
//	    Level:   logging.LevelInfo,
//	    LogDir:  "~/.taskflow/logs",
//	    Service: "board",
//	    Quiet:   true,
//	})
//	defer logger.Close()
//	slog.SetDefault(logger.Slog())
//
// File logs are named `{service}_{date}.log` and are always JSON.
//
// # Security Considerations
//
// Nothing here redacts sensitive data. The session token in particular must
// never be logged; log its presence, not its value:
//
//	logger.Info("auth", "token_present", token != "")
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// =============================================================================
// Log Levels
// =============================================================================

// Level represents log severity, ordered Debug < Info < Warn < Error.
// Records below the configured minimum are discarded.
type Level int

const (
	// LevelDebug is for development troubleshooting, including one line
	// per API request.
	LevelDebug Level = iota

	// LevelInfo is for normal operational events (signed in, task saved).
	LevelInfo

	// LevelWarn is for unexpected situations the client recovers from.
	LevelWarn

	// LevelError is for failed operations.
	LevelError
)

// String returns the human-readable name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a config string onto a Level. Unknown values (and "")
// fall back to Info rather than failing: a typo in the config file should
// not make the client unusable.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "info", "":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// toSlogLevel bridges Level to the standard library.
func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// =============================================================================
// Configuration
// =============================================================================

// Config configures the Logger. The zero value writes Info+ records to
// stderr as text, which is the right default for one-shot CLI commands.
type Config struct {
	// Level sets the minimum log level. Default: LevelInfo.
	Level Level

	// LogDir enables file logging to the given directory. The file is
	// named "{Service}_{YYYY-MM-DD}.log" and is always JSON. Supports ~
	// expansion. Default: "" (file logging disabled).
	LogDir string

	// Service identifies the component and is attached to every record
	// as the "service" attribute. Recommended values: "cli", "board",
	// "api". Default: "" (no attribute).
	Service string

	// JSON switches stderr output to JSON. File output is JSON
	// regardless. Default: false (text).
	JSON bool

	// Quiet disables stderr output entirely. Used by the board, which
	// owns the terminal while it runs. Default: false.
	Quiet bool
}

// =============================================================================
// Logger
// =============================================================================

// Logger wraps slog.Logger with multi-destination output and cleanup.
// Safe for concurrent use.
type Logger struct {
	slog   *slog.Logger
	config Config

	// file is the open log file, nil when file logging is disabled.
	file *os.File
	mu   sync.Mutex
}

// New creates a Logger from config.
//
// Destinations are assembled from the config: stderr unless Quiet, a JSON
// file when LogDir is set. When both LogDir creation and file open fail the
// logger silently degrades to stderr only - logging must never be the
// reason the client cannot run.
//
// Close the returned logger when file logging is enabled:
//
//	logger := logging.New(cfg)
//	defer logger.Close()
func New(config Config) *Logger {
	var handlers []slog.Handler

	opts := &slog.HandlerOptions{
		Level: config.Level.toSlogLevel(),
	}

	if !config.Quiet {
		if config.JSON {
			handlers = append(handlers, slog.NewJSONHandler(os.Stderr, opts))
		} else {
			handlers = append(handlers, slog.NewTextHandler(os.Stderr, opts))
		}
	}

	logger := &Logger{config: config}

	if config.LogDir != "" {
		logDir := ExpandPath(config.LogDir)
		if err := os.MkdirAll(logDir, 0750); err == nil {
			service := config.Service
			if service == "" {
				service = "taskflow"
			}
			filename := fmt.Sprintf("%s_%s.log", service, time.Now().Format("2006-01-02"))

			file, err := os.OpenFile(filepath.Join(logDir, filename), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0640)
			if err == nil {
				logger.file = file
				handlers = append(handlers, slog.NewJSONHandler(file, opts))
			}
		}
	}

	var handler slog.Handler
	switch len(handlers) {
	case 0:
		// Quiet without a usable LogDir: discard below Error, keep
		// Error+ on stderr so hard failures are never invisible.
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})
	case 1:
		handler = handlers[0]
	default:
		handler = &multiHandler{handlers: handlers}
	}

	if config.Service != "" {
		handler = handler.WithAttrs([]slog.Attr{
			slog.String("service", config.Service),
		})
	}

	logger.slog = slog.New(handler)
	return logger
}

// Default returns a stderr-only Logger at Info level for the "taskflow"
// service.
func Default() *Logger {
	return New(Config{
		Level:   LevelInfo,
		Service: "taskflow",
	})
}

// Debug logs a message at Debug level.
func (l *Logger) Debug(msg string, args ...any) {
	l.slog.Debug(msg, args...)
}

// Info logs a message at Info level.
func (l *Logger) Info(msg string, args ...any) {
	l.slog.Info(msg, args...)
}

// Warn logs a message at Warn level.
func (l *Logger) Warn(msg string, args ...any) {
	l.slog.Warn(msg, args...)
}

// Error logs a message at Error level.
func (l *Logger) Error(msg string, args ...any) {
	l.slog.Error(msg, args...)
}

// With returns a child Logger carrying additional attributes. The parent
// is not modified; the file handle is shared.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		slog:   l.slog.With(args...),
		config: l.config,
		file:   l.file,
	}
}

// Slog returns the underlying slog.Logger, for slog.SetDefault and for
// features this wrapper does not expose.
func (l *Logger) Slog() *slog.Logger {
	return l.slog
}

// Close syncs and closes the log file, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	if err := l.file.Sync(); err != nil {
		return fmt.Errorf("sync log file: %w", err)
	}
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	l.file = nil
	return nil
}

// =============================================================================
// Multi-Handler (Internal)
// =============================================================================

// multiHandler fans a record out to every destination handler, so stderr
// and the file can use different formats.
type multiHandler struct {
	handlers []slog.Handler
}

// Enabled returns true if any destination wants the level.
func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle sends the record to all enabled destinations.
func (h *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, r.Level) {
			if err := handler.Handle(ctx, r); err != nil {
				return err
			}
		}
	}
	return nil
}

// WithAttrs returns a new handler with the attributes applied everywhere.
func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

// WithGroup returns a new handler with the group applied everywhere.
func (h *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}

// =============================================================================
// Helper Functions
// =============================================================================

// ExpandPath expands a leading ~ to the user's home directory. Other paths
// pass through unchanged.
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
