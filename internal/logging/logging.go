package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Logger is the public logger instance accessible from all packages.
// It discards everything until Initialize is called.
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Options configures where and how logs are written
type Options struct {
	Debug       bool
	Dir         string    // Rotated directory of uuid-named files
	File        string    // Single log file (no rotation), wins over Dir
	Format      string    // "json" or "text"
	MaxLogFiles int       // Files kept in Dir, 0 = unlimited
	Stderr      io.Writer // Destination when neither File nor Dir is set
}

// Initialize sets up the logger and returns the log file to close on exit (nil for stderr)
func Initialize(opts Options) (io.Closer, error) {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}

	var (
		out     io.Writer = opts.Stderr
		closer  io.Closer
		logPath string
	)
	if out == nil {
		out = os.Stderr
	}

	switch {
	case opts.File != "":
		logPath = opts.File
	case opts.Dir != "":
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		if opts.MaxLogFiles > 0 {
			if err := rotateLogs(opts.Dir, opts.MaxLogFiles); err != nil {
				// Rotation failure shouldn't prevent logging
				fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
			}
		}
		logPath = filepath.Join(opts.Dir, fmt.Sprintf("%s.log", uuid.New().String()))
	}

	if logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to create log file: %w", err)
		}
		out = logFile
		closer = logFile
	}

	handler, err := newHandler(out, opts.Format, level)
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, err
	}
	Logger = slog.New(handler)

	if logPath != "" {
		Logger.Debug("Logging initialized", "log_file", logPath)
	}
	return closer, nil
}

// Component returns a logger tagged with the component name
func Component(name string) *slog.Logger {
	return Logger.With("component", name)
}

func newHandler(out io.Writer, format string, level slog.Level) (slog.Handler, error) {
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(format) {
	case "", "json":
		return slog.NewJSONHandler(out, opts), nil
	case "text":
		return slog.NewTextHandler(out, opts), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (use json or text)", format)
	}
}

// rotateLogs removes old log files so that at most maxLogFiles remain after the new one is created
func rotateLogs(logDir string, maxLogFiles int) error {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFileInfo struct {
		path    string
		modTime time.Time
	}
	var logFiles []logFileInfo

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		logFiles = append(logFiles, logFileInfo{
			path:    filepath.Join(logDir, entry.Name()),
			modTime: info.ModTime(),
		})
	}

	if len(logFiles) < maxLogFiles {
		return nil
	}

	// Oldest first
	sort.Slice(logFiles, func(i, j int) bool {
		return logFiles[i].modTime.Before(logFiles[j].modTime)
	})

	numToDelete := len(logFiles) - maxLogFiles + 1 // +1 to make room for the new log
	for i := 0; i < numToDelete && i < len(logFiles); i++ {
		if err := os.Remove(logFiles[i].path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", logFiles[i].path, err)
		}
	}
	return nil
}

// DefaultLogDir returns the OS-specific log directory
func DefaultLogDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Logs", "bundlestats"), nil
	case "linux":
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			stateHome = filepath.Join(homeDir, ".local", "state")
		}
		return filepath.Join(stateHome, "bundlestats"), nil
	default:
		return filepath.Join(homeDir, ".bundlestats", "logs"), nil
	}
}
