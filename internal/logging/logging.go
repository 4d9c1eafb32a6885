package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"upload-cleanup/internal/config"
)

// NewWithConfig creates a logger that writes to stdout and the configured log file.
// The returned Closer releases the log file and must be closed before exit.
func NewWithConfig(cfg *config.Config) (*log.Logger, io.Closer) {
	return newLogger(cfg, os.Stdout, time.Now())
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func newLogger(cfg *config.Config, stdout io.Writer, now time.Time) (*log.Logger, io.Closer) {
	if cfg == nil {
		cfg = config.Default()
	}
	flags := log.LstdFlags | log.Lmicroseconds

	if err := os.MkdirAll(cfg.Logging.Dir, 0o755); err != nil {
		log.Printf("failed to ensure log directory %s: %v", cfg.Logging.Dir, err)
		return log.New(stdout, "", flags), nopCloser{}
	}

	filePath := cfg.LogPath()
	rotateLogsIfNeeded(filePath, cfg.Logging.RotationDays, now)

	f, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("failed to open log file %s: %v", filePath, err)
		return log.New(stdout, "", flags), nopCloser{}
	}

	mw := io.MultiWriter(stdout, f)
	return log.New(mw, "", flags), f
}

// rotateLogsIfNeeded renames the log once it is older than rotationDays
func rotateLogsIfNeeded(logPath string, rotationDays int, now time.Time) {
	info, err := os.Stat(logPath)
	if err != nil {
		return
	}

	cutoffTime := now.AddDate(0, 0, -rotationDays)
	if !info.ModTime().Before(cutoffTime) {
		return
	}

	rotatedPath := logPath + "." + info.ModTime().Format("20060102-150405")
	if err := os.Rename(logPath, rotatedPath); err != nil {
		log.Printf("failed to rotate log file: %v", err)
		return
	}
	// Retention counts from rotation time; rename keeps the old modtime
	if err := os.Chtimes(rotatedPath, now, now); err != nil {
		log.Printf("failed to stamp rotated log %s: %v", rotatedPath, err)
	}

	cleanupOldLogs(logPath, cutoffTime)
}

// cleanupOldLogs removes rotated copies last written before cutoff
func cleanupOldLogs(logPath string, cutoff time.Time) {
	dir := filepath.Dir(logPath)
	prefix := filepath.Base(logPath) + "."

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			full := filepath.Join(dir, entry.Name())
			if err := os.Remove(full); err != nil {
				log.Printf("failed to remove old log file %s: %v", full, err)
			}
		}
	}
}
