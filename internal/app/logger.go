package app

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// NewLogger writes JSON log lines to a file under the storage root. The
// TUI owns stdout, so logs never go there. Failure to open the log file
// degrades to a nop logger rather than blocking startup.
func NewLogger(storageRoot string) *zap.Logger {
	if storageRoot == "" {
		storageRoot = DefaultStorageRoot()
	}
	logDir := filepath.Join(storageRoot, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return zap.NewNop()
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{filepath.Join(logDir, "aid.log")}
	cfg.ErrorOutputPaths = cfg.OutputPaths
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
