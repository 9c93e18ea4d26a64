package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// BackupPattern matches rotated copies of the run log.
const BackupPattern = "chanreg-*.log"

// newFileSink returns a size-rotated writer for path. A maxSizeMB of zero
// uses lumberjack's default of 100 MB. Age pruning is left to CleanupOldFiles.
func newFileSink(path string, maxSizeMB, maxBackups int) (*lumberjack.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure log directory: %w", err)
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
	}, nil
}
