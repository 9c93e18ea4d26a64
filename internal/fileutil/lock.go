package fileutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// RunLock is an advisory, non-blocking process lock.
type RunLock struct {
	lock *flock.Flock
}

// AcquireRunLock takes the lock at path or reports held=false when another
// process owns it.
func AcquireRunLock(path string) (*RunLock, bool, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, false, fmt.Errorf("create lock directory: %w", err)
	}
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, false, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, false, nil
	}
	return &RunLock{lock: lock}, true, nil
}

// Path returns the lock file location.
func (l *RunLock) Path() string {
	if l == nil || l.lock == nil {
		return ""
	}
	return l.lock.Path()
}

// Release unlocks; it is safe on a nil lock.
func (l *RunLock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}
