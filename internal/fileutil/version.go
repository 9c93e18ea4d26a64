package fileutil

import (
	"path/filepath"
	"strings"
	"time"
)

// VersionLayout is the timestamp suffix format for versioned copies.
const VersionLayout = "20060102_150405"

// VersionedPath returns dir/<stem>_<timestamp><ext> for the base name of path.
func VersionedPath(dir, path string, at time.Time) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, stem+"_"+at.Format(VersionLayout)+ext)
}

// VersionedPattern returns the glob that matches every versioned copy of path.
func VersionedPattern(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return stem + "_*" + ext
}
