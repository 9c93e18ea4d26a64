package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeBaseDir(); err != nil {
		return err
	}
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeSources()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeBaseDir() error {
	base := strings.TrimSpace(c.Paths.BaseDir)
	if base == "" {
		if value, ok := os.LookupEnv("CHANREG_BASE_DIR"); ok {
			base = strings.TrimSpace(value)
		}
	}
	if base == "" {
		base = defaultBaseDir
	}
	resolved, err := expandPath(base)
	if err != nil {
		return fmt.Errorf("paths.base_dir: %w", err)
	}
	c.Paths.BaseDir = resolved
	return nil
}

// resolve anchors a relative path at base_dir; absolute and ~ paths are kept.
func (c *Config) resolve(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	if strings.HasPrefix(value, "~") || filepath.IsAbs(value) {
		return expandPath(value)
	}
	return expandPath(filepath.Join(c.Paths.BaseDir, value))
}

func (c *Config) normalizePaths() error {
	fields := []struct {
		key   string
		value *string
	}{
		{"paths.log_dir", &c.Paths.LogDir},
		{"enrich.baseline", &c.Enrich.Baseline},
		{"enrich.preferred", &c.Enrich.Preferred},
		{"enrich.exclude_categories", &c.Enrich.ExcludeCategories},
		{"enrich.output", &c.Enrich.Output},
		{"enrich.versioned_dir", &c.Enrich.VersionedDir},
		{"merge.curated_list", &c.Merge.CuratedList},
		{"merge.output", &c.Merge.Output},
		{"merge.duplicates_report", &c.Merge.DuplicatesReport},
		{"merge.unmatched_report", &c.Merge.UnmatchedReport},
	}
	for _, f := range fields {
		resolved, err := c.resolve(*f.value)
		if err != nil {
			return fmt.Errorf("%s: %w", f.key, err)
		}
		*f.value = resolved
	}
	for i := range c.Merge.Sources {
		resolved, err := c.resolve(c.Merge.Sources[i].Path)
		if err != nil {
			return fmt.Errorf("merge.sources[%d].path: %w", i, err)
		}
		c.Merge.Sources[i].Path = resolved
	}
	return nil
}

func (c *Config) normalizeSources() {
	for i := range c.Merge.Sources {
		src := &c.Merge.Sources[i]
		src.Name = strings.TrimSpace(src.Name)
		if src.Name == "" && src.Path != "" {
			src.Name = filepath.Base(src.Path)
		}
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		if value, ok := os.LookupEnv("CHANREG_LOG_LEVEL"); ok {
			c.Logging.Level = strings.ToLower(strings.TrimSpace(value))
		}
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
