package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateEnrich(); err != nil {
		return err
	}
	if err := c.validateMerge(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateEnrich() error {
	required := map[string]string{
		"enrich.baseline":      c.Enrich.Baseline,
		"enrich.preferred":     c.Enrich.Preferred,
		"enrich.output":        c.Enrich.Output,
		"enrich.versioned_dir": c.Enrich.VersionedDir,
	}
	for _, key := range []string{"enrich.baseline", "enrich.preferred", "enrich.output", "enrich.versioned_dir"} {
		if strings.TrimSpace(required[key]) == "" {
			return fmt.Errorf("%s must be set", key)
		}
	}
	if c.Enrich.Output == c.Enrich.Baseline {
		return errors.New("enrich.output must differ from enrich.baseline")
	}
	if c.Enrich.VersionedRetentionDays < 0 {
		return errors.New("enrich.versioned_retention_days must be >= 0")
	}
	return nil
}

func (c *Config) validateMerge() error {
	for key, value := range map[string]string{
		"merge.curated_list":      c.Merge.CuratedList,
		"merge.output":            c.Merge.Output,
		"merge.duplicates_report": c.Merge.DuplicatesReport,
		"merge.unmatched_report":  c.Merge.UnmatchedReport,
	} {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s must be set", key)
		}
	}
	if c.Merge.Output == c.Merge.CuratedList {
		return errors.New("merge.output must differ from merge.curated_list")
	}

	seen := map[string]struct{}{c.CuratedSourceName(): {}}
	for i, src := range c.Merge.Sources {
		if src.Path == "" {
			return fmt.Errorf("merge.sources[%d].path must be set", i)
		}
		if _, dup := seen[src.Name]; dup {
			return fmt.Errorf("merge.sources[%d].name %q is not unique", i, src.Name)
		}
		seen[src.Name] = struct{}{}
		if src.Path == c.Merge.Output || src.Path == c.Merge.DuplicatesReport || src.Path == c.Merge.UnmatchedReport {
			return fmt.Errorf("merge.sources[%d].path must not be a merge output", i)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	if c.Logging.MaxSizeMB < 0 {
		return errors.New("logging.max_size_mb must be >= 0")
	}
	if c.Logging.MaxBackups < 0 {
		return errors.New("logging.max_backups must be >= 0")
	}
	if c.Logging.RetentionDays < 0 {
		return errors.New("logging.retention_days must be >= 0")
	}
	return nil
}
