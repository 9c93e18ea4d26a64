package testsupport

import (
	"path/filepath"
	"testing"

	"chanreg/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a finalized config rooted at a unique temp directory.
// Every default path resolves beneath that directory.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.BaseDir = base
	cfgVal.Logging.Level = "debug"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.Finalize(); err != nil {
		t.Fatalf("finalize test config: %v", err)
	}
	return builder.cfg
}

// WithSources replaces the candidate CSV sources. Paths are relative to the
// base directory.
func WithSources(sources ...config.Source) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Merge.Sources = append([]config.Source(nil), sources...)
	}
}

// WithVersionRetention sets enrich.versioned_retention_days.
func WithVersionRetention(days int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Enrich.VersionedRetentionDays = days
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return cfg.Paths.BaseDir
}

// Path joins elements beneath the config's base directory.
func Path(cfg *config.Config, elem ...string) string {
	return filepath.Join(append([]string{cfg.Paths.BaseDir}, elem...)...)
}
