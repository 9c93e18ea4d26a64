package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"chanreg/internal/failures"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains the workspace root and log directory.
type Paths struct {
	BaseDir string `toml:"base_dir"`
	LogDir  string `toml:"log_dir"`
}

// Enrich configures the baseline enrichment stage.
type Enrich struct {
	Baseline               string `toml:"baseline"`
	Preferred              string `toml:"preferred"`
	ExcludeCategories      string `toml:"exclude_categories"`
	Output                 string `toml:"output"`
	VersionedDir           string `toml:"versioned_dir"`
	VersionedRetentionDays int    `toml:"versioned_retention_days"`
}

// Source is one candidate CSV feeding the merge stage.
type Source struct {
	Name string `toml:"name"`
	Path string `toml:"path"`
}

// Merge configures the curated list merge stage. The curated list is always
// the highest-priority source; Sources follow in descending priority.
type Merge struct {
	CuratedList      string   `toml:"curated_list"`
	Output           string   `toml:"output"`
	DuplicatesReport string   `toml:"duplicates_report"`
	UnmatchedReport  string   `toml:"unmatched_report"`
	Sources          []Source `toml:"sources"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format        string `toml:"format"`
	Level         string `toml:"level"`
	MaxSizeMB     int    `toml:"max_size_mb"`
	MaxBackups    int    `toml:"max_backups"`
	RetentionDays int    `toml:"retention_days"`
}

// Config encapsulates all configuration values for chanreg.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Enrich  Enrich  `toml:"enrich"`
	Merge   Merge   `toml:"merge"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/chanreg/config.toml")
}

// Overrides carries command-line values that take precedence over the file.
type Overrides struct {
	BaseDir   string
	LogLevel  string
	LogFormat string
}

func (o Overrides) apply(cfg *Config) {
	if v := strings.TrimSpace(o.BaseDir); v != "" {
		cfg.Paths.BaseDir = v
	}
	if v := strings.TrimSpace(o.LogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := strings.TrimSpace(o.LogFormat); v != "" {
		cfg.Logging.Format = v
	}
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields resolved to absolute paths.
func Load(path string) (*Config, string, bool, error) {
	return LoadWithOverrides(path, Overrides{})
}

// LoadWithOverrides is Load with command-line overrides applied before
// normalization.
func LoadWithOverrides(path string, overrides Overrides) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		data, err := os.ReadFile(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("read config: %w", err)
		}
		if err := decode(data, &cfg); err != nil {
			return nil, "", false, failures.Wrap(failures.ErrConfiguration, "config", "parse", resolvedPath, err)
		}
	}

	overrides.apply(&cfg)
	if err := cfg.Finalize(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolvedPath, exists, nil
}

// decode overlays a TOML document onto cfg. Declared merge sources replace
// the defaults rather than being merged element by element.
func decode(data []byte, cfg *Config) error {
	defaults := cfg.Merge.Sources
	cfg.Merge.Sources = nil

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		return err
	}

	var probe struct {
		Merge struct {
			Sources *[]Source `toml:"sources"`
		} `toml:"merge"`
	}
	if err := toml.Unmarshal(data, &probe); err != nil {
		return err
	}
	if probe.Merge.Sources == nil {
		cfg.Merge.Sources = defaults
	}
	return nil
}

// Finalize normalizes and validates a config assembled in code.
func (c *Config) Finalize() error {
	if err := c.normalize(); err != nil {
		return failures.Wrap(failures.ErrConfiguration, "config", "normalize", "", err)
	}
	if err := c.Validate(); err != nil {
		return failures.Wrap(failures.ErrConfiguration, "config", "validate", "", err)
	}
	return nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		info, err := os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", false, failures.Wrap(failures.ErrConfiguration, "config", "locate", expanded, err)
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		if info.IsDir() {
			return "", false, failures.Wrap(failures.ErrConfiguration, "config", "locate", expanded+" is a directory", nil)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("chanreg.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return defaultPath, false, nil
}

// CuratedSourceName is the source tag carried by curated list candidates.
func (c *Config) CuratedSourceName() string {
	return filepath.Base(c.Merge.CuratedList)
}

// LockPath is the advisory lock shared by every stage of one workspace.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.BaseDir, ".chanreg.lock")
}

// EnsureDirectories creates the directories outputs are written into.
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		c.Paths.LogDir,
		c.Enrich.VersionedDir,
		filepath.Dir(c.Enrich.Output),
		filepath.Dir(c.Merge.Output),
		filepath.Dir(c.Merge.DuplicatesReport),
		filepath.Dir(c.Merge.UnmatchedReport),
	}
	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
