package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chanreg/internal/config"
	"chanreg/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	homeDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)
	t.Setenv("CHANREG_BASE_DIR", "")
	t.Setenv("CHANREG_LOG_LEVEL", "")

	cfg := testsupport.NewConfig(t)
	configPath := filepath.Join(homeDir, ".config", "chanreg", "config.toml")
	writeTestConfig(t, configPath, cfg)
	writeFixtures(t, cfg)

	return &cliTestEnv{cfg: cfg, configPath: configPath, homeDir: homeDir}
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf("[paths]\nbase_dir = %q\n\n[logging]\nlevel = \"warn\"\n", cfg.Paths.BaseDir)
	testsupport.WriteFile(t, path, content)
}

func writeFixtures(t *testing.T, cfg *config.Config) {
	t.Helper()
	testsupport.WriteCSV(t, cfg.Enrich.Preferred,
		[]string{"id", "name", "country", "categories", "preferred"},
		[]string{"espn1", "ESPN", "US", "sports", "Y"},
		[]string{"mtv.us", "MTV", "US", "music", "N"},
	)
	testsupport.WriteCSV(t, cfg.Enrich.Baseline,
		[]string{"site", "xmltv_id", "display_name", "country"},
		[]string{"sitea", "espn1", "ESPN", "US"},
		[]string{"sitea", "mtv.us", "MTV", "US"},
		[]string{"sitea", "", "Local 7", "US"},
	)
	testsupport.WriteCSV(t, cfg.Enrich.ExcludeCategories, []string{"category"}, []string{"music"})
	testsupport.WriteCuratedList(t, cfg.Merge.CuratedList,
		testsupport.Channel{Site: "sitea", XMLTVID: "espn1", Name: "ESPN"},
	)
	testsupport.WriteCSV(t, cfg.Merge.Sources[0].Path,
		[]string{"site", "display_name", "xmltv_id"},
		[]string{"siteb", "ESPN", "espn1"},
		[]string{"siteb", "CNN", "cnn.us"},
	)
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireMissing(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected %s to be absent", path)
	}
}
