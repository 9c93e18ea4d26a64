package logging_test

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"chanreg/internal/config"
	"chanreg/internal/logging"
)

func TestNewConsoleAndFileSinks(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "logs", logging.LogFileName)
	var console bytes.Buffer

	logger, closeFn, err := logging.New(logging.Options{
		Level:    "info",
		Format:   "console",
		Console:  &console,
		FilePath: logPath,
		RunID:    "run-123",
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	component := logging.NewComponentLogger(logger, "resolver")
	component.Debug("debug detail", logging.String("key", "espn"))
	component.Info("baseline resolved", logging.Int("matched_by_id", 4))
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	out := console.String()
	if strings.Contains(out, "debug detail") {
		t.Fatalf("console should omit debug lines at info level: %q", out)
	}
	if !strings.Contains(out, "INFO [resolver] – baseline resolved matched_by_id=4") {
		t.Fatalf("unexpected console line: %q", out)
	}
	if strings.Contains(out, "run-123") {
		t.Fatalf("console should not repeat the run id: %q", out)
	}

	raw, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected debug and info lines in file, got %d: %q", len(lines), raw)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode file line: %v", err)
	}
	if entry["level"] != "debug" || entry["msg"] != "debug detail" || entry["run_id"] != "run-123" {
		t.Fatalf("unexpected file entry: %v", entry)
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts key in %v", entry)
	}
}

func TestNewRejectsUnknownFormatAndLevel(t *testing.T) {
	if _, _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected unsupported format error")
	}
	if _, _, err := logging.New(logging.Options{Level: "loud"}); err == nil {
		t.Fatal("expected unknown level error")
	}
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()
	cfg.Logging.Format = "json"

	logger, closeFn, err := logging.NewFromConfig(&cfg, "abc", io.Discard)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Debug("written to file only")
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(filepath.Join(cfg.Paths.LogDir, logging.LogFileName))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(raw), "written to file only") {
		t.Fatalf("expected debug line in file, got %q", raw)
	}
}

func TestCleanupOldFiles(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "enriched_20200101_000000.csv")
	fresh := filepath.Join(dir, "enriched_20991231_000000.csv")
	keep := filepath.Join(dir, "other.txt")
	for _, p := range []string{old, fresh, keep} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	now := time.Now()
	stale := now.AddDate(0, 0, -30)
	for _, p := range []string{old, keep} {
		if err := os.Chtimes(p, stale, stale); err != nil {
			t.Fatal(err)
		}
	}

	removed := logging.CleanupOldFiles(logging.NewNop(), now, 7, logging.RetentionTarget{Dir: dir, Pattern: "enriched_*.csv"})
	if removed != 1 {
		t.Fatalf("expected 1 file removed, got %d", removed)
	}
	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Fatalf("expected stale versioned copy removed, stat err=%v", err)
	}
	for _, p := range []string{fresh, keep} {
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("expected %s to remain: %v", p, err)
		}
	}
	if got := logging.CleanupOldFiles(nil, now, 0, logging.RetentionTarget{Dir: dir}); got != 0 {
		t.Fatalf("retention 0 should disable pruning, removed %d", got)
	}
}
