package testsupport

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteCSV writes a header and rows as CSV.
func WriteCSV(t testing.TB, path string, header []string, rows ...[]string) {
	t.Helper()

	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write(header); err != nil {
		t.Fatalf("encode header for %s: %v", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		t.Fatalf("encode rows for %s: %v", path, err)
	}
	WriteFile(t, path, b.String())
}

// ReadCSV parses the CSV at path into records, header first.
func ReadCSV(t testing.TB, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	return records
}

// Channel is one curated list entry for WriteCuratedList.
type Channel struct {
	Site    string
	XMLTVID string
	Name    string
}

// WriteCuratedList writes a minimal curated channel list document.
func WriteCuratedList(t testing.TB, path string, channels ...Channel) {
	t.Helper()

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<channels>\n")
	for _, ch := range channels {
		b.WriteString("  <channel")
		if ch.Site != "" {
			b.WriteString(` site="` + ch.Site + `"`)
		}
		if ch.XMLTVID != "" {
			b.WriteString(` xmltv_id="` + ch.XMLTVID + `"`)
		}
		b.WriteString(">" + ch.Name + "</channel>\n")
	}
	b.WriteString("</channels>\n")
	WriteFile(t, path, b.String())
}
