package tabular_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"chanreg/internal/failures"
	"chanreg/internal/tabular"
)

func TestReadStripsBOMAndTrims(t *testing.T) {
	data := "\xEF\xBB\xBF id , name \n cnn.us ,  CNN \n\n,\nespn.us,ESPN,extra\n"
	table, err := tabular.Read(strings.NewReader(data), "preferred")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if diff := cmp.Diff([]string{"id", "name"}, table.Header); diff != "" {
		t.Fatalf("header mismatch (-want +got):\n%s", diff)
	}
	want := [][]string{{"cnn.us", "CNN"}, {"espn.us", "ESPN", "extra"}}
	if diff := cmp.Diff(want, table.Rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestReadEmptyInput(t *testing.T) {
	table, err := tabular.Read(strings.NewReader(""), "empty")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if table.Len() != 0 || len(table.Header) != 0 {
		t.Fatalf("expected empty table, got %+v", table)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := tabular.ReadFile(filepath.Join(t.TempDir(), "absent.csv"))
	if !errors.Is(err, failures.ErrMissingFile) {
		t.Fatalf("expected ErrMissingFile, got %v", err)
	}
}

func TestIndexPrefersExactMatch(t *testing.T) {
	table := &tabular.Table{Header: []string{"Name", "name", "Category"}}
	if got := table.Index("name"); got != 1 {
		t.Fatalf("Index(name) = %d, want 1", got)
	}
	if got := table.Index("category"); got != 2 {
		t.Fatalf("Index(category) = %d, want 2", got)
	}
	if got := table.Index("missing"); got != -1 {
		t.Fatalf("Index(missing) = %d, want -1", got)
	}
}

func TestBindingFallsThroughEmptyAliases(t *testing.T) {
	table := &tabular.Table{
		Header: []string{"display_name", "channel", "id"},
		Rows: [][]string{
			{"", "Channel Four", "c4.uk"},
			{"BBC One", "BBC1", ""},
			{"short"},
		},
	}
	b := table.Bind(tabular.Schema{
		{Name: "name", Aliases: []string{"display_name", "name", "channel", "title"}},
		{Name: "xmltv_id", Aliases: []string{"xmltv_id", "id"}},
		{Name: "site", Aliases: []string{"site", "source_site"}},
	})
	if !b.Has("name") || !b.Has("xmltv_id") || b.Has("site") {
		t.Fatalf("unexpected binding presence")
	}
	if diff := cmp.Diff([]string{"site"}, b.Missing("name", "xmltv_id", "site")); diff != "" {
		t.Fatalf("Missing mismatch (-want +got):\n%s", diff)
	}
	got := []string{
		b.Get(table.Rows[0], "name"),
		b.Get(table.Rows[1], "name"),
		b.Get(table.Rows[2], "xmltv_id"),
	}
	if diff := cmp.Diff([]string{"Channel Four", "BBC One", ""}, got); diff != "" {
		t.Fatalf("Get mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.csv")
	header := []string{"key", "kept_name"}
	rows := [][]string{{"cnn", "CNN, Inc."}, {"espn", `ESPN "HD"`}}
	if err := tabular.WriteFile(path, header, rows); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(raw, []byte(`"CNN, Inc."`)) {
		t.Fatalf("expected quoted cell in %q", raw)
	}
	table, err := tabular.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if diff := cmp.Diff(rows, table.Rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}
