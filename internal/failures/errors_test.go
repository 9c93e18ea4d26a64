package failures_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"chanreg/internal/failures"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("permission denied")
	err := failures.Wrap(failures.ErrMissingFile, "enrich", "read baseline", "open failed", base)
	if !errors.Is(err, failures.ErrMissingFile) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"enrich", "read baseline", "open failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapWithoutDetail(t *testing.T) {
	err := failures.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, failures.ErrRowAnomaly) {
		t.Fatalf("expected default marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "stage failure") {
		t.Fatalf("expected fallback detail, got %q", err.Error())
	}
}

func TestSchemaErrorMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("load preferred: %w", failures.NewSchemaError("preferred", "id", "name"))
	if !errors.Is(err, failures.ErrSchema) {
		t.Fatalf("expected ErrSchema match, got %v", err)
	}
	var schemaErr *failures.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected *SchemaError, got %T", err)
	}
	if got := strings.Join(schemaErr.Missing, ","); got != "id,name" {
		t.Fatalf("unexpected missing columns %q", got)
	}
	if !strings.Contains(err.Error(), "preferred is missing required columns: id, name") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestExitCodeMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "configuration", err: failures.Wrap(failures.ErrConfiguration, "config", "load", "bad", nil), want: 2},
		{name: "schema", err: failures.NewSchemaError("baseline", "xmltv_id"), want: 3},
		{name: "missing file", err: failures.Wrap(failures.ErrMissingFile, "enrich", "read", "", nil), want: 4},
		{name: "locked", err: failures.Wrap(failures.ErrLocked, "merge", "lock", "", nil), want: 5},
		{name: "other", err: errors.New("boom"), want: 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := failures.ExitCode(tc.err); got != tc.want {
				t.Fatalf("ExitCode() = %d, want %d", got, tc.want)
			}
		})
	}
}
