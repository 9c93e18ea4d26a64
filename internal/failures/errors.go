package failures

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSchema        = errors.New("schema error")
	ErrMissingFile   = errors.New("missing file")
	ErrRowAnomaly    = errors.New("row anomaly")
	ErrConfiguration = errors.New("configuration error")
	ErrLocked        = errors.New("run locked")
)

// SchemaError reports a table that lacks the columns a stage needs before any
// row is processed.
type SchemaError struct {
	Table   string
	Missing []string
}

func (e *SchemaError) Error() string {
	table := strings.TrimSpace(e.Table)
	if table == "" {
		table = "input"
	}
	if len(e.Missing) == 0 {
		return fmt.Sprintf("schema error: %s is missing required columns", table)
	}
	return fmt.Sprintf("schema error: %s is missing required columns: %s", table, strings.Join(e.Missing, ", "))
}

// Is lets errors.Is(err, ErrSchema) match a *SchemaError.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// NewSchemaError builds a SchemaError for the named table.
func NewSchemaError(table string, missing ...string) error {
	return &SchemaError{Table: table, Missing: append([]string(nil), missing...)}
}

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrRowAnomaly
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// ExitCode maps a stage error to the process exit status reported by the CLI.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrConfiguration):
		return 2
	case errors.Is(err, ErrSchema):
		return 3
	case errors.Is(err, ErrMissingFile):
		return 4
	case errors.Is(err, ErrLocked):
		return 5
	default:
		return 1
	}
}

// Hint returns a short remediation string for the error class.
func Hint(err error) string {
	switch {
	case errors.Is(err, ErrConfiguration):
		return "check the configuration file (chanreg config validate)"
	case errors.Is(err, ErrSchema):
		return "verify the input CSV header row"
	case errors.Is(err, ErrMissingFile):
		return "verify the configured input paths exist"
	case errors.Is(err, ErrLocked):
		return "another chanreg run is writing the same outputs; wait for it to finish"
	default:
		return "check logs for details"
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "stage failure"
	}
	return strings.Join(parts, ": ")
}
