package tabular

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"chanreg/internal/failures"
	"chanreg/internal/fileutil"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Table is a parsed CSV file: a header row and data rows.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Read parses CSV data from r. name labels the table in errors and logs.
func Read(r io.Reader, name string) (*Table, error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	table := &Table{Name: name}
	first := true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
		if first {
			table.Header = record
			first = false
			continue
		}
		if isBlank(record) {
			continue
		}
		table.Rows = append(table.Rows, record)
	}
	return table, nil
}

// ReadFile opens and parses path. A missing file is reported with
// failures.ErrMissingFile so callers can decide whether it is fatal.
func ReadFile(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, failures.Wrap(failures.ErrMissingFile, "", "read csv", path, err)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	return Read(file, path)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Index returns the position of column, matching exactly first and then
// case-insensitively. It returns -1 when the column is absent.
func (t *Table) Index(column string) int {
	if t == nil {
		return -1
	}
	for i, h := range t.Header {
		if h == column {
			return i
		}
	}
	for i, h := range t.Header {
		if strings.EqualFold(h, column) {
			return i
		}
	}
	return -1
}

// Has reports whether column is present.
func (t *Table) Has(column string) bool {
	return t.Index(column) >= 0
}

// Cell returns row[idx], or "" when idx is out of range.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// Write renders header and rows as CSV.
func Write(w io.Writer, header []string, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteFile atomically replaces path with the CSV rendering.
func WriteFile(path string, header []string, rows [][]string) error {
	return fileutil.WriteAtomic(path, func(w io.Writer) error {
		return Write(w, header, rows)
	})
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if cell != "" {
			return false
		}
	}
	return true
}
