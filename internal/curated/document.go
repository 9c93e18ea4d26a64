package curated

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"chanreg/internal/channel"
	"chanreg/internal/failures"
	"chanreg/internal/fileutil"
	"chanreg/internal/tabular"
)

// maxDocumentSize caps how much of a curated list is decoded.
const maxDocumentSize = 50 * 1024 * 1024

// Columns is the header of the table Read produces.
var Columns = []string{"site", "xmltv_id", "name"}

// Document is the root <channels> element.
type Document struct {
	XMLName  xml.Name `xml:"channels"`
	Channels []Entry  `xml:"channel"`
}

// Entry is one <channel> element.
type Entry struct {
	Site    string `xml:"site,attr,omitempty"`
	XMLTVID string `xml:"xmltv_id,attr,omitempty"`
	Name    string `xml:",chardata"`
}

// Read decodes a curated list into a table named name.
func Read(r io.Reader, name string) (*tabular.Table, error) {
	var doc Document
	dec := xml.NewDecoder(io.LimitReader(r, maxDocumentSize))
	dec.Strict = true
	dec.Entity = make(map[string]string)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}

	table := &tabular.Table{Name: name, Header: append([]string(nil), Columns...)}
	for _, entry := range doc.Channels {
		table.Rows = append(table.Rows, []string{
			strings.TrimSpace(entry.Site),
			strings.TrimSpace(entry.XMLTVID),
			strings.TrimSpace(entry.Name),
		})
	}
	return table, nil
}

// ReadFile decodes the curated list at path. A missing file is reported with
// failures.ErrMissingFile.
func ReadFile(path string) (*tabular.Table, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, failures.Wrap(failures.ErrMissingFile, "", "read curated list", path, err)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	return Read(file, filepath.Base(path))
}

// Sort orders records by site and then case-insensitive name. The sort is
// stable so equal keys keep their merge order.
func Sort(records []channel.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Site != b.Site {
			return a.Site < b.Site
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
}

// Write renders records as a curated list in their current order.
func Write(w io.Writer, records []channel.Record) error {
	doc := Document{Channels: make([]Entry, 0, len(records))}
	for _, rec := range records {
		doc.Channels = append(doc.Channels, Entry{Site: rec.Site, XMLTVID: rec.ID, Name: rec.Name})
	}
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal channels: %w", err)
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// WriteFile sorts a copy of records and atomically replaces path.
func WriteFile(path string, records []channel.Record) error {
	sorted := append([]channel.Record(nil), records...)
	Sort(sorted)
	return fileutil.WriteAtomic(path, func(w io.Writer) error {
		return Write(w, sorted)
	})
}
