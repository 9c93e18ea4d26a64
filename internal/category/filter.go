// Package category applies the category exclusion policy to enriched
// records. Preferred records are never excluded.
package category

import (
	"strings"

	"chanreg/internal/channel"
	"chanreg/internal/tabular"
)

// Filter flags records whose categories intersect an exclusion set.
type Filter struct {
	exclude map[string]struct{}
}

// NewFilter builds a filter from exclusion values; matching is
// case-insensitive and ignores surrounding whitespace.
func NewFilter(exclude []string) *Filter {
	f := &Filter{exclude: make(map[string]struct{}, len(exclude))}
	for _, value := range exclude {
		if token := canonical(value); token != "" {
			f.exclude[token] = struct{}{}
		}
	}
	return f
}

// Len returns the number of distinct excluded categories.
func (f *Filter) Len() int {
	if f == nil {
		return 0
	}
	return len(f.exclude)
}

// Excludes reports whether any of categories is excluded.
func (f *Filter) Excludes(categories []string) bool {
	if f.Len() == 0 {
		return false
	}
	for _, c := range categories {
		if _, ok := f.exclude[canonical(c)]; ok {
			return true
		}
	}
	return false
}

// Apply returns e with FilteredByCategory set from its effective categories.
func (f *Filter) Apply(e channel.Enriched) channel.Enriched {
	e.FilteredByCategory = !e.Preferred && f.Excludes(e.EffectiveCategories())
	return e
}

// ApplyAll filters records in place and returns how many were flagged.
func (f *Filter) ApplyAll(records []channel.Enriched) int {
	flagged := 0
	for i := range records {
		records[i] = f.Apply(records[i])
		if records[i].FilteredByCategory {
			flagged++
		}
	}
	return flagged
}

// LoadExclusions reads the exclusion values from a table: the column named
// "category" in any case, otherwise the first column.
func LoadExclusions(t *tabular.Table) []string {
	if t == nil || len(t.Header) == 0 {
		return nil
	}
	idx := t.Index("category")
	if idx < 0 {
		idx = 0
	}
	out := make([]string, 0, t.Len())
	for _, row := range t.Rows {
		if v := canonical(tabular.Cell(row, idx)); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func canonical(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
