package tabular

// Field names a logical column and the header aliases that can carry it, in
// lookup order.
type Field struct {
	Name    string
	Aliases []string
}

// Schema is the set of logical fields a stage reads.
type Schema []Field

// Binding maps logical fields onto the columns present in one table.
type Binding struct {
	columns map[string][]int
}

// Bind resolves every field of schema against the table header. Aliases that
// are absent are skipped; a field with no present alias is unbound.
func (t *Table) Bind(schema Schema) Binding {
	b := Binding{columns: make(map[string][]int, len(schema))}
	for _, field := range schema {
		aliases := field.Aliases
		if len(aliases) == 0 {
			aliases = []string{field.Name}
		}
		seen := make(map[int]struct{}, len(aliases))
		for _, alias := range aliases {
			idx := t.Index(alias)
			if idx < 0 {
				continue
			}
			if _, dup := seen[idx]; dup {
				continue
			}
			seen[idx] = struct{}{}
			b.columns[field.Name] = append(b.columns[field.Name], idx)
		}
	}
	return b
}

// Has reports whether any alias of field is present in the table.
func (b Binding) Has(field string) bool {
	return len(b.columns[field]) > 0
}

// Get returns the first non-empty value among the field's bound columns.
func (b Binding) Get(row []string, field string) string {
	for _, idx := range b.columns[field] {
		if v := Cell(row, idx); v != "" {
			return v
		}
	}
	return ""
}

// Missing returns the names of fields that are not bound.
func (b Binding) Missing(fields ...string) []string {
	var out []string
	for _, f := range fields {
		if !b.Has(f) {
			out = append(out, f)
		}
	}
	return out
}
