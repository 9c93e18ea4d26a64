package preferred

import (
	"chanreg/internal/channel"
	"chanreg/internal/failures"
	"chanreg/internal/tabular"
)

// Schema maps the preferred registry columns.
var Schema = tabular.Schema{
	{Name: "id"},
	{Name: "name"},
	{Name: "alt_names"},
	{Name: "network"},
	{Name: "owners"},
	{Name: "country"},
	{Name: "categories"},
	{Name: "is_nsfw"},
	{Name: "launched"},
	{Name: "closed"},
	{Name: "replaced_by"},
	{Name: "website"},
	{Name: "preferred", Aliases: []string{"Prefered", "preferred"}},
}

// FromTable converts registry rows into records. It fails with a schema
// error before reading any row when id or name is absent.
func FromTable(t *tabular.Table) ([]channel.Record, error) {
	b := t.Bind(Schema)
	if missing := b.Missing("id", "name"); len(missing) > 0 {
		return nil, failures.NewSchemaError(tableName(t), missing...)
	}

	records := make([]channel.Record, 0, t.Len())
	for _, row := range t.Rows {
		records = append(records, channel.Record{
			ID:              b.Get(row, "id"),
			Name:            b.Get(row, "name"),
			AltNames:        channel.SplitList(b.Get(row, "alt_names")),
			Country:         channel.CanonicalCountry(b.Get(row, "country")),
			Network:         b.Get(row, "network"),
			Owners:          b.Get(row, "owners"),
			Categories:      channel.SplitList(b.Get(row, "categories")),
			IsNSFW:          b.Get(row, "is_nsfw"),
			Launched:        b.Get(row, "launched"),
			Closed:          b.Get(row, "closed"),
			ReplacedBy:      b.Get(row, "replaced_by"),
			Website:         b.Get(row, "website"),
			Source:          tableName(t),
			PreferredMarker: b.Get(row, "preferred"),
		})
	}
	return records, nil
}

func tableName(t *tabular.Table) string {
	if t == nil || t.Name == "" {
		return "preferred"
	}
	return t.Name
}
