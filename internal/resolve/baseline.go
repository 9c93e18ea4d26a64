package resolve

import (
	"chanreg/internal/channel"
	"chanreg/internal/failures"
	"chanreg/internal/tabular"
)

// BaselineSchema maps the scraped baseline columns the resolver reads.
var BaselineSchema = tabular.Schema{
	{Name: "xmltv_id"},
	{Name: "name", Aliases: []string{"display_name", "name"}},
	{Name: "country"},
	{Name: "categories"},
	{Name: "site"},
	{Name: "preferred_flag"},
}

// CheckBaselineSchema fails when the baseline carries neither an id column
// nor a display name column.
func CheckBaselineSchema(t *tabular.Table) error {
	if t.Has("xmltv_id") || t.Has("display_name") {
		return nil
	}
	name := "baseline"
	if t != nil && t.Name != "" {
		name = t.Name
	}
	return failures.NewSchemaError(name, "xmltv_id", "display_name")
}

// BaselineFromTable converts baseline rows into records, one per row, in
// row order.
func BaselineFromTable(t *tabular.Table) ([]channel.Record, error) {
	if err := CheckBaselineSchema(t); err != nil {
		return nil, err
	}
	b := t.Bind(BaselineSchema)
	records := make([]channel.Record, 0, t.Len())
	for _, row := range t.Rows {
		records = append(records, channel.Record{
			ID:              b.Get(row, "xmltv_id"),
			Name:            b.Get(row, "name"),
			Country:         channel.CanonicalCountry(b.Get(row, "country")),
			Categories:      channel.SplitList(b.Get(row, "categories")),
			Site:            b.Get(row, "site"),
			Source:          t.Name,
			PreferredMarker: b.Get(row, "preferred_flag"),
		})
	}
	return records, nil
}
