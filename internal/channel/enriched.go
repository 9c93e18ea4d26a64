package channel

// EnrichedColumns lists the columns appended to the baseline table, in output
// order.
var EnrichedColumns = []string{
	"preferred_flag",
	"pref_id",
	"pref_name",
	"pref_alt_names",
	"pref_network",
	"pref_owners",
	"pref_country",
	"pref_categories",
	"pref_is_nsfw",
	"pref_launched",
	"pref_closed",
	"pref_replaced_by",
	"pref_website",
	"filtered_out_by_category",
}

// Enriched is a baseline record annotated with its preferred match.
type Enriched struct {
	Baseline           Record
	Match              *Record
	Tier               Tier
	Preferred          bool
	FilteredByCategory bool
}

// Matched reports whether a preferred record was found.
func (e Enriched) Matched() bool {
	return e.Match != nil
}

// EffectiveCategories returns the categories the category policy applies to:
// the matched record's when present, otherwise the baseline's own.
func (e Enriched) EffectiveCategories() []string {
	if e.Match != nil && len(e.Match.Categories) > 0 {
		return e.Match.Categories
	}
	return e.Baseline.Categories
}

// Columns renders the enrichment values aligned with EnrichedColumns. An
// unmatched record repeats its baseline preferred_flag cell unchanged.
func (e Enriched) Columns() []string {
	out := make([]string, len(EnrichedColumns))
	if !e.Matched() {
		out[0] = e.Baseline.PreferredMarker
		out[13] = FormatFlag(e.FilteredByCategory)
		return out
	}
	out[0] = FormatFlag(e.Preferred)
	if m := e.Match; m != nil {
		out[1] = m.ID
		out[2] = m.Name
		out[3] = JoinList(m.AltNames)
		out[4] = m.Network
		out[5] = m.Owners
		out[6] = m.Country
		out[7] = JoinList(m.Categories)
		out[8] = m.IsNSFW
		out[9] = m.Launched
		out[10] = m.Closed
		out[11] = m.ReplacedBy
		out[12] = m.Website
	}
	out[13] = FormatFlag(e.FilteredByCategory)
	return out
}
