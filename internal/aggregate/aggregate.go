package aggregate

import (
	"log/slog"

	"chanreg/internal/channel"
	"chanreg/internal/logging"
	"chanreg/internal/tabular"
)

// CandidateSchema maps heterogeneous candidate headers onto logical fields.
var CandidateSchema = tabular.Schema{
	{Name: "name", Aliases: []string{"display_name", "name", "channel", "title"}},
	{Name: "xmltv_id", Aliases: []string{"xmltv_id", "id"}},
	{Name: "site", Aliases: []string{"site", "source_site"}},
}

// Input is one named candidate source. A nil Table means the source file
// was missing.
type Input struct {
	Name  string
	Path  string
	Table *tabular.Table
}

// SourceCount reports how many candidates one source contributed.
type SourceCount struct {
	Name    string
	Path    string
	Rows    int
	Missing bool
}

// Aggregate maps every input row to a candidate record, preserving input
// order and tagging each record with its source name.
func Aggregate(logger *slog.Logger, inputs []Input) ([]channel.Record, []SourceCount) {
	logger = logging.NewComponentLogger(logger, "aggregate")

	var out []channel.Record
	counts := make([]SourceCount, 0, len(inputs))
	for _, in := range inputs {
		count := SourceCount{Name: in.Name, Path: in.Path}
		if in.Table == nil {
			count.Missing = true
			counts = append(counts, count)
			logging.WarnWithContext(logger, "candidate source missing; skipped", "candidate_source_missing",
				logging.String("source", in.Name),
				logging.String("path", in.Path),
				logging.String(logging.FieldErrorHint, "check merge.sources paths in the configuration"),
				logging.String(logging.FieldImpact, "source contributes no candidates"),
			)
			continue
		}

		b := in.Table.Bind(CandidateSchema)
		if !b.Has("name") && !b.Has("xmltv_id") {
			logging.WarnWithContext(logger, "candidate source has no name or id column", "candidate_source_unmapped",
				logging.String("source", in.Name),
				logging.Any("header", in.Table.Header),
				logging.String(logging.FieldErrorHint, "rename a column to display_name, name, channel, or title"),
				logging.String(logging.FieldImpact, "every row from this source is routed to the unmatched report"),
			)
		}
		for _, row := range in.Table.Rows {
			out = append(out, channel.Record{
				Name:   b.Get(row, "name"),
				ID:     b.Get(row, "xmltv_id"),
				Site:   b.Get(row, "site"),
				Source: in.Name,
			})
		}
		count.Rows = in.Table.Len()
		counts = append(counts, count)
		logger.Debug("candidate source loaded",
			logging.String("source", in.Name),
			logging.Int("rows", count.Rows),
		)
	}

	logger.Info("candidates aggregated",
		logging.Int("sources", len(inputs)),
		logging.Int("candidates", len(out)),
		logging.String(logging.FieldEventType, "candidates_aggregated"),
	)
	return out, counts
}
