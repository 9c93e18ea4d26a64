package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"chanreg/internal/aggregate"
	"chanreg/internal/channel"
	"chanreg/internal/curated"
	"chanreg/internal/failures"
	"chanreg/internal/logging"
	"chanreg/internal/merge"
	"chanreg/internal/report"
	"chanreg/internal/tabular"
)

var (
	// DuplicatesColumns is the header of the collision audit.
	DuplicatesColumns = []string{"key", "kept_name", "dropped_name", "kept_source", "dropped_source", "kept_xmltv_id", "dropped_xmltv_id"}
	// UnmatchedColumns is the header of the unmatched audit.
	UnmatchedColumns = []string{"site", "xmltv_id", "name", "source"}
)

func (r *Runner) merge(ctx context.Context, logger *slog.Logger) (*report.Merge, error) {
	cfg := r.cfg.Merge
	out := &report.Merge{}

	inputs, err := r.candidateInputs()
	if err != nil {
		return out, err
	}
	candidates, counts := aggregate.Aggregate(logger, inputs)
	for _, c := range counts {
		out.Sources = append(out.Sources, inputFile(c.Name, c.Path, c.Rows, c.Missing))
	}
	out.Candidates = len(candidates)

	if err := ctx.Err(); err != nil {
		return out, err
	}

	res := merge.New(logger, r.cfg.CuratedSourceName()).Merge(candidates)
	out.Unique = len(res.Winners)
	out.Collisions = len(res.Collisions)
	out.Unmatched = len(res.Unmatched)

	logger.Info("curated list merged",
		logging.String(logging.FieldEventType, "merge_summary"),
		logging.Int("candidates", out.Candidates),
		logging.Int("merged_unique", out.Unique),
		logging.Int("collisions", out.Collisions),
		logging.Int("unmatched", out.Unmatched),
	)

	if err := ctx.Err(); err != nil {
		return out, err
	}
	if r.dryRun {
		logger.Info("dry run; merge outputs not written", logging.String("output", cfg.Output))
		return out, nil
	}

	if err := curated.WriteFile(cfg.Output, res.Winners); err != nil {
		return out, fmt.Errorf("write merged list: %w", err)
	}
	out.Output = cfg.Output
	if err := tabular.WriteFile(cfg.DuplicatesReport, DuplicatesColumns, collisionRows(res.Collisions)); err != nil {
		return out, fmt.Errorf("write duplicates report: %w", err)
	}
	out.DuplicatesReport = cfg.DuplicatesReport
	if err := tabular.WriteFile(cfg.UnmatchedReport, UnmatchedColumns, unmatchedRows(res.Unmatched)); err != nil {
		return out, fmt.Errorf("write unmatched report: %w", err)
	}
	out.UnmatchedReport = cfg.UnmatchedReport

	logger.Info("merge outputs written",
		logging.String(logging.FieldEventType, "merge_written"),
		logging.String("output", cfg.Output),
		logging.String("duplicates_report", cfg.DuplicatesReport),
		logging.String("unmatched_report", cfg.UnmatchedReport),
	)
	return out, nil
}

// candidateInputs loads the curated list followed by the configured sources.
// Missing files become nil tables; malformed files abort the stage.
func (r *Runner) candidateInputs() ([]aggregate.Input, error) {
	cfg := r.cfg.Merge
	inputs := make([]aggregate.Input, 0, 1+len(cfg.Sources))

	curatedTable, err := curated.ReadFile(cfg.CuratedList)
	if err != nil && !errors.Is(err, failures.ErrMissingFile) {
		return nil, err
	}
	inputs = append(inputs, aggregate.Input{Name: r.cfg.CuratedSourceName(), Path: cfg.CuratedList, Table: curatedTable})

	for _, src := range cfg.Sources {
		table, err := tabular.ReadFile(src.Path)
		if err != nil && !errors.Is(err, failures.ErrMissingFile) {
			return nil, err
		}
		inputs = append(inputs, aggregate.Input{Name: src.Name, Path: src.Path, Table: table})
	}
	return inputs, nil
}

func collisionRows(collisions []channel.Collision) [][]string {
	rows := make([][]string, 0, len(collisions))
	for _, c := range collisions {
		rows = append(rows, []string{c.Key, c.KeptName, c.DroppedName, c.KeptSource, c.DroppedSource, c.KeptID, c.DroppedID})
	}
	return rows
}

func unmatchedRows(records []channel.Record) [][]string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{rec.Site, rec.ID, rec.Name, rec.Source})
	}
	return rows
}
