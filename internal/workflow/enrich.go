package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"chanreg/internal/category"
	"chanreg/internal/channel"
	"chanreg/internal/failures"
	"chanreg/internal/fileutil"
	"chanreg/internal/logging"
	"chanreg/internal/preferred"
	"chanreg/internal/report"
	"chanreg/internal/resolve"
	"chanreg/internal/tabular"
)

func (r *Runner) enrich(ctx context.Context, logger *slog.Logger) (*report.Enrich, error) {
	cfg := r.cfg.Enrich
	out := &report.Enrich{}

	baseline, err := tabular.ReadFile(cfg.Baseline)
	if err != nil {
		return out, err
	}
	if err := resolve.CheckBaselineSchema(baseline); err != nil {
		return out, err
	}
	out.Baseline = inputFile("", cfg.Baseline, baseline.Len(), false)

	prefTable, err := tabular.ReadFile(cfg.Preferred)
	if err != nil {
		return out, err
	}
	prefRecords, err := preferred.FromTable(prefTable)
	if err != nil {
		return out, err
	}
	out.Preferred = inputFile("", cfg.Preferred, prefTable.Len(), false)

	exclusions, exclusionFile, err := r.loadExclusions(logger, cfg.ExcludeCategories)
	if err != nil {
		return out, err
	}
	out.Exclusions = exclusionFile

	if err := ctx.Err(); err != nil {
		return out, err
	}

	index := preferred.Build(logger, prefRecords)
	out.PreferredIDs, out.PreferredNames = index.Size()

	records, err := resolve.BaselineFromTable(baseline)
	if err != nil {
		return out, err
	}
	enriched, stats := resolve.New(logger, index).ResolveAll(records)
	out.MatchedByID = stats.ByID
	out.MatchedByNameCountry = stats.ByNameCountry
	out.MatchedByNameOnly = stats.ByNameOnly
	out.Unmatched = stats.Unmatched

	filter := category.NewFilter(exclusions)
	out.CategoryFiltered = filter.ApplyAll(enriched)
	for _, e := range enriched {
		if e.Preferred {
			out.PreferredFlagged++
		}
	}

	header, rows := enrichedTable(baseline, enriched)

	logger.Info("baseline enriched",
		logging.String(logging.FieldEventType, "enrich_summary"),
		logging.Int("rows", len(rows)),
		logging.Int("matched_by_id", out.MatchedByID),
		logging.Int("matched_by_name", out.MatchedByName()),
		logging.Int("unmatched", out.Unmatched),
		logging.Int("preferred", out.PreferredFlagged),
		logging.Int("category_filtered", out.CategoryFiltered),
	)

	if err := ctx.Err(); err != nil {
		return out, err
	}
	if r.dryRun {
		logger.Info("dry run; enriched baseline not written", logging.String("output", cfg.Output))
		return out, nil
	}

	if err := tabular.WriteFile(cfg.Output, header, rows); err != nil {
		return out, fmt.Errorf("write enriched baseline: %w", err)
	}
	out.Output = cfg.Output

	versioned := fileutil.VersionedPath(cfg.VersionedDir, cfg.Output, r.now())
	if err := fileutil.CopyFileVerified(cfg.Output, versioned); err != nil {
		return out, fmt.Errorf("write versioned copy: %w", err)
	}
	out.Versioned = versioned

	out.PrunedVersions = logging.CleanupOldFiles(logger, r.now(), cfg.VersionedRetentionDays, logging.RetentionTarget{
		Dir:     cfg.VersionedDir,
		Pattern: fileutil.VersionedPattern(cfg.Output),
		Exclude: []string{versioned},
	})

	logger.Info("enriched baseline written",
		logging.String(logging.FieldEventType, "enrich_written"),
		logging.String("output", cfg.Output),
		logging.String("versioned", versioned),
		logging.Int("pruned_versions", out.PrunedVersions),
	)
	return out, nil
}

// loadExclusions reads the optional exclusion table. A missing file yields an
// empty set and a warning.
func (r *Runner) loadExclusions(logger *slog.Logger, path string) ([]string, report.File, error) {
	if strings.TrimSpace(path) == "" {
		return nil, report.File{Missing: true}, nil
	}
	table, err := tabular.ReadFile(path)
	if err != nil {
		if errors.Is(err, failures.ErrMissingFile) {
			logging.WarnWithContext(logger, "exclusion categories missing; no records filtered", "exclusions_missing",
				logging.String("path", path),
				logging.String(logging.FieldErrorHint, "set enrich.exclude_categories or create the file"),
				logging.String(logging.FieldImpact, "category filter disabled for this run"),
			)
			return nil, report.File{Path: path, Missing: true}, nil
		}
		return nil, report.File{}, err
	}
	values := category.LoadExclusions(table)
	return values, inputFile("", path, len(values), false), nil
}

// enrichedTable keeps every baseline column except previously added
// enrichment columns, then appends the enrichment columns in order.
func enrichedTable(baseline *tabular.Table, enriched []channel.Enriched) ([]string, [][]string) {
	added := make(map[string]struct{}, len(channel.EnrichedColumns))
	for _, col := range channel.EnrichedColumns {
		added[col] = struct{}{}
	}

	var keep []int
	header := make([]string, 0, len(baseline.Header)+len(channel.EnrichedColumns))
	for i, col := range baseline.Header {
		if _, ok := added[strings.ToLower(col)]; ok {
			continue
		}
		keep = append(keep, i)
		header = append(header, col)
	}
	header = append(header, channel.EnrichedColumns...)

	rows := make([][]string, 0, len(enriched))
	for i, e := range enriched {
		var src []string
		if i < len(baseline.Rows) {
			src = baseline.Rows[i]
		}
		row := make([]string, 0, len(header))
		for _, idx := range keep {
			row = append(row, tabular.Cell(src, idx))
		}
		row = append(row, e.Columns()...)
		rows = append(rows, row)
	}
	return header, rows
}
