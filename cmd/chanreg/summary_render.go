package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"chanreg/internal/report"
)

func renderSummary(s report.Summary, colorize bool) string {
	var lines []string

	if e := s.Enrich; e != nil {
		lines = append(lines, renderSectionHeader("enrich", colorize)...)
		lines = append(lines,
			fileStatus("Baseline", e.Baseline, colorize),
			fileStatus("Preferred registry", e.Preferred, colorize),
			fileStatus("Exclusions", e.Exclusions, colorize),
		)
		lines = append(lines, outputStatus("Enriched output", e.Output, s.DryRun, colorize))
		if e.Versioned != "" {
			lines = append(lines, renderStatusLine("Versioned copy", statusOK, e.Versioned, colorize))
		}
		lines = append(lines, "")
	}

	if m := s.Merge; m != nil {
		lines = append(lines, renderSectionHeader("merge", colorize)...)
		for _, src := range m.Sources {
			lines = append(lines, fileStatus(src.Name, src, colorize))
		}
		lines = append(lines,
			outputStatus("Merged list", m.Output, s.DryRun, colorize),
			outputStatus("Duplicates report", m.DuplicatesReport, s.DryRun, colorize),
			outputStatus("Unmatched report", m.UnmatchedReport, s.DryRun, colorize),
			"",
		)
	}

	counts := s.Counts()
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Label, c.Value})
	}
	lines = append(lines, renderTable([]string{"Metric", "Count"}, rows, []columnAlignment{alignLeft, alignRight}))
	lines = append(lines, fmt.Sprintf("Run %s finished in %s (dry run: %s)", s.RunID, s.Duration().Round(time.Millisecond), yesNo(s.DryRun)))

	return strings.Join(lines, "\n") + "\n"
}

func fileStatus(label string, f report.File, colorize bool) string {
	if f.Missing {
		path := f.Path
		if path == "" {
			path = "not configured"
		}
		return renderStatusLine(label, statusWarn, "missing "+path, colorize)
	}
	msg := fmt.Sprintf("%s rows", humanize.Comma(int64(f.Rows)))
	if f.Bytes > 0 {
		msg += fmt.Sprintf(", %s", humanize.Bytes(uint64(f.Bytes)))
	}
	return renderStatusLine(label, statusOK, msg, colorize)
}

func outputStatus(label, path string, dryRun, colorize bool) string {
	if dryRun || path == "" {
		return renderStatusLine(label, statusInfo, "not written (dry run)", colorize)
	}
	return renderStatusLine(label, statusOK, path, colorize)
}
