package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"chanreg/internal/fileutil"
)

// File describes one input or output artifact.
type File struct {
	Name    string `yaml:"name,omitempty"`
	Path    string `yaml:"path"`
	Rows    int    `yaml:"rows"`
	Bytes   int64  `yaml:"bytes,omitempty"`
	Missing bool   `yaml:"missing,omitempty"`
}

// Enrich holds the baseline enrichment counts.
type Enrich struct {
	Baseline             File   `yaml:"baseline"`
	Preferred            File   `yaml:"preferred"`
	Exclusions           File   `yaml:"exclusions"`
	PreferredIDs         int    `yaml:"preferred_ids"`
	PreferredNames       int    `yaml:"preferred_names"`
	MatchedByID          int    `yaml:"matched_by_id"`
	MatchedByNameCountry int    `yaml:"matched_by_name_country"`
	MatchedByNameOnly    int    `yaml:"matched_by_name_only"`
	Unmatched            int    `yaml:"unmatched"`
	PreferredFlagged     int    `yaml:"preferred_flagged"`
	CategoryFiltered     int    `yaml:"category_filtered"`
	Output               string `yaml:"output,omitempty"`
	Versioned            string `yaml:"versioned,omitempty"`
	PrunedVersions       int    `yaml:"pruned_versions,omitempty"`
}

// MatchedByName is the combined count of both name tiers.
func (e Enrich) MatchedByName() int {
	return e.MatchedByNameCountry + e.MatchedByNameOnly
}

// Merge holds the curated list merge counts.
type Merge struct {
	Sources          []File `yaml:"sources"`
	Candidates       int    `yaml:"candidates"`
	Unique           int    `yaml:"unique"`
	Collisions       int    `yaml:"collisions"`
	Unmatched        int    `yaml:"unmatched"`
	Output           string `yaml:"output,omitempty"`
	DuplicatesReport string `yaml:"duplicates_report,omitempty"`
	UnmatchedReport  string `yaml:"unmatched_report,omitempty"`
}

// Summary is the full record of one run.
type Summary struct {
	RunID      string    `yaml:"run_id"`
	Command    string    `yaml:"command"`
	DryRun     bool      `yaml:"dry_run"`
	StartedAt  time.Time `yaml:"started_at"`
	FinishedAt time.Time `yaml:"finished_at"`
	Enrich     *Enrich   `yaml:"enrich,omitempty"`
	Merge      *Merge    `yaml:"merge,omitempty"`
}

// Duration is the wall time between start and finish.
func (s Summary) Duration() time.Duration {
	if s.FinishedAt.Before(s.StartedAt) {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}

// Count is one labelled value of the human-readable run log.
type Count struct {
	Label string
	Value string
}

// Counts flattens the summary into the ordered lines shown to operators.
func (s Summary) Counts() []Count {
	var out []Count
	if e := s.Enrich; e != nil {
		out = append(out,
			Count{"baseline rows", strconv.Itoa(e.Baseline.Rows)},
			Count{"matches by id", strconv.Itoa(e.MatchedByID)},
			Count{"matches by name", fmt.Sprintf("%d (%d name+country, %d name only)", e.MatchedByName(), e.MatchedByNameCountry, e.MatchedByNameOnly)},
			Count{"unmatched", strconv.Itoa(e.Unmatched)},
			Count{"preferred", strconv.Itoa(e.PreferredFlagged)},
			Count{"category filtered", strconv.Itoa(e.CategoryFiltered)},
		)
	}
	if m := s.Merge; m != nil {
		out = append(out,
			Count{"candidates", strconv.Itoa(m.Candidates)},
			Count{"merged unique", strconv.Itoa(m.Unique)},
			Count{"collisions collapsed", strconv.Itoa(m.Collisions)},
			Count{"merge unmatched", strconv.Itoa(m.Unmatched)},
		)
	}
	return out
}

// WriteYAML encodes the summary with two-space indentation.
func WriteYAML(w io.Writer, s Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close encoder: %w", err)
	}
	return nil
}

// WriteFile replaces path with the YAML summary.
func WriteFile(path string, s Summary) error {
	return fileutil.WriteAtomic(path, func(w io.Writer) error {
		return WriteYAML(w, s)
	})
}
