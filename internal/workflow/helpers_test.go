package workflow_test

import (
	"testing"
	"time"

	"chanreg/internal/config"
	"chanreg/internal/testsupport"
	"chanreg/internal/workflow"
)

var (
	baselineHeader  = []string{"site", "xmltv_id", "display_name", "country", "categories"}
	preferredHeader = []string{"id", "name", "alt_names", "country", "categories", "Prefered"}
	fixedClock      = time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)
)

// Column offsets in the enriched output for baselineHeader inputs.
const (
	colPreferredFlag  = 5
	colPrefID         = 6
	colPrefName       = 7
	colPrefCategories = 12
	colFiltered       = 18
)

func writeEnrichFixtures(t *testing.T, cfg *config.Config) {
	t.Helper()
	testsupport.WriteCSV(t, cfg.Enrich.Preferred, preferredHeader,
		[]string{"espn1", "ESPN", "", "US", "sports", "Y"},
		[]string{"disc.us", "Discovery HD", "", "US", "documentary", ""},
		[]string{"mtv.us", "MTV", "", "US", "music;entertainment", "N"},
		[]string{"vh1.us", "VH1", "", "US", "music", "Y"},
	)
	testsupport.WriteCSV(t, cfg.Enrich.Baseline, baselineHeader,
		[]string{"sitea", "espn1", "ESPN US", "US", "sports"},
		[]string{"sitea", "", "discovery", "us", ""},
		[]string{"sitea", "mtv.us", "MTV", "US", ""},
		[]string{"sitea", "vh1.us", "VH1", "US", ""},
		[]string{"siteb", "", "Unknown Channel", "GB", "Music"},
	)
	testsupport.WriteCSV(t, cfg.Enrich.ExcludeCategories, []string{"Category"}, []string{"music"})
}

func newRunner(cfg *config.Config, opts ...workflow.Option) *workflow.Runner {
	opts = append([]workflow.Option{workflow.WithClock(func() time.Time { return fixedClock })}, opts...)
	return workflow.NewRunner(cfg, nil, opts...)
}
