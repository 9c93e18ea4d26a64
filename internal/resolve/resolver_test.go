package resolve_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"chanreg/internal/channel"
	"chanreg/internal/failures"
	"chanreg/internal/logging"
	"chanreg/internal/preferred"
	"chanreg/internal/resolve"
	"chanreg/internal/tabular"
)

func newResolver(t *testing.T, records ...channel.Record) *resolve.Resolver {
	t.Helper()
	return resolve.New(logging.NewNop(), preferred.Build(logging.NewNop(), records))
}

func TestResolveByIDBeatsName(t *testing.T) {
	r := newResolver(t,
		channel.Record{ID: "espn.us", Name: "ESPN", Country: "US"},
		channel.Record{ID: "other.us", Name: "Different Name", Country: "US"},
	)
	got := r.Resolve(channel.Record{ID: "espn.us", Name: "Different Name", Country: "US"})
	if got.Tier != channel.TierID || got.Match == nil || got.Match.ID != "espn.us" {
		t.Fatalf("expected id match on espn.us, got tier=%s match=%+v", got.Tier, got.Match)
	}
	if !got.Preferred {
		t.Fatal("expected implicit preference for registry member")
	}
}

func TestResolveNameWithCountry(t *testing.T) {
	r := newResolver(t, channel.Record{ID: "discovery.us", Name: "Discovery HD", Country: "US"})
	got := r.Resolve(channel.Record{Name: "discovery", Country: "US"})
	if got.Tier != channel.TierNameCountry || got.Match == nil || got.Match.ID != "discovery.us" {
		t.Fatalf("expected name+country match, got tier=%s match=%+v", got.Tier, got.Match)
	}
}

func TestResolveFallsThroughToNullCountry(t *testing.T) {
	r := newResolver(t, channel.Record{ID: "local.x", Name: "Local Five"})
	got := r.Resolve(channel.Record{Name: "LOCAL FIVE", Country: "GB"})
	if got.Tier != channel.TierName || got.Match == nil || got.Match.ID != "local.x" {
		t.Fatalf("expected null-country fallback match, got tier=%s match=%+v", got.Tier, got.Match)
	}
}

func TestResolveCountryMismatchDoesNotMatchScopedEntry(t *testing.T) {
	r := newResolver(t, channel.Record{ID: "discovery.ca", Name: "Discovery", Country: "CA"})
	got := r.Resolve(channel.Record{Name: "Discovery", Country: "US"})
	if got.Matched() {
		t.Fatalf("expected no match across countries, got %+v", got.Match)
	}
}

func TestResolvePreferredMarker(t *testing.T) {
	tests := []struct {
		name   string
		marker string
		want   bool
	}{
		{name: "explicit yes", marker: "Y", want: true},
		{name: "lowercase yes", marker: "yes", want: true},
		{name: "explicit no", marker: "N", want: false},
		{name: "empty defaults to membership", marker: "", want: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newResolver(t, channel.Record{ID: "cnn.us", Name: "CNN", PreferredMarker: tc.marker})
			got := r.Resolve(channel.Record{ID: "cnn.us"})
			if got.Preferred != tc.want {
				t.Fatalf("Preferred = %v, want %v", got.Preferred, tc.want)
			}
		})
	}
}

func TestResolveUnmatchedKeepsBaselineFlag(t *testing.T) {
	r := newResolver(t, channel.Record{ID: "cnn.us", Name: "CNN"})

	got := r.Resolve(channel.Record{ID: "x", Name: "Nothing Like It", PreferredMarker: "Y"})
	if got.Matched() || !got.Preferred {
		t.Fatalf("expected unmatched record to keep Y, got %+v", got)
	}
	got = r.Resolve(channel.Record{ID: "x", Name: "Nothing Like It"})
	if got.Preferred {
		t.Fatal("expected unmatched record without a flag to stay unflagged")
	}
	for i, v := range got.Columns()[1:13] {
		if v != "" {
			t.Fatalf("expected empty authoritative column %s, got %q", channel.EnrichedColumns[i+1], v)
		}
	}
}

func TestResolveUnmatchedRepeatsBaselineFlagCell(t *testing.T) {
	r := newResolver(t, channel.Record{ID: "cnn.us", Name: "CNN"})
	for _, marker := range []string{"N", "yes", "Y", ""} {
		got := r.Resolve(channel.Record{ID: "x", Name: "Nothing Like It", PreferredMarker: marker})
		if cell := got.Columns()[0]; cell != marker {
			t.Errorf("preferred_flag for marker %q = %q, want it unchanged", marker, cell)
		}
	}
}

func TestResolveAllStats(t *testing.T) {
	r := newResolver(t,
		channel.Record{ID: "espn.us", Name: "ESPN", Country: "US"},
		channel.Record{ID: "bbc1.uk", Name: "BBC One", Country: "GB"},
		channel.Record{ID: "local.x", Name: "Local"},
	)
	records := []channel.Record{
		{ID: "espn.us", Name: "ESPN HD", Country: "US"},
		{Name: "BBC One", Country: "GB"},
		{Name: "Local", Country: "US"},
		{Name: "Unknown", Country: "US"},
	}
	out, stats := r.ResolveAll(records)
	if len(out) != len(records) {
		t.Fatalf("expected %d results, got %d", len(records), len(out))
	}
	want := resolve.Stats{ByID: 1, ByNameCountry: 1, ByNameOnly: 1, Unmatched: 1}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Fatalf("stats mismatch (-want +got):\n%s", diff)
	}
	if stats.Total() != len(records) || stats.ByName() != 2 {
		t.Fatalf("unexpected derived totals: %+v", stats)
	}
	for i, e := range out {
		if e.Baseline.Name != records[i].Name {
			t.Fatalf("output order changed at %d", i)
		}
	}
}

func TestBaselineFromTable(t *testing.T) {
	table, err := tabular.Read(strings.NewReader(
		"site,xmltv_id,display_name,country,categories,preferred_flag\n"+
			"tvguide.com,espn.us,ESPN HD,us,sports;news,Y\n"+
			"tvguide.com,,Local Five,,,\n"), "all_sites_master_channels.csv")
	if err != nil {
		t.Fatal(err)
	}
	records, err := resolve.BaselineFromTable(table)
	if err != nil {
		t.Fatalf("BaselineFromTable: %v", err)
	}
	want := []channel.Record{
		{ID: "espn.us", Name: "ESPN HD", Country: "US", Categories: []string{"sports", "news"}, Site: "tvguide.com", Source: "all_sites_master_channels.csv", PreferredMarker: "Y"},
		{Name: "Local Five", Site: "tvguide.com", Source: "all_sites_master_channels.csv"},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestBaselineSchemaError(t *testing.T) {
	table, err := tabular.Read(strings.NewReader("site,country\nx,US\n"), "baseline.csv")
	if err != nil {
		t.Fatal(err)
	}
	_, err = resolve.BaselineFromTable(table)
	if !errors.Is(err, failures.ErrSchema) {
		t.Fatalf("expected schema error, got %v", err)
	}
}
