package merge_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"chanreg/internal/channel"
	"chanreg/internal/logging"
	"chanreg/internal/merge"
)

const primary = "custom.channels.xml"

func newEngine() *merge.Engine {
	return merge.New(logging.NewNop(), primary)
}

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		in   channel.Record
		want string
	}{
		{name: "id wins", in: channel.Record{ID: "CNN.us", Name: "CNN HD"}, want: "CNN.us"},
		{name: "name fallback", in: channel.Record{Name: "Sky Sports News HD"}, want: "sports news"},
		{name: "no usable name", in: channel.Record{ID: "HD.us", Name: "HD"}, want: ""},
		{name: "blank", in: channel.Record{}, want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := merge.Key(tc.in); got != tc.want {
				t.Fatalf("Key() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMergeIDBearingCandidateWins(t *testing.T) {
	res := newEngine().Merge([]channel.Record{
		{Name: "CNN", Source: "Draft-Keep.csv"},
		{Name: "CNN International", ID: "cnn", Source: "matched_channels.csv"},
	})
	if len(res.Winners) != 1 || res.Winners[0].ID != "cnn" {
		t.Fatalf("expected id-bearing winner, got %+v", res.Winners)
	}
	want := []channel.Collision{{
		Key:           "cnn",
		KeptName:      "CNN International",
		DroppedName:   "CNN",
		KeptSource:    "matched_channels.csv",
		DroppedSource: "Draft-Keep.csv",
		KeptID:        "cnn",
		Reason:        channel.ReasonCarriesID,
	}}
	if diff := cmp.Diff(want, res.Collisions); diff != "" {
		t.Fatalf("collisions mismatch (-want +got):\n%s", diff)
	}
}

func TestMergePrimarySourceWins(t *testing.T) {
	res := newEngine().Merge([]channel.Record{
		{Name: "CNN", Site: "provider-a", Source: "Draft-Keep.csv"},
		{Name: "cnn", Source: primary},
	})
	if len(res.Winners) != 1 || res.Winners[0].Source != primary {
		t.Fatalf("expected curated winner, got %+v", res.Winners)
	}
	if len(res.Collisions) != 1 {
		t.Fatalf("expected one collision, got %d", len(res.Collisions))
	}
	col := res.Collisions[0]
	if col.DroppedSource != "Draft-Keep.csv" || col.KeptSource != primary || col.Reason != channel.ReasonPrimarySource {
		t.Fatalf("unexpected collision %+v", col)
	}
}

func TestMergeSharedIDPrefersPrimarySource(t *testing.T) {
	curated := channel.Record{ID: "cnn.us", Name: "CNN", Site: "curated-site", Source: primary}
	draft := channel.Record{ID: "cnn.us", Name: "CNN US", Site: "draft-site", Source: "Draft-Keep.csv"}

	tests := []struct {
		name       string
		candidates []channel.Record
		reason     channel.Reason
	}{
		{name: "primary arrives second", candidates: []channel.Record{draft, curated}, reason: channel.ReasonPrimarySource},
		{name: "primary arrives first", candidates: []channel.Record{curated, draft}, reason: channel.ReasonFirstSeen},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := newEngine().Merge(tc.candidates)
			if diff := cmp.Diff([]channel.Record{curated}, res.Winners); diff != "" {
				t.Fatalf("winners mismatch (-want +got):\n%s", diff)
			}
			want := []channel.Collision{{
				Key:           "cnn.us",
				KeptName:      "CNN",
				DroppedName:   "CNN US",
				KeptSource:    primary,
				DroppedSource: "Draft-Keep.csv",
				KeptID:        "cnn.us",
				DroppedID:     "cnn.us",
				Reason:        tc.reason,
			}}
			if diff := cmp.Diff(want, res.Collisions); diff != "" {
				t.Fatalf("collisions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMergeIncumbentKeepsPlace(t *testing.T) {
	res := newEngine().Merge([]channel.Record{
		{Name: "ESPN", Source: primary, Site: "first"},
		{Name: "ESPN HD", Source: primary, Site: "second"},
		{Name: "espn", Source: "recommended_custom_list.csv"},
	})
	if len(res.Winners) != 1 || res.Winners[0].Site != "first" {
		t.Fatalf("expected first-seen winner, got %+v", res.Winners)
	}
	if len(res.Collisions) != 2 {
		t.Fatalf("expected two collisions, got %d", len(res.Collisions))
	}
	for _, col := range res.Collisions {
		if col.KeptName != "ESPN" || col.Reason != channel.ReasonFirstSeen {
			t.Fatalf("unexpected collision %+v", col)
		}
	}
	if len(res.Groups) != 1 || len(res.Groups[0].Dropped) != 2 {
		t.Fatalf("expected one group with two dropped candidates, got %+v", res.Groups)
	}
}

func TestMergeRoutesNamelessToUnmatched(t *testing.T) {
	res := newEngine().Merge([]channel.Record{
		{ID: "ghost.us", Source: "a.csv"},
		{Name: "  ", Source: "a.csv"},
		{Name: "4K", Source: "b.csv"},
		{Name: "BBC One", Source: "b.csv"},
	})
	if len(res.Unmatched) != 3 {
		t.Fatalf("expected three unmatched, got %+v", res.Unmatched)
	}
	if len(res.Winners) != 1 || res.Winners[0].Name != "BBC One" {
		t.Fatalf("unexpected winners %+v", res.Winners)
	}
}

func TestMergePreservesFirstSeenOrder(t *testing.T) {
	res := newEngine().Merge([]channel.Record{
		{Name: "Zeta", Source: "a.csv"},
		{Name: "Alpha", Source: "a.csv"},
		{Name: "Zeta", ID: "zeta.us", Source: "b.csv"},
		{Name: "Mid", Source: "b.csv"},
	})
	var names []string
	for _, w := range res.Winners {
		names = append(names, w.Name)
	}
	if diff := cmp.Diff([]string{"Zeta", "Alpha", "Zeta", "Mid"}, names); diff != "" {
		t.Fatalf("winner order mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeIsDeterministic(t *testing.T) {
	candidates := []channel.Record{
		{Name: "CNN", Source: "Draft-Keep.csv"},
		{Name: "CNN", Source: primary},
		{Name: "ESPN", ID: "espn.us", Source: "matched_channels.csv"},
		{Name: "ESPN2", ID: "espn.us", Source: primary},
		{Name: "", Source: "x.csv"},
	}
	first := newEngine().Merge(candidates)
	for i := 0; i < 5; i++ {
		again := newEngine().Merge(candidates)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("merge not deterministic (-first +again):\n%s", diff)
		}
	}
}
