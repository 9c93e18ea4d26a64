package resolve

import (
	"log/slog"
	"strings"

	"chanreg/internal/channel"
	"chanreg/internal/logging"
	"chanreg/internal/normalize"
	"chanreg/internal/preferred"
)

// Stats counts resolution outcomes for one batch.
type Stats struct {
	ByID          int
	ByNameCountry int
	ByNameOnly    int
	Unmatched     int
}

// ByName sums both name tiers.
func (s Stats) ByName() int {
	return s.ByNameCountry + s.ByNameOnly
}

// Total returns the number of records resolved.
func (s Stats) Total() int {
	return s.ByID + s.ByName() + s.Unmatched
}

// Resolver looks baseline records up in a preferred index. It never mutates
// the index.
type Resolver struct {
	index  *preferred.Index
	logger *slog.Logger
}

// New returns a resolver over index.
func New(logger *slog.Logger, index *preferred.Index) *Resolver {
	return &Resolver{
		index:  index,
		logger: logging.NewComponentLogger(logger, "resolver"),
	}
}

// Resolve matches one baseline record. Unmatched records keep the preferred
// flag the baseline already carried.
func (r *Resolver) Resolve(rec channel.Record) channel.Enriched {
	out := channel.Enriched{Baseline: rec}

	match, tier := r.lookup(rec)
	if tier == channel.TierNone {
		out.Preferred = channel.ParseMarker(rec.PreferredMarker)
		return out
	}

	out.Match = &match
	out.Tier = tier
	out.Preferred = r.preferredFlag(match)
	return out
}

func (r *Resolver) lookup(rec channel.Record) (channel.Record, channel.Tier) {
	if id := strings.TrimSpace(rec.ID); id != "" {
		if match, ok := r.index.ByID(id); ok {
			return match, channel.TierID
		}
	}

	key := channel.Key{Name: normalize.Strict(rec.Name), Country: rec.Country}
	if key.Name == "" {
		return channel.Record{}, channel.TierNone
	}
	if key.Country != "" {
		if match, ok := r.index.ByName(key); ok {
			return match, channel.TierNameCountry
		}
	}
	if match, ok := r.index.ByName(key.WithoutCountry()); ok {
		return match, channel.TierName
	}
	return channel.Record{}, channel.TierNone
}

// preferredFlag honours an explicit marker on the matched record and
// otherwise treats any registry member as preferred.
func (r *Resolver) preferredFlag(match channel.Record) bool {
	if strings.TrimSpace(match.PreferredMarker) != "" {
		return channel.ParseMarker(match.PreferredMarker)
	}
	return r.index.Contains(match.ID)
}

// ResolveAll resolves records in order and tallies the outcome.
func (r *Resolver) ResolveAll(records []channel.Record) ([]channel.Enriched, Stats) {
	out := make([]channel.Enriched, 0, len(records))
	var stats Stats
	for _, rec := range records {
		e := r.Resolve(rec)
		switch {
		case !e.Matched():
			stats.Unmatched++
			r.logger.Debug("baseline record unmatched",
				logging.String("xmltv_id", rec.ID),
				logging.String("name", rec.Name),
				logging.String("country", rec.Country),
				logging.String(logging.FieldEventType, "baseline_unmatched"),
			)
		case e.Tier == channel.TierID:
			stats.ByID++
		case e.Tier == channel.TierNameCountry:
			stats.ByNameCountry++
		default:
			stats.ByNameOnly++
		}
		out = append(out, e)
	}
	r.logger.Info("baseline resolved",
		logging.Int("records", stats.Total()),
		logging.Int("matched_by_id", stats.ByID),
		logging.Int("matched_by_name", stats.ByName()),
		logging.Int("unmatched", stats.Unmatched),
		logging.String(logging.FieldEventType, "baseline_resolved"),
	)
	return out, stats
}
