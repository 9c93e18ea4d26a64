package preferred

import (
	"log/slog"

	"chanreg/internal/channel"
	"chanreg/internal/logging"
	"chanreg/internal/normalize"
)

// Index is the read-only preferred lookup structure.
type Index struct {
	byID          map[string]channel.Record
	byNameCountry map[channel.Key]channel.Record
	ids           map[string]struct{}
}

// Build indexes records in order. Every record is registered by id and by
// each of its names under its own country (the null country when it has
// none).
func Build(logger *slog.Logger, records []channel.Record) *Index {
	logger = logging.NewComponentLogger(logger, "preferred")
	idx := &Index{
		byID:          make(map[string]channel.Record, len(records)),
		byNameCountry: make(map[channel.Key]channel.Record, len(records)),
		ids:           make(map[string]struct{}, len(records)),
	}

	var duplicateIDs, nameCollisions int
	for _, rec := range records {
		idx.ids[rec.ID] = struct{}{}
		if rec.HasID() {
			if prev, ok := idx.byID[rec.ID]; ok {
				duplicateIDs++
				logger.Debug("duplicate preferred id ignored",
					logging.String("id", rec.ID),
					logging.String("kept_name", prev.Name),
					logging.String("ignored_name", rec.Name),
					logging.String(logging.FieldEventType, "preferred_duplicate_id"),
				)
			} else {
				idx.byID[rec.ID] = rec
			}
		}

		for _, name := range rec.Names() {
			key := channel.Key{Name: normalize.Strict(name), Country: rec.Country}
			if key.Name == "" {
				continue
			}
			if prev, ok := idx.byNameCountry[key]; ok {
				if prev.ID != rec.ID {
					nameCollisions++
					logger.Debug("preferred name key already claimed",
						logging.String("key", key.Name),
						logging.String("country", key.Country),
						logging.String("kept_id", prev.ID),
						logging.String("ignored_id", rec.ID),
						logging.String(logging.FieldEventType, "preferred_name_collision"),
					)
				}
				continue
			}
			idx.byNameCountry[key] = rec
		}
	}

	logger.Info("preferred index built",
		logging.Int("records", len(records)),
		logging.Int("ids", len(idx.byID)),
		logging.Int("name_keys", len(idx.byNameCountry)),
		logging.Int("duplicate_ids", duplicateIDs),
		logging.Int("name_collisions", nameCollisions),
		logging.String(logging.FieldEventType, "preferred_index_built"),
	)
	return idx
}

// ByID returns the record that owns id.
func (i *Index) ByID(id string) (channel.Record, bool) {
	if i == nil || id == "" {
		return channel.Record{}, false
	}
	rec, ok := i.byID[id]
	return rec, ok
}

// ByName returns the record registered under key.
func (i *Index) ByName(key channel.Key) (channel.Record, bool) {
	if i == nil || key.Name == "" {
		return channel.Record{}, false
	}
	rec, ok := i.byNameCountry[key]
	return rec, ok
}

// Contains reports whether id appeared anywhere in the registry.
func (i *Index) Contains(id string) bool {
	if i == nil {
		return false
	}
	_, ok := i.ids[id]
	return ok
}

// Size returns the number of id and name entries.
func (i *Index) Size() (ids, names int) {
	if i == nil {
		return 0, 0
	}
	return len(i.byID), len(i.byNameCountry)
}
