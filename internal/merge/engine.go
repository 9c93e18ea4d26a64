package merge

import (
	"log/slog"
	"strings"

	"chanreg/internal/channel"
	"chanreg/internal/logging"
	"chanreg/internal/normalize"
)

// Result is the outcome of one merge pass.
type Result struct {
	Winners    []channel.Record
	Groups     []channel.Group
	Collisions []channel.Collision
	Unmatched  []channel.Record
}

// Engine merges candidates; primary names the highest-priority source.
type Engine struct {
	primary string
	logger  *slog.Logger
}

// New returns an engine that favours candidates from primarySource.
func New(logger *slog.Logger, primarySource string) *Engine {
	return &Engine{
		primary: primarySource,
		logger:  logging.NewComponentLogger(logger, "merge"),
	}
}

// Key returns the identity key for a candidate, or "" when the candidate has
// no usable name.
func Key(c channel.Record) string {
	norm := normalize.Loose(c.Name)
	if norm == "" {
		return ""
	}
	if id := strings.TrimSpace(c.ID); id != "" {
		return id
	}
	return norm
}

// Merge resolves candidates in order. Winners keep the position at which
// their key was first seen.
func (e *Engine) Merge(candidates []channel.Record) Result {
	var (
		res    Result
		order  []string
		groups = make(map[string]*channel.Group)
	)

	for _, c := range candidates {
		key := Key(c)
		if key == "" {
			res.Unmatched = append(res.Unmatched, c)
			e.logger.Debug("candidate without usable name",
				logging.String("source", c.Source),
				logging.String("xmltv_id", c.ID),
				logging.String("name", c.Name),
				logging.String(logging.FieldEventType, "candidate_unmatched"),
			)
			continue
		}

		g, ok := groups[key]
		if !ok {
			groups[key] = &channel.Group{Key: key, Winner: c}
			order = append(order, key)
			continue
		}

		winner, loser, reason := e.decide(g.Winner, c)
		g.Winner = winner
		col := channel.Collision{
			Key:           key,
			KeptName:      winner.Name,
			DroppedName:   loser.Name,
			KeptSource:    winner.Source,
			DroppedSource: loser.Source,
			KeptID:        winner.ID,
			DroppedID:     loser.ID,
			Reason:        reason,
		}
		g.Dropped = append(g.Dropped, col)
		res.Collisions = append(res.Collisions, col)
		e.logger.Debug("candidate collision",
			logging.String("key", key),
			logging.String("kept_source", winner.Source),
			logging.String("dropped_source", loser.Source),
			logging.String(logging.FieldDecisionType, "merge_tie_break"),
			logging.String("decision_reason", string(reason)),
		)
	}

	res.Groups = make([]channel.Group, 0, len(order))
	res.Winners = make([]channel.Record, 0, len(order))
	for _, key := range order {
		g := groups[key]
		res.Groups = append(res.Groups, *g)
		res.Winners = append(res.Winners, g.Winner)
	}

	e.logger.Info("candidates merged",
		logging.Int("candidates", len(candidates)),
		logging.Int("unique", len(res.Winners)),
		logging.Int("collisions", len(res.Collisions)),
		logging.Int("unmatched", len(res.Unmatched)),
		logging.String(logging.FieldEventType, "candidates_merged"),
	)
	return res
}

// decide returns the winner and loser between the incumbent and a
// challenger sharing its key.
func (e *Engine) decide(incumbent, challenger channel.Record) (channel.Record, channel.Record, channel.Reason) {
	if !incumbent.HasID() && challenger.HasID() {
		return challenger, incumbent, channel.ReasonCarriesID
	}
	if e.primary != "" && incumbent.Source != e.primary && challenger.Source == e.primary {
		return challenger, incumbent, channel.ReasonPrimarySource
	}
	return incumbent, challenger, channel.ReasonFirstSeen
}
