// Package telemetry evaluates raw scoreboard entries into game state and
// builds the per-snapshot lookup index used by scoring.
package telemetry

import (
	"strconv"
	"strings"

	"github.com/gridstake/pickem/internal/domain/model"
)

// StatusScheduled is the normalized label for a game that has not started.
const StatusScheduled = "SCHEDULED"

// Evaluate derives the evaluated state of one game. It is pure and total:
// missing or non-numeric score fields count as 0.
func Evaluate(raw model.RawGame) model.GameTelemetry {
	home := parseScore(raw.HomeScore)
	away := parseScore(raw.AwayScore)

	winner := model.WinnerNone
	switch {
	case home > away:
		winner = model.WinnerHome
	case away > home:
		winner = model.WinnerAway
	}

	status := strings.ToUpper(strings.TrimSpace(raw.Status))
	started := home > 0 || away > 0 || (status != "" && status != StatusScheduled)

	return model.GameTelemetry{
		GameID:    raw.ID,
		HomeScore: home,
		AwayScore: away,
		Winner:    winner,
		Started:   started,
		Completed: raw.Completed,
		Status:    status,
	}
}

// parseScore treats anything that does not parse as a non-negative integer
// as zero. Upstream feeds send scores as strings and omit them pre-kickoff.
func parseScore(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Index maps game ids to evaluated telemetry for one snapshot. It is built
// once per computation and must not be mutated afterwards; concurrent reads
// are safe.
type Index map[model.GameID]model.GameTelemetry

// BuildIndex evaluates every raw entry into an Index. Duplicate ids resolve
// last-write-wins so a malformed snapshot stays deterministic.
func BuildIndex(raws []model.RawGame) Index {
	idx := make(Index, len(raws))
	for _, raw := range raws {
		idx[raw.ID] = Evaluate(raw)
	}
	return idx
}

// ActualTotal returns the combined score of the given game, or 0 when the
// game is absent from the snapshot. A zero total therefore also means "no
// scoring activity yet" and gates tiebreak ordering.
func (idx Index) ActualTotal(id model.GameID) int {
	g, ok := idx[id]
	if !ok {
		return 0
	}
	return g.Total()
}

// Games returns evaluated telemetry in the order of the raw input, with
// later duplicates replacing earlier ones in place.
func Games(raws []model.RawGame) []model.GameTelemetry {
	idx := BuildIndex(raws)
	seen := make(map[model.GameID]bool, len(raws))
	games := make([]model.GameTelemetry, 0, len(raws))
	for _, raw := range raws {
		if seen[raw.ID] {
			continue
		}
		seen[raw.ID] = true
		games = append(games, idx[raw.ID])
	}
	return games
}
