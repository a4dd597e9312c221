// Package scoring computes per-entrant live counters against an evaluated
// telemetry snapshot.
package scoring

import (
	"github.com/gridstake/pickem/internal/domain/model"
	"github.com/gridstake/pickem/internal/domain/telemetry"
)

// Counts holds the live counters for one entrant.
type Counts struct {
	CorrectPicks int
	ScoredGames  int
}

// ScorePicks walks an entrant's pick vector against the contest game order.
// A game missing from the index contributes to neither counter. A started
// game always counts toward ScoredGames; it counts toward CorrectPicks only
// when it has a winner and the pick matches. Positions beyond the shorter of
// the two slices are ignored.
//
// The function is side-effect free and safe to call concurrently for many
// entrants against the same shared index.
func ScorePicks(picks []model.Pick, order []model.GameID, idx telemetry.Index) Counts {
	n := len(picks)
	if len(order) < n {
		n = len(order)
	}

	var c Counts
	for i := 0; i < n; i++ {
		game, ok := idx[order[i]]
		if !ok {
			continue
		}
		if !game.Started {
			continue
		}
		c.ScoredGames++
		if picks[i].Matches(game.Winner) {
			c.CorrectPicks++
		}
	}
	return c
}

// TiebreakDistance returns the absolute distance between an entrant's
// predicted combined score and the tiebreaker game's actual total. A game
// absent from the snapshot counts as an actual total of 0, which callers
// must treat as "tiebreaker not yet meaningful".
func TiebreakDistance(prediction int, tiebreaker model.GameID, idx telemetry.Index) int {
	d := prediction - idx.ActualTotal(tiebreaker)
	if d < 0 {
		d = -d
	}
	return d
}
