// Package ranking orders scored entrants into the final leaderboard.
package ranking

import (
	"sort"

	"github.com/gridstake/pickem/internal/domain/model"
)

// Assemble orders entrants by correct picks descending, then by tiebreak
// distance ascending when tiebreakActive is true. The sort is stable, so
// entrants equal under the active keys keep their input order. Ranks are
// assigned 1-based and contiguous by sorted position; ties are deliberately
// not collapsed into shared ranks, so rank reads as a finishing position
// with submission order breaking dead heats.
//
// tiebreakActive should be true only when the tiebreaker game has produced
// some score; before that, predictions must not influence the ordering.
//
// The input slice is not modified.
func Assemble(scored []model.ScoredEntrant, tiebreakActive bool) []model.RankedEntrant {
	ordered := make([]model.ScoredEntrant, len(scored))
	copy(ordered, scored)

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].LiveCorrectPicks != ordered[j].LiveCorrectPicks {
			return ordered[i].LiveCorrectPicks > ordered[j].LiveCorrectPicks
		}
		if tiebreakActive {
			return ordered[i].TiebreakDistance < ordered[j].TiebreakDistance
		}
		return false
	})

	ranked := make([]model.RankedEntrant, len(ordered))
	for i, e := range ordered {
		ranked[i] = model.RankedEntrant{ScoredEntrant: e, Rank: i + 1}
	}
	return ranked
}
