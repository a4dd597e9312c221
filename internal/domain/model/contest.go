package model

// Pick is a binary prediction for one game, positionally aligned with the
// contest's ordered game list.
type Pick int8

// Pick values. The wire encoding is 0 for the home side, 1 for the away side.
const (
	PickHome Pick = 0
	PickAway Pick = 1
)

// Matches reports whether the pick agrees with the given winner. A game with
// no winner yet matches nothing.
func (p Pick) Matches(w Winner) bool {
	switch w {
	case WinnerHome:
		return p == PickHome
	case WinnerAway:
		return p == PickAway
	default:
		return false
	}
}

// Entrant is one participant's submitted prediction set. It is owned by the
// external settlement store and treated as read-only for the life of one
// leaderboard computation.
type Entrant struct {
	EntrantID string `json:"token_id"`
	Owner     string `json:"owner"`
	Picks     []Pick `json:"picks"`
	// CorrectPicks is the settled count the caller already holds; it is
	// echoed back untouched and never used by the live computation.
	CorrectPicks         int `json:"correct_picks"`
	TiebreakerPrediction int `json:"tiebreaker_points"`
}

// ContestConfig is the static per-contest configuration supplied by the
// caller: the ordered game list that defines pick alignment and the game
// whose combined score breaks ties.
type ContestConfig struct {
	GameIDs          []GameID
	TiebreakerGameID GameID
}

// EffectiveTiebreaker returns the designated tiebreaker game, falling back
// to the last game in the contest order when none is designated. Returns an
// empty id for an empty contest.
func (c ContestConfig) EffectiveTiebreaker() GameID {
	if c.TiebreakerGameID != "" {
		return c.TiebreakerGameID
	}
	if len(c.GameIDs) == 0 {
		return ""
	}
	return c.GameIDs[len(c.GameIDs)-1]
}
