package model

// ScoredEntrant is an entrant plus the live counters derived from one
// telemetry snapshot. It exists only within one computation.
type ScoredEntrant struct {
	Entrant
	// LiveCorrectPicks counts picks that currently match a decided game.
	LiveCorrectPicks int `json:"live_correct_picks"`
	// ScoredGames counts the entrant's picked games that have started.
	ScoredGames int `json:"live_total_scored_games"`
	// TiebreakDistance is |prediction - tiebreaker game total|.
	TiebreakDistance int `json:"-"`
}

// RankedEntrant is a scored entrant with its 1-based finishing position.
type RankedEntrant struct {
	ScoredEntrant
	Rank int `json:"live_rank"`
}

// Leaderboard is the complete result of one live computation: every entrant
// ranked, plus the normalized game list for client display.
type Leaderboard struct {
	Entrants []RankedEntrant `json:"picks"`
	Games    []GameTelemetry `json:"game_scores"`
}
