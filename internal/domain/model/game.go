// Package model contains domain models passed between layers.
package model

import (
	"bytes"
	"fmt"
	"strconv"
)

// GameID is the provider's opaque key for one game. It is stable across
// polls within a contest week.
type GameID string

// RawGame is the decoder output for one scoreboard entry. Score fields are
// kept as the provider sent them; numeric parsing happens at evaluation.
type RawGame struct {
	ID        GameID
	HomeScore string
	AwayScore string
	Status    string // normalized label, e.g. "SCHEDULED", "IN_PROGRESS", "FINAL"
	Completed bool
	HomeTeam  string
	AwayTeam  string
}

// Winner identifies which side of a game currently leads.
type Winner int

// Winner values. The wire encoding is 0 for home, 1 for away, null for none.
const (
	WinnerNone Winner = iota
	WinnerHome
	WinnerAway
)

var jsonNull = []byte("null")

// MarshalJSON encodes the winner as 0 (home), 1 (away), or null.
func (w Winner) MarshalJSON() ([]byte, error) {
	switch w {
	case WinnerHome:
		return []byte("0"), nil
	case WinnerAway:
		return []byte("1"), nil
	default:
		return jsonNull, nil
	}
}

// UnmarshalJSON decodes 0, 1, or null into a Winner.
func (w *Winner) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*w = WinnerNone
		return nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("invalid winner value %q: %w", data, err)
	}
	switch n {
	case 0:
		*w = WinnerHome
	case 1:
		*w = WinnerAway
	default:
		return fmt.Errorf("invalid winner value %d", n)
	}
	return nil
}

// GameTelemetry is the evaluated state of one game within a snapshot.
//
// Invariants: Winner is WinnerHome iff HomeScore > AwayScore, WinnerAway iff
// AwayScore > HomeScore, otherwise WinnerNone. Started is true iff any score
// has been recorded or the status is no longer "SCHEDULED".
type GameTelemetry struct {
	GameID    GameID `json:"game_id"`
	HomeScore int    `json:"home_score"`
	AwayScore int    `json:"away_score"`
	Winner    Winner `json:"winner"`
	Started   bool   `json:"-"`
	Completed bool   `json:"completed"`
	Status    string `json:"status"`
}

// Total returns the combined score of both sides.
func (g GameTelemetry) Total() int {
	return g.HomeScore + g.AwayScore
}
