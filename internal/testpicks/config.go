// Package testpicks generates synthetic contests and exercises a running
// engine instance over HTTP.
package testpicks

import "time"

// Default generator configuration constants.
const (
	DefaultNumEntrants = 100
	DefaultNumGames    = 16
	DefaultYear        = 2024
	DefaultSeasonType  = 2
	DefaultWeek        = 1
	DefaultTimeout     = 30 * time.Second
)

// Config controls one generator run.
type Config struct {
	BaseURL     string
	NumEntrants int
	NumGames    int
	Year        int
	SeasonType  int
	Week        int
	Timeout     time.Duration
	// GameIDs, when set, overrides the generated ids so the run scores
	// against real scoreboard games instead of unknown ones.
	GameIDs []string
}
