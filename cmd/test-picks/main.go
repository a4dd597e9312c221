package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/gridstake/pickem/internal/testpicks"
	"github.com/gridstake/pickem/pkg/logger"
)

func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:9080", "Base URL of the service")
		entrants   = flag.Int("entrants", testpicks.DefaultNumEntrants, "Number of entrants to generate")
		games      = flag.Int("games", testpicks.DefaultNumGames, "Number of games in the contest")
		gameIDs    = flag.String("game-ids", "", "Comma-separated real game ids to score against")
		year       = flag.Int("year", testpicks.DefaultYear, "Scoreboard year")
		seasonType = flag.Int("season-type", testpicks.DefaultSeasonType, "Scoreboard season type")
		week       = flag.Int("week", testpicks.DefaultWeek, "Scoreboard week")
		timeout    = flag.Duration("timeout", testpicks.DefaultTimeout, "HTTP request timeout")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	cfg := &testpicks.Config{
		BaseURL:     *baseURL,
		NumEntrants: *entrants,
		NumGames:    *games,
		Year:        *year,
		SeasonType:  *seasonType,
		Week:        *week,
		Timeout:     *timeout,
	}
	if *gameIDs != "" {
		cfg.GameIDs = strings.Split(*gameIDs, ",")
	}

	ctx := context.Background()
	if err := testpicks.Run(ctx, cfg); err != nil {
		logger.Get().Error(ctx, "test run failed", logger.Error(err))
		os.Exit(1)
	}
}
