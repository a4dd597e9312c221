package testpicks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gridstake/pickem/internal/domain/model"
	"github.com/gridstake/pickem/pkg/logger"
)

// Run generates one contest, submits it, and verifies the response ranking.
func Run(ctx context.Context, cfg *Config) error {
	log := logger.Get().Named("testpicks")

	contest := GenerateContest(cfg)
	log.Info(ctx, "generated contest",
		logger.Int("games", len(contest.GameIDs)),
		logger.Int("entrants", len(contest.Picks)),
	)

	body, err := json.Marshal(contest)
	if err != nil {
		return fmt.Errorf("marshaling contest: %w", err)
	}

	client := &http.Client{Timeout: cfg.Timeout}
	url := cfg.BaseURL + "/v1/leaderboard/live"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("submitting contest: %w", err)
	}
	defer resp.Body.Close()
	elapsed := time.Since(start)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var board model.Leaderboard
	if err := json.NewDecoder(resp.Body).Decode(&board); err != nil {
		return fmt.Errorf("decoding leaderboard: %w", err)
	}

	if err := verifyRanking(board.Entrants, len(contest.Picks)); err != nil {
		return err
	}

	log.Info(ctx, "leaderboard verified",
		logger.Int("ranked", len(board.Entrants)),
		logger.Int("games", len(board.Games)),
		logger.Any("latency", elapsed),
	)
	return nil
}

// verifyRanking checks that ranks are exactly 1..N in output order and that
// correct-pick counts never increase down the board.
func verifyRanking(ranked []model.RankedEntrant, want int) error {
	if len(ranked) != want {
		return fmt.Errorf("expected %d ranked entrants, got %d", want, len(ranked))
	}
	prevCorrect := -1
	for i, e := range ranked {
		if e.Rank != i+1 {
			return fmt.Errorf("rank gap at position %d: got rank %d", i, e.Rank)
		}
		if prevCorrect >= 0 && e.LiveCorrectPicks > prevCorrect {
			return fmt.Errorf("ordering violation at rank %d: %d correct picks after %d",
				e.Rank, e.LiveCorrectPicks, prevCorrect)
		}
		prevCorrect = e.LiveCorrectPicks
	}
	return nil
}
