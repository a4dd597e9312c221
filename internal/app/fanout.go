package app

import (
	"context"
	"sync"

	"github.com/gridstake/pickem/internal/domain/model"
	"github.com/gridstake/pickem/internal/domain/scoring"
	"github.com/gridstake/pickem/internal/domain/telemetry"
)

// Fan-out width below which the goroutine overhead is not worth paying.
const fanOutThreshold = 8

// scoreAll computes a ScoredEntrant for every entrant. Entrants have no
// data dependency on each other, so the work fans out across workers that
// share the read-only index and write results by input position; output
// order always matches input order.
func (s *Service) scoreAll(ctx context.Context, order []model.GameID, tiebreaker model.GameID, entrants []model.Entrant, idx telemetry.Index) []model.ScoredEntrant {
	scored := make([]model.ScoredEntrant, len(entrants))

	workers := s.workerCount
	if workers > len(entrants) {
		workers = len(entrants)
	}
	if workers <= 1 || len(entrants) < fanOutThreshold {
		for i, e := range entrants {
			scored[i] = scoreOne(e, order, tiebreaker, idx)
		}
		return scored
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				scored[i] = scoreOne(entrants[i], order, tiebreaker, idx)
			}
		}()
	}

	for i := range entrants {
		select {
		case jobs <- i:
		case <-ctx.Done():
			// Abandoned request: drain nothing, score the rest inline so
			// the result stays complete and deterministic for callers that
			// still read it.
			scored[i] = scoreOne(entrants[i], order, tiebreaker, idx)
		}
	}
	close(jobs)
	wg.Wait()

	return scored
}

// scoreOne derives the live counters and tiebreak distance for one entrant.
func scoreOne(e model.Entrant, order []model.GameID, tiebreaker model.GameID, idx telemetry.Index) model.ScoredEntrant {
	counts := scoring.ScorePicks(e.Picks, order, idx)
	return model.ScoredEntrant{
		Entrant:          e,
		LiveCorrectPicks: counts.CorrectPicks,
		ScoredGames:      counts.ScoredGames,
		TiebreakDistance: scoring.TiebreakDistance(e.TiebreakerPrediction, tiebreaker, idx),
	}
}
