// Package app provides the core business service that implements the
// dependencies required by the HTTP API.
package app

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gridstake/pickem/internal/adapters/scoreboard"
	"github.com/gridstake/pickem/internal/domain/model"
	"github.com/gridstake/pickem/internal/domain/ranking"
	"github.com/gridstake/pickem/internal/domain/telemetry"
	"github.com/gridstake/pickem/pkg/logger"
	"github.com/gridstake/pickem/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultMaxEntrants = 500
)

// LiveRequest carries everything one live leaderboard computation needs:
// the static contest configuration, the roster, and the scoreboard week to
// poll.
type LiveRequest struct {
	Config     model.ContestConfig
	Entrants   []model.Entrant
	Year       int
	SeasonType int
	Week       int
}

// Validate checks required fields. Failures wrap ErrInvalidRequest and must
// not be retried by the caller. An empty roster and an empty game list are
// both valid; a nil game list is not, since the field is required on the
// wire.
func (r LiveRequest) Validate(maxEntrants int) error {
	switch {
	case r.Config.GameIDs == nil:
		return fmt.Errorf("%w: missing game_ids", ErrInvalidRequest)
	case r.Year <= 0:
		return fmt.Errorf("%w: missing or invalid year", ErrInvalidRequest)
	case r.SeasonType <= 0:
		return fmt.Errorf("%w: missing or invalid season_type", ErrInvalidRequest)
	case r.Week <= 0:
		return fmt.Errorf("%w: missing or invalid week", ErrInvalidRequest)
	}
	if maxEntrants > 0 && len(r.Entrants) > maxEntrants {
		return fmt.Errorf("%w: roster exceeds %d entrants", ErrInvalidRequest, maxEntrants)
	}
	for _, e := range r.Entrants {
		for _, p := range e.Picks {
			if p != model.PickHome && p != model.PickAway {
				return fmt.Errorf("%w: entrant %s has pick value %d", ErrInvalidRequest, e.EntrantID, p)
			}
		}
	}
	return nil
}

// Service computes live leaderboards. Compute is pure; Live adds the one
// outbound fetch in front of it.
type Service struct {
	mu sync.RWMutex

	// Core components
	source scoreboard.Source

	// Configuration
	workerCount int
	maxEntrants int

	// State
	started bool

	// Counters for GetStats
	computations int64
	lastEntrants int64
	lastGames    int64

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSource injects the snapshot source. When unset, Start wires a default
// scoreboard client.
func WithSource(src scoreboard.Source) Option {
	return func(s *Service) {
		if src != nil {
			s.source = src
		}
	}
}

// WithWorkerCount sets the fan-out width for per-entrant scoring.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithMaxEntrants caps the roster size accepted by Live. Zero disables the
// cap.
func WithMaxEntrants(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.maxEntrants = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount: runtime.NumCPU(),
		maxEntrants: defaultMaxEntrants,
		logger:      nil, // set on Start when not injected
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start finalizes wiring. It is idempotent.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("leaderboard")
	}
	if s.source == nil {
		s.source = scoreboard.NewClient(scoreboard.WithLogger(s.logger))
	}

	metrics.UpdateWorkerCount(s.workerCount)
	s.started = true
	s.logger.Info(ctx, "leaderboard service started",
		logger.Int("workers", s.workerCount),
		logger.Int("maxEntrants", s.maxEntrants),
	)
	return nil
}

// Stop releases the service. The compute path holds no resources, so this
// only flips state.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = false
}

// Live validates the request, fetches the snapshot for the requested week,
// and computes the leaderboard. Fetch failures surface whole; a partial
// leaderboard is never returned.
func (s *Service) Live(ctx context.Context, req LiveRequest) (model.Leaderboard, error) {
	s.mu.RLock()
	started, source := s.started, s.source
	s.mu.RUnlock()
	if !started || source == nil {
		return model.Leaderboard{}, ErrNotStarted
	}

	if err := req.Validate(s.maxEntrants); err != nil {
		return model.Leaderboard{}, err
	}

	raws, err := source.Fetch(ctx, req.Year, req.SeasonType, req.Week)
	if err != nil {
		return model.Leaderboard{}, err
	}

	return s.Compute(ctx, req.Config, req.Entrants, raws)
}

// Compute is the pure core: identical inputs yield identical output. It
// builds the telemetry index once, scores every entrant independently, and
// assembles the ranking.
func (s *Service) Compute(ctx context.Context, cfg model.ContestConfig, entrants []model.Entrant, raws []model.RawGame) (model.Leaderboard, error) {
	start := time.Now()

	idx := telemetry.BuildIndex(raws)
	games := telemetry.Games(raws)

	tiebreaker := cfg.EffectiveTiebreaker()
	tiebreakActive := idx.ActualTotal(tiebreaker) > 0

	scored := s.scoreAll(ctx, cfg.GameIDs, tiebreaker, entrants, idx)
	ranked := ranking.Assemble(scored, tiebreakActive)

	atomic.AddInt64(&s.computations, 1)
	atomic.StoreInt64(&s.lastEntrants, int64(len(entrants)))
	atomic.StoreInt64(&s.lastGames, int64(len(games)))
	metrics.RecordComputation()
	metrics.RecordComputationLatency(float64(time.Since(start).Milliseconds()))
	metrics.RecordEntrantsScored(len(entrants))

	return model.Leaderboard{Entrants: ranked, Games: games}, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"started":      s.started,
		"workerCount":  s.workerCount,
		"maxEntrants":  s.maxEntrants,
		"computations": atomic.LoadInt64(&s.computations),
		"lastEntrants": atomic.LoadInt64(&s.lastEntrants),
		"lastGames":    atomic.LoadInt64(&s.lastGames),
	}
}
