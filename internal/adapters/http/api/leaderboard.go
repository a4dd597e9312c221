package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gridstake/pickem/internal/adapters/scoreboard"
	"github.com/gridstake/pickem/internal/app"
	"github.com/gridstake/pickem/internal/domain/model"
)

// liveRequest mirrors the wire schema for POST /v1/leaderboard/live.
type liveRequest struct {
	GameIDs          []model.GameID  `json:"game_ids"`
	TiebreakerGameID model.GameID    `json:"tiebreaker_game_id"`
	Picks            []model.Entrant `json:"picks"`
	Year             int             `json:"year"`
	SeasonType       int             `json:"season_type"`
	Week             int             `json:"week"`
}

func (r liveRequest) validate() error {
	switch {
	case r.GameIDs == nil:
		return errors.New("missing game_ids")
	case r.Picks == nil:
		return errors.New("missing picks")
	case r.Year <= 0:
		return errors.New("missing or invalid year")
	case r.SeasonType <= 0:
		return errors.New("missing or invalid season_type")
	case r.Week <= 0:
		return errors.New("missing or invalid week")
	}
	return nil
}

// LeaderboardHandler handles live leaderboard requests.
type LeaderboardHandler struct {
	deps Dependencies
}

// NewLeaderboardHandler creates a new leaderboard handler.
func NewLeaderboardHandler(deps Dependencies) *LeaderboardHandler {
	return &LeaderboardHandler{deps: deps}
}

// HandleLive handles POST /v1/leaderboard/live requests. The response is
// either a complete leaderboard or an error envelope; partial results are
// never emitted. Upstream failures map to 502 so pollers know to retry on
// their own cadence.
func (h *LeaderboardHandler) HandleLive(w http.ResponseWriter, r *http.Request) {
	const op = "api.leaderboard_live"

	var req liveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	board, err := h.deps.Live(r.Context(), app.LiveRequest{
		Config: model.ContestConfig{
			GameIDs:          req.GameIDs,
			TiebreakerGameID: req.TiebreakerGameID,
		},
		Entrants:   req.Picks,
		Year:       req.Year,
		SeasonType: req.SeasonType,
		Week:       req.Week,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidRequest):
			writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, err))
		case errors.Is(err, scoreboard.ErrUpstreamUnavailable):
			writeError(w, http.StatusBadGateway, "upstream_unavailable", Wrap(op, err))
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		}
		return
	}
	writeJSON(w, http.StatusOK, board)
}
