package testpicks

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"

	"github.com/gridstake/pickem/internal/domain/model"
)

// Tiebreaker predictions cluster around a realistic combined score.
const (
	tiebreakerBase  = 30
	tiebreakerRange = 30
)

// randomInt returns a random int in [0, n) using crypto/rand.
func randomInt(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// Contest is one generated request payload.
type Contest struct {
	GameIDs          []model.GameID  `json:"game_ids"`
	TiebreakerGameID model.GameID    `json:"tiebreaker_game_id"`
	Picks            []model.Entrant `json:"picks"`
	Year             int             `json:"year"`
	SeasonType       int             `json:"season_type"`
	Week             int             `json:"week"`
}

// GenerateContest builds a contest with unique entrant ids and uniformly
// random pick vectors. When cfg.GameIDs is empty the game ids are synthetic
// uuids, which the engine scores as missing telemetry.
func GenerateContest(cfg *Config) Contest {
	gameIDs := make([]model.GameID, 0, cfg.NumGames)
	if len(cfg.GameIDs) > 0 {
		for _, id := range cfg.GameIDs {
			gameIDs = append(gameIDs, model.GameID(id))
		}
	} else {
		for i := 0; i < cfg.NumGames; i++ {
			gameIDs = append(gameIDs, model.GameID(uuid.New().String()))
		}
	}

	entrants := make([]model.Entrant, cfg.NumEntrants)
	for i := range entrants {
		picks := make([]model.Pick, len(gameIDs))
		for j := range picks {
			picks[j] = model.Pick(randomInt(2))
		}
		entrants[i] = model.Entrant{
			EntrantID:            uuid.New().String(),
			Owner:                "0x" + uuid.New().String()[:8],
			Picks:                picks,
			TiebreakerPrediction: tiebreakerBase + randomInt(tiebreakerRange),
		}
	}

	var tiebreaker model.GameID
	if len(gameIDs) > 0 {
		tiebreaker = gameIDs[len(gameIDs)-1]
	}

	return Contest{
		GameIDs:          gameIDs,
		TiebreakerGameID: tiebreaker,
		Picks:            entrants,
		Year:             cfg.Year,
		SeasonType:       cfg.SeasonType,
		Week:             cfg.Week,
	}
}
