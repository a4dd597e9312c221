package scoreboard

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gridstake/pickem/internal/domain/model"
)

// The feed is a weakly-typed external payload. These structs are the typed
// parse boundary: everything downstream of decodeScoreboard works with
// model.RawGame and never touches the provider's shape.

type scoreboardPayload struct {
	Events []scoreboardEvent `json:"events"`
}

type scoreboardEvent struct {
	ID           string                 `json:"id"`
	Competitions []scoreboardCompetiton `json:"competitions"`
}

type scoreboardCompetiton struct {
	Competitors []scoreboardCompetitor `json:"competitors"`
	Status      scoreboardStatus       `json:"status"`
}

type scoreboardCompetitor struct {
	HomeAway string         `json:"homeAway"`
	Score    string         `json:"score"`
	Team     scoreboardTeam `json:"team"`
}

type scoreboardTeam struct {
	Abbreviation string `json:"abbreviation"`
}

type scoreboardStatus struct {
	Type scoreboardStatusType `json:"type"`
}

type scoreboardStatusType struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

const statusPrefix = "STATUS_"

// decodeScoreboard parses a full scoreboard payload into raw games. A body
// that is not valid JSON for the expected shape fails the whole fetch; there
// is no partial result. Events without a competition entry are skipped.
func decodeScoreboard(r io.Reader) ([]model.RawGame, error) {
	var payload scoreboardPayload
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding scoreboard payload: %w", err)
	}

	games := make([]model.RawGame, 0, len(payload.Events))
	for _, ev := range payload.Events {
		if len(ev.Competitions) == 0 {
			continue
		}
		comp := ev.Competitions[0]

		raw := model.RawGame{
			ID:        model.GameID(ev.ID),
			Status:    normalizeStatus(comp.Status.Type.Name),
			Completed: comp.Status.Type.Completed,
		}
		for _, c := range comp.Competitors {
			switch c.HomeAway {
			case "home":
				raw.HomeScore = c.Score
				raw.HomeTeam = c.Team.Abbreviation
			case "away":
				raw.AwayScore = c.Score
				raw.AwayTeam = c.Team.Abbreviation
			}
		}
		games = append(games, raw)
	}
	return games, nil
}

// normalizeStatus strips the provider's STATUS_ prefix so a scheduled game
// reads "SCHEDULED" regardless of feed vintage.
func normalizeStatus(name string) string {
	return strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(name)), statusPrefix)
}
