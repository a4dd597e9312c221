package scoreboard_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/gridstake/pickem/internal/adapters/scoreboard"
	"github.com/gridstake/pickem/internal/domain/model"
	"github.com/gridstake/pickem/pkg/logger"
)

const scoreboardFixture = `{
  "events": [
    {
      "id": "401671789",
      "competitions": [
        {
          "competitors": [
            {"homeAway": "home", "score": "24", "team": {"abbreviation": "KC"}},
            {"homeAway": "away", "score": "20", "team": {"abbreviation": "BAL"}}
          ],
          "status": {"type": {"name": "STATUS_IN_PROGRESS", "completed": false}}
        }
      ]
    },
    {
      "id": "401671790",
      "competitions": [
        {
          "competitors": [
            {"homeAway": "away", "score": "", "team": {"abbreviation": "NYJ"}},
            {"homeAway": "home", "score": "", "team": {"abbreviation": "BUF"}}
          ],
          "status": {"type": {"name": "STATUS_SCHEDULED", "completed": false}}
        }
      ]
    },
    {
      "id": "401671791",
      "competitions": []
    }
  ]
}`

func TestClientFetch(t *testing.T) {
	_ = logger.Init()
	ctx := context.Background()

	Convey("Given a stub scoreboard upstream", t, func() {
		var gotPath, gotQuery string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.RawQuery
			_, _ = w.Write([]byte(scoreboardFixture))
		}))
		defer srv.Close()

		client := scoreboard.NewClient(
			scoreboard.WithBaseURL(srv.URL),
			scoreboard.WithBreakerDisabled(),
		)

		Convey("When a week is fetched", func() {
			games, err := client.Fetch(ctx, 2024, 2, 3)

			Convey("Then the request targets the right scoreboard", func() {
				So(err, ShouldBeNil)
				So(gotPath, ShouldEqual, "/football/nfl/scoreboard")
				So(gotQuery, ShouldContainSubstring, "dates=2024")
				So(gotQuery, ShouldContainSubstring, "seasontype=2")
				So(gotQuery, ShouldContainSubstring, "week=3")
			})

			Convey("Then decoded games carry normalized fields", func() {
				So(err, ShouldBeNil)
				So(len(games), ShouldEqual, 2)

				So(games[0].ID, ShouldEqual, model.GameID("401671789"))
				So(games[0].HomeScore, ShouldEqual, "24")
				So(games[0].AwayScore, ShouldEqual, "20")
				So(games[0].HomeTeam, ShouldEqual, "KC")
				So(games[0].AwayTeam, ShouldEqual, "BAL")
				So(games[0].Status, ShouldEqual, "IN_PROGRESS")

				So(games[1].Status, ShouldEqual, "SCHEDULED")
				So(games[1].HomeScore, ShouldEqual, "")
			})
		})
	})

	Convey("Given an upstream returning a server error", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		client := scoreboard.NewClient(
			scoreboard.WithBaseURL(srv.URL),
			scoreboard.WithBreakerDisabled(),
		)

		Convey("Then the fetch fails as upstream unavailable", func() {
			_, err := client.Fetch(ctx, 2024, 2, 3)
			So(err, ShouldWrap, scoreboard.ErrUpstreamUnavailable)
		})
	})

	Convey("Given an upstream returning garbage", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html>maintenance</html>"))
		}))
		defer srv.Close()

		client := scoreboard.NewClient(
			scoreboard.WithBaseURL(srv.URL),
			scoreboard.WithBreakerDisabled(),
		)

		Convey("Then the fetch fails rather than returning a partial result", func() {
			games, err := client.Fetch(ctx, 2024, 2, 3)
			So(err, ShouldWrap, scoreboard.ErrUpstreamUnavailable)
			So(games, ShouldBeNil)
		})
	})

	Convey("Given an upstream slower than the timeout", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte(scoreboardFixture))
		}))
		defer srv.Close()

		client := scoreboard.NewClient(
			scoreboard.WithBaseURL(srv.URL),
			scoreboard.WithTimeout(20*time.Millisecond),
			scoreboard.WithBreakerDisabled(),
		)

		Convey("Then the fetch times out as upstream unavailable", func() {
			_, err := client.Fetch(ctx, 2024, 2, 3)
			So(err, ShouldWrap, scoreboard.ErrUpstreamUnavailable)
		})
	})

	Convey("Given repeated upstream failures with the breaker enabled", t, func() {
		var hits int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			hits++
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := scoreboard.NewClient(scoreboard.WithBaseURL(srv.URL))

		Convey("Then the breaker opens and stops hitting the network", func() {
			for i := 0; i < 10; i++ {
				_, err := client.Fetch(ctx, 2024, 2, 3)
				So(err, ShouldWrap, scoreboard.ErrUpstreamUnavailable)
			}
			So(hits, ShouldBeLessThan, 10)
		})
	})
}
