package telemetry_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/gridstake/pickem/internal/domain/model"
	"github.com/gridstake/pickem/internal/domain/telemetry"
)

func TestEvaluate(t *testing.T) {
	Convey("Given raw scoreboard entries", t, func() {
		Convey("When the home side leads", func() {
			g := telemetry.Evaluate(model.RawGame{ID: "g1", HomeScore: "21", AwayScore: "14", Status: "IN_PROGRESS"})

			Convey("Then home is the winner and the game has started", func() {
				So(g.Winner, ShouldEqual, model.WinnerHome)
				So(g.HomeScore, ShouldEqual, 21)
				So(g.AwayScore, ShouldEqual, 14)
				So(g.Started, ShouldBeTrue)
			})
		})

		Convey("When the away side leads", func() {
			g := telemetry.Evaluate(model.RawGame{ID: "g2", HomeScore: "3", AwayScore: "10", Status: "IN_PROGRESS"})

			So(g.Winner, ShouldEqual, model.WinnerAway)
			So(g.Started, ShouldBeTrue)
		})

		Convey("When the score is tied", func() {
			Convey("Then a 0-0 scheduled game has no winner and has not started", func() {
				g := telemetry.Evaluate(model.RawGame{ID: "g3", HomeScore: "0", AwayScore: "0", Status: "SCHEDULED"})
				So(g.Winner, ShouldEqual, model.WinnerNone)
				So(g.Started, ShouldBeFalse)
			})

			Convey("And a tied in-progress game has no winner but has started", func() {
				g := telemetry.Evaluate(model.RawGame{ID: "g4", HomeScore: "7", AwayScore: "7", Status: "IN_PROGRESS"})
				So(g.Winner, ShouldEqual, model.WinnerNone)
				So(g.Started, ShouldBeTrue)
			})
		})

		Convey("When a 0-0 game is no longer scheduled", func() {
			g := telemetry.Evaluate(model.RawGame{ID: "g5", HomeScore: "0", AwayScore: "0", Status: "IN_PROGRESS"})

			Convey("Then the status alone marks it started", func() {
				So(g.Started, ShouldBeTrue)
			})
		})

		Convey("When score fields are missing or non-numeric", func() {
			g := telemetry.Evaluate(model.RawGame{ID: "g6", HomeScore: "", AwayScore: "n/a", Status: "SCHEDULED"})

			Convey("Then they count as zero", func() {
				So(g.HomeScore, ShouldEqual, 0)
				So(g.AwayScore, ShouldEqual, 0)
				So(g.Winner, ShouldEqual, model.WinnerNone)
				So(g.Started, ShouldBeFalse)
			})
		})

		Convey("When the status carries whitespace or lowercase", func() {
			g := telemetry.Evaluate(model.RawGame{ID: "g7", Status: " scheduled "})

			So(g.Status, ShouldEqual, "SCHEDULED")
			So(g.Started, ShouldBeFalse)
		})
	})
}

func TestBuildIndex(t *testing.T) {
	Convey("Given a snapshot with a duplicated game id", t, func() {
		raws := []model.RawGame{
			{ID: "dup", HomeScore: "7", AwayScore: "0", Status: "IN_PROGRESS"},
			{ID: "solo", HomeScore: "0", AwayScore: "3", Status: "IN_PROGRESS"},
			{ID: "dup", HomeScore: "14", AwayScore: "10", Status: "IN_PROGRESS"},
		}

		Convey("When the index is built", func() {
			idx := telemetry.BuildIndex(raws)

			Convey("Then the later entry wins", func() {
				So(idx["dup"].HomeScore, ShouldEqual, 14)
				So(idx["dup"].AwayScore, ShouldEqual, 10)
				So(len(idx), ShouldEqual, 2)
			})
		})

		Convey("When the game list is normalized", func() {
			games := telemetry.Games(raws)

			Convey("Then input order is preserved with duplicates collapsed in place", func() {
				So(len(games), ShouldEqual, 2)
				So(games[0].GameID, ShouldEqual, model.GameID("dup"))
				So(games[0].HomeScore, ShouldEqual, 14)
				So(games[1].GameID, ShouldEqual, model.GameID("solo"))
			})
		})
	})

	Convey("Given an index", t, func() {
		idx := telemetry.BuildIndex([]model.RawGame{
			{ID: "tb", HomeScore: "20", AwayScore: "17", Status: "IN_PROGRESS"},
		})

		Convey("Then ActualTotal sums both sides", func() {
			So(idx.ActualTotal("tb"), ShouldEqual, 37)
		})

		Convey("And a game absent from the snapshot totals zero", func() {
			So(idx.ActualTotal("missing"), ShouldEqual, 0)
		})
	})
}
