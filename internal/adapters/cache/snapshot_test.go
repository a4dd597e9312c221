package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/gridstake/pickem/internal/adapters/cache"
	"github.com/gridstake/pickem/internal/domain/model"
	"github.com/gridstake/pickem/pkg/logger"
)

// fakeStore implements cache.Store over a map.
type fakeStore struct {
	data    map[string][]byte
	getErr  error
	setErr  error
	getHits int
	setHits int
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string][]byte{}}
}

func (f *fakeStore) Get(_ context.Context, key string) *redis.StringCmd {
	f.getHits++
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	data, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(data), nil)
}

func (f *fakeStore) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	f.setHits++
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.data[key] = value.([]byte)
	return redis.NewStatusResult("OK", nil)
}

// countingSource records fetches.
type countingSource struct {
	games []model.RawGame
	err   error
	calls int
}

func (s *countingSource) Fetch(_ context.Context, _, _, _ int) ([]model.RawGame, error) {
	s.calls++
	return s.games, s.err
}

func TestSnapshotCache(t *testing.T) {
	_ = logger.Init()
	ctx := context.Background()

	snapshot := []model.RawGame{
		{ID: "g1", HomeScore: "14", AwayScore: "7", Status: "IN_PROGRESS"},
	}

	Convey("Given a cache over a counting source", t, func() {
		store := newFakeStore()
		src := &countingSource{games: snapshot}
		c := cache.New(src, store)

		Convey("When the same week is fetched twice", func() {
			first, err1 := c.Fetch(ctx, 2024, 2, 1)
			second, err2 := c.Fetch(ctx, 2024, 2, 1)

			Convey("Then the source is hit once and results match", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(src.calls, ShouldEqual, 1)
				So(second, ShouldResemble, first)
			})
		})

		Convey("When different weeks are fetched", func() {
			_, _ = c.Fetch(ctx, 2024, 2, 1)
			_, _ = c.Fetch(ctx, 2024, 2, 2)

			Convey("Then each week fetches separately", func() {
				So(src.calls, ShouldEqual, 2)
			})
		})
	})

	Convey("Given redis is unreachable", t, func() {
		store := newFakeStore()
		store.getErr = errors.New("connection refused")
		store.setErr = errors.New("connection refused")
		src := &countingSource{games: snapshot}
		c := cache.New(src, store)

		Convey("Then fetches degrade to the source instead of failing", func() {
			games, err := c.Fetch(ctx, 2024, 2, 1)
			So(err, ShouldBeNil)
			So(games, ShouldResemble, snapshot)
			So(src.calls, ShouldEqual, 1)
		})
	})

	Convey("Given a corrupt cached entry", t, func() {
		store := newFakeStore()
		store.data["scoreboard:2024:2:1"] = []byte("{not json")
		src := &countingSource{games: snapshot}
		c := cache.New(src, store)

		Convey("Then the entry is discarded and the source is fetched", func() {
			games, err := c.Fetch(ctx, 2024, 2, 1)
			So(err, ShouldBeNil)
			So(games, ShouldResemble, snapshot)
			So(src.calls, ShouldEqual, 1)
		})
	})

	Convey("Given the source fails on a cache miss", t, func() {
		store := newFakeStore()
		src := &countingSource{err: errors.New("upstream down")}
		c := cache.New(src, store)

		Convey("Then the failure propagates and nothing is cached", func() {
			_, err := c.Fetch(ctx, 2024, 2, 1)
			So(err, ShouldNotBeNil)
			So(store.setHits, ShouldEqual, 0)
		})
	})
}
