package cache

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vodhub/vodhub/storage"
)

type clock struct {
	t time.Time
}

func (c *clock) Now() time.Time          { return c.t }
func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }
func newClock() *clock                   { return &clock{t: time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)} }

func TestTTL(t *testing.T) {
	Convey("Given an empty cache with a one hour TTL", t, func() {
		store := storage.NewMemory()
		clk := newClock()
		c := New[[]string](store, time.Hour, WithClock(clk.Now))

		Convey("A key never set is absent", func() {
			So(c.Get("movies_cache").IsAbsent(), ShouldBeTrue)
		})

		Convey("When twelve items are cached", func() {
			items := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}
			So(c.Set("movies_cache", items), ShouldBeNil)

			Convey("They are returned unchanged within the hour", func() {
				clk.Advance(59 * time.Minute)
				got, ok := c.Get("movies_cache").Get()
				So(ok, ShouldBeTrue)
				So(got, ShouldResemble, items)
			})

			Convey("They are absent after 61 minutes and the key is gone from storage", func() {
				clk.Advance(61 * time.Minute)
				So(c.Get("movies_cache").IsAbsent(), ShouldBeTrue)

				_, ok, err := store.Get("movies_cache")
				So(err, ShouldBeNil)
				So(ok, ShouldBeFalse)
			})

			Convey("They are absent at exactly the TTL", func() {
				clk.Advance(time.Hour)
				So(c.Get("movies_cache").IsAbsent(), ShouldBeTrue)
			})

			Convey("Set overwrites and restarts the window", func() {
				clk.Advance(50 * time.Minute)
				So(c.Set("movies_cache", []string{"fresh"}), ShouldBeNil)
				clk.Advance(50 * time.Minute)
				got, ok := c.Get("movies_cache").Get()
				So(ok, ShouldBeTrue)
				So(got, ShouldResemble, []string{"fresh"})
			})

			Convey("Delete drops the entry", func() {
				So(c.Delete("movies_cache"), ShouldBeNil)
				So(c.Get("movies_cache").IsAbsent(), ShouldBeTrue)
			})
		})

		Convey("A corrupt entry is absent and evicted", func() {
			So(store.Set("tv_cache", "{oops"), ShouldBeNil)
			So(c.Get("tv_cache").IsAbsent(), ShouldBeTrue)

			_, ok, _ := store.Get("tv_cache")
			So(ok, ShouldBeFalse)
		})

		Convey("Clear drops cache keys and keeps histories", func() {
			So(c.Set("movies_cache", []string{"a"}), ShouldBeNil)
			So(c.Set("anime_cache", []string{"b"}), ShouldBeNil)
			So(store.Set("watchHistory", "[]"), ShouldBeNil)

			n, err := c.Clear()
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 2)

			keys, _ := store.Keys()
			So(keys, ShouldResemble, []string{"watchHistory"})
		})
	})

	Convey("Given a prefixed cache", t, func() {
		store := storage.NewMemory()
		c := New[int](store, 0, WithPrefix("listing:"))

		Convey("The TTL defaults to one hour", func() {
			So(c.TTL(), ShouldEqual, DefaultTTL)
		})

		Convey("Keys are namespaced and Clear only touches the namespace", func() {
			So(c.Set("movies_cache", 1), ShouldBeNil)
			So(store.Set("movies_cache", "untouched"), ShouldBeNil)

			_, ok, _ := store.Get("listing:movies_cache")
			So(ok, ShouldBeTrue)

			n, err := c.Clear()
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 1)

			v, ok, _ := store.Get("movies_cache")
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, "untouched")
		})
	})
}
