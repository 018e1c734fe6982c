package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vodhub/vodhub/internal/cache"
	"github.com/vodhub/vodhub/source"
	"github.com/vodhub/vodhub/storage"
)

type call struct {
	Op       string
	Endpoint string
	Arg      string
	Page     int
	PageSize int
}

// fakeClient serves canned payloads keyed by endpoint and records every call.
type fakeClient struct {
	mu      sync.Mutex
	calls   []call
	details map[string][]source.RawRecord
	results map[string][]source.RawRecord
	lists   map[int][]source.RawRecord
	failing map[int]error
	block   map[int]chan struct{}
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		details: map[string][]source.RawRecord{},
		results: map[string][]source.RawRecord{},
		lists:   map[int][]source.RawRecord{},
		failing: map[int]error{},
		block:   map[int]chan struct{}{},
	}
}

func (f *fakeClient) record(c call) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
}

func (f *fakeClient) Calls() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call{}, f.calls...)
}

func (f *fakeClient) List(ctx context.Context, endpoint string, categoryID, page, pageSize int) (*source.Payload, error) {
	f.record(call{Op: "list", Endpoint: endpoint, Arg: fmt.Sprint(categoryID), Page: page, PageSize: pageSize})

	if ch, ok := f.block[categoryID]; ok {
		<-ch
	}
	if err, ok := f.failing[categoryID]; ok {
		return nil, err
	}

	list := f.lists[categoryID]
	return &source.Payload{Code: 1, Page: source.FlexInt(page), PageCount: 3, Total: source.FlexInt(len(list) * 3), List: list}, nil
}

func (f *fakeClient) Search(ctx context.Context, endpoint, query string, page, pageSize int) (*source.Payload, error) {
	f.record(call{Op: "search", Endpoint: endpoint, Arg: query, Page: page, PageSize: pageSize})
	list := f.results[endpoint+"|"+query]
	return &source.Payload{Code: 1, Page: 1, PageCount: 1, Total: source.FlexInt(len(list)), List: list}, nil
}

func (f *fakeClient) Detail(ctx context.Context, endpoint, id string) (*source.Payload, error) {
	f.record(call{Op: "detail", Endpoint: endpoint, Arg: id})
	return &source.Payload{Code: 1, List: f.details[endpoint+"|"+id]}, nil
}

func raw(id, name string) source.RawRecord {
	return source.RawRecord{
		ID:      source.FlexString(id),
		Name:    name,
		PlayURL: "第01集$https://v.example/" + id + "/1.m3u8#第02集$https://v.example/" + id + "/2.m3u8",
	}
}

func items(n int) []source.RawRecord {
	list := make([]source.RawRecord, n)
	for i := range list {
		list[i] = raw(fmt.Sprint(1000+i), fmt.Sprintf("电影%d", i))
	}
	return list
}

var (
	feifan = source.Source{Key: "feifan", Name: "非凡云", Endpoint: "http://feifan.test/api.php/provide/vod/"}
	moyu   = source.Source{Key: "moyu", Name: "摸鱼云", Endpoint: "http://moyu.test/api.php/provide/vod/"}
	movies = source.Category{Slug: "movies", ID: 6, Title: "电影"}
	tv     = source.Category{Slug: "tv", ID: 13, Title: "电视剧"}
	anime  = source.Category{Slug: "anime", ID: 60, Title: "动漫"}
)

func newRegistry(client source.Client, opts ...Option) *Registry {
	catalog, err := source.NewCatalog(feifan, moyu)
	if err != nil {
		panic(err)
	}
	return New(catalog, client, opts...)
}

func TestResolve(t *testing.T) {
	Convey("Given a registry over two sources", t, func() {
		client := newFakeClient()
		reg := newRegistry(client)
		ctx := context.Background()

		client.details[feifan.Endpoint+"|52937"] = []source.RawRecord{raw("52937", "斗破苍穹年番")}
		client.results[moyu.Endpoint+"|斗破苍穹年番"] = []source.RawRecord{raw("881", "斗破苍穹年番"), raw("882", "斗破苍穹年番 特别篇")}

		Convey("ResolveByID fetches the detail record with a decoded playlist", func() {
			record, err := reg.ResolveByID(ctx, "feifan", "52937")
			So(err, ShouldBeNil)
			So(record.Title, ShouldEqual, "斗破苍穹年番")
			So(record.Source, ShouldEqual, "feifan")
			So(record.Playlist.Count(), ShouldEqual, 2)
			So(client.Calls()[0].Op, ShouldEqual, "detail")
		})

		Convey("ResolveByID reports an empty detail list as not found", func() {
			_, err := reg.ResolveByID(ctx, "feifan", "404")
			So(errors.Is(err, source.ErrNotFound), ShouldBeTrue)
		})

		Convey("Unknown sources are rejected before any request", func() {
			_, err := reg.ResolveByID(ctx, "nope", "1")
			So(errors.Is(err, source.ErrUnknownSource), ShouldBeTrue)
			So(client.Calls(), ShouldBeEmpty)
		})

		Convey("ResolveByTitle searches the title before the first space", func() {
			record, err := reg.ResolveByTitle(ctx, "moyu", "斗破苍穹年番 HD")
			So(err, ShouldBeNil)
			So(client.Calls()[0].Arg, ShouldEqual, "斗破苍穹年番")
			So(record.ID, ShouldEqual, "881")
			So(record.Source, ShouldEqual, "moyu")
		})

		Convey("Full-width spaces also delimit the query", func() {
			_, _ = reg.ResolveByTitle(ctx, "moyu", "斗破苍穹年番　第五季")
			So(client.Calls()[0].Arg, ShouldEqual, "斗破苍穹年番")
		})

		Convey("ResolveByTitle reports no hits as not found", func() {
			_, err := reg.ResolveByTitle(ctx, "feifan", "不存在的片名")
			So(errors.Is(err, source.ErrNotFound), ShouldBeTrue)
		})

		Convey("Switch resolves by title and never reuses the id", func() {
			displayed, err := reg.ResolveByID(ctx, "feifan", "52937")
			So(err, ShouldBeNil)

			switched, err := reg.Switch(ctx, "moyu", displayed)
			So(err, ShouldBeNil)
			So(switched.ID, ShouldEqual, "881")

			calls := client.Calls()
			So(calls[1].Op, ShouldEqual, "search")
			So(calls[1].Endpoint, ShouldEqual, moyu.Endpoint)
			So(calls[1].Arg, ShouldEqual, "斗破苍穹年番")
		})

		Convey("Switch with nothing displayed is not found", func() {
			_, err := reg.Switch(ctx, "moyu", nil)
			So(errors.Is(err, source.ErrNotFound), ShouldBeTrue)
		})

		Convey("Transport errors pass through unchanged", func() {
			client.failing[movies.ID] = fmt.Errorf("%w: boom", source.ErrTransport)
			_, err := reg.ListByCategory(ctx, "feifan", movies, 1, 12)
			So(errors.Is(err, source.ErrTransport), ShouldBeTrue)
		})
	})
}

func TestMatchers(t *testing.T) {
	Convey("Given candidate records", t, func() {
		candidates := []source.Record{
			{ID: "1", Title: "海贼王剧场版"},
			{ID: "2", Title: "海贼王"},
			{ID: "3", Title: "海贼王 红发歌姬"},
		}

		Convey("The prefix matcher picks the first result", func() {
			So(PrefixMatcher{}.Pick("海贼王", candidates).ID, ShouldEqual, "1")
		})

		Convey("The fuzzy matcher prefers an exact title", func() {
			So(FuzzyMatcher{}.Pick("海贼王", candidates).ID, ShouldEqual, "2")
		})

		Convey("The fuzzy matcher ranks by closeness to the full title", func() {
			So(FuzzyMatcher{}.Pick("海贼王 红发歌姬 HD", candidates).ID, ShouldEqual, "3")
		})

		Convey("The fuzzy matcher falls back to the first result", func() {
			So(FuzzyMatcher{}.Pick("火影忍者", candidates).ID, ShouldEqual, "1")
		})

		Convey("Queries are cut at the first ascii or full-width space", func() {
			So(PrefixMatcher{}.Query("斗破苍穹年番 HD"), ShouldEqual, "斗破苍穹年番")
			So(PrefixMatcher{}.Query("斗破苍穹年番　第二季"), ShouldEqual, "斗破苍穹年番")
			So(FuzzyMatcher{}.Query("海贼王"), ShouldEqual, "海贼王")
		})

		Convey("Leading whitespace is skipped before cutting", func() {
			So(PrefixMatcher{}.Query(" 前导 空格"), ShouldEqual, "前导")
			So(PrefixMatcher{}.Query("　前导"), ShouldEqual, "前导")
		})

		Convey("Matchers are looked up by name", func() {
			m, err := MatcherByName("fuzzy")
			So(err, ShouldBeNil)
			So(m, ShouldHaveSameTypeAs, FuzzyMatcher{})

			m, err = MatcherByName("")
			So(err, ShouldBeNil)
			So(m, ShouldHaveSameTypeAs, PrefixMatcher{})

			_, err = MatcherByName("regex")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestListByCategory(t *testing.T) {
	Convey("Given a registry with a listing cache", t, func() {
		now := time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)
		store := storage.NewMemory()
		listings := cache.New[source.Listing](store, time.Hour, cache.WithClock(func() time.Time { return now }))

		client := newFakeClient()
		client.lists[movies.ID] = items(12)
		reg := newRegistry(client, WithListingCache(listings), WithPageSize(12))
		ctx := context.Background()

		Convey("The first call hits the provider and fills the cache", func() {
			listing, err := reg.ListByCategory(ctx, "feifan", movies, 1, 0)
			So(err, ShouldBeNil)
			So(listing.Items, ShouldHaveLength, 12)
			So(listing.TotalPages, ShouldEqual, 3)
			So(client.Calls()[0].PageSize, ShouldEqual, 12)

			keys, _ := store.Keys()
			So(keys, ShouldContain, "movies_cache:feifan:1:12")

			Convey("A second call within the hour is served from the cache", func() {
				now = now.Add(59 * time.Minute)
				again, err := reg.ListByCategory(ctx, "feifan", movies, 1, 12)
				So(err, ShouldBeNil)
				So(again.Items, ShouldHaveLength, 12)
				So(client.Calls(), ShouldHaveLength, 1)
			})

			Convey("After the hour the provider is queried again", func() {
				now = now.Add(61 * time.Minute)
				_, err := reg.ListByCategory(ctx, "feifan", movies, 1, 12)
				So(err, ShouldBeNil)
				So(client.Calls(), ShouldHaveLength, 2)
			})

			Convey("Pages and sources are cached separately", func() {
				_, _ = reg.ListByCategory(ctx, "feifan", movies, 2, 12)
				_, _ = reg.ListByCategory(ctx, "moyu", movies, 1, 12)
				So(client.Calls(), ShouldHaveLength, 3)
			})
		})

		Convey("An empty category is not found and not cached", func() {
			_, err := reg.ListByCategory(ctx, "feifan", tv, 1, 12)
			So(errors.Is(err, source.ErrNotFound), ShouldBeTrue)
			keys, _ := store.Keys()
			So(keys, ShouldBeEmpty)
		})

		Convey("Search pages are never cached", func() {
			client.results[feifan.Endpoint+"|电影"] = items(3)
			for range 2 {
				listing, err := reg.Search(ctx, "feifan", "电影", 0, 0)
				So(err, ShouldBeNil)
				So(listing.Items, ShouldHaveLength, 3)
			}
			So(client.Calls(), ShouldHaveLength, 2)
			So(client.Calls()[0].Page, ShouldEqual, 1)
		})
	})
}

func TestLanding(t *testing.T) {
	Convey("Given three landing sections", t, func() {
		client := newFakeClient()
		client.lists[movies.ID] = items(12)
		client.lists[anime.ID] = items(4)
		client.failing[tv.ID] = fmt.Errorf("%w: timeout", source.ErrTransport)
		reg := newRegistry(client)

		Convey("One failing section does not affect the others", func() {
			results := reg.Landing(context.Background(), "feifan", []source.Category{movies, tv, anime}, 12)
			So(results, ShouldHaveLength, 3)

			So(results[0].Err, ShouldBeNil)
			So(results[0].Listing.Items, ShouldHaveLength, 12)
			So(errors.Is(results[1].Err, source.ErrTransport), ShouldBeTrue)
			So(results[1].Listing, ShouldBeNil)
			So(results[2].Listing.Items, ShouldHaveLength, 4)
		})

		Convey("Results arriving after cancellation are discarded", func() {
			release := make(chan struct{})
			client.block[anime.ID] = release

			ctx, cancel := context.WithCancel(context.Background())
			go func() {
				for len(client.Calls()) < 3 {
					time.Sleep(time.Millisecond)
				}
				cancel()
				close(release)
			}()

			results := reg.Landing(ctx, "feifan", []source.Category{movies, tv, anime}, 12)
			So(results[2].Listing, ShouldBeNil)
			So(errors.Is(results[2].Err, context.Canceled), ShouldBeTrue)
		})
	})
}
