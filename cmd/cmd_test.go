package cmd

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vodhub/vodhub/config"
	"github.com/vodhub/vodhub/history"
	"github.com/vodhub/vodhub/key"
	"github.com/vodhub/vodhub/playlist"
	"github.com/vodhub/vodhub/query"
	"github.com/vodhub/vodhub/source"
	"github.com/vodhub/vodhub/storage"
	"github.com/vodhub/vodhub/where"
)

func TestStoragePath(t *testing.T) {
	Convey("Given a storage backend", t, func() {
		t.Setenv(where.EnvConfigPath, t.TempDir())

		Convey("The bolt backend should use the database file", func() {
			So(filepath.Base(storagePath(storage.BackendBolt)), ShouldEqual, "storage.db")
			So(filepath.Base(storagePath("BOLT")), ShouldEqual, "storage.db")
		})

		Convey("Every other backend should use the json file", func() {
			So(filepath.Base(storagePath(storage.BackendFile)), ShouldEqual, "storage.json")
		})
	})
}

func TestParsePicker(t *testing.T) {
	records := []source.Record{{ID: "1", Title: "斗破苍穹"}, {ID: "2", Title: "斗破苍穹 年番"}, {ID: "3", Title: "斗罗大陆"}}

	Convey("Given a --pick flag", t, func() {
		Convey("An empty flag should not pick", func() {
			So(parsePicker("", "斗破苍穹").IsPresent(), ShouldBeFalse)
		})

		Convey("exact without a value should match the query", func() {
			picked, ok := parsePicker("exact", "斗破苍穹 年番").MustGet()(records)
			So(ok, ShouldBeTrue)
			So(picked.ID, ShouldEqual, "2")
		})

		Convey("index should take its value after the colon", func() {
			picked, ok := parsePicker("index:2", "斗").MustGet()(records)
			So(ok, ShouldBeTrue)
			So(picked.ID, ShouldEqual, "3")
		})

		Convey("last should pick the last result", func() {
			picked, ok := parsePicker("last", "").MustGet()(records)
			So(ok, ShouldBeTrue)
			So(picked.ID, ShouldEqual, "3")
		})
	})
}

func TestParseEpisodes(t *testing.T) {
	episodes := playlist.Decode("第01集$a#第02集$b#第03集$c").Episodes

	Convey("Given an --episodes flag", t, func() {
		Convey("An empty flag should not filter", func() {
			So(parseEpisodes("").IsPresent(), ShouldBeFalse)
		})

		Convey("A range should be inclusive and 1-based", func() {
			filtered := parseEpisodes("2-3").MustGet()(episodes)
			So(filtered, ShouldHaveLength, 2)
			So(filtered[0].Label, ShouldEqual, "第02集")
		})
	})
}

func TestParseValue(t *testing.T) {
	Convey("Given a configuration field", t, func() {
		Convey("Values should take the type of the default", func() {
			v, err := parseValue(config.Default[key.LogsMaxSize], []string{"20"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 20)

			v, err = parseValue(config.Default[key.PlayerOpen], []string{"false"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, false)

			v, err = parseValue(config.Default[key.SourcesOrder], []string{"feifan", "moyu"})
			So(err, ShouldBeNil)
			So(v, ShouldResemble, []string{"feifan", "moyu"})
		})

		Convey("Duration fields should reject other strings", func() {
			_, err := parseValue(config.Default[key.CacheTTL], []string{"soon"})
			So(err, ShouldNotBeNil)

			v, err := parseValue(config.Default[key.CacheTTL], []string{"30m"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "30m")
		})

		Convey("Tables cannot be set from the command line", func() {
			_, err := parseValue(config.Default[key.SourcesCatalog], []string{"x"})
			So(err, ShouldNotBeNil)
		})

		Convey("Unknown keys should suggest the closest one", func() {
			_, err := lookupField("cache.tll")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, key.CacheTTL)
		})
	})
}

func TestSelectEpisode(t *testing.T) {
	Convey("Given a playlist with an episode that has no stream", t, func() {
		p := playlist.Decode("第01集$a#第02集$b#第03集$c#预告")
		none := mo.None[history.WatchEntry]()
		watched := func(label string) mo.Option[history.WatchEntry] {
			return mo.Some(history.WatchEntry{ID: "52937", Episode: label})
		}

		Convey("Without history the first episode plays", func() {
			e, err := selectEpisode(p, none, "", false, false)
			So(err, ShouldBeNil)
			So(e.Index, ShouldEqual, 1)
		})

		Convey("The last watched episode is resumed", func() {
			e, err := selectEpisode(p, watched("第02集"), "", false, false)
			So(err, ShouldBeNil)
			So(e.Label, ShouldEqual, "第02集")
		})

		Convey("An unknown watched label falls back to the first episode", func() {
			e, err := selectEpisode(p, watched("第09集"), "", false, false)
			So(err, ShouldBeNil)
			So(e.Index, ShouldEqual, 1)
		})

		Convey("Next and prev move from the last watched episode", func() {
			e, err := selectEpisode(p, watched("第02集"), "", true, false)
			So(err, ShouldBeNil)
			So(e.URL, ShouldEqual, "c")

			e, err = selectEpisode(p, watched("第02集"), "", false, true)
			So(err, ShouldBeNil)
			So(e.URL, ShouldEqual, "a")
		})

		Convey("Prev before the first episode is refused", func() {
			_, err := selectEpisode(p, none, "", false, true)
			So(err, ShouldNotBeNil)
		})

		Convey("Next past the end is refused", func() {
			_, err := selectEpisode(p, watched("预告"), "", true, false)
			So(err, ShouldNotBeNil)
			So(errors.Is(err, errNoStream), ShouldBeFalse)
		})

		Convey("An explicit number wins over history", func() {
			e, err := selectEpisode(p, watched("第02集"), "3", true, false)
			So(err, ShouldBeNil)
			So(e.Label, ShouldEqual, "第03集")

			_, err = selectEpisode(p, none, "0", false, false)
			So(err, ShouldNotBeNil)
			_, err = selectEpisode(p, none, "5", false, false)
			So(err, ShouldNotBeNil)
		})

		Convey("An invalid number is rejected", func() {
			_, err := selectEpisode(p, none, "three", false, false)
			So(err, ShouldNotBeNil)
		})

		Convey("An episode without a stream is refused", func() {
			_, err := selectEpisode(p, none, "4", false, false)
			So(errors.Is(err, errNoStream), ShouldBeTrue)

			_, err = selectEpisode(p, watched("第03集"), "", true, false)
			So(errors.Is(err, errNoStream), ShouldBeTrue)
		})
	})
}

func TestSuggestQueries(t *testing.T) {
	Convey("Given remembered queries", t, func() {
		viper.Set(key.SearchShowQuerySuggestions, true)
		h := query.NewHistory(storage.NewMemory(), nil)
		So(h.Add("bleach"), ShouldBeNil)
		So(h.Add("blue lock"), ShouldBeNil)

		Convey("A limit of 1 suggests the most recent match", func() {
			So(suggestQueries(h, "bl", 1), ShouldResemble, []string{"blue lock"})
		})

		Convey("A limit of 0 suggests every match", func() {
			So(suggestQueries(h, "bl", 0), ShouldHaveLength, 2)
		})

		Convey("Nothing matching suggests nothing", func() {
			So(suggestQueries(h, "zzz", 1), ShouldBeEmpty)
		})
	})
}
