package playlist

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDecode(t *testing.T) {
	Convey("Given a two episode playlist", t, func() {
		p := Decode("第1集$http://a/1.m3u8#第2集$http://a/2.m3u8")

		Convey("It decodes every episode in order", func() {
			So(p.Count(), ShouldEqual, 2)
			So(p.Names(), ShouldResemble, []string{"第1集", "第2集"})
		})

		Convey("It keeps the stream urls", func() {
			ep, ok := p.At(2)
			So(ok, ShouldBeTrue)
			So(ep.URL, ShouldEqual, "http://a/2.m3u8")
			So(ep.Index, ShouldEqual, 2)
			So(ep.Playable(), ShouldBeTrue)
		})

		Convey("At is 1-based and bounded", func() {
			_, ok := p.At(0)
			So(ok, ShouldBeFalse)
			_, ok = p.At(3)
			So(ok, ShouldBeFalse)
		})
	})

	Convey("Given an empty playlist", t, func() {
		p := Decode("")

		So(p.Count(), ShouldEqual, 0)
		So(p.Names(), ShouldBeEmpty)
	})

	Convey("Given segments without a url separator", t, func() {
		p := Decode("正片#花絮")

		Convey("The label is the whole segment and the url is empty", func() {
			So(p.Names(), ShouldResemble, []string{"正片", "花絮"})
			for _, e := range p.Episodes {
				So(e.URL, ShouldBeEmpty)
				So(e.Playable(), ShouldBeFalse)
			}
		})
	})

	Convey("Given labels with surrounding whitespace", t, func() {
		Convey("The label is kept verbatim", func() {
			for _, seg := range []string{" 正片", "花絮 ", " "} {
				p := Decode(seg)
				So(p.Count(), ShouldEqual, 1)
				So(p.Episodes[0].Label, ShouldEqual, seg)
				So(p.Episodes[0].Playable(), ShouldBeFalse)
			}
		})

		Convey("The url is kept verbatim after the first separator", func() {
			p := Decode(" 第1集 $http://a/1.m3u8")
			So(p.Episodes[0].Label, ShouldEqual, " 第1集 ")
			So(p.Episodes[0].URL, ShouldEqual, "http://a/1.m3u8")
		})
	})

	Convey("Given empty labels", t, func() {
		p := Decode("$http://a/1.m3u8#$http://a/2.m3u8#第3集$http://a/3.m3u8")

		Convey("Labels are generated with a two digit episode number", func() {
			So(p.Names(), ShouldResemble, []string{"第01集", "第02集", "第3集"})
		})
	})

	Convey("Given a url containing the separator", t, func() {
		p := Decode("HD$http://a/1.m3u8?sig=$x")

		Convey("Only the first separator splits", func() {
			So(p.Episodes[0].Label, ShouldEqual, "HD")
			So(p.Episodes[0].URL, ShouldEqual, "http://a/1.m3u8?sig=$x")
		})
	})

	Convey("The episode count always equals the number of segments", t, func() {
		for _, raw := range []string{
			"a",
			"a#b",
			"a$1#b$2#c",
			"#",
			"##$x#",
			"第1集$u#",
		} {
			So(Decode(raw).Count(), ShouldEqual, len(strings.Split(raw, "#")))
		}
	})

	Convey("Decoding is idempotent", t, func() {
		raw := "第1集$http://a/1.m3u8#$#花絮"
		So(Decode(raw), ShouldResemble, Decode(raw))
	})
}

func TestEncode(t *testing.T) {
	Convey("Encode reverses Decode for well formed playlists", t, func() {
		raw := "第1集$http://a/1.m3u8#第2集$http://a/2.m3u8#预告"
		So(Encode(Decode(raw).Episodes), ShouldEqual, raw)
	})

	Convey("Encode of nothing is empty", t, func() {
		So(Encode(nil), ShouldBeEmpty)
	})
}

func TestNavigation(t *testing.T) {
	Convey("Given a three episode playlist", t, func() {
		p := Decode("第1集$a#第2集$b#第3集$c")

		Convey("Episodes are found by label", func() {
			e, ok := p.Find("第2集")
			So(ok, ShouldBeTrue)
			So(e.Index, ShouldEqual, 2)

			_, ok = p.Find("第9集")
			So(ok, ShouldBeFalse)
		})

		Convey("Next and previous stay within 1..Count", func() {
			next, ok := p.Next(2)
			So(ok, ShouldBeTrue)
			So(next.URL, ShouldEqual, "c")

			_, ok = p.Next(3)
			So(ok, ShouldBeFalse)

			prev, ok := p.Previous(2)
			So(ok, ShouldBeTrue)
			So(prev.URL, ShouldEqual, "a")

			_, ok = p.Previous(1)
			So(ok, ShouldBeFalse)
		})
	})
}
