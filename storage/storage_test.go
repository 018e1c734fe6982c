package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vodhub/vodhub/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

// behaves runs the shared contract against a fresh store.
func behaves(newStore func() Store) {
	s := newStore()
	Reset(func() { _ = s.Close() })

	Convey("A missing key is absent without error", func() {
		_, ok, err := s.Get("watchHistory")
		So(err, ShouldBeNil)
		So(ok, ShouldBeFalse)
	})

	Convey("Set then Get returns the value", func() {
		So(s.Set("watchHistory", `[{"id":"1"}]`), ShouldBeNil)
		v, ok, err := s.Get("watchHistory")
		So(err, ShouldBeNil)
		So(ok, ShouldBeTrue)
		So(v, ShouldEqual, `[{"id":"1"}]`)

		Convey("Set overwrites", func() {
			So(s.Set("watchHistory", "[]"), ShouldBeNil)
			v, _, _ := s.Get("watchHistory")
			So(v, ShouldEqual, "[]")
		})

		Convey("Delete removes the key", func() {
			So(s.Delete("watchHistory"), ShouldBeNil)
			_, ok, _ := s.Get("watchHistory")
			So(ok, ShouldBeFalse)
		})
	})

	Convey("Deleting a missing key is fine", func() {
		So(s.Delete("nothing"), ShouldBeNil)
	})

	Convey("DeletePrefix removes only matching keys", func() {
		So(s.Set("movies_cache:a", "1"), ShouldBeNil)
		So(s.Set("movies_cache:b", "2"), ShouldBeNil)
		So(s.Set("searchHistory", "[]"), ShouldBeNil)

		n, err := DeletePrefix(s, "movies_cache")
		So(err, ShouldBeNil)
		So(n, ShouldEqual, 2)

		keys, err := s.Keys()
		So(err, ShouldBeNil)
		So(keys, ShouldResemble, []string{"searchHistory"})
	})
}

func TestMemory(t *testing.T) {
	Convey("Memory store", t, func() {
		behaves(func() Store { return NewMemory() })
	})
}

var fileSeq int

func TestFile(t *testing.T) {
	Convey("File store", t, func() {
		behaves(func() Store {
			fileSeq++
			return NewFile(filepath.Join("/vodhub", "storage", fmt.Sprintf("%d.json", fileSeq)))
		})
	})

	Convey("File store survives reopening", t, func() {
		path := "/vodhub/reopen/storage.json"
		So(NewFile(path).Set("searchHistory", `[{"query":"海贼王"}]`), ShouldBeNil)

		v, ok, err := NewFile(path).Get("searchHistory")
		So(err, ShouldBeNil)
		So(ok, ShouldBeTrue)
		So(v, ShouldEqual, `[{"query":"海贼王"}]`)
	})

	Convey("A corrupt file reads as empty and is rewritten", t, func() {
		path := "/vodhub/corrupt/storage.json"
		So(filesystem.API().MkdirAll(filepath.Dir(path), os.ModePerm), ShouldBeNil)
		So(filesystem.API().WriteFile(path, []byte("{not json"), 0644), ShouldBeNil)

		s := NewFile(path)
		_, ok, err := s.Get("watchHistory")
		So(err, ShouldBeNil)
		So(ok, ShouldBeFalse)

		So(s.Set("watchHistory", "[]"), ShouldBeNil)
		v, ok, _ := NewFile(path).Get("watchHistory")
		So(ok, ShouldBeTrue)
		So(v, ShouldEqual, "[]")
	})
}

func TestBolt(t *testing.T) {
	Convey("Bolt store", t, func() {
		dir := t.TempDir()
		behaves(func() Store {
			s, err := NewBolt(filepath.Join(dir, "storage.db"))
			So(err, ShouldBeNil)
			return s
		})
	})
}

func TestOpen(t *testing.T) {
	Convey("Open", t, func() {
		Convey("Creates the memory backend", func() {
			s, err := Open(BackendMemory, "")
			So(err, ShouldBeNil)
			So(s, ShouldHaveSameTypeAs, &Memory{})
		})

		Convey("Defaults to the file backend", func() {
			s, err := Open("", "/vodhub/open/storage.json")
			So(err, ShouldBeNil)
			So(s, ShouldHaveSameTypeAs, &File{})
		})

		Convey("Rejects unknown backends", func() {
			_, err := Open("redis", "")
			So(errors.Is(err, ErrUnknownBackend), ShouldBeTrue)
		})
	})
}
