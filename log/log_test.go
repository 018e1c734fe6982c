package log

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vodhub/vodhub/filesystem"
	"github.com/vodhub/vodhub/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)

		Convey("Setup is a no-op", func() {
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeFalse)

			Convey("And emissions are discarded", func() {
				So(func() { Infof("resolved %s", "52937") }, ShouldNotPanic)
			})
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		Reset(func() {
			viper.Set(key.LogsWrite, false)
			viper.Set(key.LogsLevel, "info")
			_ = Setup()
		})

		Convey("An unknown level is rejected", func() {
			viper.Set(key.LogsLevel, "loud")
			So(Setup(), ShouldNotBeNil)
		})

		Convey("A known level enables the file output", func() {
			viper.Set(key.LogsLevel, "debug")
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeTrue)
		})
	})
}
