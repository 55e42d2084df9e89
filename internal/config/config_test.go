package config_test

import (
	"testing"

	"github.com/okian/stockroom/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
			convey.So(cfg.Table, convey.ShouldEqual, "items")
			convey.So(cfg.StoreTimeoutMS, convey.ShouldEqual, 10_000)
		})

		convey.Convey("Then the store endpoint settings should start empty", func() {
			convey.So(cfg.SupabaseURL, convey.ShouldBeEmpty)
			convey.So(cfg.SupabaseKey, convey.ShouldBeEmpty)
		})
	})
}
