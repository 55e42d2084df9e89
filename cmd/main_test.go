package main

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/okian/stockroom/internal/adapters/http/api"
	"github.com/okian/stockroom/internal/adapters/store"
	"github.com/okian/stockroom/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("STOCKROOM_ADDR", ":8081")
			_ = os.Setenv("STOCKROOM_SUPABASE_URL", "https://example.supabase.co")
			_ = os.Setenv("STOCKROOM_SUPABASE_KEY", "test-key")
			defer func() {
				_ = os.Unsetenv("STOCKROOM_ADDR")
				_ = os.Unsetenv("STOCKROOM_SUPABASE_URL")
				_ = os.Unsetenv("STOCKROOM_SUPABASE_KEY")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8081")
				convey.So(cfg.SupabaseURL, convey.ShouldEqual, "https://example.supabase.co")
			})
		})

		convey.Convey("When testing store client creation", func() {
			convey.Convey("Then a client should be creatable with options", func() {
				c := store.New("https://example.supabase.co", "test-key", "items",
					store.WithTimeout(5*time.Second))
				convey.So(c, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing HTTP server creation", func() {
			items := store.New("https://example.supabase.co", "test-key", "items")
			mux := http.NewServeMux()
			api.NewServer(items).Register(context.Background(), mux)

			srv := &http.Server{
				Addr:              ":0",
				Handler:           mux,
				ReadTimeout:       readTimeout,
				WriteTimeout:      writeTimeout,
				IdleTimeout:       idleTimeout,
				ReadHeaderTimeout: readHeaderTimeout,
			}

			convey.Convey("Then the server should be configured with timeouts", func() {
				convey.So(srv, convey.ShouldNotBeNil)
				convey.So(srv.ReadTimeout, convey.ShouldEqual, 10*time.Second)
				convey.So(srv.Handler, convey.ShouldEqual, mux)
			})
		})

		convey.Convey("When updating system metrics", func() {
			convey.Convey("Then the updater should not panic", func() {
				convey.So(updateSystemMetrics, convey.ShouldNotPanic)
			})
		})
	})
}
