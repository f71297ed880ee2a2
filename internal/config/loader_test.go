package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gravina/gamenight/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.DataDir, convey.ShouldEqual, "data")
				convey.So(cfg.PublicDir, convey.ShouldEqual, "public")
				convey.So(cfg.RecentEventsLimit, convey.ShouldEqual, 8)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("GAMENIGHT_DATA_DIR", "/tmp/gamenight-data")
			_ = os.Setenv("GAMENIGHT_TITLE", "Friday Night Standings")
			_ = os.Setenv("GAMENIGHT_RECENT_EVENTS_LIMIT", "3")
			_ = os.Setenv("GAMENIGHT_AUTO_AWARD", "false")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.DataDir, convey.ShouldEqual, "/tmp/gamenight-data")
				convey.So(cfg.Title, convey.ShouldEqual, "Friday Night Standings")
				convey.So(cfg.RecentEventsLimit, convey.ShouldEqual, 3)
				convey.So(cfg.AutoAward, convey.ShouldBeFalse)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			yamlContent := `
title: "Season Two"
season_label: "Winter 2026"
recent_events_limit: 5
scoring_rules:
  - "Win a game: 5 pts"
  - "Podium finish: 2-3 pts"
first_place_points: 10
`
			tmpFile := createTempConfigFile(t, yamlContent)

			_ = os.Setenv("GAMENIGHT_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from the YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Title, convey.ShouldEqual, "Season Two")
				convey.So(cfg.SeasonLabel, convey.ShouldEqual, "Winter 2026")
				convey.So(cfg.RecentEventsLimit, convey.ShouldEqual, 5)
				convey.So(cfg.ScoringRules, convey.ShouldHaveLength, 2)
				convey.So(cfg.FirstPlacePoints, convey.ShouldEqual, 10)
			})
		})

		convey.Convey("When env vars override the YAML file", func() {
			tmpFile := createTempConfigFile(t, "title: \"From File\"\n")

			_ = os.Setenv("GAMENIGHT_CONFIG", tmpFile)
			_ = os.Setenv("GAMENIGHT_TITLE", "From Env")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then env should win", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Title, convey.ShouldEqual, "From Env")
			})
		})

		convey.Convey("When the config file path is invalid", func() {
			_ = os.Setenv("GAMENIGHT_CONFIG", "/nonexistent/config.yaml")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then it should fail with a load error", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When data_dir is emptied", func() {
			_ = os.Setenv("GAMENIGHT_DATA_DIR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then validation should reject the config", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func clearConfigEnvVars() {
	for _, key := range []string{
		"GAMENIGHT_CONFIG",
		"GAMENIGHT_DATA_DIR",
		"GAMENIGHT_PUBLIC_DIR",
		"GAMENIGHT_TITLE",
		"GAMENIGHT_RECENT_EVENTS_LIMIT",
		"GAMENIGHT_AUTO_AWARD",
	} {
		_ = os.Unsetenv(key)
	}
}

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}
