// Package config defines process configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load(ctx) layers file/env.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration for the leaderboard CLI.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// DataDir holds the durable ledgers (events, plays, guest tokens).
	DataDir string `koanf:"data_dir"`

	// PublicDir receives the published snapshot consumed by the front end.
	PublicDir string `koanf:"public_dir"`

	// Addr configures the preview server listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// Title, Tagline and SeasonLabel are copied into the snapshot.
	Title       string `koanf:"title"`
	Tagline     string `koanf:"tagline"`
	SeasonLabel string `koanf:"season_label"`

	// RecentEventsLimit bounds the recent-events and recent-plays feeds.
	// Zero or negative disables truncation.
	RecentEventsLimit int `koanf:"recent_events_limit"`

	// ScoringRules are display-only rule lines copied into the snapshot.
	ScoringRules []string `koanf:"scoring_rules"`

	// AutoAward derives point awards from scored plays.
	AutoAward bool `koanf:"auto_award"`

	// Points granted by the auto-award path per placement.
	FirstPlacePoints    int `koanf:"first_place_points"`
	SecondPlacePoints   int `koanf:"second_place_points"`
	ThirdPlacePoints    int `koanf:"third_place_points"`
	ParticipationPoints int `koanf:"participation_points"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		DataDir:             "data",
		PublicDir:           "public",
		Addr:                ":9080",
		RecentEventsLimit:   8,
		AutoAward:           true,
		FirstPlacePoints:    5,
		SecondPlacePoints:   3,
		ThirdPlacePoints:    2,
		ParticipationPoints: 1,
	}
}
