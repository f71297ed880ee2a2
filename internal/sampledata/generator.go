// Package sampledata generates randomized demo ledgers for trying the
// leaderboard locally without months of real game nights.
package sampledata

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/gravina/gamenight/internal/domain/model"
)

// Generation defaults.
const (
	defaultNights  = 6
	defaultPlays   = 12
	defaultPlayers = 5
	defaultSeed    = 42

	maxBonusPoints = 4
	participantMin = 2
)

var gamePool = []string{
	"Catan", "Azul", "Wingspan", "Ticket to Ride", "Codenames",
	"7 Wonders", "Carcassonne", "Splendor",
}

var namePool = []string{
	"alex", "bailey", "casey", "devon", "emery",
	"frankie", "gray", "harper", "indy", "jordan",
}

var bonusReasons = []string{
	"Best bluff", "Comeback of the night", "Snack MVP", "Rules lawyer award",
}

// Config controls how much demo data is produced.
type Config struct {
	Nights  int
	Plays   int
	Players int
	Seed    int64
	Start   time.Time
}

// NewConfig returns generation defaults starting a few weeks back.
func NewConfig() Config {
	return Config{
		Nights:  defaultNights,
		Plays:   defaultPlays,
		Players: defaultPlayers,
		Seed:    defaultSeed,
		Start:   time.Now().UTC().AddDate(0, -2, 0),
	}
}

// Generate produces a coherent pair of demo ledgers: weekly game nights
// with bonus awards, and plays spread across them.
func Generate(cfg Config) ([]model.AwardEvent, []model.PlayRecord) {
	if cfg.Nights <= 0 {
		cfg.Nights = defaultNights
	}
	if cfg.Plays <= 0 {
		cfg.Plays = defaultPlays
	}
	if cfg.Players <= 0 || cfg.Players > len(namePool) {
		cfg.Players = defaultPlayers
	}
	if cfg.Start.IsZero() {
		cfg.Start = time.Now().UTC().AddDate(0, -2, 0)
	}

	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // deterministic seed for reproducible demo data
	players := namePool[:cfg.Players]

	events := make([]model.AwardEvent, 0, cfg.Nights)
	nights := make([]time.Time, 0, cfg.Nights)
	for i := 0; i < cfg.Nights; i++ {
		night := cfg.Start.AddDate(0, 0, 7*i)
		nights = append(nights, night)
		date := night.Format("2006-01-02")

		event := model.AwardEvent{
			Name: fmt.Sprintf("Game Night #%d", i+1),
			Date: date,
		}
		// One bonus award per night keeps the breakdowns interesting.
		winner := players[rng.Intn(len(players))]
		event.Awards = append(event.Awards, model.AwardRecord{
			Player:    winner,
			Points:    1 + rng.Intn(maxBonusPoints),
			Reason:    bonusReasons[rng.Intn(len(bonusReasons))],
			Timestamp: night.Add(time.Duration(18+rng.Intn(4)) * time.Hour).Format(time.RFC3339),
		})
		events = append(events, event)
	}

	plays := make([]model.PlayRecord, 0, cfg.Plays)
	for i := 0; i < cfg.Plays; i++ {
		night := nights[rng.Intn(len(nights))]
		table := rng.Perm(len(players))
		count := participantMin + rng.Intn(len(players)-participantMin+1)

		play := model.PlayRecord{
			ID:        uuid.New().String(),
			Game:      gamePool[rng.Intn(len(gamePool))],
			Date:      night.Format("2006-01-02"),
			Scored:    rng.Intn(4) != 0,
			Timestamp: night.Add(time.Duration(19+rng.Intn(3)) * time.Hour).Format(time.RFC3339),
		}
		for seat := 0; seat < count; seat++ {
			result := model.PlacementResult{Player: players[table[seat]]}
			if seat < 3 {
				placement := seat + 1
				result.Placement = &placement
			}
			play.Results = append(play.Results, result)
		}
		plays = append(plays, play)
	}

	return events, plays
}
