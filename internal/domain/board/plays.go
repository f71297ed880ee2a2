package board

import (
	"time"

	"github.com/gravina/gamenight/internal/domain/model"
	"github.com/gravina/gamenight/internal/domain/timeparse"
)

// DefaultGame is used for plays logged without a game name.
const DefaultGame = "Untitled Game"

// activityStats accumulates one player's participation numbers.
// Game buckets keep insertion order until the final sort.
type activityStats struct {
	player        string
	totalPlays    int
	scoredPlays   int
	unscoredPlays int
	gameOrder     []*GameCount
	games         map[string]*GameCount
	podiums       Podiums
}

func (a *activityStats) record(game string, scored bool, placement *int) {
	a.totalPlays++
	if scored {
		a.scoredPlays++
	} else {
		a.unscoredPlays++
	}

	g, ok := a.games[game]
	if !ok {
		g = &GameCount{Game: game}
		a.games[game] = g
		a.gameOrder = append(a.gameOrder, g)
	}
	g.Count++

	if placement == nil {
		return
	}
	switch *placement {
	case 1:
		a.podiums.First++
	case 2:
		a.podiums.Second++
	case 3:
		a.podiums.Third++
	}
}

// activitySet is an insertion-ordered accumulator keyed by player name.
// The play CLI case-folds names before storing, so keys here are usually
// lowercase already; the fold itself uses whatever casing was stored.
type activitySet struct {
	order []*activityStats
	index map[string]*activityStats
}

func newActivitySet() *activitySet {
	return &activitySet{index: make(map[string]*activityStats)}
}

func (s *activitySet) player(name string) *activityStats {
	a, ok := s.index[name]
	if !ok {
		a = &activityStats{player: name, games: make(map[string]*GameCount)}
		s.index[name] = a
		s.order = append(s.order, a)
	}
	return a
}

// playWithTime pairs a play summary with its recency sort key.
type playWithTime struct {
	summary PlaySummary
	ts      time.Time
	hasTS   bool
}

// foldPlays folds the play ledger into per-player activity stats and the
// unsorted recent-plays feed. Each play's timestamp resolves once, shared
// by all its results, and feeds the shared tracker.
func foldPlays(plays []model.PlayRecord, tracker *latestTracker) (*activitySet, []playWithTime) {
	activity := newActivitySet()
	recent := make([]playWithTime, 0, len(plays))

	for _, play := range plays {
		game := play.Game
		if game == "" {
			game = DefaultGame
		}

		ts, ok := timeparse.Resolve(play.Timestamp, play.Date)
		tracker.observe(ts, ok)

		entry := playWithTime{
			summary: PlaySummary{
				ID:     play.ID,
				Game:   game,
				Date:   play.Date,
				Event:  play.Event,
				Scored: play.Scored,
				Notes:  play.Notes,
			},
			ts:    ts,
			hasTS: ok,
		}
		if ok {
			entry.summary.Timestamp = ts.Format(time.RFC3339)
		}

		for _, result := range play.Results {
			if result.Player == "" {
				continue
			}
			activity.player(result.Player).record(game, play.Scored, result.Placement)
			entry.summary.Results = append(entry.summary.Results, ResultSummary{
				Player:    result.Player,
				Placement: result.Placement,
				Points:    result.Points,
			})
		}

		// A play with no surviving results never reaches the feed.
		if len(entry.summary.Results) == 0 {
			continue
		}
		recent = append(recent, entry)
	}

	return activity, recent
}
