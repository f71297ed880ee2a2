// Package board folds the award and play ledgers into a leaderboard snapshot.
//
// Everything here is a pure function of its inputs: no I/O, no clocks
// beyond the injected "now", no state carried between invocations. Input
// defects degrade to documented defaults instead of errors.
package board

import (
	"sort"
	"strings"
	"time"

	"github.com/gravina/gamenight/internal/domain/model"
)

// Presentation defaults.
const (
	DefaultTitle   = "Game Night Leaderboard"
	DefaultTagline = "Tracking every big play and bragging right."
)

// Settings carries the presentation configuration folded into the snapshot.
type Settings struct {
	Title        string
	Tagline      string
	SeasonLabel  string
	ScoringRules []string

	// RecentLimit bounds the recent-events and recent-plays feeds.
	// Zero or negative disables truncation.
	RecentLimit int
}

// latestTracker remembers the maximum instant observed across both ledgers.
type latestTracker struct {
	t  time.Time
	ok bool
}

func (lt *latestTracker) observe(t time.Time, ok bool) {
	if !ok {
		return
	}
	if !lt.ok || t.After(lt.t) {
		lt.t = t
		lt.ok = true
	}
}

// Aggregate recomputes the full snapshot from the two ledgers and the
// presentation settings. now is used for lastUpdated only when neither
// ledger yielded a resolvable timestamp.
func Aggregate(s Settings, events []model.AwardEvent, plays []model.PlayRecord, now time.Time) Snapshot {
	var tracker latestTracker

	totals, recentEvents := foldAwards(events, &tracker)
	activity, recentPlays := foldPlays(plays, &tracker)

	standings := buildStandings(totals)

	lastUpdated := now.UTC()
	if tracker.ok {
		lastUpdated = tracker.t
	}

	title := s.Title
	if title == "" {
		title = DefaultTitle
	}
	tagline := s.Tagline
	if tagline == "" {
		tagline = DefaultTagline
	}
	rules := s.ScoringRules
	if rules == nil {
		rules = []string{}
	}

	return Snapshot{
		Title:          title,
		Tagline:        tagline,
		SeasonLabel:    s.SeasonLabel,
		LastUpdated:    lastUpdated.Format(time.RFC3339),
		Leaderboard:    standings,
		ScoringRules:   rules,
		RecentEvents:   sortEvents(recentEvents, s.RecentLimit),
		RecentPlays:    sortPlays(recentPlays, s.RecentLimit),
		PlayerActivity: buildActivity(activity, standings),
	}
}

// buildStandings converts the accumulated totals into the ranked table.
func buildStandings(totals *awardTotals) []PlayerStanding {
	standings := make([]PlayerStanding, 0, len(totals.order))
	for _, p := range totals.order {
		breakdown := make([]BreakdownEntry, 0, len(p.order))
		for _, b := range p.order {
			breakdown = append(breakdown, BreakdownEntry{Reason: b.reason, Count: b.count, Points: b.points})
		}
		sort.SliceStable(breakdown, func(i, j int) bool {
			if breakdown[i].Points != breakdown[j].Points {
				return breakdown[i].Points > breakdown[j].Points
			}
			return strings.ToLower(breakdown[i].Reason) < strings.ToLower(breakdown[j].Reason)
		})
		standings = append(standings, PlayerStanding{
			Player:    p.player,
			Points:    p.points,
			Breakdown: breakdown,
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Points != standings[j].Points {
			return standings[i].Points > standings[j].Points
		}
		return strings.ToLower(standings[i].Player) < strings.ToLower(standings[j].Player)
	})

	// Dense competition ranking: ties share a rank; the next distinct
	// total takes its 1-based position in the sorted list.
	rank := 0
	var previous *int
	for i := range standings {
		if previous == nil || *previous != standings[i].Points {
			rank = i + 1
			points := standings[i].Points
			previous = &points
		}
		standings[i].Rank = rank
	}

	return standings
}

// buildActivity converts activity stats into the published list, seeding a
// zero-valued entry for every ranked player with no recorded play.
func buildActivity(activity *activitySet, standings []PlayerStanding) []PlayerActivity {
	for _, standing := range standings {
		if _, ok := activity.index[standing.Player]; !ok {
			activity.player(standing.Player)
		}
	}

	list := make([]PlayerActivity, 0, len(activity.order))
	for _, a := range activity.order {
		games := make([]GameCount, 0, len(a.gameOrder))
		for _, g := range a.gameOrder {
			games = append(games, *g)
		}
		sort.SliceStable(games, func(i, j int) bool {
			if games[i].Count != games[j].Count {
				return games[i].Count > games[j].Count
			}
			return strings.ToLower(games[i].Game) < strings.ToLower(games[j].Game)
		})
		list = append(list, PlayerActivity{
			Player:        a.player,
			TotalPlays:    a.totalPlays,
			ScoredPlays:   a.scoredPlays,
			UnscoredPlays: a.unscoredPlays,
			Games:         games,
			Podiums:       a.podiums,
		})
	}

	sort.SliceStable(list, func(i, j int) bool {
		if list[i].TotalPlays != list[j].TotalPlays {
			return list[i].TotalPlays > list[j].TotalPlays
		}
		return strings.ToLower(list[i].Player) < strings.ToLower(list[j].Player)
	})

	return list
}

// sortEvents orders the feed newest first, unresolvable timestamps last,
// and truncates to limit when positive.
func sortEvents(entries []eventWithTime, limit int) []EventSummary {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].hasTS != entries[j].hasTS {
			return entries[i].hasTS
		}
		return entries[i].ts.After(entries[j].ts)
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	out := make([]EventSummary, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.summary)
	}
	return out
}

// sortPlays orders the feed newest first, unresolvable timestamps last,
// and truncates to limit when positive.
func sortPlays(entries []playWithTime, limit int) []PlaySummary {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].hasTS != entries[j].hasTS {
			return entries[i].hasTS
		}
		return entries[i].ts.After(entries[j].ts)
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	out := make([]PlaySummary, 0, len(entries))
	for _, p := range entries {
		out = append(out, p.summary)
	}
	return out
}
