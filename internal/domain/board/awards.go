package board

import (
	"time"

	"github.com/gravina/gamenight/internal/domain/model"
	"github.com/gravina/gamenight/internal/domain/timeparse"
)

// DefaultReason is used for awards logged without one.
const DefaultReason = "Awarded points"

// reasonBucket accumulates one player's awards for a single reason.
type reasonBucket struct {
	reason string
	count  int
	points int
}

// playerTotals accumulates one player's points across all awards.
// Reason buckets keep insertion order until the final sort.
type playerTotals struct {
	player  string
	points  int
	order   []*reasonBucket
	reasons map[string]*reasonBucket
}

func (p *playerTotals) add(reason string, points int) {
	b, ok := p.reasons[reason]
	if !ok {
		b = &reasonBucket{reason: reason}
		p.reasons[reason] = b
		p.order = append(p.order, b)
	}
	b.count++
	b.points += points
	p.points += points
}

// awardTotals is an insertion-ordered accumulator keyed by player name.
// Keys are case-sensitive: the award ledger stores whatever casing was
// entered, and "Sam" and "sam" stay distinct players.
type awardTotals struct {
	order []*playerTotals
	index map[string]*playerTotals
}

func newAwardTotals() *awardTotals {
	return &awardTotals{index: make(map[string]*playerTotals)}
}

func (t *awardTotals) player(name string) *playerTotals {
	p, ok := t.index[name]
	if !ok {
		p = &playerTotals{player: name, reasons: make(map[string]*reasonBucket)}
		t.index[name] = p
		t.order = append(t.order, p)
	}
	return p
}

// eventWithTime pairs an event summary with its recency sort key.
type eventWithTime struct {
	summary EventSummary
	ts      time.Time
	hasTS   bool
}

// foldAwards folds the award ledger into per-player totals and the
// unsorted recent-events feed. Every resolved award timestamp is fed to
// the shared tracker.
func foldAwards(events []model.AwardEvent, tracker *latestTracker) (*awardTotals, []eventWithTime) {
	totals := newAwardTotals()
	recent := make([]eventWithTime, 0, len(events))

	for _, event := range events {
		name := event.Name
		if name == "" {
			name = "Game Night"
		}
		entry := eventWithTime{summary: EventSummary{Name: name, Date: event.Date}}

		for _, award := range event.Awards {
			if award.Player == "" {
				continue
			}
			reason := award.Reason
			if reason == "" {
				reason = DefaultReason
			}
			ts, ok := timeparse.Resolve(award.Timestamp, event.Date)
			tracker.observe(ts, ok)

			totals.player(award.Player).add(reason, award.Points)

			summary := AwardSummary{
				Player: award.Player,
				Points: award.Points,
				Reason: reason,
			}
			if ok {
				summary.Timestamp = ts.Format(time.RFC3339)
			}
			entry.summary.Awards = append(entry.summary.Awards, summary)

			entry.ts, entry.hasTS = timeparse.Latest(entry.ts, entry.hasTS, ts, ok)
		}

		// An event with no surviving awards never reaches the feed.
		if len(entry.summary.Awards) == 0 {
			continue
		}

		eventTime, ok := timeparse.Resolve(event.Date, "")
		entry.ts, entry.hasTS = timeparse.Latest(entry.ts, entry.hasTS, eventTime, ok)
		recent = append(recent, entry)
	}

	return totals, recent
}
