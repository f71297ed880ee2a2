package ledger_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gravina/gamenight/internal/adapters/ledger"
	"github.com/gravina/gamenight/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestLedgerStore(t *testing.T) {
	convey.Convey("Given a ledger store in an empty directory", t, func() {
		ctx := context.Background()
		store := ledger.New(t.TempDir())

		convey.Convey("When loading ledgers that do not exist yet", func() {
			events, err := store.LoadEvents(ctx)
			convey.So(err, convey.ShouldBeNil)
			convey.So(events, convey.ShouldBeEmpty)

			plays, err := store.LoadPlays(ctx)
			convey.So(err, convey.ShouldBeNil)
			convey.So(plays, convey.ShouldBeEmpty)
		})

		convey.Convey("When appending an award to a new event", func() {
			award := model.AwardRecord{Player: "Alice", Points: 10, Reason: "Won", Timestamp: "2026-05-04T18:00:00Z"}
			err := store.AppendAward(ctx, "Game Night #1", "2026-05-04", award)
			convey.So(err, convey.ShouldBeNil)

			convey.Convey("Then the event is created with the award", func() {
				events, err := store.LoadEvents(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(events, convey.ShouldHaveLength, 1)
				convey.So(events[0].Name, convey.ShouldEqual, "Game Night #1")
				convey.So(events[0].Awards, convey.ShouldHaveLength, 1)
				convey.So(events[0].Awards[0].Player, convey.ShouldEqual, "Alice")
			})

			convey.Convey("And appending to the same (name, date) reuses the event", func() {
				err := store.AppendAward(ctx, "Game Night #1", "2026-05-04", model.AwardRecord{Player: "Bob", Points: 4, Reason: "2nd"})
				convey.So(err, convey.ShouldBeNil)

				events, err := store.LoadEvents(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(events, convey.ShouldHaveLength, 1)
				convey.So(events[0].Awards, convey.ShouldHaveLength, 2)
			})

			convey.Convey("And a different date creates a separate event", func() {
				err := store.AppendAward(ctx, "Game Night #1", "2026-05-11", model.AwardRecord{Player: "Bob", Points: 4, Reason: "Won"})
				convey.So(err, convey.ShouldBeNil)

				events, err := store.LoadEvents(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(events, convey.ShouldHaveLength, 2)
			})
		})

		convey.Convey("When appending plays", func() {
			one := 1
			play := model.PlayRecord{
				ID: "p-1", Game: "Catan", Date: "2026-05-04", Scored: true,
				Results: []model.PlacementResult{{Player: "alice", Placement: &one, Points: 5}},
			}
			convey.So(store.AppendPlay(ctx, play), convey.ShouldBeNil)
			convey.So(store.AppendPlay(ctx, model.PlayRecord{ID: "p-2", Game: "Azul", Date: "2026-05-05"}), convey.ShouldBeNil)

			convey.Convey("Then plays accumulate in append order", func() {
				plays, err := store.LoadPlays(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(plays, convey.ShouldHaveLength, 2)
				convey.So(plays[0].ID, convey.ShouldEqual, "p-1")
				convey.So(plays[1].ID, convey.ShouldEqual, "p-2")
			})
		})

		convey.Convey("When a ledger file holds malformed fields", func() {
			dir := t.TempDir()
			payload := `{"events":[{"name":"Night","date":"2026-05-04","awards":[{"player":"Alice","points":"abc"}]}]}`
			convey.So(os.WriteFile(filepath.Join(dir, "events.json"), []byte(payload), 0o644), convey.ShouldBeNil)

			messy := ledger.New(dir)
			events, err := messy.LoadEvents(ctx)

			convey.Convey("Then decoding coerces instead of failing", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(events, convey.ShouldHaveLength, 1)
				convey.So(events[0].Awards[0].Points, convey.ShouldEqual, 0)
			})
		})

		convey.Convey("When a ledger file is not valid JSON", func() {
			dir := t.TempDir()
			convey.So(os.WriteFile(filepath.Join(dir, "events.json"), []byte("{nope"), 0o644), convey.ShouldBeNil)

			broken := ledger.New(dir)
			_, err := broken.LoadEvents(ctx)

			convey.Convey("Then the loader reports a load error", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})

	convey.Convey("Given custom file names", t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		store := ledger.New(dir,
			ledger.WithEventsFileName("awards.json"),
			ledger.WithPlaysFileName("sessions.json"),
		)

		convey.So(store.AppendAward(ctx, "Night", "2026-05-04", model.AwardRecord{Player: "A", Points: 1}), convey.ShouldBeNil)

		convey.Convey("Then files land under the configured names", func() {
			_, err := os.Stat(filepath.Join(dir, "awards.json"))
			convey.So(err, convey.ShouldBeNil)
		})
	})
}
