package sampledata_test

import (
	"testing"
	"time"

	"github.com/gravina/gamenight/internal/domain/board"
	"github.com/gravina/gamenight/internal/sampledata"
	"github.com/smartystreets/goconvey/convey"
)

func TestGenerate(t *testing.T) {
	convey.Convey("Given a generation config", t, func() {
		cfg := sampledata.NewConfig()
		cfg.Start = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

		convey.Convey("When generating demo ledgers", func() {
			events, plays := sampledata.Generate(cfg)

			convey.Convey("Then the requested volumes are produced", func() {
				convey.So(events, convey.ShouldHaveLength, cfg.Nights)
				convey.So(plays, convey.ShouldHaveLength, cfg.Plays)
			})

			convey.Convey("Then every record is well formed", func() {
				for _, e := range events {
					convey.So(e.Name, convey.ShouldNotBeEmpty)
					convey.So(e.Date, convey.ShouldNotBeEmpty)
					convey.So(e.Awards, convey.ShouldNotBeEmpty)
					for _, a := range e.Awards {
						convey.So(a.Player, convey.ShouldNotBeEmpty)
						convey.So(a.Points, convey.ShouldBeGreaterThan, 0)
					}
				}
				for _, p := range plays {
					convey.So(p.ID, convey.ShouldNotBeEmpty)
					convey.So(p.Game, convey.ShouldNotBeEmpty)
					convey.So(len(p.Results), convey.ShouldBeGreaterThanOrEqualTo, 2)
				}
			})

			convey.Convey("Then the ledgers aggregate cleanly", func() {
				snap := board.Aggregate(board.Settings{}, events, plays, time.Now())
				convey.So(snap.Leaderboard, convey.ShouldNotBeEmpty)
				convey.So(snap.PlayerActivity, convey.ShouldNotBeEmpty)
			})

			convey.Convey("Then the same seed reproduces the same awards", func() {
				again, _ := sampledata.Generate(cfg)
				convey.So(again[0].Awards[0].Player, convey.ShouldEqual, events[0].Awards[0].Player)
				convey.So(again[0].Awards[0].Points, convey.ShouldEqual, events[0].Awards[0].Points)
			})
		})

		convey.Convey("When the config holds nonsense values", func() {
			events, plays := sampledata.Generate(sampledata.Config{Nights: -1, Plays: -1, Players: 99})

			convey.Convey("Then defaults take over", func() {
				convey.So(events, convey.ShouldNotBeEmpty)
				convey.So(plays, convey.ShouldNotBeEmpty)
			})
		})
	})
}
