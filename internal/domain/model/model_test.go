package model_test

import (
	"encoding/json"
	"testing"

	"github.com/gravina/gamenight/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestAwardRecordDecoding(t *testing.T) {
	convey.Convey("Given award record JSON", t, func() {
		convey.Convey("When the fields are well formed", func() {
			var r model.AwardRecord
			err := json.Unmarshal([]byte(`{"player":"Alice","points":10,"reason":"Won","timestamp":"2026-05-04T18:30:00Z"}`), &r)

			convey.So(err, convey.ShouldBeNil)
			convey.So(r.Player, convey.ShouldEqual, "Alice")
			convey.So(r.Points, convey.ShouldEqual, 10)
			convey.So(r.Reason, convey.ShouldEqual, "Won")
			convey.So(r.Timestamp, convey.ShouldEqual, "2026-05-04T18:30:00Z")
		})

		convey.Convey("When points is a non-numeric string", func() {
			var r model.AwardRecord
			err := json.Unmarshal([]byte(`{"player":"Alice","points":"abc"}`), &r)

			convey.Convey("Then it coerces to zero rather than failing", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(r.Points, convey.ShouldEqual, 0)
			})
		})

		convey.Convey("When points is a numeric string", func() {
			var r model.AwardRecord
			err := json.Unmarshal([]byte(`{"player":"Alice","points":"7"}`), &r)

			convey.So(err, convey.ShouldBeNil)
			convey.So(r.Points, convey.ShouldEqual, 7)
		})

		convey.Convey("When points is a float", func() {
			var r model.AwardRecord
			err := json.Unmarshal([]byte(`{"player":"Alice","points":2.9}`), &r)

			convey.Convey("Then it truncates", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(r.Points, convey.ShouldEqual, 2)
			})
		})

		convey.Convey("When player is not a string", func() {
			var r model.AwardRecord
			err := json.Unmarshal([]byte(`{"player":42,"points":5}`), &r)

			convey.Convey("Then the name normalizes to empty", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(r.Player, convey.ShouldBeEmpty)
				convey.So(r.Points, convey.ShouldEqual, 5)
			})
		})

		convey.Convey("When the record is not an object", func() {
			var r model.AwardRecord
			err := json.Unmarshal([]byte(`"junk"`), &r)

			convey.So(err, convey.ShouldBeNil)
			convey.So(r, convey.ShouldResemble, model.AwardRecord{})
		})
	})
}

func TestPlacementResultDecoding(t *testing.T) {
	convey.Convey("Given placement result JSON", t, func() {
		convey.Convey("When placement is an integer", func() {
			var p model.PlacementResult
			err := json.Unmarshal([]byte(`{"player":"bob","placement":2,"points":3}`), &p)

			convey.So(err, convey.ShouldBeNil)
			convey.So(p.Placement, convey.ShouldNotBeNil)
			convey.So(*p.Placement, convey.ShouldEqual, 2)
		})

		convey.Convey("When placement is null", func() {
			var p model.PlacementResult
			err := json.Unmarshal([]byte(`{"player":"bob","placement":null}`), &p)

			convey.So(err, convey.ShouldBeNil)
			convey.So(p.Placement, convey.ShouldBeNil)
		})

		convey.Convey("When placement is fractional", func() {
			var p model.PlacementResult
			err := json.Unmarshal([]byte(`{"player":"bob","placement":1.5}`), &p)

			convey.Convey("Then it normalizes to participated", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(p.Placement, convey.ShouldBeNil)
			})
		})

		convey.Convey("When placement is a string", func() {
			var p model.PlacementResult
			err := json.Unmarshal([]byte(`{"player":"bob","placement":"first"}`), &p)

			convey.So(err, convey.ShouldBeNil)
			convey.So(p.Placement, convey.ShouldBeNil)
		})
	})
}

func TestPlayRecordDecoding(t *testing.T) {
	convey.Convey("Given a play record document", t, func() {
		payload := `{
			"id": "p-1",
			"game": "Catan",
			"date": "2026-05-04",
			"event": "Game Night #9",
			"scored": true,
			"notes": "tight finish",
			"results": [
				{"player": "alice", "placement": 1, "points": 5},
				{"player": "bob", "placement": null, "points": 1}
			]
		}`

		var p model.PlayRecord
		err := json.Unmarshal([]byte(payload), &p)

		convey.So(err, convey.ShouldBeNil)
		convey.So(p.ID, convey.ShouldEqual, "p-1")
		convey.So(p.Game, convey.ShouldEqual, "Catan")
		convey.So(p.Scored, convey.ShouldBeTrue)
		convey.So(p.Results, convey.ShouldHaveLength, 2)

		convey.Convey("When scored is a string", func() {
			var q model.PlayRecord
			err := json.Unmarshal([]byte(`{"game":"Catan","scored":"yes"}`), &q)

			convey.Convey("Then it normalizes to false", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(q.Scored, convey.ShouldBeFalse)
			})
		})
	})
}

func TestAwardEventRoundTrip(t *testing.T) {
	convey.Convey("Given an award event", t, func() {
		e := model.AwardEvent{
			Name: "Game Night #9",
			Date: "2026-05-04",
			Awards: []model.AwardRecord{
				{Player: "Alice", Points: 10, Reason: "Won", Timestamp: "2026-05-04T18:30:00Z"},
			},
		}

		convey.Convey("When marshaled and decoded again", func() {
			data, err := json.Marshal(e)
			convey.So(err, convey.ShouldBeNil)

			var got model.AwardEvent
			convey.So(json.Unmarshal(data, &got), convey.ShouldBeNil)
			convey.So(got, convey.ShouldResemble, e)
		})
	})
}
