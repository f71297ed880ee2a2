package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartystreets/goconvey/convey"
)

func TestNewManager(t *testing.T) {
	convey.Convey("Given a fresh registry", t, func() {
		registry := prometheus.NewRegistry()

		convey.Convey("When creating a manager on it", func() {
			m := NewManager(WithRegistry(registry))

			convey.Convey("Then the manager registers its collectors", func() {
				convey.So(m, convey.ShouldNotBeNil)

				families, err := registry.Gather()
				convey.So(err, convey.ShouldBeNil)
				// Counters with zero observations do not gather; touch one.
				m.rebuildCount.Inc()
				families, err = registry.Gather()
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(families), convey.ShouldBeGreaterThan, 0)
			})
		})

		convey.Convey("When overriding namespace and subsystem", func() {
			m := NewManager(
				WithRegistry(registry),
				WithNamespace("custom"),
				WithSubsystem("scores"),
			)

			convey.So(m.namespace, convey.ShouldEqual, "custom")
			convey.So(m.subsystem, convey.ShouldEqual, "scores")
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	convey.Convey("Given the global manager", t, func() {
		convey.Convey("When recording domain activity", func() {
			// These must not panic and must tolerate zero values.
			RecordAwardsFolded(3)
			RecordAwardsFolded(0)
			RecordPlaysFolded(2)
			RecordRebuild(25 * time.Millisecond)
			UpdateLedgerSizes(4, 7)
			UpdatePlayerCount(5)
			RecordHTTPRequest("/leaderboard.json", "200")

			convey.Convey("Then the registry gathers without errors", func() {
				families, err := GetRegistry().Gather()
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(families), convey.ShouldBeGreaterThan, 0)
			})
		})
	})
}
