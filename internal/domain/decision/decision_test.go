package decision_test

import (
	"testing"

	decision "github.com/okian/clutchreport/internal/domain/decision"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCompareToBenchmark(t *testing.T) {
	Convey("Given the benchmark comparison table", t, func() {
		Convey("When the sample is below the minimum", func() {
			So(decision.CompareToBenchmark(95.0, 44.0, 5, 10), ShouldEqual, decision.SmallSample)
		})

		Convey("When the sample is sufficient", func() {
			So(decision.CompareToBenchmark(50.0, 44.0, 100, 10), ShouldEqual, decision.AboveAverage)
			So(decision.CompareToBenchmark(40.0, 44.0, 100, 10), ShouldEqual, decision.BelowAverage)
		})

		Convey("When the percentage equals the benchmark exactly", func() {
			So(decision.CompareToBenchmark(44.0, 44.0, 100, 10), ShouldEqual, decision.AboveAverage)
		})
	})
}

func TestVolumeLabel(t *testing.T) {
	Convey("Given the volume tiers", t, func() {
		Convey("When classifying attempt counts", func() {
			So(decision.VolumeLabel(400, 300, 150), ShouldEqual, decision.HighVolume)
			So(decision.VolumeLabel(300, 300, 150), ShouldEqual, decision.HighVolume)
			So(decision.VolumeLabel(200, 300, 150), ShouldEqual, decision.ModerateVolume)
			So(decision.VolumeLabel(10, 300, 150), ShouldEqual, decision.LowVolume)
		})
	})
}

func TestClutchZone(t *testing.T) {
	Convey("Given the clutch zone table", t, func() {
		Convey("When clutch efficiency collapses", func() {
			So(decision.ClutchZone(30.0, 40.0, 5, 3), ShouldEqual, decision.ZoneUrgent)
		})

		Convey("When clutch efficiency spikes", func() {
			So(decision.ClutchZone(45.0, 40.0, 5, 3), ShouldEqual, decision.ZoneStrength)
		})

		Convey("When the delta sits inside the neutral band", func() {
			So(decision.ClutchZone(35.0, 40.0, 5, 3), ShouldEqual, decision.ZoneNeutral)
			So(decision.ClutchZone(43.0, 40.0, 5, 3), ShouldEqual, decision.ZoneNeutral)
			So(decision.ClutchZone(40.0, 40.0, 5, 3), ShouldEqual, decision.ZoneNeutral)
		})

		Convey("When both percentages are zero", func() {
			So(decision.ClutchZone(0.0, 0.0, 5, 3), ShouldEqual, decision.ZoneNeutral)
		})
	})
}
