package loader_test

import (
	"strings"
	"testing"

	loader "github.com/okian/clutchreport/internal/domain/loader"
	model "github.com/okian/clutchreport/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad(t *testing.T) {
	Convey("Given a well-formed shot CSV", t, func() {
		input := strings.Join([]string{
			"GAME_ID,PLAYER_NAME,PERIOD,MINUTES_REMAINING,SECONDS_REMAINING,SHOT_TYPE,SHOT_MADE_FLAG",
			"g1,Sabrina Ionescu,1,9,30,2PT Field Goal,1",
			"g1,Sabrina Ionescu,4,2,15,3PT Field Goal,0",
		}, "\n")

		Convey("When loading", func() {
			events, err := loader.Load(strings.NewReader(input))

			Convey("Then both rows become events in input order", func() {
				So(err, ShouldBeNil)
				So(events, ShouldHaveLength, 2)
				So(events[0].GameID, ShouldEqual, "g1")
				So(events[0].Type, ShouldEqual, model.TwoPoint)
				So(events[0].Made, ShouldBeTrue)
				So(events[1].Period, ShouldEqual, 4)
				So(events[1].Type, ShouldEqual, model.ThreePoint)
				So(events[1].Made, ShouldBeFalse)
				So(events[1].ClockSeconds(), ShouldEqual, 135)
			})
		})
	})

	Convey("Given a CSV with reordered columns", t, func() {
		input := strings.Join([]string{
			"SHOT_MADE_FLAG,SHOT_TYPE,PERIOD,GAME_ID,MINUTES_REMAINING,SECONDS_REMAINING",
			"1,3PT Field Goal,2,g9,0,45",
		}, "\n")

		Convey("When loading", func() {
			events, err := loader.Load(strings.NewReader(input))

			Convey("Then fields are matched by name, not position", func() {
				So(err, ShouldBeNil)
				So(events, ShouldHaveLength, 1)
				So(events[0].GameID, ShouldEqual, "g9")
				So(events[0].Period, ShouldEqual, 2)
				So(events[0].Type, ShouldEqual, model.ThreePoint)
				So(events[0].Made, ShouldBeTrue)
			})
		})
	})

	Convey("Given rows with missing or malformed fields", t, func() {
		input := strings.Join([]string{
			"GAME_ID,PERIOD,MINUTES_REMAINING,SECONDS_REMAINING,SHOT_TYPE,SHOT_MADE_FLAG",
			"g1,not-a-number,abc,,3PT,maybe",
			"g1,3",
		}, "\n")

		Convey("When loading", func() {
			events, err := loader.Load(strings.NewReader(input))

			Convey("Then malformed fields degrade to zero values", func() {
				So(err, ShouldBeNil)
				So(events, ShouldHaveLength, 2)
				So(events[0].Period, ShouldEqual, 0)
				So(events[0].MinutesRemaining, ShouldEqual, 0)
				So(events[0].Type, ShouldEqual, model.ThreePoint)
				So(events[0].Made, ShouldBeFalse)
				So(events[1].Period, ShouldEqual, 3)
				So(events[1].Type, ShouldEqual, model.TwoPoint)
			})
		})
	})

	Convey("Given a row-default hook", t, func() {
		input := strings.Join([]string{
			"GAME_ID,PERIOD,MINUTES_REMAINING,SECONDS_REMAINING,SHOT_TYPE,SHOT_MADE_FLAG",
			"g1,not-a-number,5,30,2PT,1",
			"g1,2,4,15,2PT,0",
			"g1,3",
		}, "\n")

		Convey("When loading", func() {
			defaulted := 0
			events, err := loader.Load(strings.NewReader(input),
				loader.WithRowDefaultHook(func() { defaulted++ }))

			Convey("Then the hook fires once per degraded row, not per absent field", func() {
				So(err, ShouldBeNil)
				So(events, ShouldHaveLength, 3)
				So(defaulted, ShouldEqual, 1)
			})
		})
	})

	Convey("Given input with blank lines between rows", t, func() {
		input := "GAME_ID,PERIOD,SHOT_TYPE,SHOT_MADE_FLAG\ng1,1,2PT,1\n\n   \ng1,2,2PT,0\n"

		Convey("When loading", func() {
			events, err := loader.Load(strings.NewReader(input))

			Convey("Then blank lines are skipped silently", func() {
				So(err, ShouldBeNil)
				So(events, ShouldHaveLength, 2)
			})
		})
	})

	Convey("Given empty input", t, func() {
		Convey("When loading", func() {
			events, err := loader.Load(strings.NewReader(""))

			Convey("Then loading fails with ErrNoHeader", func() {
				So(events, ShouldBeNil)
				So(err, ShouldWrap, loader.ErrNoHeader)
			})
		})
	})

	Convey("Given a header with no recognized columns", t, func() {
		Convey("When loading", func() {
			_, err := loader.Load(strings.NewReader("foo,bar\n1,2\n"))

			Convey("Then loading fails with ErrNoHeader", func() {
				So(err, ShouldWrap, loader.ErrNoHeader)
			})
		})
	})

	Convey("Given a header followed by no data rows", t, func() {
		Convey("When loading", func() {
			events, err := loader.Load(strings.NewReader("GAME_ID,PERIOD\n"))

			Convey("Then the result is an empty event sequence, not an error", func() {
				So(err, ShouldBeNil)
				So(events, ShouldHaveLength, 0)
			})
		})
	})
}
