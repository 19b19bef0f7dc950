// Package stats aggregates shot events into a multi-dimensional efficiency
// snapshot: overall, by shot type, by quarter, and inside the clutch window.
package stats

import (
	"math"

	"github.com/okian/clutchreport/internal/domain/model"
)

// Aggregation constants.
const (
	// DefaultClutchWindowSeconds is the clutch window: the final five minutes
	// of the fourth period, boundary inclusive.
	DefaultClutchWindowSeconds = 300

	firstQuarter = 1
	lastQuarter  = 4
)

// Option applies a configuration option to aggregation.
type Option func(*aggregator)

// WithClutchWindow sets the clutch window in seconds. Non-positive values are
// ignored and the default window is kept.
func WithClutchWindow(seconds int) Option {
	return func(a *aggregator) {
		if seconds > 0 {
			a.clutchWindow = seconds
		}
	}
}

// Line holds attempt, make, and percentage figures for one slice of events.
type Line struct {
	Attempts   int
	Made       int
	Percentage float64 // 0.0 when Attempts is 0, never NaN
}

// QuarterLine holds the per-quarter slice. Makes are tracked internally but
// the quarter breakdown reports attempts and percentage.
type QuarterLine struct {
	Quarter    int
	Attempts   int
	Percentage float64
}

// Snapshot is the aggregate of one player's full event sequence. Immutable
// once computed; consumed by both the narrative engine and the document
// builder.
type Snapshot struct {
	Overall Line
	Two     Line
	Three   Line
	// Quarters always carries Q1..Q4 in ascending order, zero-filled for
	// quarters without attempts. Periods outside 1-4 contribute to Overall
	// only.
	Quarters [4]QuarterLine
	Clutch   Line
}

type aggregator struct {
	clutchWindow int
}

// Aggregate computes a snapshot from the event sequence. Pure and
// deterministic: identical input yields an identical snapshot, and empty
// input yields the all-zero snapshot rather than an error.
func Aggregate(events []model.ShotEvent, opts ...Option) Snapshot {
	a := &aggregator{clutchWindow: DefaultClutchWindowSeconds}
	for _, opt := range opts {
		opt(a)
	}

	var snap Snapshot
	quarterMakes := [4]int{}

	for _, e := range events {
		snap.Overall.Attempts++
		if e.Made {
			snap.Overall.Made++
		}

		switch e.Type {
		case model.ThreePoint:
			snap.Three.Attempts++
			if e.Made {
				snap.Three.Made++
			}
		default:
			snap.Two.Attempts++
			if e.Made {
				snap.Two.Made++
			}
		}

		if e.Period >= firstQuarter && e.Period <= lastQuarter {
			q := e.Period - 1
			snap.Quarters[q].Attempts++
			if e.Made {
				quarterMakes[q]++
			}
		}

		if e.Period == lastQuarter && e.ClockSeconds() <= a.clutchWindow {
			snap.Clutch.Attempts++
			if e.Made {
				snap.Clutch.Made++
			}
		}
	}

	snap.Overall.Percentage = Percentage(snap.Overall.Made, snap.Overall.Attempts)
	snap.Two.Percentage = Percentage(snap.Two.Made, snap.Two.Attempts)
	snap.Three.Percentage = Percentage(snap.Three.Made, snap.Three.Attempts)
	snap.Clutch.Percentage = Percentage(snap.Clutch.Made, snap.Clutch.Attempts)
	for i := range snap.Quarters {
		snap.Quarters[i].Quarter = i + 1
		snap.Quarters[i].Percentage = Percentage(quarterMakes[i], snap.Quarters[i].Attempts)
	}

	return snap
}

// Percentage computes made/attempts*100 rounded half away from zero to one
// decimal place. Zero attempts yields 0.0 rather than NaN; this guard is a
// correctness invariant across every breakdown.
func Percentage(made, attempts int) float64 {
	if attempts == 0 {
		return 0.0
	}
	return math.Round(float64(made)/float64(attempts)*1000) / 10
}
