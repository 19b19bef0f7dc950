// Package model contains domain models passed between pipeline stages.
package model

// ShotType distinguishes two-point from three-point field goal attempts.
type ShotType int

// Shot type values.
const (
	TwoPoint ShotType = iota
	ThreePoint
)

// String returns the short label used in report text.
func (t ShotType) String() string {
	if t == ThreePoint {
		return "3PT"
	}
	return "2PT"
}

// ShotEvent represents one attempted field goal, built from a single input
// row by the loader. Immutable for the rest of the pipeline.
type ShotEvent struct {
	GameID           string   // opaque identifier grouping events into a game
	PlayerName       string   // subject of the attempt; groups events in team mode
	Period           int      // quarter number; 1-4 in regulation, higher for overtime
	MinutesRemaining int      // clock minutes remaining in the period
	SecondsRemaining int      // clock seconds remaining in the period
	Type             ShotType // two- or three-point attempt
	Made             bool     // whether the attempt scored
}

// ClockSeconds returns total seconds remaining in the period.
func (e ShotEvent) ClockSeconds() int {
	return e.MinutesRemaining*60 + e.SecondsRemaining
}
