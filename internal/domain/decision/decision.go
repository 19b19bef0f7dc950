// Package decision holds the threshold decision table shared by the
// narrative rules and the document builder's comparison labels, so the same
// semantics cannot drift between the two consumers.
package decision

// Label classifies a percentage against a benchmark value.
type Label string

// Benchmark comparison labels.
const (
	AboveAverage Label = "Above-Avg"
	BelowAverage Label = "Below-Avg"
	SmallSample  Label = "Small-Sample"
)

// Volume classifies attempt counts into coarse usage tiers.
type Volume string

// Volume tiers.
const (
	HighVolume     Volume = "High Volume"
	ModerateVolume Volume = "Moderate Volume"
	LowVolume      Volume = "Low Volume"
)

// Zone classifies clutch efficiency relative to overall efficiency.
type Zone int

// Clutch zones. The neutral zone deliberately produces no narrative: near
// league-average deltas on small clutch samples are statistically
// inconclusive.
const (
	ZoneNeutral Zone = iota
	ZoneUrgent
	ZoneStrength
)

// CompareToBenchmark labels pct against benchmark. An attempt count below
// minSample suppresses the above/below judgment regardless of percentage.
func CompareToBenchmark(pct, benchmark float64, attempts, minSample int) Label {
	if attempts < minSample {
		return SmallSample
	}
	if pct >= benchmark {
		return AboveAverage
	}
	return BelowAverage
}

// VolumeLabel tiers an attempt count by the configured sample thresholds.
func VolumeLabel(attempts, highSample, moderateSample int) Volume {
	switch {
	case attempts >= highSample:
		return HighVolume
	case attempts >= moderateSample:
		return ModerateVolume
	default:
		return LowVolume
	}
}

// ClutchZone classifies clutchPct against overallPct. Urgent when clutch
// efficiency falls more than urgentDelta points below overall, strength when
// it exceeds overall by more than strengthDelta points, neutral otherwise.
func ClutchZone(clutchPct, overallPct, urgentDelta, strengthDelta float64) Zone {
	switch {
	case clutchPct < overallPct-urgentDelta:
		return ZoneUrgent
	case clutchPct > overallPct+strengthDelta:
		return ZoneStrength
	default:
		return ZoneNeutral
	}
}
