// Package narrative maps a stats snapshot against benchmark thresholds into
// an ordered sequence of recommendation blocks.
//
// Rules run unconditionally in a fixed order and each emits at most one
// block, so identical inputs always produce the identical sequence. Nothing
// here performs I/O.
package narrative

import (
	"fmt"

	"github.com/okian/clutchreport/internal/config"
	"github.com/okian/clutchreport/internal/domain/decision"
	"github.com/okian/clutchreport/internal/domain/stats"
)

// Category tags a block with the area it addresses.
type Category string

// Block categories.
const (
	ShotSelection           Category = "shot_selection"
	LateGameExecution       Category = "late_game_execution"
	ConditioningConsistency Category = "conditioning_consistency"
	Generic                 Category = "generic"
)

// Block is one self-contained recommendation or observation.
type Block struct {
	Category Category
	Title    string
	Body     string
}

// Recommend evaluates the rule table against the snapshot. The returned
// order is the rule emission order, never re-sorted.
func Recommend(snap stats.Snapshot, bm config.Benchmark) []Block {
	blocks := make([]Block, 0, 5)

	blocks = append(blocks, shotSelectionBlock(snap, bm))
	if b, ok := lateGameBlock(snap, bm); ok {
		blocks = append(blocks, b)
	}
	if b, ok := consistencyBlock(snap, bm); ok {
		blocks = append(blocks, b)
	}
	blocks = append(blocks, filmStudyBlock(), offSeasonBlock())

	return blocks
}

// shotSelectionBlock always emits: either the improvement branch or the
// floor-spacing affirmation.
func shotSelectionBlock(snap stats.Snapshot, bm config.Benchmark) Block {
	if snap.Three.Percentage < bm.LeagueThreePct {
		return Block{
			Category: ShotSelection,
			Title:    "Improve Shot Selection",
			Body: fmt.Sprintf(
				"Three-point shooting sits at %.1f%%, below the %.1f%% league mark, while two-point attempts convert at %.1f%%. "+
					"Prioritize higher-quality looks: attack closeouts, work through paint touches before settling, and reserve "+
					"perimeter attempts for open, in-rhythm catches.",
				snap.Three.Percentage, bm.LeagueThreePct, snap.Two.Percentage),
		}
	}
	return Block{
		Category: ShotSelection,
		Title:    "Maintain Floor-Spacing Value",
		Body: fmt.Sprintf(
			"Three-point shooting at %.1f%% meets the %.1f%% league mark and keeps defenses honest. "+
				"Continue hunting the same quality of perimeter looks; the spacing this creates feeds the %.1f%% interior efficiency.",
			snap.Three.Percentage, bm.LeagueThreePct, snap.Two.Percentage),
	}
}

// lateGameBlock emits only outside the neutral zone. A near-average delta on
// a thin clutch sample is inconclusive and manufactures no recommendation.
func lateGameBlock(snap stats.Snapshot, bm config.Benchmark) (Block, bool) {
	zone := decision.ClutchZone(
		snap.Clutch.Percentage, snap.Overall.Percentage,
		bm.ClutchUrgentDelta, bm.ClutchStrengthDelta,
	)
	switch zone {
	case decision.ZoneUrgent:
		return Block{
			Category: LateGameExecution,
			Title:    "Urgent: Late-Game Execution",
			Body: fmt.Sprintf(
				"Clutch shooting falls to %.1f%% against %.1f%% overall. Add late-clock, high-pressure reps to practice and "+
					"emphasize shot quality over volume in the final five minutes; one good pass out of pressure beats a contested attempt.",
				snap.Clutch.Percentage, snap.Overall.Percentage),
		}, true
	case decision.ZoneStrength:
		return Block{
			Category: LateGameExecution,
			Title:    "Leverage Late-Game Strength",
			Body: fmt.Sprintf(
				"Clutch shooting rises to %.1f%% against %.1f%% overall. Route more late-game possessions this way: "+
					"early clock touches, designed actions out of timeouts, and the ball in hand on the final possession.",
				snap.Clutch.Percentage, snap.Overall.Percentage),
		}, true
	default:
		return Block{}, false
	}
}

// consistencyBlock fires when any quarter falls more than the variance
// threshold below overall efficiency. Ties on both extremes resolve to the
// lowest quarter number.
func consistencyBlock(snap stats.Snapshot, bm config.Benchmark) (Block, bool) {
	weakest := snap.Quarters[0]
	strongest := snap.Quarters[0]
	triggered := false
	for _, q := range snap.Quarters {
		if q.Percentage < weakest.Percentage {
			weakest = q
		}
		if q.Percentage > strongest.Percentage {
			strongest = q
		}
		if snap.Overall.Percentage-q.Percentage > bm.QuarterVarianceThreshold {
			triggered = true
		}
	}
	if !triggered {
		return Block{}, false
	}
	return Block{
		Category: ConditioningConsistency,
		Title:    "Address Quarter-to-Quarter Consistency",
		Body: fmt.Sprintf(
			"Efficiency dips to %.1f%% in Q%d, more than %.0f points under the %.1f%% overall mark, while Q%d holds at %.1f%%. "+
				"Review conditioning and rotation timing around the weak quarter and study what the strong quarter's looks have in common.",
			weakest.Percentage, weakest.Quarter, bm.QuarterVarianceThreshold,
			snap.Overall.Percentage, strongest.Quarter, strongest.Percentage),
	}, true
}

// The two closing blocks are static and independent of the statistics.

func filmStudyBlock() Block {
	return Block{
		Category: Generic,
		Title:    "Weekly Film Study",
		Body: "Schedule a standing weekly film session focused on shot-creation sequences: how looks were generated, " +
			"where the defense conceded ground, and which possessions ended in avoidable contested attempts.",
	}
}

func offSeasonBlock() Block {
	return Block{
		Category: Generic,
		Title:    "Off-Season Development Plan",
		Body: "Build an off-season program around the two or three highest-leverage gaps in this report, with measurable " +
			"checkpoints each month and a re-run of this analysis on the first ten games of next season.",
	}
}
