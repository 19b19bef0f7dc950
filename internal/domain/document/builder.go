package document

import (
	"fmt"

	"github.com/okian/clutchreport/internal/config"
	"github.com/okian/clutchreport/internal/domain/decision"
	"github.com/okian/clutchreport/internal/domain/narrative"
	"github.com/okian/clutchreport/internal/domain/stats"
)

// Build assembles the full report tree for one player. chartPath may be
// empty, in which case no image node is emitted. The returned tree is
// immutable by convention; renderers only traverse it.
func Build(player string, snap stats.Snapshot, blocks []narrative.Block, bm config.Benchmark, chartPath string) *Section {
	root := &Section{Heading: "Shooting Performance Report: " + player}

	root.Children = append(root.Children,
		&Section{Heading: "Executive Summary", Children: []Node{summary(player, snap)}},
		&Section{Heading: "Shooting Statistics", Children: []Node{statsTable(snap, bm)}},
		&Section{Heading: "Quarter Breakdown", Children: []Node{quarterTable(snap)}},
		&Section{Heading: "Clutch Analysis", Children: []Node{clutchParagraph(snap)}},
		&Section{Heading: "Key Observations", Children: []Node{observations(snap, bm)}},
		&Section{Heading: "Recommendations", Children: []Node{recommendationList(blocks)}},
	)

	if chartPath != "" {
		root.Children = append(root.Children, &Section{
			Heading:  "Shot Chart",
			Children: []Node{&Image{Path: chartPath, Caption: player + " shot chart"}},
		})
	}

	return root
}

func summary(player string, snap stats.Snapshot) *Paragraph {
	return &Paragraph{Runs: []Run{
		{Text: player, Bold: true},
		{Text: fmt.Sprintf(
			" attempted %d field goals, converting %d for %.1f%% overall. "+
				"Two-point attempts landed at %.1f%% and three-point attempts at %.1f%%; "+
				"inside the final five minutes of the fourth quarter the conversion rate was %.1f%% on %d attempts.",
			snap.Overall.Attempts, snap.Overall.Made, snap.Overall.Percentage,
			snap.Two.Percentage, snap.Three.Percentage,
			snap.Clutch.Percentage, snap.Clutch.Attempts)},
	}}
}

// statsTable labels each metric against its benchmark. The comparison column
// comes from the shared decision table, so it can never drift from the
// narrative rules' thresholds.
func statsTable(snap stats.Snapshot, bm config.Benchmark) *Table {
	row := func(metric string, line stats.Line, benchmark float64, minSample int) []string {
		return []string{
			metric,
			fmt.Sprintf("%.1f%% (%d/%d)", line.Percentage, line.Made, line.Attempts),
			fmt.Sprintf("%.1f%%", benchmark),
			string(decision.CompareToBenchmark(line.Percentage, benchmark, line.Attempts, minSample)),
		}
	}
	return &Table{
		Header: []string{"Metric", "Value", "League", "vs League"},
		Rows: [][]string{
			row("Overall FG%", snap.Overall, bm.LeagueFgPct, bm.MinClutchSample),
			row("2PT FG%", snap.Two, bm.LeagueTwoPct, bm.MinClutchSample),
			row("3PT FG%", snap.Three, bm.LeagueThreePct, bm.MinClutchSample),
			row("Clutch FG%", snap.Clutch, bm.LeagueClutchPct, bm.MinClutchSample),
		},
	}
}

func quarterTable(snap stats.Snapshot) *Table {
	t := &Table{Header: []string{"Quarter", "Attempts", "FG%"}}
	for _, q := range snap.Quarters {
		t.Rows = append(t.Rows, []string{
			fmt.Sprintf("Q%d", q.Quarter),
			fmt.Sprintf("%d", q.Attempts),
			fmt.Sprintf("%.1f%%", q.Percentage),
		})
	}
	return t
}

// clutchParagraph states the clutch-vs-overall differential with explicit
// sign and magnitude.
func clutchParagraph(snap stats.Snapshot) *Paragraph {
	diff := snap.Clutch.Percentage - snap.Overall.Percentage
	return Text(fmt.Sprintf(
		"In the clutch window the conversion rate was %.1f%% on %d attempts, a differential of %+.1f points against the %.1f%% overall mark.",
		snap.Clutch.Percentage, snap.Clutch.Attempts, diff, snap.Overall.Percentage))
}

// observations derives the key-observation list directly from the snapshot,
// independent of the recommendation engine.
func observations(snap stats.Snapshot, bm config.Benchmark) *List {
	volume := decision.VolumeLabel(snap.Overall.Attempts, bm.HighVolumeSample, bm.ModerateVolumeSample)

	threeShare := stats.Percentage(snap.Three.Attempts, snap.Overall.Attempts)

	insideOutside := "two-point and three-point efficiency are level"
	if snap.Two.Percentage > snap.Three.Percentage {
		insideOutside = fmt.Sprintf("more efficient inside the arc (%.1f%% vs %.1f%%)",
			snap.Two.Percentage, snap.Three.Percentage)
	} else if snap.Three.Percentage > snap.Two.Percentage {
		insideOutside = fmt.Sprintf("more efficient beyond the arc (%.1f%% vs %.1f%%)",
			snap.Three.Percentage, snap.Two.Percentage)
	}

	best := snap.Quarters[0]
	for _, q := range snap.Quarters {
		if q.Percentage > best.Percentage {
			best = q
		}
	}

	return &List{
		Ordered: true,
		Items: []Paragraph{
			Item("Volume:", fmt.Sprintf(" %s, %d attempts on the season.", volume, snap.Overall.Attempts)),
			Item("Shot mix:", fmt.Sprintf(" %.1f%% of attempts came from three-point range.", threeShare)),
			Item("Efficiency profile:", " "+insideOutside+"."),
			Item("Strongest quarter:", fmt.Sprintf(" Q%d at %.1f%% on %d attempts.", best.Quarter, best.Percentage, best.Attempts)),
		},
	}
}

func recommendationList(blocks []narrative.Block) *List {
	l := &List{Ordered: true}
	for _, b := range blocks {
		l.Items = append(l.Items, Item(b.Title+":", " "+b.Body))
	}
	return l
}
