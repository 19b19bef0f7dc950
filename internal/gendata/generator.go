// Package gendata produces synthetic but realistic shot data in the same
// schema the loader reads. Useful for demos and for exercising the pipeline
// without scraped data.
package gendata

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"strconv"

	"github.com/google/uuid"

	"github.com/okian/clutchreport/internal/domain/model"
)

// Default generation constants.
const (
	defaultShotsPerPlayer = 500
	defaultRandomSeed     = 42

	periodMinutes = 10 // WNBA quarters run ten minutes

	gamesPerSeason = 40
)

// Shot-make probabilities by attempt type, around typical WNBA marks.
const (
	twoPointMakeProb   = 0.47
	threePointMakeProb = 0.34
	playerVariance     = 0.05
)

// Position adjusts the three-point attempt share.
type Position string

// Recognized positions.
const (
	Guard   Position = "Guard"
	Forward Position = "Forward"
	Center  Position = "Center"
)

func threeShare(pos Position) float64 {
	switch pos {
	case Guard:
		return 0.45
	case Center:
		return 0.10
	default:
		return 0.30
	}
}

// PlayerSpec describes one synthetic player.
type PlayerSpec struct {
	Name     string
	Position Position
	Shots    int
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithSeed sets the random seed for reproducible output.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// Generator produces deterministic synthetic shot events for a fixed seed.
type Generator struct {
	seed int64
	rng  *rand.Rand
}

// New creates a Generator with configuration options.
func New(opts ...Option) *Generator {
	g := &Generator{seed: defaultRandomSeed}
	for _, opt := range opts {
		opt(g)
	}
	g.rng = rand.New(rand.NewSource(g.seed)) //nolint:gosec // deterministic seed for reproducible data
	return g
}

// Generate produces events for every player spec, honoring ctx for
// cancellation between players.
func (g *Generator) Generate(ctx context.Context, specs []PlayerSpec) ([]model.ShotEvent, error) {
	// Game ids are stable per generator run so players share a schedule.
	gameIDs := make([]string, gamesPerSeason)
	for i := range gameIDs {
		gameIDs[i] = uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("game-%d-%d", g.seed, i))).String()
	}

	var events []model.ShotEvent
	for _, spec := range specs {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("generation canceled: %w", err)
		}
		shots := spec.Shots
		if shots <= 0 {
			shots = defaultShotsPerPlayer
		}
		variance := (g.rng.Float64()*2 - 1) * playerVariance
		for i := 0; i < shots; i++ {
			events = append(events, g.shot(spec, gameIDs, variance))
		}
	}
	return events, nil
}

func (g *Generator) shot(spec PlayerSpec, gameIDs []string, variance float64) model.ShotEvent {
	shotType := model.TwoPoint
	makeProb := twoPointMakeProb
	if g.rng.Float64() < threeShare(spec.Position) {
		shotType = model.ThreePoint
		makeProb = threePointMakeProb
	}

	return model.ShotEvent{
		GameID:           gameIDs[g.rng.Intn(len(gameIDs))],
		PlayerName:       spec.Name,
		Period:           g.rng.Intn(4) + 1,
		MinutesRemaining: g.rng.Intn(periodMinutes),
		SecondsRemaining: g.rng.Intn(60),
		Type:             shotType,
		Made:             g.rng.Float64() < makeProb+variance,
	}
}

// WriteCSV writes events in the loader's input schema.
func WriteCSV(w io.Writer, events []model.ShotEvent) error {
	cw := csv.NewWriter(w)
	header := []string{"GAME_ID", "PLAYER_NAME", "PERIOD", "MINUTES_REMAINING", "SECONDS_REMAINING", "SHOT_TYPE", "SHOT_MADE_FLAG"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, e := range events {
		made := "0"
		if e.Made {
			made = "1"
		}
		row := []string{
			e.GameID,
			e.PlayerName,
			strconv.Itoa(e.Period),
			strconv.Itoa(e.MinutesRemaining),
			strconv.Itoa(e.SecondsRemaining),
			e.Type.String() + " Field Goal",
			made,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}
