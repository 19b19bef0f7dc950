package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/okian/clutchreport/internal/domain/model"
	"github.com/okian/clutchreport/internal/gendata"
	"github.com/okian/clutchreport/pkg/logger"
)

// Default generation constants.
const (
	defaultShots      = 500
	defaultSeed       = 42
	defaultOutput     = "data/shots.csv"
	outputDirPerm     = 0o755
	outputFilePerm    = 0o600
	defaultPlayerSpec = "Sabrina Ionescu:Guard,Breanna Stewart:Forward,Jonquel Jones:Center"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		players = flag.String("players", defaultPlayerSpec, "Comma-separated name:position pairs")
		shots   = flag.Int("shots", defaultShots, "Shots generated per player")
		seed    = flag.Int64("seed", defaultSeed, "Random seed for reproducible output")
		output  = flag.String("output", defaultOutput, "Output CSV path")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	specs := parseSpecs(*players, *shots)
	if len(specs) == 0 {
		os.Stderr.WriteString("no valid player specs in -players\n")
		return 2
	}

	gen := gendata.New(gendata.WithSeed(*seed))
	events, err := gen.Generate(ctx, specs)
	if err != nil {
		log.Error(ctx, "generation failed", logger.Error(err))
		return 1
	}

	if err := writeCSV(*output, events); err != nil {
		log.Error(ctx, "failed to write output", logger.String("output", *output), logger.Error(err))
		return 1
	}

	log.Info(ctx, "synthetic shots written",
		logger.String("output", *output),
		logger.Int("players", len(specs)),
		logger.Int("events", len(events)),
	)
	return 0
}

// parseSpecs turns "Name:Position,Name:Position" into player specs. Entries
// without a position default to Forward.
func parseSpecs(raw string, shots int) []gendata.PlayerSpec {
	var specs []gendata.PlayerSpec
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, pos, _ := strings.Cut(entry, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		position := gendata.Position(strings.TrimSpace(pos))
		switch position {
		case gendata.Guard, gendata.Forward, gendata.Center:
		default:
			position = gendata.Forward
		}
		specs = append(specs, gendata.PlayerSpec{Name: name, Position: position, Shots: shots})
	}
	return specs
}

// writeCSV writes events to path with a scoped file handle.
func writeCSV(path string, events []model.ShotEvent) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, outputDirPerm); err != nil {
			return err
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputFilePerm) //nolint:gosec // operator-chosen path
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return gendata.WriteCSV(f, events)
}
