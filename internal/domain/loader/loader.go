// Package loader turns raw delimited shot data into typed ShotEvent records.
//
// Columns are matched by header name, not position, so inputs may reorder or
// add columns freely. Malformed values inside a row degrade to zero values for
// that row; only a missing header row is fatal.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/okian/clutchreport/internal/domain/model"
)

// Recognized header names, upper-cased for matching.
const (
	colGameID     = "GAME_ID"
	colPlayerName = "PLAYER_NAME"
	colPeriod     = "PERIOD"
	colMinutes    = "MINUTES_REMAINING"
	colSeconds    = "SECONDS_REMAINING"
	colShotType   = "SHOT_TYPE"
	colMadeFlag   = "SHOT_MADE_FLAG"
)

// Option applies a configuration option to loading.
type Option func(*settings)

type settings struct {
	onRowDefaulted func()
}

// WithRowDefaultHook registers fn to be called once per row in which a
// present but malformed value degraded to its zero value.
func WithRowDefaultHook(fn func()) Option {
	return func(s *settings) {
		if fn != nil {
			s.onRowDefaulted = fn
		}
	}
}

// Load reads delimited text from r and returns shot events in input order.
// It returns ErrNoHeader when the header row is absent or empty, and
// ErrUnreadable when the reader itself fails. Individual malformed rows are
// never fatal: missing or unparseable fields default to zero values.
func Load(r io.Reader, opts ...Option) ([]model.ShotEvent, error) {
	cfg := &settings{onRowDefaulted: func() {}}
	for _, opt := range opts {
		opt(cfg)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("empty input: %w", ErrNoHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", errors.Join(ErrUnreadable, err))
	}

	cols := indexColumns(header)
	if len(cols) == 0 {
		return nil, fmt.Errorf("no recognized columns in header: %w", ErrNoHeader)
	}

	var events []model.ShotEvent
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return events, nil
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				// Structurally odd row: keep what csv gave us, defaults fill the rest.
				if len(row) == 0 {
					continue
				}
			} else {
				return nil, fmt.Errorf("reading row: %w", errors.Join(ErrUnreadable, err))
			}
		}
		if isBlank(row) {
			continue
		}
		event, defaulted := parseRow(row, cols)
		if defaulted {
			cfg.onRowDefaulted()
		}
		events = append(events, event)
	}
}

// indexColumns maps recognized column names to their positions.
func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToUpper(strings.TrimSpace(name))
		switch name {
		case colGameID, colPlayerName, colPeriod, colMinutes, colSeconds, colShotType, colMadeFlag:
			cols[name] = i
		}
	}
	return cols
}

func isBlank(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// parseRow builds one event from a row. Absent or malformed fields yield the
// field's zero value rather than an error; the second return reports whether
// any present value had to degrade.
func parseRow(row []string, cols map[string]int) (model.ShotEvent, bool) {
	defaulted := false
	intVal := func(name string) int {
		v, ok := intField(row, cols, name)
		if !ok {
			defaulted = true
		}
		return v
	}
	event := model.ShotEvent{
		GameID:           field(row, cols, colGameID),
		PlayerName:       field(row, cols, colPlayerName),
		Period:           intVal(colPeriod),
		MinutesRemaining: intVal(colMinutes),
		SecondsRemaining: intVal(colSeconds),
		Type:             parseShotType(field(row, cols, colShotType)),
		Made:             parseMade(field(row, cols, colMadeFlag)),
	}
	return event, defaulted
}

func field(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// intField parses a non-negative integer. ok is false only when a non-empty
// value failed to parse; an absent field is a clean default, not a degrade.
func intField(row []string, cols map[string]int, name string) (int, bool) {
	s := field(row, cols, name)
	if s == "" {
		return 0, true
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// parseShotType maps source labels like "3PT Field Goal" or "3PT" to the enum.
// Anything that does not clearly say three-point is treated as a two-pointer.
func parseShotType(s string) model.ShotType {
	if strings.Contains(strings.ToUpper(s), "3PT") {
		return model.ThreePoint
	}
	return model.TwoPoint
}

func parseMade(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "t", "yes", "y":
		return true
	default:
		return false
	}
}
