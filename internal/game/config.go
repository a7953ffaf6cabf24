package game

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/samdwyer/blockfall/internal/session"
)

// Options holds presentation settings that do not affect the rules.
type Options struct {
	// CellWidth is the number of terminal columns per board cell.
	CellWidth int
	// Sound enables audio cues.
	Sound bool
}

// DefaultOptions returns two-column cells with sound off.
func DefaultOptions() Options {
	return Options{CellWidth: 2}
}

// Environment variables read by LoadConfig.
const (
	EnvRows           = "BLOCKFALL_ROWS"
	EnvCols           = "BLOCKFALL_COLS"
	EnvSeed           = "BLOCKFALL_SEED"
	EnvInitialSpeedMS = "BLOCKFALL_INITIAL_SPEED_MS"
	EnvSpeedFloorMS   = "BLOCKFALL_SPEED_FLOOR_MS"
	EnvSpeedStepMS    = "BLOCKFALL_SPEED_STEP_MS"
	EnvLevelThreshold = "BLOCKFALL_LEVEL_THRESHOLD"
	EnvCellWidth      = "BLOCKFALL_CELL_WIDTH"
	EnvSound          = "BLOCKFALL_SOUND"
)

// LoadConfig builds the rules and presentation options from the defaults
// overridden by environment variables. Unset variables keep the default.
func LoadConfig() (session.Config, Options, error) {
	cfg := session.DefaultConfig()
	opts := DefaultOptions()

	ints := []struct {
		env string
		dst *int
	}{
		{EnvRows, &cfg.Rows},
		{EnvCols, &cfg.Cols},
		{EnvLevelThreshold, &cfg.LevelThreshold},
		{EnvCellWidth, &opts.CellWidth},
	}
	for _, v := range ints {
		if err := envInt(v.env, v.dst); err != nil {
			return cfg, opts, err
		}
	}

	durations := []struct {
		env string
		dst *time.Duration
	}{
		{EnvInitialSpeedMS, &cfg.InitialSpeed},
		{EnvSpeedFloorMS, &cfg.SpeedFloor},
		{EnvSpeedStepMS, &cfg.SpeedStep},
	}
	for _, v := range durations {
		ms := int(v.dst.Milliseconds())
		if err := envInt(v.env, &ms); err != nil {
			return cfg, opts, err
		}
		*v.dst = time.Duration(ms) * time.Millisecond
	}

	if s := os.Getenv(EnvSeed); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return cfg, opts, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	if s := os.Getenv(EnvSound); s != "" {
		sound, err := strconv.ParseBool(s)
		if err != nil {
			return cfg, opts, fmt.Errorf("%s: %w", EnvSound, err)
		}
		opts.Sound = sound
	}

	if err := cfg.Validate(); err != nil {
		return cfg, opts, err
	}
	if opts.CellWidth < 1 {
		return cfg, opts, fmt.Errorf("%s: must be at least 1, got %d", EnvCellWidth, opts.CellWidth)
	}
	return cfg, opts, nil
}

func envInt(name string, dst *int) error {
	s := os.Getenv(name)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = n
	return nil
}
