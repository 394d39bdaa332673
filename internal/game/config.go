package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/samdwyer/necronix/internal/gamelog"
	"github.com/samdwyer/necronix/internal/sim"
	"github.com/samdwyer/necronix/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible worlds.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	MapWidth  int
	MapHeight int
	Units     int // Units spawned at world init; at least one

	FrameRate int // Frames per second of the render/input loop
	TickSize  int // Frames per simulation tick

	LogFile      string // Diagnostic log destination
	LogVerbosity int
	LogCapacity  int // Game log entries kept for the Log tab

	// SessionID tags logs and spans. Empty means one is generated.
	SessionID string
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		MapWidth:     world.DefaultWidth,
		MapHeight:    world.DefaultHeight,
		Units:        10,
		FrameRate:    60,
		TickSize:     sim.TickSize,
		LogFile:      "necronix.log",
		LogCapacity:  gamelog.DefaultCapacity,
		LogVerbosity: 0,
	}
}

// LoadConfig builds a Config from NECRONIX_* environment variables on top of
// DefaultConfig. Unset variables keep their defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("NECRONIX_SEED"); v != "" {
		cfg.Seed = ParseSeed(v)
	}

	ints := []struct {
		env string
		dst *int
	}{
		{"NECRONIX_MAP_WIDTH", &cfg.MapWidth},
		{"NECRONIX_MAP_HEIGHT", &cfg.MapHeight},
		{"NECRONIX_UNITS", &cfg.Units},
		{"NECRONIX_FPS", &cfg.FrameRate},
		{"NECRONIX_TICK_SIZE", &cfg.TickSize},
		{"NECRONIX_LOG_VERBOSITY", &cfg.LogVerbosity},
		{"NECRONIX_LOG_CAPACITY", &cfg.LogCapacity},
	}
	for _, i := range ints {
		v := os.Getenv(i.env)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", i.env, err)
		}
		*i.dst = n
	}

	if v := os.Getenv("NECRONIX_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}

	return cfg, cfg.Validate()
}

// Validate reports configuration values the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.MapWidth < 1 || c.MapHeight < 1 {
		errs = append(errs, fmt.Errorf("map size %dx%d must be positive", c.MapWidth, c.MapHeight))
	}
	if c.Units < 1 {
		errs = append(errs, fmt.Errorf("unit count %d must be at least 1", c.Units))
	}
	if c.FrameRate < 1 {
		errs = append(errs, fmt.Errorf("frame rate %d must be positive", c.FrameRate))
	}
	if c.TickSize < 1 {
		errs = append(errs, fmt.Errorf("tick size %d must be positive", c.TickSize))
	}
	return errors.Join(errs...)
}

// ParseSeed turns a seed string into a seed. Integers are used as-is; any
// other text is hashed so that word seeds like "forest" are reproducible.
func ParseSeed(s string) int64 {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	return int64(xxhash.Sum64String(s))
}
