package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-tilt/game/input"
	"github.com/beka-birhanu/vinom-tilt/game/maze"
	"github.com/beka-birhanu/vinom-tilt/game/physics"
)

// Configuration errors.
var (
	ErrInvalidCellSize   = errors.New("cell size must be positive")
	ErrInvalidWallHeight = errors.New("wall height must be positive")
	ErrInvalidRadius     = errors.New("ball radius must be positive and smaller than half a cell")
	ErrInvalidTimestep   = errors.New("timestep and frame interval must be positive")
	ErrInvalidDamping    = errors.New("damping must be within (0, 1]")
)

// Config holds the constants of a game. They are fixed once a game is created.
type Config struct {
	Cols          int            `yaml:"cols"`
	Rows          int            `yaml:"rows"`
	CellSize      float64        `yaml:"cell_size"`
	WallHeight    float64        `yaml:"wall_height"`
	BallRadius    float64        `yaml:"ball_radius"`
	Timestep      float64        `yaml:"timestep"`       // dt passed to the physics step.
	FrameInterval time.Duration  `yaml:"frame_interval"` // Wall-clock time between ticks.
	Physics       physics.Params `yaml:"physics"`
	Input         input.Config   `yaml:"input"`
}

// DefaultConfig returns the stock 11x11 game.
func DefaultConfig() Config {
	return Config{
		Cols:          11,
		Rows:          11,
		CellSize:      3,
		WallHeight:    2.2,
		BallRadius:    0.4,
		Timestep:      0.016,
		FrameInterval: 16 * time.Millisecond,
		Physics:       physics.DefaultParams(),
		Input: input.Config{
			TiltScale: 1,
			KeyForce:  4,
		},
	}
}

// Validate rejects configurations that would break the maze or physics invariants.
func (c Config) Validate() error {
	if err := maze.ValidateDimensions(c.Cols, c.Rows); err != nil {
		return fmt.Errorf("invalid maze %dx%d: %w", c.Cols, c.Rows, err)
	}
	if c.CellSize <= 0 {
		return ErrInvalidCellSize
	}
	if c.WallHeight <= 0 {
		return ErrInvalidWallHeight
	}
	if c.BallRadius <= 0 || c.BallRadius >= c.CellSize/2 {
		return ErrInvalidRadius
	}
	if c.Timestep <= 0 || c.FrameInterval <= 0 {
		return ErrInvalidTimestep
	}
	if c.Physics.Damping <= 0 || c.Physics.Damping > 1 {
		return ErrInvalidDamping
	}
	return nil
}
