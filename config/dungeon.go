package config

import (
	"errors"
	"fmt"
)

// Default dungeon dimensions and room generation constraints
const (
	WorldWidth  = 80
	WorldHeight = 43

	RoomMaxSize = 10
	RoomMinSize = 6
	MaxRooms    = 30
)

// ErrInvalidGenerator is wrapped by every GeneratorConfig validation failure
var ErrInvalidGenerator = errors.New("invalid generator config")

// GeneratorConfig holds the grid size and room placement bounds
type GeneratorConfig struct {
	Width       int `yaml:"width" env:"ROGUE_WIDTH" envDefault:"80"`
	Height      int `yaml:"height" env:"ROGUE_HEIGHT" envDefault:"43"`
	RoomMinSize int `yaml:"roomMinSize" env:"ROGUE_ROOM_MIN_SIZE" envDefault:"6"`
	RoomMaxSize int `yaml:"roomMaxSize" env:"ROGUE_ROOM_MAX_SIZE" envDefault:"10"`
	MaxRooms    int `yaml:"maxRooms" env:"ROGUE_MAX_ROOMS" envDefault:"30"` // Placement attempts, not a guaranteed count
}

// DefaultGeneratorConfig returns the classic 80x43 layout
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Width:       WorldWidth,
		Height:      WorldHeight,
		RoomMinSize: RoomMinSize,
		RoomMaxSize: RoomMaxSize,
		MaxRooms:    MaxRooms,
	}
}

// Validate checks that every room the generator can sample fits on the map.
// A zero room budget is accepted here; generation reports it.
func (c GeneratorConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: map size must be positive, got %dx%d", ErrInvalidGenerator, c.Width, c.Height)
	}
	// A room needs a wall ring plus at least one interior tile.
	if c.RoomMinSize < 2 {
		return fmt.Errorf("%w: roomMinSize must be >= 2, got %d", ErrInvalidGenerator, c.RoomMinSize)
	}
	if c.RoomMaxSize < c.RoomMinSize {
		return fmt.Errorf("%w: roomMaxSize %d is smaller than roomMinSize %d", ErrInvalidGenerator, c.RoomMaxSize, c.RoomMinSize)
	}
	if c.RoomMaxSize >= c.Width || c.RoomMaxSize >= c.Height {
		return fmt.Errorf("%w: roomMaxSize %d does not fit a %dx%d map", ErrInvalidGenerator, c.RoomMaxSize, c.Width, c.Height)
	}
	if c.MaxRooms < 0 {
		return fmt.Errorf("%w: maxRooms must be >= 0, got %d", ErrInvalidGenerator, c.MaxRooms)
	}
	return nil
}
