package components

import (
	"fmt"
	"image/color"
)

// Tile is the per-cell state of the dungeon grid
type Tile struct {
	Blocked    bool // Blocks movement
	BlockSight bool // Blocks field of view
	Explored   bool // Seen by the player at least once
}

// WallTile returns a solid, opaque, unexplored tile
func WallTile() Tile {
	return Tile{Blocked: true, BlockSight: true}
}

// EmptyTile returns an open floor tile
func EmptyTile() Tile {
	return Tile{}
}

// IsWall reports whether the tile is an unmodified wall
func (t Tile) IsWall() bool {
	return t.Blocked && t.BlockSight
}

// MapComponent stores the game map data. Tiles are indexed [y][x].
type MapComponent struct {
	Width  int
	Height int
	Tiles  [][]Tile
}

// NewMapComponent creates a new map with the given dimensions, filled with walls
func NewMapComponent(width, height int) *MapComponent {
	m := &MapComponent{
		Width:  width,
		Height: height,
		Tiles:  make([][]Tile, height),
	}

	for y := 0; y < height; y++ {
		m.Tiles[y] = make([]Tile, width)
	}
	m.Fill(WallTile())

	return m
}

// Fill sets every tile of the map to t
func (m *MapComponent) Fill(t Tile) {
	for y := range m.Tiles {
		for x := range m.Tiles[y] {
			m.Tiles[y][x] = t
		}
	}
}

// InBounds reports whether (x, y) lies on the map
func (m *MapComponent) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Tile returns the tile at (x, y). Out-of-range coordinates panic.
func (m *MapComponent) Tile(x, y int) Tile {
	m.mustBeInBounds(x, y)
	return m.Tiles[y][x]
}

// SetTile sets the tile at the given position. Out-of-range coordinates panic.
func (m *MapComponent) SetTile(x, y int, t Tile) {
	m.mustBeInBounds(x, y)
	m.Tiles[y][x] = t
}

// IsWall returns true if the tile at (x, y) blocks movement.
// Out of bounds is considered a wall.
func (m *MapComponent) IsWall(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Tiles[y][x].Blocked
}

func (m *MapComponent) mustBeInBounds(x, y int) {
	if !m.InBounds(x, y) {
		panic(fmt.Sprintf("map coordinates (%d, %d) out of range %dx%d", x, y, m.Width, m.Height))
	}
}

// TileDefinition describes the visual appearance of a tile type
type TileDefinition struct {
	Glyph rune        // The character drawn for the tile
	FG    color.Color // Foreground color
}

// Default tile appearances
var (
	WallDefinition  = TileDefinition{Glyph: '#', FG: color.RGBA{128, 128, 128, 255}}
	FloorDefinition = TileDefinition{Glyph: '.', FG: color.RGBA{64, 64, 64, 255}}
)

// Definition returns the visual definition for the tile
func (t Tile) Definition() TileDefinition {
	if t.Blocked {
		return WallDefinition
	}
	return FloorDefinition
}
