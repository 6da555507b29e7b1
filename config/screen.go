package config

// Screen layout configuration for the preview window
const (
	// Glyph cell size in pixels (ebitenutil debug font)
	CellWidth  = 6
	CellHeight = 16

	// Lines reserved below the map for status and messages
	StatusLines = 4
)

// GetScreenDimensions returns the logical screen size in pixels for a map of
// the given size in tiles
func GetScreenDimensions(mapWidth, mapHeight int) (width, height int) {
	return mapWidth * CellWidth, (mapHeight + StatusLines) * CellHeight
}

// GetWindowSize returns the recommended window size (may be different from actual screen dimensions)
func GetWindowSize(mapWidth, mapHeight int) (width, height int) {
	w, h := GetScreenDimensions(mapWidth, mapHeight)
	return w * 2, h
}
