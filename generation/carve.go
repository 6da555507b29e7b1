package generation

import (
	"math/rand"

	"rogue-dungeon/components"
)

// CarveRoom turns the interior of the room into floor. Columns X1 and X2 and
// rows Y1 and Y2 stay wall so neighbouring rooms never merge.
func CarveRoom(m *components.MapComponent, room Rect) {
	for y := room.Y1 + 1; y < room.Y2; y++ {
		for x := room.X1 + 1; x < room.X2; x++ {
			m.SetTile(x, y, components.EmptyTile())
		}
	}
}

// CarveHTunnel opens a one tile wide horizontal run between x1 and x2 inclusive
func CarveHTunnel(m *components.MapComponent, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		m.SetTile(x, y, components.EmptyTile())
	}
}

// CarveVTunnel opens a one tile wide vertical run between y1 and y2 inclusive
func CarveVTunnel(m *components.MapComponent, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		m.SetTile(x, y, components.EmptyTile())
	}
}

// CarveLTunnel joins (x1, y1) to (x2, y2) with one horizontal and one
// vertical tunnel. A coin flip decides which leg is dug first.
func CarveLTunnel(m *components.MapComponent, rng *rand.Rand, x1, y1, x2, y2 int) {
	if rng.Intn(2) == 0 {
		// horizontal, then vertical
		CarveHTunnel(m, x1, x2, y1)
		CarveVTunnel(m, y1, y2, x2)
	} else {
		// vertical, then horizontal
		CarveVTunnel(m, y1, y2, x1)
		CarveHTunnel(m, x1, x2, y2)
	}
}
