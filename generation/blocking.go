package generation

import (
	"rogue-dungeon/components"
	"rogue-dungeon/ecs"
)

// IsBlocked reports whether an actor can be placed at or moved onto (x, y):
// the tile itself blocks, or a blocking entity already stands there.
func IsBlocked(world *ecs.World, m *components.MapComponent, x, y int) bool {
	if m.Tile(x, y).Blocked {
		return true
	}

	for _, entity := range world.GetEntitiesWithComponent(components.Collision) {
		col, _ := world.GetComponent(entity.ID, components.Collision)
		if !col.(*components.CollisionComponent).Blocks {
			continue
		}
		pos, ok := world.GetComponent(entity.ID, components.Position)
		if !ok {
			continue
		}
		if p := pos.(*components.PositionComponent); p.X == x && p.Y == y {
			return true
		}
	}

	return false
}
