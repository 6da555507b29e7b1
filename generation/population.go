package generation

import (
	"fmt"
	"math/rand"

	"rogue-dungeon/components"
	"rogue-dungeon/data"
	"rogue-dungeon/ecs"
	"rogue-dungeon/spawners"
)

// DungeonPopulator places monsters and items inside carved rooms. Counts and
// species both scale with dungeon depth through the spawn tables.
type DungeonPopulator struct {
	world         *ecs.World
	mapComp       *components.MapComponent
	entitySpawner *spawners.EntitySpawner
	tables        *data.SpawnTables
	rng           *rand.Rand
}

// RoomPopulation reports what was actually placed in a room. Rolled slots that
// landed on a blocked tile are counted in Skipped.
type RoomPopulation struct {
	Monsters []ecs.EntityID
	Items    []ecs.EntityID
	Skipped  int
}

// NewDungeonPopulator creates a populator bound to one level's world and map
func NewDungeonPopulator(world *ecs.World, mapComp *components.MapComponent, entitySpawner *spawners.EntitySpawner, tables *data.SpawnTables, rng *rand.Rand) *DungeonPopulator {
	return &DungeonPopulator{
		world:         world,
		mapComp:       mapComp,
		entitySpawner: entitySpawner,
		tables:        tables,
		rng:           rng,
	}
}

// PopulateRoom rolls monsters and then items for the room. A slot whose
// random tile is blocked is dropped, not retried.
func (p *DungeonPopulator) PopulateRoom(room Rect, depth int) (RoomPopulation, error) {
	var result RoomPopulation

	monsterTable, err := spawners.MonsterTable(p.tables, depth)
	if err != nil {
		return result, err
	}
	maxMonsters := p.tables.MaxMonsters.ValueAt(depth)
	numMonsters := p.rng.Intn(maxMonsters + 1)

	for i := 0; i < numMonsters; i++ {
		x, y := p.randomInteriorPoint(room)
		if IsBlocked(p.world, p.mapComp, x, y) {
			result.Skipped++
			continue
		}

		monster, err := p.entitySpawner.CreateMonster(x, y, monsterTable.Choose(p.rng))
		if err != nil {
			return result, fmt.Errorf("populate room: %w", err)
		}
		result.Monsters = append(result.Monsters, monster.ID)
	}

	itemTable, err := spawners.ItemTable(p.tables, depth)
	if err != nil {
		return result, err
	}
	maxItems := p.tables.MaxItems.ValueAt(depth)
	numItems := p.rng.Intn(maxItems + 1)

	for i := 0; i < numItems; i++ {
		x, y := p.randomInteriorPoint(room)
		if IsBlocked(p.world, p.mapComp, x, y) {
			result.Skipped++
			continue
		}

		item, err := p.entitySpawner.CreateItem(x, y, itemTable.Choose(p.rng))
		if err != nil {
			return result, fmt.Errorf("populate room: %w", err)
		}
		result.Items = append(result.Items, item.ID)
	}

	return result, nil
}

// randomInteriorPoint picks a tile carved by CarveRoom
func (p *DungeonPopulator) randomInteriorPoint(room Rect) (int, int) {
	x := room.X1 + 1 + p.rng.Intn(room.X2-room.X1-1)
	y := room.Y1 + 1 + p.rng.Intn(room.Y2-room.Y1-1)
	return x, y
}
