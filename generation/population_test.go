package generation

import (
	"math/rand"
	"testing"

	"rogue-dungeon/components"
	"rogue-dungeon/data"
	"rogue-dungeon/ecs"
	"rogue-dungeon/spawners"
)

func newTestPopulator(t *testing.T, tables *data.SpawnTables, seed int64) (*DungeonPopulator, *ecs.World, *components.MapComponent) {
	t.Helper()
	world := ecs.NewWorld()
	m := components.NewMapComponent(30, 30)
	s := spawners.NewEntitySpawner(world, tables, nil)
	return NewDungeonPopulator(world, m, s, tables, rand.New(rand.NewSource(seed))), world, m
}

func defaultTables(t *testing.T) *data.SpawnTables {
	t.Helper()
	tables, err := data.DefaultSpawnTables()
	if err != nil {
		t.Fatalf("default tables: %v", err)
	}
	return tables
}

func TestPopulateRoomRespectsDepthCaps(t *testing.T) {
	tables := defaultTables(t)

	for seed := int64(0); seed < 50; seed++ {
		p, world, m := newTestPopulator(t, tables, seed)
		room := NewRect(5, 5, 10, 10)
		CarveRoom(m, room)

		pop, err := p.PopulateRoom(room, 1)
		if err != nil {
			t.Fatalf("populate: %v", err)
		}
		if len(pop.Monsters) > 2 || len(pop.Items) > 1 {
			t.Fatalf("seed %d: depth 1 caps exceeded: %d monsters, %d items", seed, len(pop.Monsters), len(pop.Items))
		}

		for _, id := range pop.Monsters {
			name, _ := world.GetComponent(id, components.Name)
			if name.(*components.NameComponent).Name != "orc" {
				t.Fatalf("seed %d: only orcs spawn at depth 1", seed)
			}
			pos, _ := world.GetComponent(id, components.Position)
			at := pos.(*components.PositionComponent)
			if !room.Contains(at.X, at.Y) {
				t.Fatalf("seed %d: monster at (%d,%d) outside room interior", seed, at.X, at.Y)
			}
		}
		for _, id := range pop.Items {
			item, _ := world.GetComponent(id, components.Item)
			if item.(*components.ItemComponent).Kind != "heal" {
				t.Fatalf("seed %d: only healing potions spawn at depth 1", seed)
			}
		}
	}
}

func TestPopulateRoomNeverStacksBlockers(t *testing.T) {
	tables := defaultTables(t)
	tables.MaxMonsters = data.Constant(40)

	p, world, m := newTestPopulator(t, tables, 3)
	// 2x2 interior so most rolls collide
	room := NewRect(1, 1, 3, 3)
	CarveRoom(m, room)

	pop, err := p.PopulateRoom(room, 9)
	if err != nil {
		t.Fatalf("populate: %v", err)
	}
	if len(pop.Monsters) > 4 {
		t.Fatalf("placed %d monsters in 4 tiles", len(pop.Monsters))
	}
	if pop.Skipped == 0 {
		t.Error("expected some blocked rolls to be skipped")
	}

	seen := map[[2]int]bool{}
	for _, e := range world.GetEntitiesWithTag("monster") {
		pos, _ := world.GetComponent(e.ID, components.Position)
		at := pos.(*components.PositionComponent)
		key := [2]int{at.X, at.Y}
		if seen[key] {
			t.Fatalf("two monsters share tile %v", key)
		}
		seen[key] = true
	}
}

func TestPopulateRoomZeroWeightTable(t *testing.T) {
	tables := defaultTables(t)
	tables.Monsters = []data.MonsterTemplate{{ID: "ghost", Name: "ghost", Glyph: "g", Health: 1}}

	p, _, m := newTestPopulator(t, tables, 1)
	room := NewRect(1, 1, 6, 6)
	CarveRoom(m, room)

	if _, err := p.PopulateRoom(room, 1); err == nil {
		t.Fatal("expected error for an all-zero monster table")
	}
}
