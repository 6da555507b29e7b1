package generation

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"rogue-dungeon/components"
	"rogue-dungeon/config"
	"rogue-dungeon/data"
	"rogue-dungeon/ecs"
	"rogue-dungeon/spawners"
)

var (
	// ErrNoRooms is returned when the room budget produced no room at all
	ErrNoRooms = errors.New("no rooms were placed")
	// ErrPlayerMissing is returned when the player entity is not in the world
	ErrPlayerMissing = errors.New("player entity missing")
	// ErrInvalidDepth is returned for depths below 1
	ErrInvalidDepth = errors.New("dungeon depth must be >= 1")
)

// Level is the result of one generation pass
type Level struct {
	Depth     int
	Map       *components.MapComponent
	MapEntity ecs.EntityID
	Rooms     []Rect // Accepted rooms in placement order
	Stairs    ecs.EntityID
	Monsters  int
	Items     int
}

// DungeonGenerator handles procedural generation of rooms-and-tunnels levels
type DungeonGenerator struct {
	config     config.GeneratorConfig
	tables     *data.SpawnTables
	rng        *rand.Rand
	logMessage func(string)
}

// NewDungeonGenerator creates a generator drawing from rng. A nil rng is
// replaced by a time-seeded source.
func NewDungeonGenerator(cfg config.GeneratorConfig, tables *data.SpawnTables, rng *rand.Rand) (*DungeonGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if tables == nil {
		return nil, errors.New("spawn tables are required")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &DungeonGenerator{
		config: cfg,
		tables: tables,
		rng:    rng,
	}, nil
}

// SetSeed allows setting a specific seed for reproducible dungeons
func (g *DungeonGenerator) SetSeed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// SetLogger sets the function receiving generation messages
func (g *DungeonGenerator) SetLogger(logFunc func(string)) {
	g.logMessage = logFunc
}

// Generate builds a new level in world. Every entity except the player is
// removed first; the player is moved to the center of the first room and the
// stairs are placed at the center of the last one.
func (g *DungeonGenerator) Generate(world *ecs.World, playerID ecs.EntityID, depth int) (*Level, error) {
	if depth < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDepth, depth)
	}
	playerPos, err := playerPosition(world, playerID)
	if err != nil {
		return nil, err
	}

	// Reset: only the player survives a level change
	if removed := world.RemoveAllExcept(playerID); removed > 0 {
		g.log(fmt.Sprintf("Discarded %d entities from the previous level", removed))
	}

	mapComp := components.NewMapComponent(g.config.Width, g.config.Height)
	mapEntity := world.CreateEntity()
	world.TagEntity(mapEntity.ID, "map")
	world.AddComponent(mapEntity.ID, components.MapComponentID, mapComp)
	world.AddComponent(mapEntity.ID, components.MapType, components.NewMapTypeComponent("dungeon", depth))

	entitySpawner := spawners.NewEntitySpawner(world, g.tables, g.logMessage)
	populator := NewDungeonPopulator(world, mapComp, entitySpawner, g.tables, g.rng)

	level := &Level{
		Depth:     depth,
		Map:       mapComp,
		MapEntity: mapEntity.ID,
	}

	for attempt := 0; attempt < g.config.MaxRooms; attempt++ {
		// random width and height
		w := g.config.RoomMinSize + g.rng.Intn(g.config.RoomMaxSize-g.config.RoomMinSize+1)
		h := g.config.RoomMinSize + g.rng.Intn(g.config.RoomMaxSize-g.config.RoomMinSize+1)

		// random position without exceeding the boundaries of the map
		x := g.rng.Intn(g.config.Width - w)
		y := g.rng.Intn(g.config.Height - h)

		newRoom := NewRect(x, y, w, h)
		if g.overlapsAny(newRoom, level.Rooms) {
			continue
		}

		CarveRoom(mapComp, newRoom)

		newX, newY := newRoom.Center()
		if len(level.Rooms) == 0 {
			// first room: the level entry point. The player is placed before
			// population so no monster is rolled onto the entry tile.
			playerPos.X, playerPos.Y = newX, newY
		}

		population, err := populator.PopulateRoom(newRoom, depth)
		if err != nil {
			return nil, err
		}
		level.Monsters += len(population.Monsters)
		level.Items += len(population.Items)

		if len(level.Rooms) > 0 {
			prevX, prevY := level.Rooms[len(level.Rooms)-1].Center()
			CarveLTunnel(mapComp, g.rng, prevX, prevY, newX, newY)
		}

		level.Rooms = append(level.Rooms, newRoom)
		world.EmitEvent(RoomCarvedEvent{
			Index:    len(level.Rooms) - 1,
			Room:     newRoom,
			Monsters: len(population.Monsters),
			Items:    len(population.Items),
		})
	}

	if len(level.Rooms) == 0 {
		return nil, fmt.Errorf("%w after %d attempts on a %dx%d map", ErrNoRooms, g.config.MaxRooms, g.config.Width, g.config.Height)
	}

	lastX, lastY := level.Rooms[len(level.Rooms)-1].Center()
	level.Stairs = entitySpawner.CreateStairs(lastX, lastY, depth+1).ID

	g.log(fmt.Sprintf("Depth %d: %d rooms, %d monsters, %d items", depth, len(level.Rooms), level.Monsters, level.Items))
	world.EmitEvent(LevelGeneratedEvent{
		Depth:    depth,
		Rooms:    len(level.Rooms),
		Monsters: level.Monsters,
		Items:    level.Items,
	})

	return level, nil
}

// overlapsAny reports whether room touches any accepted room
func (g *DungeonGenerator) overlapsAny(room Rect, rooms []Rect) bool {
	for _, other := range rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}

func (g *DungeonGenerator) log(message string) {
	if g.logMessage != nil {
		g.logMessage(message)
	}
}

// playerPosition checks the player precondition before anything is mutated
func playerPosition(world *ecs.World, playerID ecs.EntityID) (*components.PositionComponent, error) {
	if world.GetEntity(playerID) == nil {
		return nil, fmt.Errorf("%w: no entity with ID %d", ErrPlayerMissing, playerID)
	}
	if !world.HasComponent(playerID, components.Player) {
		return nil, fmt.Errorf("%w: entity %d is not the player", ErrPlayerMissing, playerID)
	}
	pos, ok := world.GetComponent(playerID, components.Position)
	if !ok {
		return nil, fmt.Errorf("%w: player %d has no position", ErrPlayerMissing, playerID)
	}
	return pos.(*components.PositionComponent), nil
}
