package spawners

import (
	"fmt"
	"image/color"
	"strconv"

	"rogue-dungeon/components"
	"rogue-dungeon/data"
	"rogue-dungeon/ecs"
)

// Player defaults
const (
	PlayerMaxHealth = 100
	PlayerDefense   = 1
	PlayerPower     = 2
)

// EntitySpawner manages the creation of game entities
type EntitySpawner struct {
	world      *ecs.World
	tables     *data.SpawnTables
	logMessage func(string) // Function for logging messages
}

// NewEntitySpawner creates a new entity spawner
func NewEntitySpawner(world *ecs.World, tables *data.SpawnTables, logFunc func(string)) *EntitySpawner {
	return &EntitySpawner{
		world:      world,
		tables:     tables,
		logMessage: logFunc,
	}
}

// CreatePlayer creates a player entity at the given position
func (s *EntitySpawner) CreatePlayer(x, y int) *ecs.Entity {
	playerEntity := s.world.CreateEntity()
	s.world.TagEntity(playerEntity.ID, "player")

	s.addBase(playerEntity.ID, x, y, "player", '@', color.RGBA{255, 255, 255, 255}, true)
	s.world.AddComponent(playerEntity.ID, components.Player, &components.PlayerComponent{})
	s.world.AddComponent(playerEntity.ID, components.Fighter,
		components.NewFighterComponent(PlayerMaxHealth, PlayerDefense, PlayerPower, 0, "player"))

	if s.logMessage != nil {
		s.logMessage("Player created at " + strconv.Itoa(x) + "," + strconv.Itoa(y))
	}

	return playerEntity
}

// CreateMonster creates a monster entity from a template at the given position
func (s *EntitySpawner) CreateMonster(x, y int, monsterID string) (*ecs.Entity, error) {
	template, exists := s.tables.GetMonster(monsterID)
	if !exists {
		return nil, fmt.Errorf("no template found for monster type '%s'", monsterID)
	}

	monsterEntity := s.world.CreateEntity()
	s.world.TagEntity(monsterEntity.ID, "monster")
	s.world.TagEntity(monsterEntity.ID, "ai")

	s.addBase(monsterEntity.ID, x, y, template.Name, data.GlyphRune(template.Glyph),
		data.ParseHexColor(template.Color), template.Blocks)
	s.world.AddComponent(monsterEntity.ID, components.Fighter, components.NewFighterComponent(
		template.Health,
		template.Defense,
		template.Power,
		template.XP,
		template.OnDeath,
	))
	s.world.AddComponent(monsterEntity.ID, components.AI, &components.AIComponent{
		Type: template.AIType,
	})

	return monsterEntity, nil
}

// CreateItem creates an item entity that can be collected by the player.
// Items stay visible on explored tiles.
func (s *EntitySpawner) CreateItem(x, y int, itemID string) (*ecs.Entity, error) {
	template, exists := s.tables.GetItem(itemID)
	if !exists {
		return nil, fmt.Errorf("no item template found with ID '%s'", itemID)
	}

	itemEntity := s.world.CreateEntity()
	s.world.TagEntity(itemEntity.ID, "item")

	s.addBase(itemEntity.ID, x, y, template.Name, data.GlyphRune(template.Glyph),
		data.ParseHexColor(template.Color), false)
	s.world.AddComponent(itemEntity.ID, components.Visibility, &components.VisibilityComponent{
		AlwaysVisible: true,
	})
	s.world.AddComponent(itemEntity.ID, components.Item, &components.ItemComponent{
		Kind:       template.Kind,
		TemplateID: template.ID,
	})

	if eq := template.Equipment; eq != nil {
		s.world.TagEntity(itemEntity.ID, "equipment")
		s.world.AddComponent(itemEntity.ID, components.Equipment, &components.EquipmentComponent{
			Slot:         eq.Slot,
			MaxHPBonus:   eq.MaxHPBonus,
			PowerBonus:   eq.PowerBonus,
			DefenseBonus: eq.DefenseBonus,
		})
	}

	return itemEntity, nil
}

// CreateStairs creates the descent point leading to nextDepth
func (s *EntitySpawner) CreateStairs(x, y, nextDepth int) *ecs.Entity {
	stairsEntity := s.world.CreateEntity()
	s.world.TagEntity(stairsEntity.ID, "stairs")

	s.addBase(stairsEntity.ID, x, y, "stairs", '>', color.RGBA{255, 255, 255, 255}, false)
	s.world.AddComponent(stairsEntity.ID, components.Visibility, &components.VisibilityComponent{
		AlwaysVisible: true,
	})
	s.world.AddComponent(stairsEntity.ID, components.MapTransition,
		components.NewMapTransitionComponent(components.TransitionStairsDown, nextDepth))

	if s.logMessage != nil {
		s.logMessage(fmt.Sprintf("Stairs placed at %d,%d", x, y))
	}

	return stairsEntity
}

// addBase attaches the components every placed entity carries
func (s *EntitySpawner) addBase(id ecs.EntityID, x, y int, name string, glyph rune, fg color.Color, blocks bool) {
	s.world.AddComponent(id, components.Position, &components.PositionComponent{X: x, Y: y})
	s.world.AddComponent(id, components.Renderable, components.NewRenderableComponent(glyph, fg))
	s.world.AddComponent(id, components.Name, components.NewNameComponent(name))
	s.world.AddComponent(id, components.Collision, &components.CollisionComponent{Blocks: blocks})
}
