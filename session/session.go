// Package session owns the entity registry for a run. The player is tracked
// by ID and carried into a fresh world on every level change.
package session

import (
	"fmt"

	"rogue-dungeon/components"
	"rogue-dungeon/ecs"
	"rogue-dungeon/generation"
	"rogue-dungeon/spawners"
)

// Session is one play-through: current world, player and level
type Session struct {
	World    *ecs.World
	PlayerID ecs.EntityID
	Level    *generation.Level // nil until the first level is generated

	generator     *generation.DungeonGenerator
	subscriptions []subscription
}

type subscription struct {
	eventType ecs.EventType
	handler   ecs.EventHandler
}

// New creates the player in an empty world. Call Descend or GoTo to build
// the first level.
func New(generator *generation.DungeonGenerator) *Session {
	world := ecs.NewWorld()
	player := spawners.NewEntitySpawner(world, nil, nil).CreatePlayer(0, 0)

	return &Session{
		World:     world,
		PlayerID:  player.ID,
		generator: generator,
	}
}

// Subscribe registers handler on the current world and on every world the
// session creates afterwards
func (s *Session) Subscribe(eventType ecs.EventType, handler ecs.EventHandler) {
	s.subscriptions = append(s.subscriptions, subscription{eventType, handler})
	s.World.GetEventManager().Subscribe(eventType, handler)
}

// Depth returns the current dungeon depth, 0 before the first level
func (s *Session) Depth() int {
	if s.Level == nil {
		return 0
	}
	return s.Level.Depth
}

// Descend builds the next level and moves the player into it
func (s *Session) Descend() error {
	return s.GoTo(s.Depth() + 1)
}

// Regenerate rebuilds the current depth with fresh randomness
func (s *Session) Regenerate() error {
	if s.Level == nil {
		return s.Descend()
	}
	return s.GoTo(s.Depth())
}

// GoTo replaces the current level with a newly generated one at depth.
// On failure the session keeps its current world and level untouched.
func (s *Session) GoTo(depth int) error {
	player := s.World.GetEntity(s.PlayerID)
	if player == nil {
		return fmt.Errorf("%w: session player %d", generation.ErrPlayerMissing, s.PlayerID)
	}

	// The new world gets its own position record so a failed attempt
	// cannot move the player in the old one.
	comps := s.World.Components(s.PlayerID)
	if pos, ok := comps[components.Position].(*components.PositionComponent); ok {
		moved := *pos
		comps[components.Position] = &moved
	}

	next := ecs.NewWorld()
	next.AdoptEntity(player, comps)
	for _, sub := range s.subscriptions {
		next.GetEventManager().Subscribe(sub.eventType, sub.handler)
	}

	level, err := s.generator.Generate(next, s.PlayerID, depth)
	if err != nil {
		return fmt.Errorf("generate depth %d: %w", depth, err)
	}

	s.World = next
	s.Level = level
	return nil
}

// PlayerPosition returns the player's current tile
func (s *Session) PlayerPosition() (int, int) {
	pos, ok := s.World.GetComponent(s.PlayerID, components.Position)
	if !ok {
		return 0, 0
	}
	p := pos.(*components.PositionComponent)
	return p.X, p.Y
}
