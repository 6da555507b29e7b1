package generation

import "rogue-dungeon/ecs"

// Generation event types
const (
	EventRoomCarved     ecs.EventType = "room_carved"
	EventLevelGenerated ecs.EventType = "level_generated"
)

// RoomCarvedEvent is emitted after a room has been carved and populated
type RoomCarvedEvent struct {
	Index    int // Position in the accepted room list
	Room     Rect
	Monsters int
	Items    int
}

// Type returns the event type
func (e RoomCarvedEvent) Type() ecs.EventType {
	return EventRoomCarved
}

// LevelGeneratedEvent is emitted once the stairs are placed
type LevelGeneratedEvent struct {
	Depth    int
	Rooms    int
	Monsters int
	Items    int
}

// Type returns the event type
func (e LevelGeneratedEvent) Type() ecs.EventType {
	return EventLevelGenerated
}
