package components

import (
	"rogue-dungeon/ecs"
)

// Define component IDs for our game
const (
	Position ecs.ComponentID = iota
	Renderable
	Player
	Collision
	AI
	MapComponentID
	MapType    // Map type component carrying the dungeon depth
	Name       // Name component for storing entity display names
	Visibility // Fog-of-war exemptions
	Fighter    // Combat stats
	Item       // Item component for collectible objects
	Equipment  // Slot and stat bonuses for wearable items
	MapTransition
)
