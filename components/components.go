package components

import (
	"image/color"
)

// PositionComponent stores entity position
type PositionComponent struct {
	X, Y int
}

// RenderableComponent stores rendering information
type RenderableComponent struct {
	Char rune        // Glyph drawn for the entity
	FG   color.Color // Foreground color
	BG   color.Color // Background color (optional)
}

// NewRenderableComponent creates a renderable component using a character code
func NewRenderableComponent(glyph rune, fg color.Color) *RenderableComponent {
	return &RenderableComponent{
		Char: glyph,
		FG:   fg,
		BG:   color.RGBA{0, 0, 0, 255}, // Default black background
	}
}

// PlayerComponent indicates that an entity is controlled by the player
type PlayerComponent struct{}

// CollisionComponent indicates entity can collide with other entities
type CollisionComponent struct {
	Blocks bool // Whether this entity blocks movement
}

// AIComponent stores AI behavior information
type AIComponent struct {
	Type string // Behaviour tag, e.g. "basic"
}

// NameComponent stores the display name for entities
type NameComponent struct {
	Name string
}

// NewNameComponent creates a new name component
func NewNameComponent(name string) *NameComponent {
	return &NameComponent{
		Name: name,
	}
}

// VisibilityComponent marks entities drawn outside the player's field of view
// once their tile has been explored.
type VisibilityComponent struct {
	AlwaysVisible bool
}

// FighterComponent stores combat stats
type FighterComponent struct {
	MaxHealth int
	Health    int
	Defense   int
	Power     int
	OnDeath   string // Death behaviour tag, e.g. "monster" or "player"
	XP        int    // XP awarded when killed
}

// NewFighterComponent creates a fighter at full health
func NewFighterComponent(maxHealth, defense, power, xp int, onDeath string) *FighterComponent {
	return &FighterComponent{
		MaxHealth: maxHealth,
		Health:    maxHealth,
		Defense:   defense,
		Power:     power,
		OnDeath:   onDeath,
		XP:        xp,
	}
}

// ItemComponent indicates that an entity is an item that can be collected
type ItemComponent struct {
	Kind       string // Item kind: "heal", "lightning", "sword", ...
	TemplateID string // ID of the template that created this item
}

// Equipment slots
const (
	SlotLeftHand  = "left_hand"
	SlotRightHand = "right_hand"
	SlotHead      = "head"
)

// EquipmentComponent describes a wearable item
type EquipmentComponent struct {
	Slot         string
	Equipped     bool
	MaxHPBonus   int
	PowerBonus   int
	DefenseBonus int
}
