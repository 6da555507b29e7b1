package components

// MapTransitionComponent stores information about transitioning between maps
type MapTransitionComponent struct {
	TransitionType   int // Type of transition (e.g., stairs down)
	DestinationDepth int // Dungeon depth reached through the transition
}

// Transition types
const (
	TransitionStairsDown = iota
	TransitionStairsUp
)

// NewMapTransitionComponent creates a new map transition component
func NewMapTransitionComponent(transitionType int, destDepth int) *MapTransitionComponent {
	return &MapTransitionComponent{
		TransitionType:   transitionType,
		DestinationDepth: destDepth,
	}
}

// MapTypeComponent identifies what kind of map an entity represents
type MapTypeComponent struct {
	MapType string // "dungeon"
	Level   int    // Dungeon depth
}

// NewMapTypeComponent creates a new map type component
func NewMapTypeComponent(mapType string, level int) *MapTypeComponent {
	return &MapTypeComponent{
		MapType: mapType,
		Level:   level,
	}
}
