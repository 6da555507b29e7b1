package ecs

// ComponentID is a unique identifier for component types
type ComponentID uint

// Component is the base interface for all components
type Component interface{}

// ComponentMap stores components by their type ID
type ComponentMap map[ComponentID]Component

// Clone returns a shallow copy of the map. Component values are shared.
func (m ComponentMap) Clone() ComponentMap {
	out := make(ComponentMap, len(m))
	for id, c := range m {
		out[id] = c
	}
	return out
}
