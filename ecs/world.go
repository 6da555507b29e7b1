package ecs

// World is the registry of all entities and components for one dungeon level.
// Entities are kept in creation order so iteration is reproducible.
type World struct {
	entities map[EntityID]*Entity
	// Creation order of live entities
	order []EntityID
	// Store components as map[EntityID]map[ComponentID]Component
	components map[EntityID]ComponentMap
	// Tag-based entity lookup for quick access
	entityTags map[string]map[EntityID]bool
	// Event manager for system communication
	eventManager *EventManager
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	return &World{
		entities:     make(map[EntityID]*Entity),
		components:   make(map[EntityID]ComponentMap),
		entityTags:   make(map[string]map[EntityID]bool),
		eventManager: NewEventManager(),
	}
}

// CreateEntity creates a new entity and adds it to the world
func (w *World) CreateEntity() *Entity {
	entity := NewEntity()
	w.entities[entity.ID] = entity
	w.order = append(w.order, entity.ID)
	w.components[entity.ID] = make(ComponentMap)
	return entity
}

// AdoptEntity inserts an entity created elsewhere, keeping its ID, tags and
// the given components. It returns false if the ID is already present.
func (w *World) AdoptEntity(entity *Entity, comps ComponentMap) bool {
	if _, exists := w.entities[entity.ID]; exists {
		return false
	}

	w.entities[entity.ID] = entity
	w.order = append(w.order, entity.ID)
	w.components[entity.ID] = comps.Clone()

	for tag := range entity.Tags {
		w.indexTag(entity.ID, tag)
	}
	return true
}

// RemoveEntity removes an entity and all its components from the world
func (w *World) RemoveEntity(entityID EntityID) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}

	// Remove entity from tag lookups
	for tag := range entity.Tags {
		delete(w.entityTags[tag], entityID)
		if len(w.entityTags[tag]) == 0 {
			delete(w.entityTags, tag)
		}
	}

	for i, id := range w.order {
		if id == entityID {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}

	// Remove components and entity
	delete(w.components, entityID)
	delete(w.entities, entityID)
}

// RemoveAllExcept drops every entity but keep. Returns the number removed.
func (w *World) RemoveAllExcept(keep EntityID) int {
	removed := 0
	for _, id := range append([]EntityID(nil), w.order...) {
		if id == keep {
			continue
		}
		w.RemoveEntity(id)
		removed++
	}
	return removed
}

// AddComponent adds a component to an entity
func (w *World) AddComponent(entityID EntityID, componentID ComponentID, component Component) {
	if _, exists := w.entities[entityID]; !exists {
		return
	}

	if _, exists := w.components[entityID]; !exists {
		w.components[entityID] = make(ComponentMap)
	}

	w.components[entityID][componentID] = component
}

// GetComponent retrieves a component from an entity
func (w *World) GetComponent(entityID EntityID, componentID ComponentID) (Component, bool) {
	if componentMap, exists := w.components[entityID]; exists {
		component, exists := componentMap[componentID]
		return component, exists
	}
	return nil, false
}

// HasComponent checks if an entity has a specific component
func (w *World) HasComponent(entityID EntityID, componentID ComponentID) bool {
	if componentMap, exists := w.components[entityID]; exists {
		_, exists := componentMap[componentID]
		return exists
	}
	return false
}

// Components returns a copy of the entity's component map, or nil if the
// entity is unknown.
func (w *World) Components(entityID EntityID) ComponentMap {
	componentMap, exists := w.components[entityID]
	if !exists {
		return nil
	}
	return componentMap.Clone()
}

// RemoveComponent removes a component from an entity
func (w *World) RemoveComponent(entityID EntityID, componentID ComponentID) {
	if componentMap, exists := w.components[entityID]; exists {
		delete(componentMap, componentID)
	}
}

// TagEntity adds a tag to an entity and updates the tag lookup
func (w *World) TagEntity(entityID EntityID, tag string) {
	entity, exists := w.entities[entityID]
	if !exists {
		return
	}

	entity.AddTag(tag)
	w.indexTag(entityID, tag)
}

func (w *World) indexTag(entityID EntityID, tag string) {
	if _, exists := w.entityTags[tag]; !exists {
		w.entityTags[tag] = make(map[EntityID]bool)
	}
	w.entityTags[tag][entityID] = true
}

// GetEntitiesWithTag returns all entities with a specific tag, in creation order
func (w *World) GetEntitiesWithTag(tag string) []*Entity {
	entities := make([]*Entity, 0)

	taggedEntities, exists := w.entityTags[tag]
	if !exists {
		return entities
	}
	for _, id := range w.order {
		if taggedEntities[id] {
			entities = append(entities, w.entities[id])
		}
	}

	return entities
}

// GetAllEntities returns a slice of all entities in the world, in creation order
func (w *World) GetAllEntities() []*Entity {
	entities := make([]*Entity, 0, len(w.order))
	for _, id := range w.order {
		entities = append(entities, w.entities[id])
	}
	return entities
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.order)
}

// GetEventManager returns the world's event manager
func (w *World) GetEventManager() *EventManager {
	return w.eventManager
}

// EmitEvent is a convenience method to emit an event
func (w *World) EmitEvent(event Event) {
	w.eventManager.Emit(event)
}

// GetEntity returns an entity by its ID
func (w *World) GetEntity(entityID EntityID) *Entity {
	entity, exists := w.entities[entityID]
	if !exists {
		return nil
	}
	return entity
}

// GetEntitiesWithComponent returns all entities that have a specific component,
// in creation order
func (w *World) GetEntitiesWithComponent(componentID ComponentID) []*Entity {
	entities := make([]*Entity, 0)

	for _, id := range w.order {
		if _, hasComponent := w.components[id][componentID]; hasComponent {
			entities = append(entities, w.entities[id])
		}
	}

	return entities
}
