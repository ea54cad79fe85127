package ecs

// World is the entity registry. Each entity exclusively owns its components;
// destroying the entity drops them all.
type World struct {
	nextID   EntityID
	entities map[EntityID]map[ComponentType]Component
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID:   1,
		entities: make(map[EntityID]map[ComponentType]Component),
	}
}

// CreateEntity mints a new entity ID with no components.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.entities[id] = make(map[ComponentType]Component)
	return id
}

// DestroyEntity removes the entity and everything it owns.
// Destroying an unknown or already destroyed entity is a no-op.
func (w *World) DestroyEntity(id EntityID) {
	delete(w.entities, id)
}

// Alive reports whether the entity exists.
func (w *World) Alive(id EntityID) bool {
	_, ok := w.entities[id]
	return ok
}

// Count returns the number of live entities.
func (w *World) Count() int { return len(w.entities) }

// Add attaches c to the entity, replacing any component of the same type.
// Adding to a dead entity is ignored.
func (w *World) Add(id EntityID, c Component) {
	comps, ok := w.entities[id]
	if !ok {
		return
	}
	comps[c.Type()] = c
}

// Get returns the component of type t for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	return w.entities[id][t]
}

// Remove detaches a component from an entity.
func (w *World) Remove(id EntityID, t ComponentType) {
	delete(w.entities[id], t)
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// Lookup returns entity id's component of type t as a C.
// ok is false when the component is missing or has a different Go type.
func Lookup[C Component](w *World, id EntityID, t ComponentType) (c C, ok bool) {
	c, ok = w.Get(id, t).(C)
	return c, ok
}
