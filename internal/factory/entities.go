package factory

import (
	"fmt"

	"storagebox/internal/component"
	"storagebox/internal/container"
	"storagebox/internal/ecs"
)

// Hook runs once per entity after NewPlayer has attached every component
// and before the entity is handed to anyone else.
type Hook func(w *ecs.World, id ecs.EntityID) error

// Factory builds player entities and runs the initialization hooks.
type Factory struct {
	DefaultCapacity int
	hooks           []Hook
}

// New returns a Factory whose storage boxes start at defaultCapacity.
func New(defaultCapacity int, hooks ...Hook) *Factory {
	return &Factory{DefaultCapacity: defaultCapacity, hooks: hooks}
}

// Use appends hooks; they run in registration order.
func (f *Factory) Use(hooks ...Hook) { f.hooks = append(f.hooks, hooks...) }

// NewPlayer creates a player entity named name with an empty storage box.
// If any hook fails the entity is destroyed and the error returned.
func (f *Factory) NewPlayer(w *ecs.World, name string) (ecs.EntityID, error) {
	box, err := container.New[component.ItemStack](f.DefaultCapacity)
	if err != nil {
		return ecs.NilEntity, fmt.Errorf("new storage box: %w", err)
	}
	id := w.CreateEntity()
	w.Add(id, component.Identity{Name: name})
	w.Add(id, component.StorageBox{Box: box})
	w.Add(id, component.TagPlayer{})

	for i, hook := range f.hooks {
		if err := hook(w, id); err != nil {
			w.DestroyEntity(id)
			return ecs.NilEntity, fmt.Errorf("init hook %d for %q: %w", i, name, err)
		}
	}
	return id, nil
}
