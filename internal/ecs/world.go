package ecs

import (
	"iter"
	"slices"
)

// World is the central entity registry and component store. Entities live
// as long as the World; there is no deletion.
type World struct {
	nextID     EntityID
	components map[ComponentType]map[EntityID]Component
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID:     1,
		components: make(map[ComponentType]map[EntityID]Component),
	}
}

// CreateEntity mints a new entity ID.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// Spawn creates an entity and attaches every given component to it.
func (w *World) Spawn(comps ...Component) EntityID {
	id := w.CreateEntity()
	for _, c := range comps {
		w.Add(id, c)
	}
	return id
}

// Add attaches a component to an entity, replacing any previous value of
// the same type.
func (w *World) Add(id EntityID, c Component) {
	t := c.Type()
	if w.components[t] == nil {
		w.components[t] = make(map[EntityID]Component)
	}
	w.components[t][id] = c
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	store := w.components[t]
	if store == nil {
		return nil
	}
	return store[id]
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// Query returns all entities that have every listed component type,
// in ascending ID order.
func (w *World) Query(types ...ComponentType) []EntityID {
	return slices.Collect(w.Each(types...))
}

// Each yields the same entities as Query without building a slice. The
// candidate set is captured when iteration starts, so ranging over the
// sequence twice restarts it.
func (w *World) Each(types ...ComponentType) iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		for _, id := range w.candidates(types) {
			if !w.matches(id, types) {
				continue
			}
			if !yield(id) {
				return
			}
		}
	}
}

// candidates returns the sorted IDs of the smallest store among types.
func (w *World) candidates(types []ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	smallest := types[0]
	for _, t := range types[1:] {
		if len(w.components[t]) < len(w.components[smallest]) {
			smallest = t
		}
	}
	store := w.components[smallest]
	ids := make([]EntityID, 0, len(store))
	for id := range store {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (w *World) matches(id EntityID, types []ComponentType) bool {
	for _, t := range types {
		if !w.Has(id, t) {
			return false
		}
	}
	return true
}

// Get returns entity id's component of type T.
func Get[T Component](w *World, id EntityID) (T, bool) {
	var zero T
	c, ok := w.Get(id, zero.Type()).(T)
	return c, ok
}

// Update hands fn a pointer to a copy of entity id's T component and stores
// the result back. It reports false, without calling fn, when the entity has
// no such component.
func Update[T Component](w *World, id EntityID, fn func(*T)) bool {
	c, ok := Get[T](w, id)
	if !ok {
		return false
	}
	fn(&c)
	w.Add(id, c)
	return true
}
