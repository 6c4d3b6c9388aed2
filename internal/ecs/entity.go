// Package ecs is a small entity-component store. Components are plain value
// structs keyed by their ComponentType; entities are bare IDs.
package ecs

// EntityID is an opaque handle for one entity. IDs are never reused.
type EntityID uint64

// NilEntity is never handed out by a World.
const NilEntity EntityID = 0

// ComponentType is the storage key of a component kind.
type ComponentType uint8

// Component is implemented by every value attached to an entity.
type Component interface {
	Type() ComponentType
}
