// Package container implements a fixed-capacity slotted container whose
// capacity can be migrated in place.
//
// Slot indices are stable: migration never reorders slots. Growing appends
// empty slots; shrinking discards everything at or past the new capacity.
package container

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCapacity is returned when a non-positive capacity is requested.
	ErrInvalidCapacity = errors.New("invalid capacity")
	// ErrIndexOutOfRange is returned for slot access outside [0, capacity).
	ErrIndexOutOfRange = errors.New("slot index out of range")
)

// Slot is one addressable position. Filled is false for an empty slot, in
// which case Stack holds the zero value.
type Slot[T any] struct {
	Stack  T
	Filled bool
}

// Container is an ordered array of optional stacks. The stack type is opaque
// to the container; values are only copied in and out.
//
// A Container is owned by exactly one entity and is not safe for concurrent use.
type Container[T any] struct {
	slots []Slot[T]
}

// New returns a container with capacity empty slots.
func New[T any](capacity int) (*Container[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &Container[T]{slots: make([]Slot[T], capacity)}, nil
}

// Capacity returns the number of addressable slots.
func (c *Container[T]) Capacity() int { return len(c.slots) }

// Migrate changes the capacity to n. Slots [0, min(old, n)) keep their
// contents, new slots start empty, and slots past n are dropped.
// Migrating to the current capacity leaves the container untouched.
func (c *Container[T]) Migrate(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, n)
	}
	if n == len(c.slots) {
		return nil
	}
	slots := make([]Slot[T], n)
	copy(slots, c.slots)
	c.slots = slots
	return nil
}

// Overflow reports how many occupied slots Migrate(n) would discard.
// It is zero for n <= 0, which Migrate rejects without touching any slot.
func (c *Container[T]) Overflow(n int) int {
	if n <= 0 {
		return 0
	}
	lost := 0
	for i := n; i < len(c.slots); i++ {
		if c.slots[i].Filled {
			lost++
		}
	}
	return lost
}

// Get returns the slot at index i.
func (c *Container[T]) Get(i int) (Slot[T], error) {
	if err := c.check(i); err != nil {
		return Slot[T]{}, err
	}
	return c.slots[i], nil
}

// Set stores stack in slot i, replacing whatever was there.
func (c *Container[T]) Set(i int, stack T) error {
	if err := c.check(i); err != nil {
		return err
	}
	c.slots[i] = Slot[T]{Stack: stack, Filled: true}
	return nil
}

// Clear empties slot i.
func (c *Container[T]) Clear(i int) error {
	if err := c.check(i); err != nil {
		return err
	}
	c.slots[i] = Slot[T]{}
	return nil
}

// Len returns the number of occupied slots.
func (c *Container[T]) Len() int {
	n := 0
	for _, s := range c.slots {
		if s.Filled {
			n++
		}
	}
	return n
}

// FirstEmpty returns the lowest empty slot index, or -1 when full.
func (c *Container[T]) FirstEmpty() int {
	for i, s := range c.slots {
		if !s.Filled {
			return i
		}
	}
	return -1
}

// Slots returns a copy of every slot in index order.
func (c *Container[T]) Slots() []Slot[T] {
	out := make([]Slot[T], len(c.slots))
	copy(out, c.slots)
	return out
}

func (c *Container[T]) check(i int) error {
	if i < 0 || i >= len(c.slots) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(c.slots))
	}
	return nil
}
