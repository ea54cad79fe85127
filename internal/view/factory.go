// Package view derives presentation descriptors from container capacity.
package view

import (
	"errors"
	"fmt"

	"storagebox/internal/ecs"
)

// DefaultColumns is the fixed width of a generic storage grid.
const DefaultColumns = 9

// ErrUnsupportedCapacity is returned when a capacity cannot be laid out as
// whole rows of the factory's column count.
var ErrUnsupportedCapacity = errors.New("unsupported capacity")

// Sized is anything with a slot count.
type Sized interface {
	Capacity() int
}

// Descriptor says how a container should be drawn.
type Descriptor struct {
	Rows     int
	Columns  int
	TitleKey string
}

// Slots returns Rows*Columns.
func (d Descriptor) Slots() int { return d.Rows * d.Columns }

// Kind names the generic menu layout, e.g. "generic_9x6".
func (d Descriptor) Kind() string {
	return fmt.Sprintf("generic_%dx%d", d.Columns, d.Rows)
}

// Factory builds descriptors. The zero value uses DefaultColumns, no title
// key and no row limit.
type Factory struct {
	Columns  int
	MaxRows  int // 0 means unlimited
	TitleKey string
}

// Create returns the descriptor for c as it is right now. It is a pure
// function of c.Capacity(); the requester is accepted so hosts can pass the
// opening entity, but it does not affect the layout.
func (f *Factory) Create(c Sized, requester ecs.EntityID) (Descriptor, error) {
	cols := f.Columns
	if cols <= 0 {
		cols = DefaultColumns
	}
	capacity := c.Capacity()
	if capacity <= 0 || capacity%cols != 0 {
		return Descriptor{}, fmt.Errorf("%w: %d slots is not a multiple of %d columns", ErrUnsupportedCapacity, capacity, cols)
	}
	rows := capacity / cols
	if f.MaxRows > 0 && rows > f.MaxRows {
		return Descriptor{}, fmt.Errorf("%w: %d rows exceeds limit of %d", ErrUnsupportedCapacity, rows, f.MaxRows)
	}
	return Descriptor{Rows: rows, Columns: cols, TitleKey: f.TitleKey}, nil
}
