package component

import (
	"storagebox/internal/container"
	"storagebox/internal/ecs"
)

const CStorageBox ecs.ComponentType = 6

// Box is the slotted container type held by a storage box.
type Box = container.Container[ItemStack]

// StorageBox gives an entity its personal storage container.
// The pointer is owned by the entity; nothing else keeps a reference.
type StorageBox struct {
	Box *Box
}

func (StorageBox) Type() ecs.ComponentType { return CStorageBox }
