package component

import "storagebox/internal/ecs"

const CIdentity ecs.ComponentType = 2

// Identity carries the display name of an entity.
type Identity struct {
	Name string
}

func (Identity) Type() ecs.ComponentType { return CIdentity }
