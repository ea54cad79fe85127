package component

import "storagebox/internal/ecs"

const CTagPlayer ecs.ComponentType = 8

// TagPlayer marks a player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }
