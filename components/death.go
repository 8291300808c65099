package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DespawnData marks an entity that is shrinking out. Its collider is already
// gone; the entity is removed when the tween finishes.
type DespawnData struct {
	Tween *gween.Tween
}

var Despawn = donburi.NewComponentType[DespawnData]()
