package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// Spawn is where the player is put back on reset.
	SpawnX, SpawnZ float64
	// CanMove is cleared while defeated.
	CanMove bool
	// Shrink runs the defeat animation; the round ends when it finishes.
	Shrink *gween.Tween
}

var Player = donburi.NewComponentType[PlayerData]()
