package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its broadphase object. Radius is the
// ground-plane contact radius in arena units.
type ObjectData struct {
	*resolv.Object
	Radius float64
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
