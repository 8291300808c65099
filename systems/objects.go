package systems

import (
	"github.com/nhawngkun/Chirpy-Winged/components"
	"github.com/nhawngkun/Chirpy-Winged/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves each live broadphase object to its entity's
// transform. Runs after every movement system and before contacts.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Object == nil || obj.Space == nil {
			continue
		}
		factory.SyncObject(ecs.World, e)
	}
}
