package systems

import (
	"github.com/nhawngkun/Chirpy-Winged/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWanderers moves every cake box along its current glide or picks a
// new target when its timer is due.
func UpdateWanderers(ecs *ecs.ECS) {
	boundaryEntry, ok := components.Boundary.First(ecs.World)
	if !ok {
		return
	}
	circle := components.Boundary.Get(boundaryEntry).Circle
	rng := getRand(ecs.World)
	step := dt()

	components.Wanderer.Each(ecs.World, func(e *donburi.Entry) {
		wanderer := components.Wanderer.Get(e)
		transform := components.Transform.Get(e)
		transform.Position, transform.Heading = wanderer.Update(step, transform.Position, transform.Heading, circle, rng)
	})
}

// StopWanderers suspends every cake box.
func StopWanderers(ecs *ecs.ECS) {
	components.Wanderer.Each(ecs.World, func(e *donburi.Entry) {
		components.Wanderer.Get(e).Stop()
	})
}

// ResumeWanderers restarts every cake box with a move due immediately.
func ResumeWanderers(ecs *ecs.ECS) {
	components.Wanderer.Each(ecs.World, func(e *donburi.Entry) {
		components.Wanderer.Get(e).Resume()
	})
}
