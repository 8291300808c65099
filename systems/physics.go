package systems

import (
	"github.com/nhawngkun/Chirpy-Winged/components"
	cfg "github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/nhawngkun/Chirpy-Winged/shared/gamemath"
	"github.com/nhawngkun/Chirpy-Winged/systems/factory"
	"github.com/nhawngkun/Chirpy-Winged/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateThrownCakes integrates gravity for cakes in flight and removes them
// once their flight time runs out.
func UpdateThrownCakes(ecs *ecs.ECS) {
	step := dt()
	var expired []*donburi.Entry

	tags.ThrownCake.Each(ecs.World, func(e *donburi.Entry) {
		thrown := components.ThrownCake.Get(e)
		if thrown.Spent {
			return
		}
		transform := components.Transform.Get(e)
		physics := components.Physics.Get(e)
		transform.Position, physics.Velocity, physics.Grounded = gamemath.ApplyGravity(transform.Position, physics.Velocity, physics.Gravity, step)

		thrown.Lifetime -= step
		if thrown.Lifetime <= 0 {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		spendThrownCake(e)
	}
}

// spendThrownCake retires a thrown cake so it can score or hit only once.
func spendThrownCake(e *donburi.Entry) {
	thrown := components.ThrownCake.Get(e)
	if thrown.Spent {
		return
	}
	thrown.Spent = true
	factory.StartDespawn(e, cfg.Cake.ScaleInDuration)
}
