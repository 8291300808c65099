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

// UpdateCakes scales new ground cakes in and expires the ones nobody picked
// up.
func UpdateCakes(ecs *ecs.ECS) {
	step := dt()
	var expired []*donburi.Entry

	tags.Cake.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Despawn) {
			return
		}
		cake := components.Cake.Get(e)
		transform := components.Transform.Get(e)

		cake.Age += step
		if cake.ScaleIn != nil {
			scale, done := cake.ScaleIn.Update(float32(step))
			transform.Scale = float64(scale)
			if done {
				cake.ScaleIn = nil
				transform.Scale = 1
			}
		}

		cake.Lifetime -= step
		if cake.Lifetime <= 0 {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		factory.StartDespawn(e, cfg.Cake.ScaleInDuration)
	}
}

// CakeBob is the presentation height offset of a ground cake.
func CakeBob(cake *components.CakeData) float64 {
	return gamemath.Bob(cake.Age, cfg.Cake.BobHeight, cfg.Cake.BobSpeed)
}
