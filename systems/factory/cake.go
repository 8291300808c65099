package factory

import (
	"github.com/nhawngkun/Chirpy-Winged/archetypes"
	"github.com/nhawngkun/Chirpy-Winged/components"
	cfg "github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/nhawngkun/Chirpy-Winged/shared/gamemath"
	"github.com/nhawngkun/Chirpy-Winged/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCake drops a collectable cake that scales in and expires after its
// lifetime.
func CreateCake(ecs *ecs.ECS, pos gamemath.Vec3) *donburi.Entry {
	cake := archetypes.Cake.Spawn(ecs)
	components.Cake.SetValue(cake, components.CakeData{
		Lifetime: cfg.Cake.Lifetime,
		ScaleIn:  gween.New(0, 1, float32(cfg.Cake.ScaleInDuration), ease.OutBack),
	})
	components.Transform.SetValue(cake, components.TransformData{
		Position: pos,
		Scale:    0,
	})
	newObject(ecs.World, cake, pos, cfg.Cake.Radius, tags.ResolvCake)
	return cake
}

// CreateThrownCake launches a cake with an initial velocity; gravity pulls it
// down.
func CreateThrownCake(ecs *ecs.ECS, pos, vel gamemath.Vec3) *donburi.Entry {
	cake := archetypes.ThrownCake.Spawn(ecs)
	components.ThrownCake.SetValue(cake, components.ThrownCakeData{
		Lifetime: cfg.Cake.ThrownLifetime,
	})
	components.Transform.SetValue(cake, components.TransformData{
		Position: pos,
		Scale:    1,
	})
	components.Physics.SetValue(cake, components.PhysicsData{
		Velocity: vel,
		Gravity:  cfg.Cake.Gravity,
	})
	newObject(ecs.World, cake, pos, cfg.Cake.Radius, tags.ResolvThrownCake)
	return cake
}
