package archetypes

import (
	"github.com/nhawngkun/Chirpy-Winged/components"
	cfg "github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/nhawngkun/Chirpy-Winged/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Physics,
		components.Object,
		components.Health,
		components.Carrier,
		components.Pulse,
	)
	Chef = newArchetype(
		tags.Chef,
		components.Chef,
		components.Transform,
		components.Object,
	)
	Cake = newArchetype(
		tags.Cake,
		components.Cake,
		components.Transform,
		components.Object,
	)
	ThrownCake = newArchetype(
		tags.ThrownCake,
		components.ThrownCake,
		components.Transform,
		components.Physics,
		components.Object,
	)
	CakeBox = newArchetype(
		tags.CakeBox,
		components.CakeBox,
		components.Wanderer,
		components.Transform,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Boundary = newArchetype(
		components.Boundary,
	)
	Arena = newArchetype(
		components.Arena,
	)
	Spawner = newArchetype(
		components.Spawner,
	)
	Session = newArchetype(
		components.Session,
	)
	RNG = newArchetype(
		components.RNG,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
