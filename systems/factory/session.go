package factory

import (
	"math/rand"

	"github.com/nhawngkun/Chirpy-Winged/archetypes"
	"github.com/nhawngkun/Chirpy-Winged/components"
	cfg "github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSession(ecs *ecs.ECS, bestScore int) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{
		State:     cfg.SessionHome,
		BestScore: bestScore,
	})
	return session
}

// CreateRNG installs the world's random source.
func CreateRNG(ecs *ecs.ECS, seed int64) *donburi.Entry {
	rng := archetypes.RNG.Spawn(ecs)
	components.RNG.SetValue(rng, components.RNGData{Rand: rand.New(rand.NewSource(seed))})
	return rng
}
