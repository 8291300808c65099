package systems

import (
	"github.com/nhawngkun/Chirpy-Winged/components"
	cfg "github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// dt is the fixed step every simulation system advances by.
func dt() float64 {
	return cfg.C.DeltaTime()
}

func getSession(w donburi.World) (*components.SessionData, bool) {
	entry, ok := components.Session.First(w)
	if !ok {
		return nil, false
	}
	return components.Session.Get(entry), true
}

func getSpawner(w donburi.World) (*components.SpawnerData, bool) {
	entry, ok := components.Spawner.First(w)
	if !ok {
		return nil, false
	}
	return components.Spawner.Get(entry), true
}

func getRand(w donburi.World) components.Rand {
	return components.RNG.Get(components.RNG.MustFirst(w)).Rand
}

// IsPlaying reports whether the session is in its playing state.
func IsPlaying(e *ecs.ECS) bool {
	s, ok := getSession(e.World)
	return ok && s.State == cfg.SessionPlaying
}

// WithPlayingCheck wraps a system to run only while a round is in progress.
func WithPlayingCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsPlaying(e) {
			system(e)
		}
	}
}

// WithGameplayChecks combines the pause and session checks.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(WithPlayingCheck(system))
}
