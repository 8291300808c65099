package systems

import (
	"log/slog"

	"github.com/nhawngkun/Chirpy-Winged/components"
	cfg "github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/nhawngkun/Chirpy-Winged/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartSession begins a round. It is ignored while a round is already
// running.
func StartSession(ecs *ecs.ECS) {
	session, ok := getSession(ecs.World)
	if !ok || session.State == cfg.SessionPlaying {
		return
	}

	session.State = cfg.SessionPlaying
	session.Score = 0
	session.Elapsed = 0

	if spawner, ok := getSpawner(ecs.World); ok {
		spawner.Enabled = true
	}
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		components.Health.Get(e).Reset()
	})
	ResumeWanderers(ecs)

	slog.Info("session started", "best", session.BestScore)
}

// GameOver ends the round, records the best score and shows the loss screen.
func GameOver(ecs *ecs.ECS) {
	session, ok := getSession(ecs.World)
	if !ok || session.State != cfg.SessionPlaying {
		return
	}

	session.State = cfg.SessionGameOver
	if spawner, ok := getSpawner(ecs.World); ok {
		spawner.Enabled = false
	}
	StopWanderers(ecs)

	if session.RecordBest() {
		SaveBestScore(session.BestScore)
	}
	slog.Info("session over", "score", session.Score, "best", session.BestScore, "elapsed", session.Elapsed)
}

// ResetSession clears the arena and immediately starts a new round.
func ResetSession(ecs *ecs.ECS) {
	clearRound(ecs)
	StartSession(ecs)
}

// GoHome clears the arena and returns to the home screen.
func GoHome(ecs *ecs.ECS) {
	clearRound(ecs)
	StopWanderers(ecs)
}

// clearRound resets difficulty and removes every round-scoped entity,
// leaving the session in the Home state.
func clearRound(ecs *ecs.ECS) {
	if spawner, ok := getSpawner(ecs.World); ok {
		spawner.ResetDifficulty()
		spawner.Enabled = false
		spawner.SpawnTimer = spawner.Interval
	}

	var doomed []*donburi.Entry
	collect := func(e *donburi.Entry) { doomed = append(doomed, e) }
	tags.Chef.Each(ecs.World, collect)
	tags.Cake.Each(ecs.World, collect)
	tags.ThrownCake.Each(ecs.World, collect)
	for _, e := range doomed {
		destroyEntity(ecs.World, e)
	}
	// Settle the spawner's count now so a spawn later in this tick sees it.
	components.ChefDespawnedEvent.ProcessEvents(ecs.World)

	tags.Player.Each(ecs.World, resetPlayer)
	SetPaused(ecs, false)

	if session, ok := getSession(ecs.World); ok {
		session.Score = 0
		session.Elapsed = 0
		session.State = cfg.SessionHome
	}
	slog.Info("arena cleared", "removed", len(doomed))
}

// UpdateSession advances the round clock.
func UpdateSession(ecs *ecs.ECS) {
	if session, ok := getSession(ecs.World); ok {
		session.Elapsed += dt()
	}
}

// AddScore credits one point and reports it to the presentation layer.
func AddScore(ecs *ecs.ECS, at *donburi.Entry) {
	session, ok := getSession(ecs.World)
	if !ok {
		return
	}
	session.IncrementScore()
	if at != nil && at.Valid() && at.HasComponent(components.Transform) {
		publishGameEvent(ecs.World, components.EventScored, components.Transform.Get(at).Position)
	}
	slog.Debug("scored", "score", session.Score)
}

// Score returns the current round score.
func Score(w donburi.World) int {
	if session, ok := getSession(w); ok {
		return session.Score
	}
	return 0
}

// SessionSummary returns the session state with the current and best
// scores.
func SessionSummary(w donburi.World) (cfg.SessionState, int, int) {
	session, ok := getSession(w)
	if !ok {
		return cfg.SessionHome, 0, 0
	}
	return session.State, session.Score, session.BestScore
}
