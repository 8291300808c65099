package systems

import (
	"log/slog"

	"github.com/nhawngkun/Chirpy-Winged/components"
	cfg "github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/nhawngkun/Chirpy-Winged/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHealth runs invincibility timers and the pulse that marks them, and
// ends the session once a defeated player has shrunk away.
func UpdateHealth(ecs *ecs.ECS) {
	step := dt()
	var defeated bool

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		health := components.Health.Get(e)
		health.Tick(step)

		player := components.Player.Get(e)
		transform := components.Transform.Get(e)
		if player.Shrink != nil {
			scale, done := player.Shrink.Update(float32(step))
			transform.Scale = float64(scale)
			if done {
				player.Shrink = nil
				defeated = true
			}
			return
		}

		pulse := components.Pulse.Get(e)
		if !health.Invincible {
			pulse.Scale = 1
			pulse.Tween.Reset()
			return
		}
		scale, _, done := pulse.Tween.Update(float32(step))
		pulse.Scale = float64(scale)
		if done {
			pulse.Tween.Reset()
		}
	})

	if defeated {
		GameOver(ecs)
	}
}

// DamagePlayer runs the damage path: drop the carried cake, take the hit, and
// start the defeat shrink when health runs out. Damage during invincibility
// is ignored.
func DamagePlayer(ecs *ecs.ECS, e *donburi.Entry, amount int) {
	if !e.Valid() {
		return
	}
	health := components.Health.Get(e)
	if health.Invincible || health.Defeated {
		return
	}

	if components.Carrier.Get(e).ForceDrop(cfg.Pickup.ForceDropLockout) {
		slog.Debug("carried cake lost on hit")
	}

	applied, defeated := health.ApplyDamage(amount, cfg.Health.InvincibilityDuration)
	if !applied {
		return
	}
	pos := components.Transform.Get(e).Position
	publishGameEvent(ecs.World, components.EventPlayerHit, pos)
	StartScreenShake(ecs, cfg.ScreenShake.DamageIntensity, cfg.ScreenShake.DamageDuration)
	slog.Debug("player hit", "health", health.Current)

	if defeated {
		defeatPlayer(ecs, e)
	}
}

func defeatPlayer(ecs *ecs.ECS, e *donburi.Entry) {
	player := components.Player.Get(e)
	player.CanMove = false
	player.Shrink = gween.New(1, 0, float32(cfg.Health.DefeatDuration), ease.InBack)

	carrier := components.Carrier.Get(e)
	carrier.ForceDrop(cfg.Pickup.ForceDropLockout)
	carrier.Enabled = false
	carrier.ReenableIn = 0

	publishGameEvent(ecs.World, components.EventPlayerDefeated, components.Transform.Get(e).Position)
	slog.Info("player defeated")
}
