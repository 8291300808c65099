package systems

import (
	"math"

	"github.com/nhawngkun/Chirpy-Winged/components"
	"github.com/nhawngkun/Chirpy-Winged/systems/factory"
	"github.com/nhawngkun/Chirpy-Winged/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances presentation timers: despawn shrink, box highlight,
// box score pulse and screen shake. It is the only place entities are
// finally removed.
func UpdateEffects(ecs *ecs.ECS) {
	step := dt()
	updateHighlights(ecs, step)
	updatePunches(ecs, step)
	updateScreenShake(ecs, step)
	updateDespawns(ecs, step)
}

// updateDespawns shrinks despawning entities and removes the ones that have
// finished.
func updateDespawns(ecs *ecs.ECS, step float64) {
	var toDestroy []*donburi.Entry

	components.Despawn.Each(ecs.World, func(e *donburi.Entry) {
		despawn := components.Despawn.Get(e)
		scale, done := despawn.Tween.Update(float32(step))
		if e.HasComponent(components.Transform) {
			components.Transform.Get(e).Scale = math.Max(0, float64(scale))
		}
		if done {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		destroyEntity(ecs.World, e)
	}
}

func updateHighlights(ecs *ecs.ECS, step float64) {
	var toRemove []*donburi.Entry

	components.Highlight.Each(ecs.World, func(e *donburi.Entry) {
		h := components.Highlight.Get(e)
		h.Remaining -= step
		if h.Remaining <= 0 {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.RemoveComponent(components.Highlight)
	}
}

func updatePunches(ecs *ecs.ECS, step float64) {
	tags.CakeBox.Each(ecs.World, func(e *donburi.Entry) {
		box := components.CakeBox.Get(e)
		if box.Punch == nil {
			return
		}
		scale, _, done := box.Punch.Update(float32(step))
		components.Transform.Get(e).Scale = float64(scale)
		if done {
			box.Punch = nil
			components.Transform.Get(e).Scale = 1
		}
	})
}

// destroyEntity removes an entity from the world and the collision space.
// Chefs announce their removal so the spawner can free their slot.
func destroyEntity(w donburi.World, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(tags.Chef) {
		components.ChefDespawnedEvent.Publish(w, components.ChefDespawned{Entity: e.Entity()})
	}
	factory.RemoveObject(e)
	e.Remove()
}

// StartScreenShake starts or restarts the camera shake. A weaker shake never
// replaces a stronger one that is still running.
func StartScreenShake(ecs *ecs.ECS, intensity, duration float64) {
	shake := getOrCreateScreenShake(ecs)
	if shake.Duration > 0 && shake.Intensity > intensity {
		return
	}
	shake.Intensity = intensity
	shake.Duration = duration
	shake.Elapsed = 0
}

func updateScreenShake(ecs *ecs.ECS, step float64) {
	entry, ok := components.ScreenShake.First(ecs.World)
	if !ok {
		return
	}
	shake := components.ScreenShake.Get(entry)
	if shake.Duration <= 0 {
		return
	}
	shake.Elapsed += step
	shake.Duration -= step
	if shake.Duration <= 0 {
		shake.Duration = 0
		shake.Elapsed = 0
	}
}

// ScreenShakeOffset returns the current camera offset in pixels.
func ScreenShakeOffset(w donburi.World) (float64, float64) {
	entry, ok := components.ScreenShake.First(w)
	if !ok {
		return 0, 0
	}
	shake := components.ScreenShake.Get(entry)
	if shake.Duration <= 0 {
		return 0, 0
	}
	t := shake.Elapsed * 60
	return math.Sin(t*1.7) * shake.Intensity, math.Cos(t*2.3) * shake.Intensity
}

func getOrCreateScreenShake(ecs *ecs.ECS) *components.ScreenShakeData {
	entry, ok := components.ScreenShake.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.ScreenShake))
	}
	return components.ScreenShake.Get(entry)
}
