package factory

import (
	"github.com/nhawngkun/Chirpy-Winged/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// StartDespawn pulls the entity out of the collision space and shrinks it
// from its current scale to zero; the effects system removes it afterwards.
func StartDespawn(e *donburi.Entry, duration float64) {
	if e.HasComponent(components.Despawn) {
		return
	}
	RemoveObject(e)

	from := float32(1)
	if e.HasComponent(components.Transform) {
		from = float32(components.Transform.Get(e).Scale)
	}
	e.AddComponent(components.Despawn)
	components.Despawn.SetValue(e, components.DespawnData{
		Tween: gween.New(from, 0, float32(duration), ease.InBack),
	})
}

// TriggerHighlight starts or restarts a highlight flash on the entity.
func TriggerHighlight(e *donburi.Entry, duration float64) {
	if !e.HasComponent(components.Highlight) {
		e.AddComponent(components.Highlight)
	}
	components.Highlight.SetValue(e, components.HighlightData{Remaining: duration})
}
