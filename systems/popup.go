package systems

import (
	"github.com/nhawngkun/Chirpy-Winged/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	popupRise     = 24
	popupDuration = 0.8
)

// onGameEvent turns score and damage events into floating labels.
func onGameEvent(w donburi.World, e components.GameEvent) {
	var label string
	switch e.Kind {
	case components.EventScored:
		label = "+1"
	case components.EventPlayerHit:
		label = "-1"
	default:
		return
	}
	entry := w.Entry(w.Create(components.Popup))
	components.Popup.SetValue(entry, components.PopupData{
		Text:     label,
		Position: e.Position,
		Rise:     gween.New(0, popupRise, popupDuration, ease.OutQuad),
	})
}

// UpdatePopups floats labels upward and removes them when done.
func UpdatePopups(ecs *ecs.ECS) {
	step := float32(dt())
	var done []*donburi.Entry

	components.Popup.Each(ecs.World, func(e *donburi.Entry) {
		popup := components.Popup.Get(e)
		offset, finished := popup.Rise.Update(step)
		popup.Offset = float64(offset)
		if finished {
			done = append(done, e)
		}
	})

	for _, e := range done {
		e.Remove()
	}
}
