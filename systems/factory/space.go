package factory

import (
	"github.com/nhawngkun/Chirpy-Winged/archetypes"
	"github.com/nhawngkun/Chirpy-Winged/components"
	"github.com/nhawngkun/Chirpy-Winged/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// newObject builds a square broadphase object sized to a contact radius,
// centered on p, and adds it to the world's space.
func newObject(w donburi.World, e *donburi.Entry, p gamemath.Vec3, radius float64, tag string) *resolv.Object {
	layout := components.Arena.Get(components.Arena.MustFirst(w)).Layout
	size := radius * 2 * layout.PixelsPerUnit
	x, y := layout.ToPixels(p)

	obj := resolv.NewObject(x-size/2, y-size/2, size, size)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.AddTags(tag)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj, Radius: radius})

	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}

// SyncObject moves an entity's broadphase object to its transform.
func SyncObject(w donburi.World, e *donburi.Entry) {
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return
	}
	layout := components.Arena.Get(components.Arena.MustFirst(w)).Layout
	x, y := layout.ToPixels(components.Transform.Get(e).Position)
	obj.X = x - obj.W/2
	obj.Y = y - obj.H/2
	obj.Update()
}

// RemoveObject takes an entity's broadphase object out of the space so it
// no longer takes part in contacts.
func RemoveObject(e *donburi.Entry) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object != nil && obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
}
