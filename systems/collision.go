package systems

import (
	"log/slog"

	"github.com/nhawngkun/Chirpy-Winged/components"
	cfg "github.com/nhawngkun/Chirpy-Winged/config"
	"github.com/nhawngkun/Chirpy-Winged/shared/gamemath"
	"github.com/nhawngkun/Chirpy-Winged/systems/factory"
	"github.com/nhawngkun/Chirpy-Winged/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContacts dispatches every overlap this tick to its handler. The
// resolv space gives the candidates; the contact circles decide.
//
// Pairs that never interact are simply never queried: chefs do not test
// against chefs or boxes, and ground cakes are handled by the pickup radius.
func UpdateContacts(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(player *donburi.Entry) {
		for _, chef := range contacts(player, tags.ResolvChef) {
			onPlayerChefContact(ecs, player, chef)
		}
		for _, box := range contacts(player, tags.ResolvCakeBox) {
			onPlayerBoxContact(ecs, player, box)
		}
	})

	var thrown []*donburi.Entry
	tags.ThrownCake.Each(ecs.World, func(e *donburi.Entry) {
		thrown = append(thrown, e)
	})
	for _, cake := range thrown {
		if components.ThrownCake.Get(cake).Spent {
			continue
		}
		if chefs := contacts(cake, tags.ResolvChef); len(chefs) > 0 {
			onThrownChefContact(ecs, cake, chefs[0])
			continue
		}
		if boxes := contacts(cake, tags.ResolvCakeBox); len(boxes) > 0 {
			onThrownBoxContact(ecs, cake, boxes[0])
		}
	}
}

// contacts returns the live entities with one of the given resolv tags whose
// contact circle overlaps e's.
func contacts(e *donburi.Entry, tagNames ...string) []*donburi.Entry {
	obj := components.Object.Get(e)
	if obj.Object == nil || obj.Space == nil {
		return nil
	}
	check := obj.Check(0, 0, tagNames...)
	if check == nil {
		return nil
	}

	pos := components.Transform.Get(e).Position
	var found []*donburi.Entry
	for _, other := range check.ObjectsByTags(tagNames...) {
		entry, ok := other.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || entry.HasComponent(components.Despawn) {
			continue
		}
		otherObj := components.Object.Get(entry)
		if gamemath.Overlaps(pos, obj.Radius, components.Transform.Get(entry).Position, otherObj.Radius) {
			found = append(found, entry)
		}
	}
	return found
}

// onPlayerChefContact treats the chef as kinematic: the player loses the
// part of its velocity pointing away from the chef, is separated, and takes
// a hit.
func onPlayerChefContact(ecs *ecs.ECS, player, chef *donburi.Entry) {
	transform := components.Transform.Get(player)
	physics := components.Physics.Get(player)
	chefPos := components.Transform.Get(chef).Position

	away := transform.Position.Sub(chefPos).Flat()
	physics.Velocity = gamemath.CancelAlong(physics.Velocity, away)
	transform.Position = separate(transform.Position, components.Object.Get(player).Radius, chefPos, components.Object.Get(chef).Radius)

	DamagePlayer(ecs, player, 1)
}

func onPlayerBoxContact(ecs *ecs.ECS, player, box *donburi.Entry) {
	factory.TriggerHighlight(box, cfg.CakeBox.HighlightDuration)

	carrier := components.Carrier.Get(player)
	if carrier.Holding {
		carrier.Deposit()
		scoreBox(ecs, box)
		slog.Debug("cake deposited")
	}

	if !cfg.CakeBox.AllowPlayerWalkThrough {
		transform := components.Transform.Get(player)
		boxPos := components.Transform.Get(box).Position
		transform.Position = separate(transform.Position, components.Object.Get(player).Radius, boxPos, components.Object.Get(box).Radius)
	}
}

func onThrownChefContact(ecs *ecs.ECS, cake, chef *donburi.Entry) {
	pos := components.Transform.Get(chef).Position
	DestroyChef(ecs, chef)
	spendThrownCake(cake)
	publishGameEvent(ecs.World, components.EventChefDestroyed, pos)
	slog.Debug("chef hit by cake", "entity", chef.Entity())
}

func onThrownBoxContact(ecs *ecs.ECS, cake, box *donburi.Entry) {
	spendThrownCake(cake)
	factory.TriggerHighlight(box, cfg.CakeBox.HighlightDuration)
	scoreBox(ecs, box)
}

// scoreBox credits a point through a box and starts its score pulse.
func scoreBox(ecs *ecs.ECS, box *donburi.Entry) {
	data := components.CakeBox.Get(box)
	data.Deposits++
	data.Punch = factory.NewPunchSequence()
	AddScore(ecs, box)
}

// separate moves a out of b along the line between them so the two contact
// circles just touch.
func separate(a gamemath.Vec3, ra float64, b gamemath.Vec3, rb float64) gamemath.Vec3 {
	offset := a.Sub(b).Flat()
	if offset.FlatLen() == 0 {
		offset = gamemath.Vec3{X: 1}
	}
	push := offset.Normalized().Scale(ra + rb)
	return gamemath.Vec3{X: b.X + push.X, Y: a.Y, Z: b.Z + push.Z}
}
