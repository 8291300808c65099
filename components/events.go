package components

import (
	"github.com/nhawngkun/Chirpy-Winged/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ChefDespawned is published when a spawned chef leaves the world for any
// reason.
type ChefDespawned struct {
	Entity donburi.Entity
}

var ChefDespawnedEvent = events.NewEventType[ChefDespawned]()

// GameEventKind enumerates gameplay moments the presentation layer reacts to.
type GameEventKind int

const (
	EventCakeDropped GameEventKind = iota
	EventCakePicked
	EventCakeThrown
	EventScored
	EventPlayerHit
	EventChefDestroyed
	EventPlayerDefeated
	EventChefSpawned
)

type GameEvent struct {
	Kind     GameEventKind
	Position gamemath.Vec3
}

var GameEvents = events.NewEventType[GameEvent]()
