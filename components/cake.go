package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CakeData is a cake lying on the ground waiting to be picked up.
type CakeData struct {
	Lifetime float64 // seconds left before it despawns
	Age      float64
	ScaleIn  *gween.Tween
}

var Cake = donburi.NewComponentType[CakeData]()

// ThrownCakeData is a cake in flight. Spent is set once it has hit
// something so a second contact is ignored.
type ThrownCakeData struct {
	Lifetime float64
	Spent    bool
}

var ThrownCake = donburi.NewComponentType[ThrownCakeData]()

// CakeBoxData is a scoring target.
type CakeBoxData struct {
	Punch    *gween.Sequence
	Deposits int
}

var CakeBox = donburi.NewComponentType[CakeBoxData]()
