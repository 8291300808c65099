package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Chef       = donburi.NewTag().SetName("Chef")
	Cake       = donburi.NewTag().SetName("Cake")
	ThrownCake = donburi.NewTag().SetName("ThrownCake")
	CakeBox    = donburi.NewTag().SetName("CakeBox")
)

// Resolv tags for contact detection
const (
	ResolvPlayer     = "Player"
	ResolvChef       = "Chef"
	ResolvCake       = "Cake"
	ResolvThrownCake = "ThrownCake"
	ResolvCakeBox    = "CakeBox"
)
