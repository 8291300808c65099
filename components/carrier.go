package components

import (
	"math"

	"github.com/nhawngkun/Chirpy-Winged/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CarrierData is the player's one-cake inventory with its aim state.
type CarrierData struct {
	Enabled      bool
	Holding      bool
	Aim          gamemath.Vec3
	AimVisible   bool
	WasAimActive bool

	Clock      float64
	LastThrow  float64
	ReenableIn float64 // pending re-enable delay; zero when none
}

func NewCarrierData() CarrierData {
	return CarrierData{
		Enabled:   true,
		Aim:       gamemath.Vec3{Z: -1},
		LastThrow: math.Inf(-1),
	}
}

// Tick advances the carrier clock and fires a pending re-enable.
func (c *CarrierData) Tick(dt float64) {
	c.Clock += dt
	if c.ReenableIn > 0 {
		c.ReenableIn -= dt
		if c.ReenableIn <= 0 {
			c.ReenableIn = 0
			c.Enabled = true
		}
	}
}

// CanPickup reports whether a ground cake may be collected now.
func (c *CarrierData) CanPickup(cooldown float64) bool {
	return c.Enabled && !c.Holding && c.Clock >= c.LastThrow+cooldown
}

func (c *CarrierData) Pickup() {
	c.Holding = true
	c.AimVisible = false
}

// UpdateAim feeds the aim stick. The aim follows any input above deadzone;
// a throw is due when the stick drops below threshold after being at or
// above it on the previous update.
func (c *CarrierData) UpdateAim(x, y, deadzone, threshold float64) (throw bool) {
	if !c.Enabled || !c.Holding {
		return false
	}
	aim, mag, ok := gamemath.AimFromInput(x, y, deadzone)
	c.AimVisible = ok
	if ok {
		c.Aim = aim
	}

	active := mag >= threshold
	throw = c.WasAimActive && !active
	c.WasAimActive = active
	return throw
}

// Release clears the held cake after a throw and stamps the throw time.
func (c *CarrierData) Release() {
	c.clear()
	c.LastThrow = c.Clock
}

// Deposit clears the held cake after it went into a box.
func (c *CarrierData) Deposit() {
	c.clear()
}

// ForceDrop discards the held cake and locks the carrier for lockout
// seconds. It does nothing when empty-handed.
func (c *CarrierData) ForceDrop(lockout float64) bool {
	if !c.Holding {
		return false
	}
	c.clear()
	c.Enabled = false
	c.ReenableIn = lockout
	return true
}

// Reset restores the carrier and cancels any pending re-enable.
func (c *CarrierData) Reset() {
	*c = NewCarrierData()
}

func (c *CarrierData) clear() {
	c.Holding = false
	c.WasAimActive = false
	c.AimVisible = false
}

var Carrier = donburi.NewComponentType[CarrierData]()
