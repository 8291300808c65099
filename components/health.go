package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int

	Invincible      bool
	InvincibleTimer float64
	Defeated        bool
}

func NewHealthData(max int) HealthData {
	return HealthData{Current: max, Max: max}
}

// ApplyDamage subtracts amount unless invincible or already defeated. A hit
// that leaves health above zero starts the invincibility window. applied
// reports whether the hit landed and defeated whether it was the last one.
func (h *HealthData) ApplyDamage(amount int, invincibility float64) (applied, defeated bool) {
	if h.Invincible || h.Defeated {
		return false, false
	}
	h.Current = max(0, h.Current-amount)
	if h.Current == 0 {
		h.Defeated = true
		return true, true
	}
	h.Invincible = true
	h.InvincibleTimer = invincibility
	return true, false
}

// Tick counts down the invincibility window.
func (h *HealthData) Tick(dt float64) {
	if !h.Invincible {
		return
	}
	h.InvincibleTimer -= dt
	if h.InvincibleTimer <= 0 {
		h.InvincibleTimer = 0
		h.Invincible = false
	}
}

// Heal restores amount, capped at Max. A defeated tracker stays defeated.
func (h *HealthData) Heal(amount int) {
	if h.Defeated {
		return
	}
	h.Current = min(h.Max, h.Current+amount)
}

func (h *HealthData) IsAlive() bool { return h.Current > 0 }

// Reset restores full health and clears invincibility and defeat.
func (h *HealthData) Reset() {
	*h = NewHealthData(h.Max)
}

var Health = donburi.NewComponentType[HealthData]()
