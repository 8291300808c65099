package components

import (
	"testing"

	"github.com/nhawngkun/Chirpy-Winged/shared/gamemath"
	"github.com/stretchr/testify/assert"
)

const (
	deadzone  = 0.1
	threshold = 0.3
	cooldown  = 0.5
	lockout   = 0.5
)

func TestCarrier_ThrowsOnRelease(t *testing.T) {
	c := NewCarrierData()
	assert.True(t, c.CanPickup(cooldown), "fresh carrier can pick up")
	c.Pickup()

	assert.False(t, c.UpdateAim(1, 0, deadzone, threshold))
	assert.True(t, c.AimVisible)
	assert.Equal(t, gamemath.Vec3{X: 1}, c.Aim)

	assert.True(t, c.UpdateAim(0, 0, deadzone, threshold), "let go of a held aim")
	assert.False(t, c.AimVisible)
	assert.Equal(t, gamemath.Vec3{X: 1}, c.Aim, "aim keeps the last direction")
}

func TestCarrier_SmallAimNeverThrows(t *testing.T) {
	c := NewCarrierData()
	c.Pickup()

	assert.False(t, c.UpdateAim(0, 0.2, deadzone, threshold))
	assert.True(t, c.AimVisible, "above deadzone aims")
	assert.Equal(t, gamemath.Vec3{Z: 1}, c.Aim)
	assert.False(t, c.UpdateAim(0, 0, deadzone, threshold), "never crossed the throw threshold")
}

func TestCarrier_AimIgnoredWhenEmptyHanded(t *testing.T) {
	c := NewCarrierData()

	assert.False(t, c.UpdateAim(1, 0, deadzone, threshold))
	assert.False(t, c.UpdateAim(0, 0, deadzone, threshold))
	assert.Equal(t, gamemath.Vec3{Z: -1}, c.Aim)
}

func TestCarrier_CooldownAfterThrow(t *testing.T) {
	c := NewCarrierData()
	c.Pickup()
	c.Tick(2)
	c.Release()

	assert.False(t, c.Holding)
	assert.False(t, c.CanPickup(cooldown))
	c.Tick(0.4)
	assert.False(t, c.CanPickup(cooldown))
	c.Tick(0.2)
	assert.True(t, c.CanPickup(cooldown))
}

func TestCarrier_DepositHasNoCooldown(t *testing.T) {
	c := NewCarrierData()
	c.Pickup()
	c.Deposit()

	assert.False(t, c.Holding)
	assert.True(t, c.CanPickup(cooldown))
}

func TestCarrier_ForceDrop(t *testing.T) {
	c := NewCarrierData()
	assert.False(t, c.ForceDrop(lockout), "nothing to drop")
	assert.True(t, c.Enabled)

	c.Pickup()
	assert.True(t, c.ForceDrop(lockout))
	assert.False(t, c.Holding)
	assert.False(t, c.Enabled)
	assert.False(t, c.CanPickup(cooldown))

	c.Tick(0.25)
	assert.False(t, c.Enabled)
	c.Tick(0.25)
	assert.True(t, c.Enabled)
}

func TestCarrier_ResetCancelsPendingEnable(t *testing.T) {
	c := NewCarrierData()
	c.Pickup()
	c.ForceDrop(lockout)

	c.Reset()
	assert.True(t, c.Enabled)
	assert.Zero(t, c.ReenableIn)
	assert.False(t, c.Holding)
	assert.True(t, c.CanPickup(cooldown))
}
