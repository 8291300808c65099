package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const invincibility = 1.5

func TestHealth_DamageStartsInvincibility(t *testing.T) {
	h := NewHealthData(3)

	applied, defeated := h.ApplyDamage(1, invincibility)
	assert.True(t, applied)
	assert.False(t, defeated)
	assert.Equal(t, 2, h.Current)
	assert.True(t, h.Invincible)

	applied, _ = h.ApplyDamage(1, invincibility)
	assert.False(t, applied, "ignored while invincible")
	assert.Equal(t, 2, h.Current)

	h.Tick(1.4)
	assert.True(t, h.Invincible)
	h.Tick(0.2)
	assert.False(t, h.Invincible)

	applied, _ = h.ApplyDamage(1, invincibility)
	assert.True(t, applied)
	assert.Equal(t, 1, h.Current)
}

func TestHealth_Defeat(t *testing.T) {
	h := NewHealthData(3)

	_, defeated := h.ApplyDamage(5, invincibility)
	assert.True(t, defeated)
	assert.Zero(t, h.Current, "floored at zero")
	assert.False(t, h.IsAlive())
	assert.True(t, h.Defeated)

	applied, _ := h.ApplyDamage(1, invincibility)
	assert.False(t, applied)

	h.Heal(2)
	assert.Zero(t, h.Current, "no healing once defeated")
}

func TestHealth_HealCapsAtMax(t *testing.T) {
	h := NewHealthData(3)
	h.ApplyDamage(2, invincibility)

	h.Heal(5)
	assert.Equal(t, 3, h.Current)
}

func TestHealth_Reset(t *testing.T) {
	h := NewHealthData(3)
	h.ApplyDamage(3, invincibility)

	h.Reset()
	assert.Equal(t, NewHealthData(3), h)
}
