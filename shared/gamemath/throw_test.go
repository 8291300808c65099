package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThrowVelocity(t *testing.T) {
	v := ThrowVelocity(Vec3{X: 3, Y: 9, Z: 4}, 15, 3)
	assert.InDelta(t, 9, v.X, eps)
	assert.InDelta(t, 12, v.Z, eps)
	assert.InDelta(t, 3, v.Y, eps)
}

func TestAimFromInput(t *testing.T) {
	_, _, ok := AimFromInput(0.05, 0.05, 0.1)
	assert.False(t, ok)

	aim, mag, ok := AimFromInput(0, -0.5, 0.1)
	assert.True(t, ok)
	assert.InDelta(t, 0.5, mag, eps)
	assert.InDelta(t, -1, aim.Z, eps)
}

func TestPathDropPoint(t *testing.T) {
	start := Vec3{X: -10}
	end := Vec3{X: 10}
	pos := Vec3{X: 0, Y: 1}

	// walker is halfway; two items trail it by 0.75 and 1.5 units
	first := PathDropPoint(start, end, pos, 0, 2, 1.5)
	second := PathDropPoint(start, end, pos, 1, 2, 1.5)

	assert.InDelta(t, -0.75, first.X, 1e-9)
	assert.InDelta(t, -1.5, second.X, 1e-9)
	assert.InDelta(t, 1, first.Y, eps)
}

func TestStepToward(t *testing.T) {
	pos, dir := StepToward(Vec3{}, Vec3{X: 10, Y: 4}, 5, 0.5)
	assert.InDelta(t, 2.5, pos.X, eps)
	assert.InDelta(t, 0, pos.Y, eps)
	assert.InDelta(t, 1, dir.X, eps)
}

func TestApplyGravityLands(t *testing.T) {
	pos, vel, grounded := ApplyGravity(Vec3{Y: 0.01}, Vec3{X: 1, Y: -5}, 9.81, 0.1)
	assert.True(t, grounded)
	assert.Equal(t, 0.0, pos.Y)
	assert.Equal(t, Vec3{}, vel)
}
