package gamemath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestCircle_Contains(t *testing.T) {
	c := Circle{Radius: 10}

	tests := []struct {
		name string
		p    Vec3
		want bool
	}{
		{"center", Vec3{}, true},
		{"on rim", Vec3{X: 10}, true},
		{"outside", Vec3{X: 10.01}, false},
		{"height ignored", Vec3{X: 6, Y: 500, Z: 8}, true},
		{"diagonal outside", Vec3{X: 8, Z: 8}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Contains(tt.p))
		})
	}
}

func TestCircle_ClampOutsidePoint(t *testing.T) {
	c := Circle{Radius: 10}

	got := c.Clamp(Vec3{X: 15})
	assert.InDelta(t, 10, got.X, eps)
	assert.InDelta(t, 0, got.Y, eps)
	assert.InDelta(t, 0, got.Z, eps)
}

func TestCircle_ClampKeepsHeightAndDirection(t *testing.T) {
	c := Circle{Center: Vec3{X: 2, Z: -3}, Radius: 4}
	p := Vec3{X: 12, Y: 7, Z: 17}

	got := c.Clamp(p)
	assert.InDelta(t, 7, got.Y, eps)
	assert.InDelta(t, c.Radius, FlatDistance(c.Center, got), 1e-6)

	wantDir := p.Sub(c.Center).Flat().Normalized()
	gotDir := got.Sub(c.Center).Flat().Normalized()
	assert.InDelta(t, 1, wantDir.Dot(gotDir), 1e-9)
}

func TestCircle_ClampProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := Circle{Center: Vec3{X: 1, Z: 1}, Radius: 10}

	for i := 0; i < 1000; i++ {
		p := Vec3{
			X: rng.Float64()*60 - 30,
			Y: rng.Float64() * 5,
			Z: rng.Float64()*60 - 30,
		}
		got := c.Clamp(p)
		assert.True(t, c.Contains(got) || math.Abs(FlatDistance(c.Center, got)-c.Radius) < 1e-9)
		if c.Contains(p) {
			assert.Equal(t, p, got)
		} else {
			assert.InDelta(t, c.Radius, FlatDistance(c.Center, got), 1e-9)
		}
	}
}

func TestCircle_PushBackSnap(t *testing.T) {
	c := Circle{Radius: 10}
	pos, vel := c.PushBack(Vec3{X: 12}, Vec3{X: 5, Z: 3}, 2, 1.0/60, false)

	assert.InDelta(t, 10, pos.X, eps)
	assert.InDelta(t, 0, vel.X, eps)
	assert.InDelta(t, 3, vel.Z, eps)
}

func TestCircle_PushBackSmooth(t *testing.T) {
	c := Circle{Radius: 10}
	pos, vel := c.PushBack(Vec3{X: 12}, Vec3{X: -1}, 2, 0.25, true)

	// lerp factor 2*0.25 = 0.5 toward the rim at x=10
	assert.InDelta(t, 11, pos.X, eps)
	// inward velocity is kept
	assert.InDelta(t, -1, vel.X, eps)
}

func TestCircle_PushBackInsideIsNoop(t *testing.T) {
	c := Circle{Radius: 10}
	pos, vel := c.PushBack(Vec3{X: 3}, Vec3{X: 9}, 2, 1, true)
	assert.Equal(t, Vec3{X: 3}, pos)
	assert.Equal(t, Vec3{X: 9}, vel)
}
