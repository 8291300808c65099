package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextVolume(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0.25},
		{0.25, 0.5},
		{0.75, 1},
		{1, 0},
		{0.3, 0.5},
		{5, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, nextVolume(c.in), "from %v", c.in)
	}
}
