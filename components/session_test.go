package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_RecordBest(t *testing.T) {
	s := SessionData{BestScore: 2}

	s.IncrementScore()
	s.IncrementScore()
	assert.False(t, s.RecordBest(), "a tie is not a new best")

	s.IncrementScore()
	assert.True(t, s.RecordBest())
	assert.Equal(t, 3, s.BestScore)
}
