package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
	assert.Equal(t, New(1).Int63(), New(0).Int63(), "seed 0 maps to 1")
}

func TestShuffled(t *testing.T) {
	assert.Nil(t, Shuffled(0, New(3)))
	assert.Equal(t, []int{0, 1, 2, 3}, Shuffled(4, nil))

	got := Shuffled(20, New(7))
	assert.Len(t, got, 20)
	assert.ElementsMatch(t, Shuffled(20, nil), got)
	assert.Equal(t, got, Shuffled(20, New(7)))
}

func TestBattleSeed(t *testing.T) {
	assert.Equal(t, int64(100), BattleSeed(100, 0))
	assert.NotEqual(t, BattleSeed(100, 1), BattleSeed(100, 2))
}
