package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heroes_ai/internal/army"
)

func TestTurnQueueOrder(t *testing.T) {
	u1, u2, u3, u4 := unit("u1", 1, 4), unit("u2", 1, 8), unit("u3", 1, 4), unit("u4", 0, 99)
	q := newTurnQueue(army.New([]*army.Unit{u1, u2, nil, u3, u4, u2}, 0))

	require.Equal(t, 3, q.Len(), "dead, nil and repeated entries are not queued")
	top, ok := q.topAttack()
	require.True(t, ok)
	assert.Equal(t, 8, top)

	assert.Same(t, u2, q.pop())
	assert.Same(t, u1, q.pop())
	assert.Same(t, u3, q.pop())
	assert.Nil(t, q.pop())
	_, ok = q.topAttack()
	assert.False(t, ok)
}

func TestTurnQueueRemove(t *testing.T) {
	units := make([]*army.Unit, 6)
	for i := range units {
		units[i] = unit(string(rune('a'+i)), 1, 10-i)
	}
	q := newTurnQueue(army.New(units, 0))

	assert.True(t, q.remove(units[3]))
	assert.Equal(t, 5, q.Len())
	assert.False(t, q.remove(units[3]))
	assert.True(t, q.remove(units[0]))

	var order []string
	for q.Len() > 0 {
		order = append(order, q.pop().Name)
	}
	assert.Equal(t, []string{"b", "c", "e", "f"}, order)
	assert.False(t, q.remove(units[1]), "popped units are gone from the index")
}

func TestTurnQueueNilArmy(t *testing.T) {
	q := newTurnQueue(nil)
	assert.Zero(t, q.Len())
	assert.Nil(t, q.pop())
}
