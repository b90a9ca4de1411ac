package targeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heroes_ai/internal/army"
)

func at(name string, x, y int) *army.Unit {
	u := army.NewUnit(name, "type1", 100, 10, 10)
	u.MoveTo(army.Cell{X: x, Y: y})
	return u
}

func TestSuitableUnitsEmpty(t *testing.T) {
	assert.Empty(t, SuitableUnits(nil, true))
	assert.Empty(t, SuitableUnits([][]*army.Unit{}, false))
	assert.Empty(t, SuitableUnits([][]*army.Unit{nil, {}}, true))
}

func TestSuitableUnitsPicksExtremeY(t *testing.T) {
	u1, u2, u3 := at("u1", 0, 1), at("u2", 0, 0), at("u3", 0, 2)
	row := [][]*army.Unit{{u1, u2, u3}}

	left := SuitableUnits(row, true)
	require.Len(t, left, 1)
	assert.Same(t, u2, left[0])

	right := SuitableUnits(row, false)
	require.Len(t, right, 1)
	assert.Same(t, u3, right[0])
}

func TestSuitableUnitsMultipleRows(t *testing.T) {
	u1, u2 := at("u1", 0, 1), at("u2", 1, 5)

	got := SuitableUnits([][]*army.Unit{{u1}, {u2}}, true)
	assert.Equal(t, []*army.Unit{u1, u2}, got)
}

func TestSuitableUnitsSkipsDead(t *testing.T) {
	alive, dead := at("alive", 0, 5), at("dead", 0, 1)
	dead.TakeDamage(1000)

	got := SuitableUnits([][]*army.Unit{{alive, dead, nil}}, true)
	require.Len(t, got, 1)
	assert.Same(t, alive, got[0])

	assert.Empty(t, SuitableUnits([][]*army.Unit{{dead}}, true))
}

func TestSuitableUnitsFirstWinsTies(t *testing.T) {
	a, b := at("a", 0, 3), at("b", 0, 3)
	assert.Same(t, a, SuitableUnits([][]*army.Unit{{a, b}}, true)[0])
	assert.Same(t, a, SuitableUnits([][]*army.Unit{{a, b}}, false)[0])
}

func TestRowsByX(t *testing.T) {
	a, b, c, d := at("a", 4, 0), at("b", 1, 3), at("c", 4, 2), at("d", 2, 2)
	d.TakeDamage(1000)

	rows := RowsByX([]*army.Unit{a, b, c, d, nil})
	require.Len(t, rows, 2)
	assert.Equal(t, []*army.Unit{b}, rows[0])
	assert.Equal(t, []*army.Unit{a, c}, rows[1])
	assert.Empty(t, RowsByX(nil))
}
