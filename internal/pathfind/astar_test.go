package pathfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heroes_ai/internal/army"
)

func at(name string, x, y int) *army.Unit {
	u := army.NewUnit(name, "T1", 100, 10, 10)
	u.MoveTo(army.Cell{X: x, Y: y})
	return u
}

func assertContiguous(t *testing.T, path []army.Cell) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		require.Equal(t, 1, Chebyshev(path[i-1], path[i]), "step %d: %v -> %v", i, path[i-1], path[i])
	}
}

func TestFindPathDiagonal(t *testing.T) {
	src, dst := at("A", 0, 0), at("B", 2, 2)

	path := FindPath(src, dst, nil)
	assert.Equal(t, []army.Cell{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}, path)
}

func TestFindPathAvoidsObstacle(t *testing.T) {
	src, dst := at("A", 0, 0), at("B", 2, 0)
	obstacle := at("O", 1, 0)

	path := FindPath(src, dst, []*army.Unit{src, dst, obstacle})
	require.NotEmpty(t, path)
	assert.Len(t, path, 3)
	assert.Equal(t, src.Pos(), path[0])
	assert.Equal(t, dst.Pos(), path[len(path)-1])
	assert.NotContains(t, path, army.Cell{X: 1, Y: 0})
	assertContiguous(t, path)
}

func TestFindPathDeadUnitsDoNotBlock(t *testing.T) {
	src, dst := at("A", 0, 0), at("B", 2, 2)
	corpse := at("C", 1, 1)
	corpse.TakeDamage(1000)

	path := FindPath(src, dst, []*army.Unit{corpse})
	assert.Equal(t, []army.Cell{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}, path)
}

func TestFindPathSurroundedTarget(t *testing.T) {
	src, dst := at("A", 0, 0), at("B", 10, 10)
	units := []*army.Unit{src, dst}
	for _, d := range dirs {
		units = append(units, at("wall", 10+d.X, 10+d.Y))
	}

	assert.Empty(t, FindPath(src, dst, units))
}

func TestFindPathAroundWall(t *testing.T) {
	g := DefaultGrid()
	src, dst := at("A", 0, 0), at("B", 6, 0)
	units := []*army.Unit{src, dst}
	for y := 0; y < g.Height-1; y++ {
		units = append(units, at("wall", 3, y))
	}

	path := g.FindPath(src, dst, units)
	require.Len(t, path, 41, "the only gap is (3,20): 20 steps there, 20 steps back")
	assert.Contains(t, path, army.Cell{X: 3, Y: 20})
	assertContiguous(t, path)

	again := g.FindPath(src, dst, units)
	assert.Equal(t, path, again, "identical input, identical path")
}

func TestFindPathOptimalAgainstChebyshev(t *testing.T) {
	src := at("A", 4, 17)
	for _, c := range []army.Cell{{X: 4, Y: 17}, {X: 0, Y: 0}, {X: 26, Y: 20}, {X: 13, Y: 2}, {X: 5, Y: 18}} {
		dst := at("B", c.X, c.Y)
		path := FindPath(src, dst, nil)
		require.NotEmpty(t, path)
		assert.Len(t, path, Chebyshev(src.Pos(), c)+1, "target %v", c)
		assertContiguous(t, path)
	}
}

func TestFindPathInvalidInputs(t *testing.T) {
	src, dst := at("A", 0, 0), at("B", 2, 2)
	assert.Empty(t, FindPath(nil, nil, nil))
	assert.Empty(t, FindPath(src, nil, nil))
	assert.Empty(t, FindPath(nil, dst, nil))

	offGrid := at("Far", 30, 0)
	assert.Empty(t, FindPath(src, offGrid, nil))
	assert.Empty(t, FindPath(offGrid, src, nil))

	assert.Empty(t, Grid{}.FindPath(src, dst, nil))
}

func TestFindPathSmallGrid(t *testing.T) {
	g := Grid{Width: 3, Height: 1}
	src, dst := at("A", 0, 0), at("B", 2, 0)

	assert.Len(t, g.FindPath(src, dst, nil), 3)
	assert.Empty(t, g.FindPath(src, dst, []*army.Unit{at("O", 1, 0)}))
}

func TestBlockedSkipsEndpointsAndOffGrid(t *testing.T) {
	g := Grid{Width: 4, Height: 4}
	src, dst := at("A", 0, 0), at("B", 3, 3)
	blocker := at("O", 1, 2)
	stray := at("S", -1, 9)

	blocked := g.Blocked([]*army.Unit{src, dst, blocker, stray, nil}, src, dst)
	assert.False(t, blocked[g.key(src.Pos())])
	assert.False(t, blocked[g.key(dst.Pos())])
	assert.True(t, blocked[g.key(blocker.Pos())])

	count := 0
	for _, b := range blocked {
		if b {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
