package skirmish

import (
	"math/rand"

	"heroes_ai/internal/army"
	"heroes_ai/internal/combat"
	"heroes_ai/internal/pathfind"
	"heroes_ai/internal/util"
)

const bandDepth = 3

// bandRows returns the rows a side deploys into, nearest the enemy last. Side A holds
// the top rows (Y from 0), side B the bottom ones.
func bandRows(side combat.Side, g pathfind.Grid) []int {
	depth := min(bandDepth, g.Height/2)
	rows := make([]int, 0, depth)
	for i := 0; i < depth; i++ {
		if side == combat.SideA {
			rows = append(rows, i)
		} else {
			rows = append(rows, g.Height-1-i)
		}
	}
	return rows
}

// Deploy places a's units in its side's band, walking columns in an rng-shuffled order
// row after row. Units that do not fit are dropped from the roster. It returns how many
// units were placed.
func Deploy(a *army.Army, side combat.Side, g pathfind.Grid, rng *rand.Rand) int {
	if a == nil {
		return 0
	}
	var cells []army.Cell
	for _, y := range bandRows(side, g) {
		for _, x := range util.Shuffled(g.Width, rng) {
			cells = append(cells, army.Cell{X: x, Y: y})
		}
	}

	placed := make([]*army.Unit, 0, min(len(a.Units), len(cells)))
	for _, u := range a.Units {
		if u == nil {
			continue
		}
		if len(placed) == len(cells) {
			break
		}
		u.MoveTo(cells[len(placed)])
		placed = append(placed, u)
	}
	a.Units = placed
	return len(placed)
}
