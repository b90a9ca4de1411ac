// Package targeting picks which enemy units are exposed to attack.
package targeting

import (
	"sort"

	"heroes_ai/internal/army"
)

// SuitableUnits returns one living unit per row: the one with the smallest Y when the
// left army is the target, the largest Y otherwise. The first unit seen wins ties.
func SuitableUnits(rows [][]*army.Unit, leftArmyTarget bool) []*army.Unit {
	if len(rows) == 0 {
		return nil
	}
	out := make([]*army.Unit, 0, len(rows))
	for _, row := range rows {
		var best *army.Unit
		for _, u := range row {
			if !u.IsAlive() {
				continue
			}
			if best == nil ||
				(leftArmyTarget && u.Y < best.Y) ||
				(!leftArmyTarget && u.Y > best.Y) {
				best = u
			}
		}
		if best != nil {
			out = append(out, best)
		}
	}
	return out
}

// RowsByX groups living units into rows sharing an X coordinate, rows in ascending X
// and units in input order.
func RowsByX(units []*army.Unit) [][]*army.Unit {
	byX := map[int][]*army.Unit{}
	for _, u := range units {
		if u.IsAlive() {
			byX[u.X] = append(byX[u.X], u)
		}
	}
	xs := make([]int, 0, len(byX))
	for x := range byX {
		xs = append(xs, x)
	}
	sort.Ints(xs)
	rows := make([][]*army.Unit, 0, len(xs))
	for _, x := range xs {
		rows = append(rows, byX[x])
	}
	return rows
}
