package skirmish

import (
	"context"

	"heroes_ai/internal/army"
	"heroes_ai/internal/combat"
	"heroes_ai/internal/pathfind"
	"heroes_ai/internal/targeting"
)

// Field is the shared battlefield the strike programs of both sides read.
type Field struct {
	Grid      pathfind.Grid
	A, B      *army.Army
	MoveRange int
	// Emit receives a Move event whenever a unit walks; nil discards them.
	Emit func(combat.Event)
}

func (f *Field) units() []*army.Unit {
	out := make([]*army.Unit, 0, f.A.Len()+f.B.Len())
	if f.A != nil {
		out = append(out, f.A.Units...)
	}
	if f.B != nil {
		out = append(out, f.B.Units...)
	}
	return out
}

// StrikeProgram returns the program for units on side. It picks among the enemy's
// front-most units the one with the shortest path, steps up to MoveRange cells towards
// it and then strikes. With no reachable enemy, or no damage to deal, the unit passes.
func (f *Field) StrikeProgram(side combat.Side) army.Program {
	enemies := f.B
	if side == combat.SideB {
		enemies = f.A
	}
	// B holds the high rows, so its exposed edge is its smallest Y: it is the left army.
	leftTarget := side == combat.SideA

	return army.ProgramFunc(func(ctx context.Context, attacker *army.Unit) (*army.Unit, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if enemies == nil || attacker.BaseAttack <= 0 {
			return nil, nil
		}

		all := f.units()
		var target *army.Unit
		var path []army.Cell
		for _, c := range targeting.SuitableUnits(targeting.RowsByX(enemies.Units), leftTarget) {
			p := f.Grid.FindPath(attacker, c, all)
			if len(p) == 0 {
				continue
			}
			if target == nil || len(p) < len(path) {
				target, path = c, p
			}
		}
		if target == nil {
			return nil, nil
		}

		f.advance(attacker, path)
		target.TakeDamage(attacker.DamageAgainst(target))
		return target, nil
	})
}

// advance walks attacker along path, stopping next to the target at the latest. Interior
// path cells are free by construction.
func (f *Field) advance(attacker *army.Unit, path []army.Cell) {
	steps := min(f.MoveRange, len(path)-2)
	if steps <= 0 {
		return
	}
	from := attacker.Pos()
	to := path[steps]
	attacker.MoveTo(to)
	if f.Emit != nil {
		f.Emit(combat.Event{Type: "Move", Payload: map[string]any{
			"id":   attacker.Name,
			"from": from.String(),
			"to":   to.String(),
		}})
	}
}
