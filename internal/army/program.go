package army

import "context"

// Program is a unit's decision strategy. Attack selects a target, applies damage and
// returns the target, or nil when the unit declines to act. Any returned error aborts
// the battle and is handed back to the caller unchanged.
type Program interface {
	Attack(ctx context.Context, attacker *Unit) (*Unit, error)
}

type ProgramFunc func(ctx context.Context, attacker *Unit) (*Unit, error)

func (f ProgramFunc) Attack(ctx context.Context, attacker *Unit) (*Unit, error) {
	return f(ctx, attacker)
}

// FixedTarget strikes the same unit every turn while it lives.
type FixedTarget struct {
	Target *Unit
}

func (p FixedTarget) Attack(ctx context.Context, attacker *Unit) (*Unit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !p.Target.IsAlive() {
		return nil, nil
	}
	p.Target.TakeDamage(attacker.DamageAgainst(p.Target))
	return p.Target, nil
}
