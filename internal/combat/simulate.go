package combat

import (
	"context"

	"heroes_ai/internal/army"
)

// Simulator runs two armies against each other round by round until one side has no
// living units. MaxRounds and StopWhenIdle add optional earlier stops.
type Simulator struct {
	Log BattleLog
	// MaxRounds stops the battle after that many rounds; 0 means no limit.
	MaxRounds int
	// StopWhenIdle ends the battle as a stalemate after a round in which no program
	// returned a target. Off by default: a side may hold back for a round and strike later.
	StopWhenIdle bool

	metrics *metrics
}

func NewSimulator(log BattleLog) *Simulator {
	return &Simulator{Log: log, metrics: newMetrics()}
}

// Simulate plays the battle to completion. Every round both sides queue their living
// units by base attack; sides alternate one turn at a time, starting with the side whose
// strongest unit hits harder (A on ties). A side with nothing left to queue just waits.
//
// The only errors returned are those raised by a unit's Program, or ctx's own error when
// it is done between turns; either way the armies stay exactly as the last finished turn
// left them.
func (s *Simulator) Simulate(ctx context.Context, a, b *army.Army) (Outcome, error) {
	var out Outcome
	if a == nil || b == nil {
		return out, nil
	}
	if s.metrics == nil {
		s.metrics = newMetrics()
	}

	for a.HasAlive() && b.HasAlive() {
		if s.MaxRounds > 0 && out.Rounds >= s.MaxRounds {
			break
		}
		out.Rounds++
		s.metrics.round(ctx)

		qa, qb := newTurnQueue(a), newTurnQueue(b)
		turnA := firstMoverIsA(qa, qb)
		struck := false

		for qa.Len() > 0 || qb.Len() > 0 {
			if err := ctx.Err(); err != nil {
				return out, err
			}
			var hit bool
			var err error
			if turnA {
				hit, err = s.takeTurn(ctx, qa, qb, &out)
			} else {
				hit, err = s.takeTurn(ctx, qb, qa, &out)
			}
			if err != nil {
				return out, err
			}
			struck = struck || hit
			turnA = !turnA

			if !a.HasAlive() || !b.HasAlive() {
				out.Winner = winnerOf(a, b)
				return out, nil
			}
		}

		if s.StopWhenIdle && !struck {
			out.Stalemate = true
			break
		}
	}

	out.Winner = winnerOf(a, b)
	return out, nil
}

func firstMoverIsA(qa, qb *turnQueue) bool {
	atkA, okA := qa.topAttack()
	atkB, okB := qb.topAttack()
	if !okA {
		return false
	}
	if !okB {
		return true
	}
	return atkA >= atkB
}

// takeTurn lets the attackers' next unit act. It reports whether the program returned a target.
func (s *Simulator) takeTurn(ctx context.Context, attackers, defenders *turnQueue, out *Outcome) (bool, error) {
	if attackers.Len() == 0 {
		return false, nil
	}
	unit := attackers.pop()
	out.Turns++
	s.metrics.turn(ctx)

	if !unit.IsAlive() || unit.Program == nil {
		out.Skipped++
		s.metrics.skip(ctx)
		return false, nil
	}

	target, err := unit.Program.Attack(ctx, unit)
	if err != nil {
		return false, err
	}
	if s.Log != nil {
		s.Log.LogTurn(unit, target)
	}
	if target == nil {
		return false, nil
	}
	if !target.IsAlive() {
		if !defenders.remove(target) {
			attackers.remove(target)
		}
	}
	return true, nil
}
