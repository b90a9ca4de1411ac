// Package skirmish plays a full battle on the grid: both armies are deployed, every unit
// gets a strike program and the combat scheduler runs it to the end.
package skirmish

import (
	"context"

	"github.com/rs/zerolog"

	"heroes_ai/internal/army"
	"heroes_ai/internal/combat"
	"heroes_ai/internal/pathfind"
	"heroes_ai/internal/util"
)

type Config struct {
	Grid      pathfind.Grid
	MoveRange int
	MaxRounds int
	Seed      int64
	// Record keeps the event stream in the Result.
	Record bool
	Logger zerolog.Logger
}

type Result struct {
	Winner  combat.Side    `json:"winner"`
	Outcome combat.Outcome `json:"outcome"`
	Seed    int64          `json:"seed"`
	A       ArmyMeta       `json:"a"`
	B       ArmyMeta       `json:"b"`
	Events  []combat.Event `json:"events,omitempty"`
}

type ArmyMeta struct {
	Points    int            `json:"points"`
	Deployed  int            `json:"deployed"`
	Survivors int            `json:"survivors"`
	Health    int            `json:"health"`
	ByType    map[string]int `json:"by_type"`
}

func metaOf(a *army.Army, deployed int) ArmyMeta {
	m := ArmyMeta{Deployed: deployed, ByType: map[string]int{}}
	if a == nil {
		return m
	}
	m.Points = a.Points
	m.Survivors = len(a.Alive())
	m.Health = a.TotalHealth()
	m.ByType = a.CountByType()
	return m
}

// Run deploys a and b, hands every unit a strike program and simulates the battle. The
// armies are modified in place. On error the partial Result is still returned.
func Run(ctx context.Context, cfg Config, a, b *army.Army) (*Result, error) {
	if a == nil {
		a = army.New(nil, 0)
	}
	if b == nil {
		b = army.New(nil, 0)
	}
	if cfg.Grid.Width <= 0 || cfg.Grid.Height <= 0 {
		cfg.Grid = pathfind.DefaultGrid()
	}
	if cfg.MoveRange <= 0 {
		cfg.MoveRange = 1
	}

	rec := &combat.Recorder{}
	emit := func(ev combat.Event) {}
	if cfg.Record {
		emit = rec.Emit
	}

	rng := util.New(cfg.Seed)
	rostered := a.Len() + b.Len()
	deployedA := Deploy(a, combat.SideA, cfg.Grid, rng)
	deployedB := Deploy(b, combat.SideB, cfg.Grid, rng)
	logger := cfg.Logger.With().Int64("seed", cfg.Seed).Logger()
	if dropped := rostered - deployedA - deployedB; dropped > 0 {
		logger.Warn().Int("dropped", dropped).Msg("deployment band full")
	}

	field := &Field{Grid: cfg.Grid, A: a, B: b, MoveRange: cfg.MoveRange, Emit: emit}
	sides := []struct {
		side combat.Side
		ar   *army.Army
	}{{combat.SideA, a}, {combat.SideB, b}}
	for _, sd := range sides {
		side, ar := sd.side, sd.ar
		prog := field.StrikeProgram(side)
		for _, u := range ar.Units {
			u.Program = prog
			emit(combat.Event{Type: "Spawn", Payload: map[string]any{
				"id": u.Name, "side": side.String(), "type": u.UnitType,
				"x": u.X, "y": u.Y, "hp": u.Health,
			}})
		}
	}

	var log combat.BattleLog = combat.NewZerologLog(logger)
	if cfg.Record {
		log = combat.Multi(log, rec)
	}
	sim := combat.NewSimulator(log)
	sim.MaxRounds = cfg.MaxRounds
	// Strike programs are stateless, so a round where nobody reaches anyone repeats forever.
	sim.StopWhenIdle = true

	out, err := sim.Simulate(ctx, a, b)
	res := &Result{
		Winner:  out.Winner,
		Outcome: out,
		Seed:    cfg.Seed,
		A:       metaOf(a, deployedA),
		B:       metaOf(b, deployedB),
	}
	if cfg.Record {
		res.Events = rec.Events
	}
	if err != nil {
		logger.Debug().Err(err).Int("round", out.Rounds).Msg("battle aborted")
		return res, err
	}
	logger.Debug().
		Str("winner", out.Winner.String()).
		Int("rounds", out.Rounds).
		Int("turns", out.Turns).
		Bool("stalemate", out.Stalemate).
		Msg("battle finished")
	return res, nil
}
