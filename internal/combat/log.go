package combat

import (
	"github.com/rs/zerolog"

	"heroes_ai/internal/army"
)

// BattleLog observes every turn in which a unit's program ran. target is nil when the
// unit declined to act. Turns skipped because the unit died first are not reported.
type BattleLog interface {
	LogTurn(attacker, target *army.Unit)
}

type LogFunc func(attacker, target *army.Unit)

func (f LogFunc) LogTurn(attacker, target *army.Unit) { f(attacker, target) }

// Multi fans a turn out to several logs, skipping nil entries.
func Multi(logs ...BattleLog) BattleLog {
	return LogFunc(func(attacker, target *army.Unit) {
		for _, l := range logs {
			if l != nil {
				l.LogTurn(attacker, target)
			}
		}
	})
}

// ZerologLog writes one debug line per turn.
type ZerologLog struct {
	Logger zerolog.Logger
}

func NewZerologLog(logger zerolog.Logger) *ZerologLog {
	return &ZerologLog{Logger: logger.With().Str("component", "battle").Logger()}
}

func (l *ZerologLog) LogTurn(attacker, target *army.Unit) {
	ev := l.Logger.Debug().Str("attacker", attacker.Name).Int("attack", attacker.BaseAttack)
	if target == nil {
		ev.Msg("turn passed")
		return
	}
	ev.Str("target", target.Name).
		Int("target_hp", target.Health).
		Bool("target_alive", target.Alive).
		Msg("attack")
}

// Recorder keeps turns as events for the JSON battle report. Events emitted while a
// turn is in progress share that turn's T.
type Recorder struct {
	Events []Event
	turn   int
}

func (r *Recorder) Emit(ev Event) {
	ev.T = r.turn
	r.Events = append(r.Events, ev)
}

func (r *Recorder) LogTurn(attacker, target *army.Unit) {
	defer func() { r.turn++ }()
	payload := map[string]any{
		"attacker": attacker.Name,
		"x":        attacker.X,
		"y":        attacker.Y,
	}
	if target == nil {
		r.Emit(Event{Type: "Pass", Payload: payload})
		return
	}
	payload["target"] = target.Name
	payload["hp"] = target.Health
	r.Emit(Event{Type: "Hit", Payload: payload})
	if !target.Alive {
		r.Emit(Event{Type: "Death", Payload: map[string]any{
			"id": target.Name, "x": target.X, "y": target.Y,
		}})
	}
}
