package combat

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "heroes_ai/internal/combat"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

type metrics struct {
	rounds  metric.Int64Counter
	turns   metric.Int64Counter
	skipped metric.Int64Counter
}

// newMetrics registers the scheduler counters. Instruments that fail to register are
// left nil and silently ignored.
func newMetrics() *metrics {
	m := meter()
	out := &metrics{}
	out.rounds, _ = m.Int64Counter("combat.rounds",
		metric.WithDescription("Battle rounds started"))
	out.turns, _ = m.Int64Counter("combat.turns",
		metric.WithDescription("Turns taken, including skipped ones"))
	out.skipped, _ = m.Int64Counter("combat.skipped_turns",
		metric.WithDescription("Turns skipped because the unit was dead or had no program"))
	return out
}

func (m *metrics) round(ctx context.Context) {
	if m != nil && m.rounds != nil {
		m.rounds.Add(ctx, 1)
	}
}

func (m *metrics) turn(ctx context.Context) {
	if m != nil && m.turns != nil {
		m.turns.Add(ctx, 1)
	}
}

func (m *metrics) skip(ctx context.Context) {
	if m != nil && m.skipped != nil {
		m.skipped.Add(ctx, 1)
	}
}
