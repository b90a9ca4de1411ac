package preset

import (
	"strconv"
	"strings"

	"heroes_ai/internal/army"
)

// DefaultMaxPerType is the per type key instance cap.
const DefaultMaxPerType = 11

// Factory builds the index-th (1-based) instance of an archetype.
type Factory func(base *army.Unit, index int) *army.Unit

// Instantiate names instances "<name>_<index>", falling back to the type key when the
// archetype has no name.
func Instantiate(base *army.Unit, index int) *army.Unit {
	name := base.Name
	if strings.TrimSpace(name) == "" {
		name = base.UnitType
	}
	return base.Derive(name + "_" + strconv.Itoa(index))
}

type Generator struct {
	MaxPerType int
	Factory    Factory
}

func NewGenerator(maxPerType int) *Generator {
	if maxPerType <= 0 {
		maxPerType = DefaultMaxPerType
	}
	return &Generator{MaxPerType: maxPerType, Factory: Instantiate}
}

// Generate builds a roster with the default cap and factory.
func Generate(archetypes []*army.Unit, maxPoints int) *army.Army {
	return NewGenerator(DefaultMaxPerType).Generate(archetypes, maxPoints)
}

// Generate spends at most maxPoints on archetypes in rank order: a bulk pass takes as
// many of each as cap and budget allow, then fill sweeps add single units until a sweep
// buys nothing or the budget is gone.
func (g *Generator) Generate(archetypes []*army.Unit, maxPoints int) *army.Army {
	if len(archetypes) == 0 || maxPoints <= 0 {
		return army.New(nil, 0)
	}
	factory := g.Factory
	if factory == nil {
		factory = Instantiate
	}

	ranked := Rank(archetypes)
	b := newBudget(maxPoints)
	counter := newTypeCounter(g.MaxPerType)
	var chosen []*army.Unit

	take := func(base *army.Unit, n int) {
		start := counter.count(base.UnitType) + 1
		for i := 0; i < n; i++ {
			chosen = append(chosen, factory(base, start+i))
			b.spend(base.Cost)
		}
		counter.add(base.UnitType, n)
	}

	for _, base := range ranked {
		n := min(counter.remaining(base.UnitType), b.maxAffordable(base.Cost))
		if n > 0 {
			take(base, n)
		}
		if b.exhausted() {
			break
		}
	}

	for added := true; added && !b.exhausted(); {
		added = false
		for _, base := range ranked {
			if !b.canAfford(base.Cost) || !counter.canAdd(base.UnitType) {
				continue
			}
			take(base, 1)
			added = true
			if b.exhausted() {
				break
			}
		}
	}

	return army.New(chosen, b.spent())
}
