package preset

import (
	"sort"

	"heroes_ai/internal/army"
)

// Compare orders archetypes most preferred first: attack per cost, then health per cost,
// then the cheaper one, then type key. Ratios are compared by cross-multiplying in int64.
// It returns a negative number when a ranks ahead of b.
func Compare(a, b *army.Unit) int {
	costA := int64(max(1, a.Cost))
	costB := int64(max(1, b.Cost))

	atkA := int64(a.BaseAttack) * costB
	atkB := int64(b.BaseAttack) * costA
	if atkA != atkB {
		if atkA > atkB {
			return -1
		}
		return 1
	}

	hpA := int64(a.Health) * costB
	hpB := int64(b.Health) * costA
	if hpA != hpB {
		if hpA > hpB {
			return -1
		}
		return 1
	}

	if costA != costB {
		if costA < costB {
			return -1
		}
		return 1
	}

	switch {
	case a.UnitType < b.UnitType:
		return -1
	case a.UnitType > b.UnitType:
		return 1
	}
	return 0
}

// Rank returns the purchasable archetypes (cost > 0) in preference order.
func Rank(archetypes []*army.Unit) []*army.Unit {
	ranked := make([]*army.Unit, 0, len(archetypes))
	for _, u := range archetypes {
		if u == nil || u.Cost <= 0 {
			continue
		}
		ranked = append(ranked, u)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return Compare(ranked[i], ranked[j]) < 0
	})
	return ranked
}
