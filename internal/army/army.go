package army

// Army is an ordered roster. Order only matters for display and as a tie-break.
type Army struct {
	Units  []*Unit
	Points int
}

func New(units []*Unit, points int) *Army {
	return &Army{Units: units, Points: points}
}

func (a *Army) Add(u *Unit) {
	if u == nil {
		return
	}
	a.Units = append(a.Units, u)
}

func (a *Army) HasAlive() bool {
	if a == nil {
		return false
	}
	for _, u := range a.Units {
		if u.IsAlive() {
			return true
		}
	}
	return false
}

// Alive returns the living units in roster order.
func (a *Army) Alive() []*Unit {
	if a == nil {
		return nil
	}
	var out []*Unit
	for _, u := range a.Units {
		if u.IsAlive() {
			out = append(out, u)
		}
	}
	return out
}

func (a *Army) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Units)
}

// CountByType tallies roster entries per type key, dead or alive.
func (a *Army) CountByType() map[string]int {
	out := map[string]int{}
	if a == nil {
		return out
	}
	for _, u := range a.Units {
		if u != nil {
			out[u.UnitType]++
		}
	}
	return out
}

// TotalHealth sums the health of living units.
func (a *Army) TotalHealth() int {
	total := 0
	for _, u := range a.Alive() {
		total += u.Health
	}
	return total
}
