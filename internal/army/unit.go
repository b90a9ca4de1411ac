package army

import (
	"fmt"
	"math"
)

// Cell is a grid coordinate.
type Cell struct{ X, Y int }

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

type Unit struct {
	Name       string
	UnitType   string
	Health     int
	BaseAttack int
	Cost       int
	AttackType string

	// Bonuses are opaque to the builder and the scheduler; only engines read them.
	AttackBonuses  map[string]float64
	DefenceBonuses map[string]float64

	X, Y  int
	Alive bool

	Program Program
}

func NewUnit(name, unitType string, health, attack, cost int) *Unit {
	return &Unit{
		Name: name, UnitType: unitType,
		Health: health, BaseAttack: attack, Cost: cost,
		AttackBonuses:  map[string]float64{},
		DefenceBonuses: map[string]float64{},
		Alive:          health > 0,
	}
}

func (u *Unit) Pos() Cell { return Cell{X: u.X, Y: u.Y} }

func (u *Unit) MoveTo(c Cell) { u.X, u.Y = c.X, c.Y }

func (u *Unit) IsAlive() bool { return u != nil && u.Alive }

// TakeDamage lowers health, clamping at zero, and clears Alive when nothing is left.
func (u *Unit) TakeDamage(amount int) {
	if u == nil || amount <= 0 {
		return
	}
	u.Health -= amount
	if u.Health <= 0 {
		u.Health = 0
		u.Alive = false
	}
}

// DamageAgainst computes the strike of u on target using both sides' bonus tables.
func (u *Unit) DamageAgainst(target *Unit) int {
	if u == nil || target == nil || u.BaseAttack <= 0 {
		return 0
	}
	dmg := float64(u.BaseAttack) * (1.0 + u.AttackBonuses[target.UnitType]) * (1.0 - target.DefenceBonuses[u.AttackType])
	dmg = math.Round(dmg)
	if dmg < 1 {
		dmg = 1
	}
	return int(dmg)
}

func (u *Unit) String() string {
	if u == nil {
		return "<none>"
	}
	return fmt.Sprintf("%s(%s) hp=%d atk=%d pos=(%d,%d)", u.Name, u.UnitType, u.Health, u.BaseAttack, u.X, u.Y)
}

// Derive builds a fresh instance of u under a new name. Stats, attack type and bonus
// tables are copied; program and position start out neutral.
func (u *Unit) Derive(name string) *Unit {
	return &Unit{
		Name:           name,
		UnitType:       u.UnitType,
		Health:         u.Health,
		BaseAttack:     u.BaseAttack,
		Cost:           u.Cost,
		AttackType:     u.AttackType,
		AttackBonuses:  cloneBonuses(u.AttackBonuses),
		DefenceBonuses: cloneBonuses(u.DefenceBonuses),
		Alive:          u.Health > 0,
	}
}

func cloneBonuses(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
