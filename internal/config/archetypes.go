package config

import "heroes_ai/internal/army"

type CatalogConfig struct {
	Archetypes []ArchetypeDef `yaml:"archetypes"`
}

type ArchetypeDef struct {
	Name           string             `yaml:"name"`
	Type           string             `yaml:"type"`
	Health         int                `yaml:"health"`
	Attack         int                `yaml:"attack"`
	Cost           int                `yaml:"cost"`
	AttackType     string             `yaml:"attack_type"`
	AttackBonuses  map[string]float64 `yaml:"attack_bonuses"`
	DefenceBonuses map[string]float64 `yaml:"defence_bonuses"`
	Note           string             `yaml:"note"`
}

// Units converts the catalog into archetype units. A definition without a type key
// uses its name as the key.
func (c *CatalogConfig) Units() []*army.Unit {
	if c == nil {
		return nil
	}
	out := make([]*army.Unit, 0, len(c.Archetypes))
	for _, d := range c.Archetypes {
		typeKey := d.Type
		if typeKey == "" {
			typeKey = d.Name
		}
		u := army.NewUnit(d.Name, typeKey, d.Health, d.Attack, d.Cost)
		u.AttackType = d.AttackType
		for k, v := range d.AttackBonuses {
			u.AttackBonuses[k] = v
		}
		for k, v := range d.DefenceBonuses {
			u.DefenceBonuses[k] = v
		}
		out = append(out, u)
	}
	return out
}
