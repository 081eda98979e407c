package model

// ElementalAffinity is the ordered element list a combatant attacks with,
// plus a flat elemental power bonus.
type ElementalAffinity struct {
	Elements []string `json:"elements,omitempty" yaml:"elements"`
	Power    float64  `json:"power,omitempty" yaml:"power"`
}

// SpellInfo describes the single spell a combatant may cast.
type SpellInfo struct {
	Name     string        `json:"name" yaml:"name"`
	Power    float64       `json:"power" yaml:"power"`
	Element  string        `json:"element,omitempty" yaml:"element"`
	Category SpellCategory `json:"category" yaml:"category"`

	// CC spells
	CCType CCType `json:"cc_type,omitempty" yaml:"cc_type"`
	// Duration is the CC duration for cc spells and the buff duration for buff spells.
	Duration int `json:"duration,omitempty" yaml:"duration"`

	// Buff spells
	BuffStat   StatType `json:"buff_stat,omitempty" yaml:"buff_stat"`
	BuffAmount float64  `json:"buff_amount,omitempty" yaml:"buff_amount"`

	RankMultiplier float64 `json:"rank_multiplier,omitempty" yaml:"rank_multiplier"` // 0 = 1.0
	Targets        int     `json:"targets,omitempty" yaml:"targets"`                 // aoe only
}

const (
	defaultBuffDuration = 3
	defaultAoETargets   = 3
)

// EffectiveRankMultiplier returns RankMultiplier, or 1.0 when unset or malformed.
func (s *SpellInfo) EffectiveRankMultiplier() float64 {
	m := SafeStat(s.RankMultiplier, 1)
	if m == 0 {
		return 1
	}
	return m
}

// EffectiveBuffDuration returns Duration, or 3 turns when unset.
func (s *SpellInfo) EffectiveBuffDuration() int {
	if s.Duration <= 0 {
		return defaultBuffDuration
	}
	return s.Duration
}

// EffectiveTargets returns the number of targets an aoe spell hits (primary included).
// Unset means 3; 1 means no splash.
func (s *SpellInfo) EffectiveTargets() int {
	if s.Targets <= 0 {
		return defaultAoETargets
	}
	return s.Targets
}

// Combatant is an immutable per-battle snapshot.
// Race, rank and equipment effects are already folded into Stats.
type Combatant struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Stats      CombatStats       `json:"stats"`
	Race       string            `json:"race,omitempty"`
	Rank       string            `json:"rank,omitempty"`
	Affinity   ElementalAffinity `json:"affinity"`
	Immunities []string          `json:"immunities,omitempty"`
	Level      int               `json:"level"`
	IsPlayer   bool              `json:"is_player"`
	Spell      *SpellInfo        `json:"spell,omitempty"`
}

// HasSpell reports whether the combatant can cast.
func (c *Combatant) HasSpell() bool {
	return c.Spell != nil
}

// Sanitized returns a copy with coerced stats and elemental power.
// Slices are shared: callers must treat them as read-only.
func (c Combatant) Sanitized() Combatant {
	c.Stats = c.Stats.Sanitize()
	c.Affinity.Power = SafeStat(c.Affinity.Power, 0)
	if c.Level < 0 {
		c.Level = 0
	}
	if c.Spell != nil {
		sp := *c.Spell
		sp.Power = SafeStat(sp.Power, 1)
		sp.BuffAmount = SafeStat(sp.BuffAmount, 0)
		c.Spell = &sp
	}
	return c
}
