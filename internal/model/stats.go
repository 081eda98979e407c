package model

import "math"

// StatType names a single CombatStats field.
type StatType string

const (
	StatStr  StatType = "str"
	StatDef  StatType = "def"
	StatSpd  StatType = "spd"
	StatInt  StatType = "int"
	StatLuck StatType = "luck"
	StatPot  StatType = "pot"
)

// AllStats lists every stat in declaration order.
var AllStats = []StatType{StatStr, StatDef, StatSpd, StatInt, StatLuck, StatPot}

// Valid reports whether s names a known stat.
func (s StatType) Valid() bool {
	switch s {
	case StatStr, StatDef, StatSpd, StatInt, StatLuck, StatPot:
		return true
	default:
		return false
	}
}

// CombatStats is the numeric stat block of a combatant.
// All fields are non-negative by convention.
type CombatStats struct {
	Str  float64 `json:"str" yaml:"str"`
	Def  float64 `json:"def" yaml:"def"`
	Spd  float64 `json:"spd" yaml:"spd"`
	Int  float64 `json:"int" yaml:"int"`
	Luck float64 `json:"luck" yaml:"luck"`
	Pot  float64 `json:"pot" yaml:"pot"`
}

// DefaultStats holds the values substituted for malformed (NaN / ±Inf) stats.
var DefaultStats = CombatStats{
	Str:  10,
	Def:  5,
	Spd:  10,
	Int:  10,
	Luck: 5,
	Pot:  10,
}

// Get returns the value of a single stat. Unknown stats return 0.
func (s CombatStats) Get(stat StatType) float64 {
	switch stat {
	case StatStr:
		return s.Str
	case StatDef:
		return s.Def
	case StatSpd:
		return s.Spd
	case StatInt:
		return s.Int
	case StatLuck:
		return s.Luck
	case StatPot:
		return s.Pot
	default:
		return 0
	}
}

// With returns a copy of s with one stat replaced. Unknown stats leave s unchanged.
func (s CombatStats) With(stat StatType, v float64) CombatStats {
	switch stat {
	case StatStr:
		s.Str = v
	case StatDef:
		s.Def = v
	case StatSpd:
		s.Spd = v
	case StatInt:
		s.Int = v
	case StatLuck:
		s.Luck = v
	case StatPot:
		s.Pot = v
	}
	return s
}

// Add returns the field-wise sum of s and o.
func (s CombatStats) Add(o CombatStats) CombatStats {
	return CombatStats{
		Str:  s.Str + o.Str,
		Def:  s.Def + o.Def,
		Spd:  s.Spd + o.Spd,
		Int:  s.Int + o.Int,
		Luck: s.Luck + o.Luck,
		Pot:  s.Pot + o.Pot,
	}
}

// Sanitize returns a copy safe for arithmetic: NaN and ±Inf are replaced by
// DefaultStats, negative values are clamped to 0.
func (s CombatStats) Sanitize() CombatStats {
	for _, stat := range AllStats {
		s = s.With(stat, SafeStat(s.Get(stat), DefaultStats.Get(stat)))
	}
	return s
}

// SafeStat coerces a single stat value. NaN / ±Inf become def, negatives become 0.
func SafeStat(v, def float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	if v < 0 {
		return 0
	}
	return v
}
