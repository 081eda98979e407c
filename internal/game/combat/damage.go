package combat

import (
	"math"

	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/model"
)

// Damage pipeline constants.
const (
	CritMultiplier  = 3.0
	MaxCritChance   = 0.5
	critLuckDivisor = 40.0

	// Defense above twice the incoming damage is only half as effective.
	drThresholdFactor = 2.0
	drExcessFactor    = 0.5

	hpPerPot           = 8.0
	hpPerLevelFallback = 10.0
)

// MaxHP returns the HP baseline of a combatant:
// floor(raceBaseHP) + floor(rankBaseHP, or level×10 for unknown rank) + floor(Pot×8).
func MaxHP(stats model.CombatStats, level int, race, rank string) int {
	raceHP := math.Floor(data.RaceBaseHP(race))
	rankHP := math.Floor(data.RankBaseHP(rank, float64(level)*hpPerLevelFallback))
	potHP := math.Floor(stats.Pot * hpPerPot)
	return int(raceHP + rankHP + potHP)
}

// CombatantMaxHP is MaxHP applied to a combatant snapshot.
func CombatantMaxHP(c *model.Combatant) int {
	return MaxHP(c.Stats, c.Level, c.Race, c.Rank)
}

// CritChance returns min(luck/40, 0.5).
func CritChance(luck float64) float64 {
	if luck <= 0 || math.IsNaN(luck) {
		return 0
	}
	return math.Min(luck/critLuckDivisor, MaxCritChance)
}

// ApplyDiminishingReturns mitigates incoming damage by def.
//
// Defense up to twice the incoming damage counts fully; the excess counts
// half. Returns 0 when the effective defense covers the hit, otherwise
// floor(incoming − effectiveDef). Non-positive defense passes damage through.
//
// Example:
//
//	ApplyDiminishingReturns(10, 50)  // 40
//	ApplyDiminishingReturns(200, 50) // 0: effective def = 100 + 100×0.5
func ApplyDiminishingReturns(def, incoming float64) float64 {
	if def <= 0 {
		return incoming
	}
	threshold := incoming * drThresholdFactor
	effective := def
	if def > threshold {
		effective = threshold + (def-threshold)*drExcessFactor
	}
	if effective >= incoming {
		return 0
	}
	return math.Floor(incoming - effective)
}
