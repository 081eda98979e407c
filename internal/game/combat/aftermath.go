package combat

import (
	"math"

	"github.com/udisondev/battlecore/internal/model"
)

// Post-battle tuning.
const (
	MaxWeaknessSeverity = 0.9

	deathPenaltyRate        = 0.10
	deathPenaltyCapPerLevel = 100
)

// ApplyWeakness returns stats with Str, Def, Spd and Int reduced by severity
// (clamped to [0, MaxWeaknessSeverity]). Luck and Pot are untouched.
func ApplyWeakness(stats model.CombatStats, severity float64) model.CombatStats {
	if math.IsNaN(severity) || severity < 0 {
		severity = 0
	}
	severity = math.Min(severity, MaxWeaknessSeverity)
	keep := 1 - severity

	out := stats.Sanitize()
	out.Str *= keep
	out.Def *= keep
	out.Spd *= keep
	out.Int *= keep
	return out
}

// DeathPenalty returns the gold lost on defeat: 10% of gold, at most level×100.
func DeathPenalty(gold int64, level int) int64 {
	if gold <= 0 {
		return 0
	}
	loss := int64(math.Floor(float64(gold) * deathPenaltyRate))
	limit := int64(max(level, 1)) * deathPenaltyCapPerLevel
	return min(loss, limit)
}
