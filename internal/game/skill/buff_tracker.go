package skill

import (
	"log/slog"
	"math"

	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/model"
)

// MaxStacksPerStat is the number of live buffs a target may hold on one stat.
const MaxStacksPerStat = 2

// BuffOutcome explains the result of a buff attempt.
type BuffOutcome string

const (
	BuffApplied    BuffOutcome = "applied"
	BuffCapped     BuffOutcome = "capped"
	BuffStackLimit BuffOutcome = "stack limit"
	BuffNoRoom     BuffOutcome = "no room"
	BuffInvalid    BuffOutcome = "invalid"
)

// BuffRequest describes a single buff attempt.
type BuffRequest struct {
	TargetID   string
	CasterID   string
	Name       string
	Stat       model.StatType
	BaseStat   float64 // target's unbuffed stat
	Amount     float64 // spell base amount before scaling
	CasterInt  float64
	CasterRank string
	Duration   int
}

// BuffAttempt is the result of BuffTracker.Apply.
type BuffAttempt struct {
	Outcome   BuffOutcome
	Requested float64 // scaled bonus before the cap
	Granted   float64
	Effect    model.BuffEffect
}

// Landed reports whether any bonus was applied.
func (a BuffAttempt) Landed() bool {
	return a.Outcome == BuffApplied || a.Outcome == BuffCapped
}

// CalculateBuffBonus scales a base buff amount by caster INT and rank:
// floor(base × (1 + int/100) × rankScaling).
func CalculateBuffBonus(base, casterInt float64, casterRank string) float64 {
	return math.Floor(base * (1 + casterInt/100) * data.RankScaling(casterRank))
}

// StatCap returns the maximum total bonus a stat may receive: floor(base×2) − base.
func StatCap(base float64) float64 {
	return math.Floor(base*2) - base
}

// BuffTracker tracks flat stat buffs for both sides of one battle.
// Not safe for concurrent use.
type BuffTracker struct {
	buffs map[string][]*model.BuffEffect
}

// NewBuffTracker creates an empty tracker.
func NewBuffTracker() *BuffTracker {
	return &BuffTracker{
		buffs: make(map[string][]*model.BuffEffect, 2),
	}
}

// Apply adds a buff to the target.
//
// Rejected when the target already holds MaxStacksPerStat live buffs on the
// stat, or when the stat cap leaves no room. Otherwise the scaled bonus is
// clamped to the remaining room (partial application is reported as BuffCapped).
func (t *BuffTracker) Apply(req BuffRequest) BuffAttempt {
	if !req.Stat.Valid() || req.Duration <= 0 {
		return BuffAttempt{Outcome: BuffInvalid}
	}

	if t.stacks(req.TargetID, req.Stat) >= MaxStacksPerStat {
		slog.Debug("buff rejected: stack limit",
			"stat", req.Stat,
			"target", req.TargetID)
		return BuffAttempt{Outcome: BuffStackLimit}
	}

	bonus := CalculateBuffBonus(req.Amount, req.CasterInt, req.CasterRank)
	if bonus <= 0 || math.IsNaN(bonus) {
		return BuffAttempt{Outcome: BuffInvalid}
	}

	room := StatCap(req.BaseStat) - t.liveBonus(req.TargetID, req.Stat)
	if room <= 0 {
		slog.Debug("buff rejected: stat cap reached",
			"stat", req.Stat,
			"target", req.TargetID,
			"requested", bonus)
		return BuffAttempt{Outcome: BuffNoRoom, Requested: bonus}
	}

	outcome := BuffApplied
	granted := bonus
	if granted > room {
		granted = room
		outcome = BuffCapped
		slog.Debug("buff capped",
			"stat", req.Stat,
			"target", req.TargetID,
			"requested", bonus,
			"granted", granted)
	}

	effect := &model.BuffEffect{
		Stat:           req.Stat,
		FlatBonus:      granted,
		RemainingTurns: req.Duration,
		AppliedBy:      req.CasterID,
		Name:           req.Name,
	}
	t.buffs[req.TargetID] = append(t.buffs[req.TargetID], effect)

	return BuffAttempt{
		Outcome:   outcome,
		Requested: bonus,
		Granted:   granted,
		Effect:    *effect,
	}
}

// BuffedStats derives effective stats from base plus live bonuses.
// The 2× cap is re-applied per stat.
func (t *BuffTracker) BuffedStats(target string, base model.CombatStats) model.CombatStats {
	if len(t.buffs[target]) == 0 {
		return base
	}
	out := base
	for _, stat := range model.AllStats {
		sum := t.liveBonus(target, stat)
		if sum <= 0 {
			continue
		}
		b := base.Get(stat)
		bonus := math.Min(sum, math.Max(StatCap(b), 0))
		out = out.With(stat, b+bonus)
	}
	return out
}

// Active returns a copy of the live buffs on target.
func (t *BuffTracker) Active(target string) []model.BuffEffect {
	var out []model.BuffEffect
	for _, b := range t.buffs[target] {
		if b.RemainingTurns > 0 {
			out = append(out, *b)
		}
	}
	return out
}

// Tick decrements remaining turns of every buff on target and drops expired ones.
// Returns the buffs that expired.
func (t *BuffTracker) Tick(target string) []model.BuffEffect {
	list := t.buffs[target]
	if len(list) == 0 {
		return nil
	}

	var expired []model.BuffEffect
	n := 0
	for _, b := range list {
		b.RemainingTurns--
		if b.RemainingTurns <= 0 {
			expired = append(expired, *b)
			slog.Debug("buff expired", "name", b.Name, "stat", b.Stat, "target", target)
			continue
		}
		list[n] = b
		n++
	}
	t.buffs[target] = list[:n]
	return expired
}

func (t *BuffTracker) stacks(target string, stat model.StatType) int {
	n := 0
	for _, b := range t.buffs[target] {
		if b.Stat == stat && b.RemainingTurns > 0 {
			n++
		}
	}
	return n
}

func (t *BuffTracker) liveBonus(target string, stat model.StatType) float64 {
	sum := 0.0
	for _, b := range t.buffs[target] {
		if b.Stat == stat && b.RemainingTurns > 0 {
			sum += b.FlatBonus
		}
	}
	return sum
}
