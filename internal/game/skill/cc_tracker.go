package skill

import (
	"log/slog"
	"math"

	"github.com/udisondev/battlecore/internal/model"
	"github.com/udisondev/battlecore/internal/rng"
)

const (
	// MaxResistChance caps the probability of a CC landing.
	MaxResistChance = 0.85

	// FreezeDamageMultiplier is applied to every hit a frozen target receives.
	FreezeDamageMultiplier = 1.5

	diminishFactor = 0.5
)

// CCReason explains the outcome of a CC attempt.
type CCReason string

const (
	CCApplied         CCReason = "applied"
	CCAlreadyAffected CCReason = "already affected"
	CCResisted        CCReason = "resisted"
	CCInvalid         CCReason = "invalid"
)

// CCRequest describes a single CC attempt. Stats are the buffed values.
type CCRequest struct {
	TargetID     string
	CasterID     string
	Type         model.CCType
	BaseDuration int
	CasterInt    float64
	TargetInt    float64
	TargetLuck   float64
}

// CCAttempt is the result of CCTracker.Apply.
type CCAttempt struct {
	Applied  bool
	Reason   CCReason
	Chance   float64
	Duration int
	Effect   model.StatusEffect
}

// CCTracker tracks stun / freeze / silence for both sides of one battle.
//
// Rules:
//   - a target holds at most one live effect; any new attempt is rejected
//   - success chance = min(casterInt / max(1, targetInt+targetLuck), 0.85)
//   - duration = max(1, round(base × 0.5^count)), where count is the number of
//     CCs that landed on the target so far in this battle (never decays)
//
// Not safe for concurrent use: a tracker is owned by a single battle.
type CCTracker struct {
	src     rng.Source
	effects map[string][]*model.StatusEffect
	counts  map[string]int
}

// NewCCTracker creates an empty tracker drawing resistance rolls from src.
func NewCCTracker(src rng.Source) *CCTracker {
	return &CCTracker{
		src:     src,
		effects: make(map[string][]*model.StatusEffect, 2),
		counts:  make(map[string]int, 2),
	}
}

// ResistChance returns the probability that a CC lands.
func ResistChance(casterInt, targetInt, targetLuck float64) float64 {
	denom := targetInt + targetLuck
	if denom < 1 || math.IsNaN(denom) {
		denom = 1
	}
	chance := casterInt / denom
	if math.IsNaN(chance) || chance < 0 {
		return 0
	}
	return math.Min(chance, MaxResistChance)
}

// DiminishedDuration returns the duration of the (count+1)-th CC on a target.
func DiminishedDuration(base, count int) int {
	d := int(math.Round(float64(base) * math.Pow(diminishFactor, float64(count))))
	return max(1, d)
}

// Apply attempts to put a CC on the target.
// The RNG is consumed only when the attempt passes validation and exclusivity.
func (t *CCTracker) Apply(req CCRequest) CCAttempt {
	if !req.Type.Valid() || req.BaseDuration <= 0 {
		return CCAttempt{Reason: CCInvalid}
	}

	if _, ok := t.Active(req.TargetID); ok {
		return CCAttempt{Reason: CCAlreadyAffected}
	}

	chance := ResistChance(req.CasterInt, req.TargetInt, req.TargetLuck)
	if t.src.Float64() >= chance {
		slog.Debug("cc resisted",
			"type", req.Type,
			"target", req.TargetID,
			"chance", chance)
		return CCAttempt{Reason: CCResisted, Chance: chance}
	}

	count := t.counts[req.TargetID]
	duration := DiminishedDuration(req.BaseDuration, count)
	t.counts[req.TargetID] = count + 1

	effect := &model.StatusEffect{
		CCType:         req.Type,
		RemainingTurns: duration,
		AppliedBy:      req.CasterID,
	}
	t.effects[req.TargetID] = append(t.effects[req.TargetID], effect)

	slog.Debug("cc applied",
		"type", req.Type,
		"target", req.TargetID,
		"duration", duration,
		"consecutive", count+1)

	return CCAttempt{
		Applied:  true,
		Reason:   CCApplied,
		Chance:   chance,
		Duration: duration,
		Effect:   *effect,
	}
}

// Active returns the live effect on target, if any.
func (t *CCTracker) Active(target string) (model.StatusEffect, bool) {
	for _, e := range t.effects[target] {
		if e.RemainingTurns > 0 {
			return *e, true
		}
	}
	return model.StatusEffect{}, false
}

// IsDisabled reports whether the target skips its turn (stun or freeze).
func (t *CCTracker) IsDisabled(target string) (model.CCType, bool) {
	e, ok := t.Active(target)
	if !ok || !e.CCType.Disables() {
		return model.CCNone, false
	}
	return e.CCType, true
}

// IsSilenced reports whether the target cannot cast.
func (t *CCTracker) IsSilenced(target string) bool {
	e, ok := t.Active(target)
	return ok && e.CCType == model.CCSilence
}

// DamageMultiplier returns FreezeDamageMultiplier for a frozen target, 1.0 otherwise.
func (t *CCTracker) DamageMultiplier(target string) float64 {
	if e, ok := t.Active(target); ok && e.CCType == model.CCFreeze {
		return FreezeDamageMultiplier
	}
	return 1.0
}

// ConsecutiveCount returns how many CCs have landed on target this battle.
func (t *CCTracker) ConsecutiveCount(target string) int {
	return t.counts[target]
}

// Effects returns a copy of every tracked effect on target.
func (t *CCTracker) Effects(target string) []model.StatusEffect {
	list := t.effects[target]
	out := make([]model.StatusEffect, len(list))
	for i, e := range list {
		out[i] = *e
	}
	return out
}

// Tick decrements every effect on target by one turn and purges those at 0.
// Returns the effects that expired.
func (t *CCTracker) Tick(target string) []model.StatusEffect {
	list := t.effects[target]
	if len(list) == 0 {
		return nil
	}

	var expired []model.StatusEffect
	n := 0
	for _, e := range list {
		e.RemainingTurns--
		if e.RemainingTurns <= 0 {
			expired = append(expired, *e)
			slog.Debug("cc expired", "type", e.CCType, "target", target)
			continue
		}
		list[n] = e
		n++
	}
	t.effects[target] = list[:n]
	return expired
}
