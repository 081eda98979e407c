package combat

import (
	"fmt"
	"math"

	"github.com/udisondev/battlecore/internal/game/element"
	"github.com/udisondev/battlecore/internal/game/skill"
	"github.com/udisondev/battlecore/internal/model"
	"github.com/udisondev/battlecore/internal/rng"
)

// Trick and AoE tuning.
const (
	trickBaseChance    = 0.5
	trickStrFactor     = 0.6
	trickSuccessFactor = 1.5
	trickFailFactor    = 0.3
	trickStunChance    = 0.3
	trickStunDuration  = 1

	aoeFalloff = 0.8
)

// Resolver turns one attacker/defender action pair into a CombatRound.
// It reads and mutates the battle's CC and buff trackers.
type Resolver struct {
	src   rng.Source
	cc    *skill.CCTracker
	buffs *skill.BuffTracker
}

// NewResolver creates a resolver bound to one battle's trackers.
func NewResolver(src rng.Source, cc *skill.CCTracker, buffs *skill.BuffTracker) *Resolver {
	return &Resolver{src: src, cc: cc, buffs: buffs}
}

// hit is the intermediate state of a damage computation.
type hit struct {
	round    *model.CombatRound
	atk, def *model.Combatant
	as, ds   model.CombatStats
}

// Resolve resolves action of attacker against defender. reaction is the
// defender's defend/dodge stance for this sub-turn (empty for none).
// Both sides use buffed stats.
func (r *Resolver) Resolve(turn int, attacker, defender *model.Combatant, action, reaction model.Action) model.CombatRound {
	round := model.CombatRound{
		Turn:                turn,
		AttackerID:          attacker.ID,
		DefenderID:          defender.ID,
		Action:              action,
		ElementalMultiplier: element.Neutral,
	}
	h := &hit{
		round: &round,
		atk:   attacker,
		def:   defender,
		as:    r.buffs.BuffedStats(attacker.ID, attacker.Stats),
		ds:    r.buffs.BuffedStats(defender.ID, defender.Stats),
	}
	// Captured before this hit can freeze the target.
	frozen := r.cc.DamageMultiplier(defender.ID)

	var dmg int
	switch action {
	case model.ActionAttack:
		dmg = r.resolveAttack(h, reaction)
	case model.ActionSpell:
		dmg = r.resolveSpell(h, reaction)
	case model.ActionTrick:
		dmg = r.resolveTrick(h)
	case model.ActionDefend:
		h.note("%s braces for impact", attacker.Name)
	case model.ActionDodge:
		h.note("%s prepares to dodge", attacker.Name)
	default:
		round.Action = model.ActionAttack
		h.note("unknown action %q, attacking instead", action)
		dmg = r.resolveAttack(h, reaction)
	}

	if dmg > 0 && frozen != 1.0 {
		dmg = int(math.Floor(float64(dmg) * frozen))
		h.note("%s is frozen and takes %d%% more damage", defender.Name, int(math.Round((frozen-1)*100)))
	}
	round.Damage = max(dmg, 0)
	return round
}

func (r *Resolver) resolveAttack(h *hit, reaction model.Action) int {
	base := h.as.Str
	raw := r.applyCrit(h, base)
	raw = r.applyElements(h, nil, raw, base)
	return r.applyReaction(h, raw, reaction)
}

func (r *Resolver) resolveSpell(h *hit, reaction model.Action) int {
	spell := h.atk.Spell
	if spell == nil {
		h.round.Action = model.ActionAttack
		h.note("%s knows no spell and attacks instead", h.atk.Name)
		return r.resolveAttack(h, reaction)
	}

	switch spell.Category {
	case model.SpellBuff:
		r.castBuff(h, spell)
		return 0
	case model.SpellHeal:
		// HP restoration is not modeled; the cast is logged only.
		h.note("%s casts %s (healing has no effect in battle)", h.atk.Name, spell.Name)
		return 0
	case model.SpellCC:
		dmg := r.spellDamage(h, spell)
		if spell.CCType.Valid() {
			r.tryCC(h, spell.CCType, spell.Duration)
		} else {
			h.note("%s has no valid crowd-control type", spell.Name)
		}
		return dmg
	case model.SpellAoE:
		dmg := r.spellDamage(h, spell)
		targets := spell.EffectiveTargets()
		splash := make([]int, 0, targets-1)
		for i := 1; i < targets; i++ {
			splash = append(splash, int(math.Floor(float64(dmg)*math.Pow(aoeFalloff, float64(i)))))
		}
		h.round.Splash = splash
		h.note("%s engulfs %d targets", spell.Name, targets)
		return dmg
	default:
		return r.spellDamage(h, spell)
	}
}

// spellDamage computes INT × power × rank multiplier with crit, elements and
// resonance. Defense and reactions are ignored.
func (r *Resolver) spellDamage(h *hit, spell *model.SpellInfo) int {
	base := h.as.Int * spell.Power * spell.EffectiveRankMultiplier()
	h.note("%s casts %s", h.atk.Name, spell.Name)
	raw := r.applyCrit(h, base)
	raw = r.applyElements(h, spell, raw, base)
	return int(math.Floor(math.Max(raw, 0)))
}

func (r *Resolver) castBuff(h *hit, spell *model.SpellInfo) {
	res := r.buffs.Apply(skill.BuffRequest{
		TargetID:   h.atk.ID,
		CasterID:   h.atk.ID,
		Name:       spell.Name,
		Stat:       spell.BuffStat,
		BaseStat:   h.atk.Stats.Get(spell.BuffStat),
		Amount:     spell.BuffAmount,
		CasterInt:  h.as.Int,
		CasterRank: h.atk.Rank,
		Duration:   spell.EffectiveBuffDuration(),
	})

	switch res.Outcome {
	case skill.BuffApplied:
		h.note("%s gains +%g %s from %s", h.atk.Name, res.Granted, spell.BuffStat, spell.Name)
	case skill.BuffCapped:
		h.note("%s gains +%g %s from %s (capped from %g)", h.atk.Name, res.Granted, spell.BuffStat, spell.Name, res.Requested)
	case skill.BuffStackLimit:
		h.note("%s fizzles: %s already stacked twice", spell.Name, spell.BuffStat)
	case skill.BuffNoRoom:
		h.note("%s fizzles: %s is at its cap", spell.Name, spell.BuffStat)
	default:
		h.note("%s fizzles", spell.Name)
	}
	if res.Landed() {
		h.round.BuffsApplied = append(h.round.BuffsApplied, res.Effect)
	}
}

func (r *Resolver) resolveTrick(h *hit) int {
	chance := trickBaseChance + h.as.Luck/100
	strBase := h.as.Str * trickStrFactor

	if r.src.Float64() < chance {
		h.note("%s's trick succeeds", h.atk.Name)
		dmg := int(math.Floor(trickSuccessFactor * strBase))
		if r.src.Float64() < trickStunChance {
			r.tryCC(h, model.CCStun, trickStunDuration)
		}
		return dmg
	}

	h.note("%s's trick backfires", h.atk.Name)
	return int(math.Floor(trickFailFactor * strBase))
}

func (r *Resolver) applyCrit(h *hit, raw float64) float64 {
	if r.src.Float64() < CritChance(h.as.Luck) {
		h.round.Critical = true
		h.note("critical hit")
		return raw * CritMultiplier
	}
	return raw
}

// applyElements applies the elemental multiplier (plus flat elemental power)
// and, for multi-element attacks, the first matching resonance combo.
// base is the pre-crit damage the resonance bonus is computed from.
func (r *Resolver) applyElements(h *hit, spell *model.SpellInfo, raw, base float64) float64 {
	elems := element.AttackElements(h.atk, spell)
	if len(elems) == 0 {
		return raw
	}

	mult := element.CalculateModifier(elems, h.def.Affinity.Elements, h.def.Immunities)
	h.round.ElementalMultiplier = mult
	if mult != element.Neutral {
		h.note("%s", element.Label(mult))
	}
	if mult == element.Immune {
		return 0
	}
	raw = (raw + h.atk.Affinity.Power) * mult

	combo, ok := element.FindResonance(elems)
	if !ok {
		return raw
	}
	bonus := math.Floor(base * combo.DamageBonus)
	res := &model.ResonanceResult{
		Name:         combo.Name,
		BonusDamage:  int(bonus),
		StatusChance: combo.StatusChance,
		StatusEffect: model.CCType(combo.StatusEffect),
	}
	h.round.Resonance = res
	h.note("resonance: %s (+%d)", combo.Name, int(bonus))

	if combo.StatusEffect != "" && r.src.Float64() < combo.StatusChance {
		res.StatusApplied = r.tryCC(h, model.CCType(combo.StatusEffect), combo.StatusDuration)
	}
	return raw + bonus
}

// applyReaction applies the defender's stance and mitigation to a physical hit.
func (r *Resolver) applyReaction(h *hit, raw float64, reaction model.Action) int {
	ds, as := h.ds, h.as

	switch reaction {
	case model.ActionDodge:
		if ds.Spd > as.Spd {
			h.round.Evaded = true
			h.note("%s evades", h.def.Name)
			return 0
		}
		if ds.Spd > ds.Def {
			h.note("%s dodged past defense but still hit", h.def.Name)
			return int(math.Floor(raw))
		}
		return int(ApplyDiminishingReturns(ds.Def, raw))

	case model.ActionDefend:
		if ds.Def >= raw {
			h.round.WasBlocked = true
			h.round.Blocked = int(math.Floor(raw))
			h.note("%s blocks the blow", h.def.Name)
			return 0
		}
		blocked := math.Floor(ds.Def)
		h.round.Blocked = int(blocked)
		h.note("%s blocks %d", h.def.Name, int(blocked))
		return int(ApplyDiminishingReturns(ds.Def, raw-blocked))

	default:
		return int(ApplyDiminishingReturns(ds.Def, raw))
	}
}

// tryCC routes a status attempt through the CC tracker and logs the outcome.
func (r *Resolver) tryCC(h *hit, ccType model.CCType, duration int) bool {
	res := r.cc.Apply(skill.CCRequest{
		TargetID:     h.def.ID,
		CasterID:     h.atk.ID,
		Type:         ccType,
		BaseDuration: duration,
		CasterInt:    h.as.Int,
		TargetInt:    h.ds.Int,
		TargetLuck:   h.ds.Luck,
	})

	switch res.Reason {
	case skill.CCApplied:
		h.round.StatusApplied = append(h.round.StatusApplied, res.Effect)
		h.note("%s is %s for %d turn(s)", h.def.Name, pastTense(ccType), res.Duration)
	case skill.CCResisted:
		h.note("%s resists %s", h.def.Name, ccType)
	case skill.CCAlreadyAffected:
		h.note("%s is already under crowd control", h.def.Name)
	}
	return res.Applied
}

func (h *hit) note(format string, args ...any) {
	h.round.Effects = append(h.round.Effects, fmt.Sprintf(format, args...))
}

func pastTense(c model.CCType) string {
	switch c {
	case model.CCStun:
		return "stunned"
	case model.CCFreeze:
		return "frozen"
	case model.CCSilence:
		return "silenced"
	default:
		return string(c)
	}
}
