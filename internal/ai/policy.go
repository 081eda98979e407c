package ai

import (
	"log/slog"

	"github.com/udisondev/battlecore/internal/model"
	"github.com/udisondev/battlecore/internal/rng"
)

// Decision thresholds. Every branch compares against the same single roll.
const (
	LowHPRatio   = 0.30
	DefendChance = 0.40
	SpellChance  = 0.35
	DodgeMinSpd  = 30.0
	DodgeChance  = 0.20
	TrickMinLuck = 25.0
	TrickChance  = 0.25
)

// Situation is what the policy sees when choosing an action.
type Situation struct {
	Self     *model.Combatant
	Stats    model.CombatStats // buffed stats for this round
	HP       int
	MaxHP    int
	Silenced bool
}

// Policy picks one action per combatant per round.
type Policy struct {
	src rng.Source
}

// NewPolicy creates a policy drawing its rolls from src.
func NewPolicy(src rng.Source) *Policy {
	return &Policy{src: src}
}

// Choose draws one roll and returns the first matching action:
// low HP → defend, caster → spell, fast → dodge, lucky → trick, else attack.
func (p *Policy) Choose(s Situation) model.Action {
	roll := p.src.Float64()
	action := decide(s, roll)

	if IsDebugEnabled() {
		slog.Debug("ai decision",
			"combatant", s.Self.ID,
			"roll", roll,
			"hp", s.HP,
			"max_hp", s.MaxHP,
			"action", action)
	}
	return action
}

func decide(s Situation, roll float64) model.Action {
	st := s.Stats

	ratio := 0.0
	if s.MaxHP > 0 {
		ratio = float64(s.HP) / float64(s.MaxHP)
	}

	switch {
	case ratio < LowHPRatio && roll < DefendChance:
		return model.ActionDefend
	case s.Self.HasSpell() && st.Int > st.Str && !s.Silenced && roll < SpellChance:
		return model.ActionSpell
	case st.Spd > DodgeMinSpd && roll < DodgeChance:
		return model.ActionDodge
	case st.Luck > TrickMinLuck && roll < TrickChance:
		return model.ActionTrick
	default:
		return model.ActionAttack
	}
}
