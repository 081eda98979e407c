package model

// Action is what a combatant does on its turn.
type Action string

const (
	ActionAttack Action = "attack"
	ActionSpell  Action = "spell"
	ActionTrick  Action = "trick"
	ActionDefend Action = "defend"
	ActionDodge  Action = "dodge"
)

// IsReaction reports whether the action only matters as a defensive reaction.
func (a Action) IsReaction() bool {
	return a == ActionDefend || a == ActionDodge
}

// CCType is a crowd-control effect kind.
type CCType string

const (
	CCNone    CCType = ""
	CCStun    CCType = "stun"
	CCFreeze  CCType = "freeze"
	CCSilence CCType = "silence"
)

// Valid reports whether c is one of stun, freeze, silence.
func (c CCType) Valid() bool {
	return c == CCStun || c == CCFreeze || c == CCSilence
}

// Disables reports whether the effect skips the holder's turn.
func (c CCType) Disables() bool {
	return c == CCStun || c == CCFreeze
}

// SpellCategory decides how a spell is resolved.
type SpellCategory string

const (
	SpellDamage SpellCategory = "damage"
	SpellAoE    SpellCategory = "aoe"
	SpellCC     SpellCategory = "cc"
	SpellBuff   SpellCategory = "buff"
	SpellHeal   SpellCategory = "heal"
)

// Valid reports whether c is a known category. Empty means damage.
func (c SpellCategory) Valid() bool {
	switch c {
	case "", SpellDamage, SpellAoE, SpellCC, SpellBuff, SpellHeal:
		return true
	}
	return false
}
