package model

// ResonanceResult records a triggered two-element combo.
type ResonanceResult struct {
	Name          string  `json:"name"`
	BonusDamage   int     `json:"bonus_damage"`
	StatusChance  float64 `json:"status_chance,omitempty"`
	StatusEffect  CCType  `json:"status_effect,omitempty"`
	StatusApplied bool    `json:"status_applied"`
}

// CombatRound is a single sub-turn entry of the battle log.
type CombatRound struct {
	Turn                int              `json:"turn"`
	AttackerID          string           `json:"attacker_id"`
	DefenderID          string           `json:"defender_id"`
	Action              Action           `json:"action"`
	Damage              int              `json:"damage"`
	Blocked             int              `json:"blocked"`
	Critical            bool             `json:"critical"`
	Evaded              bool             `json:"evaded"`
	WasBlocked          bool             `json:"was_blocked"`
	ElementalMultiplier float64          `json:"elemental_multiplier"`
	Effects             []string         `json:"effects,omitempty"`
	Resonance           *ResonanceResult `json:"resonance,omitempty"`
	StatusApplied       []StatusEffect   `json:"status_applied,omitempty"`
	BuffsApplied        []BuffEffect     `json:"buffs_applied,omitempty"`
	SkippedCC           CCType           `json:"skipped_cc,omitempty"`
	Splash              []int            `json:"splash,omitempty"`
}

// Reward is the loot granted for a battle.
type Reward struct {
	Gold           int64 `json:"gold"`
	TrainingPoints int64 `json:"training_points"`
	SoulShards     int64 `json:"soul_shards"`
	PetExp         int64 `json:"pet_exp"`
	Runes          int64 `json:"runes"`
}

// IsZero reports whether every field is 0.
func (r Reward) IsZero() bool {
	return r == Reward{}
}

// CombatResult is the complete outcome of one battle.
type CombatResult struct {
	WinnerID    string         `json:"winner_id"`
	LoserID     string         `json:"loser_id"`
	Rounds      []CombatRound  `json:"rounds"`
	DamageDealt map[string]int `json:"damage_dealt"`
	FinalHP     map[string]int `json:"final_hp"`
	MaxHP       map[string]int `json:"max_hp"`
	Reward      *Reward        `json:"reward,omitempty"`
}

// TurnsPlayed returns the highest turn number in the log.
func (r *CombatResult) TurnsPlayed() int {
	if len(r.Rounds) == 0 {
		return 0
	}
	return r.Rounds[len(r.Rounds)-1].Turn
}
