package model

// StatusEffect is a live crowd-control effect on a combatant.
type StatusEffect struct {
	CCType         CCType `json:"cc_type"`
	RemainingTurns int    `json:"remaining_turns"`
	AppliedBy      string `json:"applied_by"`
}

// BuffEffect is a live flat stat bonus on a combatant.
type BuffEffect struct {
	Stat           StatType `json:"stat"`
	FlatBonus      float64  `json:"flat_bonus"`
	RemainingTurns int      `json:"remaining_turns"`
	AppliedBy      string   `json:"applied_by"`
	Name           string   `json:"name"`
}
