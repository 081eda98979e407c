package combat

import (
	"github.com/udisondev/battlecore/internal/model"
	"github.com/udisondev/battlecore/internal/rng"
)

// TurnOrder returns the two combatants ordered by speed, faster first.
// Equal speeds are settled by a fair coin flip drawn from src.
func TurnOrder(a, b *model.Combatant, aSpd, bSpd float64, src rng.Source) (first, second *model.Combatant) {
	switch {
	case aSpd > bSpd:
		return a, b
	case bSpd > aSpd:
		return b, a
	case src.Float64() < 0.5:
		return a, b
	default:
		return b, a
	}
}

// TieBreak decides the winner when both sides end with equal HP.
type TieBreak string

const (
	// TieBreakNonPlayer awards ties to the non-player combatant.
	TieBreakNonPlayer TieBreak = "non_player"
	// TieBreakPlayer awards ties to the player combatant.
	TieBreakPlayer TieBreak = "player"
)

// DefaultMaxRounds bounds every battle.
const DefaultMaxRounds = 20

// Rules configures a battle.
type Rules struct {
	MaxRounds int      `json:"max_rounds" yaml:"max_rounds"`
	TieBreak  TieBreak `json:"tie_break" yaml:"tie_break"`
}

// DefaultRules returns 20 rounds, ties to the non-player.
func DefaultRules() Rules {
	return Rules{
		MaxRounds: DefaultMaxRounds,
		TieBreak:  TieBreakNonPlayer,
	}
}

func (r Rules) normalized() Rules {
	if r.MaxRounds <= 0 {
		r.MaxRounds = DefaultMaxRounds
	}
	if r.TieBreak != TieBreakPlayer {
		r.TieBreak = TieBreakNonPlayer
	}
	return r
}

// decideWinner picks the side with strictly more HP; ties follow rule.
// player and npc are the two call arguments of the battle, in that order.
func decideWinner(player, npc *model.Combatant, playerHP, npcHP int, rule TieBreak) (winner, loser *model.Combatant) {
	switch {
	case playerHP > npcHP:
		return player, npc
	case npcHP > playerHP:
		return npc, player
	}

	favorPlayer := rule == TieBreakPlayer
	switch {
	case player.IsPlayer == favorPlayer && npc.IsPlayer != favorPlayer:
		return player, npc
	case npc.IsPlayer == favorPlayer && player.IsPlayer != favorPlayer:
		return npc, player
	case favorPlayer:
		// Both sides share the flag: fall back to call order.
		return player, npc
	default:
		return npc, player
	}
}
