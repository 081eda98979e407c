package combat

import (
	"math"

	"github.com/udisondev/battlecore/internal/model"
)

// Per-level reward rates.
const (
	goldPerLevel     = 50
	trainingPerLevel = 10
	shardsPerLevel   = 2
	petExpPerLevel   = 100

	bossMultiplier = 3

	// Bosses drop runes per full hundred levels.
	runeLevelStep = 100
	runesPerStep  = 10
)

// CalculateCombatRewards returns the loot for a battle against an NPC of
// npcLevel. A loss yields a zero Reward.
//
// Example:
//
//	CalculateCombatRewards(10, true, true)
//	// {Gold: 1500, TrainingPoints: 300, SoulShards: 60, PetExp: 3000, Runes: 0}
func CalculateCombatRewards(npcLevel int, isBoss, playerWon bool) model.Reward {
	if !playerWon {
		return model.Reward{}
	}

	mult := 1.0
	if isBoss {
		mult = bossMultiplier
	}
	level := float64(npcLevel)

	reward := model.Reward{
		Gold:           int64(math.Floor(level * goldPerLevel * mult)),
		TrainingPoints: int64(math.Floor(level * trainingPerLevel * mult)),
		SoulShards:     int64(math.Floor(level * shardsPerLevel * mult)),
		PetExp:         int64(math.Floor(level * petExpPerLevel * mult)),
	}
	if isBoss {
		reward.Runes = int64(math.Floor(level/runeLevelStep)) * runesPerStep
	}
	return reward
}

// AttachReward fills result.Reward from the battle outcome. The player won
// when the winner is the combatant flagged IsPlayer.
func AttachReward(result *model.CombatResult, player, npc model.Combatant, isBoss bool) {
	playerWon := result.WinnerID == player.ID && player.IsPlayer
	reward := CalculateCombatRewards(npc.Level, isBoss, playerWon)
	result.Reward = &reward
}
