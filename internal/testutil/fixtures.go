package testutil

import (
	"github.com/udisondev/battlecore/internal/model"
)

// Warrior возвращает игрока-бойца без стихий и заклинаний.
func Warrior(id string) model.Combatant {
	return model.Combatant{
		ID:       id,
		Name:     "Warrior " + id,
		Stats:    model.CombatStats{Str: 40, Def: 15, Spd: 20, Int: 5, Luck: 10, Pot: 20},
		Race:     "human",
		Rank:     "novice",
		Level:    10,
		IsPlayer: true,
	}
}

// Mage возвращает игрока-мага с огненным заклинанием урона.
func Mage(id string) model.Combatant {
	return model.Combatant{
		ID:       id,
		Name:     "Mage " + id,
		Stats:    model.CombatStats{Str: 8, Def: 8, Spd: 25, Int: 45, Luck: 15, Pot: 15},
		Race:     "elf",
		Rank:     "adept",
		Affinity: model.ElementalAffinity{Elements: []string{"fire"}, Power: 5},
		Level:    12,
		IsPlayer: true,
		Spell: &model.SpellInfo{
			Name:     "Fireball",
			Power:    1.2,
			Element:  "fire",
			Category: model.SpellDamage,
		},
	}
}

// Monster возвращает NPC с заданным уровнем.
func Monster(id string, level int) model.Combatant {
	return model.Combatant{
		ID:    id,
		Name:  "Monster " + id,
		Stats: model.CombatStats{Str: 30, Def: 10, Spd: 15, Int: 10, Luck: 5, Pot: 25},
		Race:  "orc",
		Level: level,
	}
}

// Dummy возвращает NPC-манекен: без урона, без защиты, с заданным Pot.
func Dummy(id string, pot float64) model.Combatant {
	return model.Combatant{
		ID:    id,
		Name:  "Dummy " + id,
		Stats: model.CombatStats{Pot: pot},
		Level: 1,
	}
}
