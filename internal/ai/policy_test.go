package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/udisondev/battlecore/internal/model"
	"github.com/udisondev/battlecore/internal/rng"
)

func caster() *model.Combatant {
	return &model.Combatant{
		ID:    "mage",
		Stats: model.CombatStats{Str: 5, Def: 5, Spd: 40, Int: 30, Luck: 30, Pot: 10},
		Spell: &model.SpellInfo{Name: "Fireball", Power: 1.2, Category: model.SpellDamage},
	}
}

func TestPolicy_Choose_PriorityOrder(t *testing.T) {
	self := caster()

	tests := []struct {
		name     string
		roll     float64
		hp       int
		silenced bool
		want     model.Action
	}{
		{"low hp defends", 0.39, 20, false, model.ActionDefend},
		{"low hp high roll attacks", 0.5, 20, false, model.ActionAttack},
		{"healthy caster casts", 0.1, 100, false, model.ActionSpell},
		{"spell boundary", 0.35, 100, false, model.ActionAttack},
		{"silenced fast caster dodges", 0.1, 100, true, model.ActionDodge},
		{"silenced lucky caster tricks", 0.22, 100, true, model.ActionTrick},
		{"default attack", 0.9, 100, false, model.ActionAttack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPolicy(rng.Constant(tt.roll))
			got := p.Choose(Situation{
				Self:     self,
				Stats:    self.Stats,
				HP:       tt.hp,
				MaxHP:    100,
				Silenced: tt.silenced,
			})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPolicy_Choose_NoSpellWhenStrDominates(t *testing.T) {
	self := caster()
	stats := self.Stats
	stats.Str = 50

	p := NewPolicy(rng.Constant(0.1))
	got := p.Choose(Situation{Self: self, Stats: stats, HP: 100, MaxHP: 100})

	// Int < Str: ветка заклинания пропускается, Spd > 30 → dodge
	assert.Equal(t, model.ActionDodge, got)
}

func TestPolicy_Choose_ZeroMaxHP(t *testing.T) {
	self := &model.Combatant{ID: "x", Stats: model.DefaultStats}
	p := NewPolicy(rng.Constant(0.2))

	got := p.Choose(Situation{Self: self, Stats: self.Stats, HP: 0, MaxHP: 0})
	assert.Equal(t, model.ActionDefend, got)
}

func TestPolicy_Choose_SingleRoll(t *testing.T) {
	src := rng.NewScripted(0.5, 0.1)
	p := NewPolicy(src)
	self := caster()

	p.Choose(Situation{Self: self, Stats: self.Stats, HP: 100, MaxHP: 100})
	assert.Equal(t, 1, src.Consumed())
}

func TestPolicy_Choose_NeverCastsWhileSilenced(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		self := caster()
		roll := rapid.Float64Range(0, 0.999).Draw(t, "roll")
		hp := rapid.IntRange(-50, 100).Draw(t, "hp")

		got := NewPolicy(rng.Constant(roll)).Choose(Situation{
			Self:     self,
			Stats:    self.Stats,
			HP:       hp,
			MaxHP:    100,
			Silenced: true,
		})
		if got == model.ActionSpell {
			t.Fatalf("silenced combatant chose spell (roll=%v hp=%d)", roll, hp)
		}
	})
}
