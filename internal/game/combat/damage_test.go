package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/model"
	"github.com/udisondev/battlecore/internal/testutil"
)

func TestMaxHP(t *testing.T) {
	tests := []struct {
		name  string
		stats model.CombatStats
		level int
		race  string
		rank  string
		want  int
	}{
		{"known race and rank", model.CombatStats{Pot: 20}, 10, "human", "novice", 310},
		{"unknown rank falls back to level", model.CombatStats{Pot: 10}, 7, "golem", "", 170 + 70 + 80},
		{"unknown race is neutral", model.CombatStats{Pot: 0}, 1, "slime", "divine", 100 + 1400},
		{"fractional pot floored", model.CombatStats{Pot: 1.9}, 0, "", "", 100 + 15},
		{"rank is case-insensitive", model.CombatStats{}, 0, "elf", "Master", 90 + 470},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaxHP(tt.stats, tt.level, tt.race, tt.rank))
		})
	}
}

func TestCombatantMaxHP(t *testing.T) {
	w := testutil.Warrior("p1")
	assert.Equal(t, 310, CombatantMaxHP(&w))
}

func TestMaxHP_NonDecreasingInPot(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		race := rapid.SampledFrom(append(data.Races(), "")).Draw(t, "race")
		rank := rapid.SampledFrom(append(data.Ranks(), "")).Draw(t, "rank")
		level := rapid.IntRange(0, 200).Draw(t, "level")
		lo := rapid.Float64Range(0, 500).Draw(t, "pot")
		hi := lo + rapid.Float64Range(0, 500).Draw(t, "delta")

		a := MaxHP(model.CombatStats{Pot: lo}, level, race, rank)
		b := MaxHP(model.CombatStats{Pot: hi}, level, race, rank)
		if a > b {
			t.Fatalf("maxHP decreased: pot %v → %d, pot %v → %d", lo, a, hi, b)
		}
	})
}

func TestCritChance(t *testing.T) {
	assert.Equal(t, 0.0, CritChance(0))
	assert.Equal(t, 0.0, CritChance(-5))
	assert.Equal(t, 0.25, CritChance(10))
	assert.Equal(t, MaxCritChance, CritChance(20))
	assert.Equal(t, MaxCritChance, CritChance(1000))
}

func TestApplyDiminishingReturns(t *testing.T) {
	tests := []struct {
		def, incoming, want float64
	}{
		{10, 50, 40},
		{200, 50, 0},
		{30, 50, 20},
		{0, 50, 50},
		{-10, 50, 50},
		{50, 50, 0},
		{10, 10.5, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ApplyDiminishingReturns(tt.def, tt.incoming), "def=%v incoming=%v", tt.def, tt.incoming)
	}
}
