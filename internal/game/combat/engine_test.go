package combat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/udisondev/battlecore/internal/game/skill"
	"github.com/udisondev/battlecore/internal/model"
	"github.com/udisondev/battlecore/internal/rng"
	"github.com/udisondev/battlecore/internal/testutil"
)

func TestTurnOrder(t *testing.T) {
	a := &model.Combatant{ID: "a"}
	b := &model.Combatant{ID: "b"}

	first, second := TurnOrder(a, b, 20, 10, rng.NewScripted())
	assert.Equal(t, "a", first.ID)
	assert.Equal(t, "b", second.ID)

	first, _ = TurnOrder(a, b, 10, 20, rng.NewScripted())
	assert.Equal(t, "b", first.ID)

	// равная скорость: решает монетка
	first, _ = TurnOrder(a, b, 10, 10, rng.Constant(0.2))
	assert.Equal(t, "a", first.ID)
	first, _ = TurnOrder(a, b, 10, 10, rng.Constant(0.7))
	assert.Equal(t, "b", first.ID)
}

func TestEngine_RoundStopsWhenDefenderDies(t *testing.T) {
	player := testutil.Warrior("p1")
	player.Stats = model.CombatStats{Str: 1000, Spd: 50}
	npc := testutil.Dummy("npc", 0)

	result := NewEngine(rng.Constant(0.9), DefaultRules()).Run(player, npc)

	require.Len(t, result.Rounds, 1)
	assert.Equal(t, "p1", result.WinnerID)
	assert.Equal(t, "npc", result.LoserID)
	assert.Equal(t, 1000, result.DamageDealt["p1"])
	assert.Equal(t, 0, result.DamageDealt["npc"])
	assert.Equal(t, 110-1000, result.FinalHP["npc"])
	assert.Equal(t, 110, result.MaxHP["npc"])
}

func TestEngine_TieBreak(t *testing.T) {
	player := testutil.Dummy("p1", 10)
	player.IsPlayer = true
	npc := testutil.Dummy("npc", 10)

	t.Run("non-player by default", func(t *testing.T) {
		result := RunAutoCombat(player, npc, rng.Constant(0.9), 0)

		assert.Len(t, result.Rounds, 2*DefaultMaxRounds)
		assert.Equal(t, "npc", result.WinnerID)
		assert.Equal(t, "p1", result.LoserID)
		assert.Equal(t, result.FinalHP["p1"], result.FinalHP["npc"])
	})

	t.Run("player when configured", func(t *testing.T) {
		rules := Rules{MaxRounds: 5, TieBreak: TieBreakPlayer}
		result := NewEngine(rng.Constant(0.9), rules).Run(player, npc)

		assert.Len(t, result.Rounds, 10)
		assert.Equal(t, "p1", result.WinnerID)
	})

	t.Run("call order when flags match", func(t *testing.T) {
		a := testutil.Dummy("a", 10)
		b := testutil.Dummy("b", 10)
		result := RunAutoCombat(a, b, rng.Constant(0.9), 3)

		assert.Equal(t, "b", result.WinnerID)
	})
}

func TestEngine_Deterministic(t *testing.T) {
	player := testutil.Mage("p1")
	npc := testutil.Monster("m1", 12)

	first := NewEngine(rng.NewSeeded(42), DefaultRules()).Run(player, npc)
	second := NewEngine(rng.NewSeeded(42), DefaultRules()).Run(player, npc)

	assert.Equal(t, first, second)
}

func TestEngine_SkippedTurns(t *testing.T) {
	player := testutil.Mage("p1")
	player.Stats.Int = 80
	player.Spell = &model.SpellInfo{
		Name:     "Concussion",
		Power:    0.5,
		Category: model.SpellCC,
		CCType:   model.CCStun,
		Duration: 2,
	}
	npc := testutil.Monster("m1", 10)
	npc.Stats.Int = 5
	npc.Stats.Luck = 0

	skipped := 0
	for seed := range uint64(40) {
		result := NewEngine(rng.NewSeeded(seed), DefaultRules()).Run(player, npc)
		for _, r := range result.Rounds {
			if r.SkippedCC == model.CCNone {
				continue
			}
			skipped++
			assert.Equal(t, model.ActionDefend, r.Action)
			assert.Zero(t, r.Damage)
			assert.True(t, r.SkippedCC.Disables())
		}
	}
	assert.Positive(t, skipped, "stun never landed across 40 seeds")
}

func TestEngine_SanitizesMalformedStats(t *testing.T) {
	player := testutil.Warrior("p1")
	player.Stats.Str = math.NaN()
	player.Stats.Def = math.Inf(1)
	npc := testutil.Monster("m1", 5)
	npc.Stats.Spd = -20

	result := RunAutoCombat(player, npc, rng.NewSeeded(7), 10)

	assert.LessOrEqual(t, len(result.Rounds), 20)
	for _, r := range result.Rounds {
		assert.GreaterOrEqual(t, r.Damage, 0)
		assert.False(t, math.IsNaN(r.ElementalMultiplier))
	}
}

// newTestBattle собирает состояние боя вручную, чтобы проверять отдельные ходы.
// CC накладывается через cc с гарантированным успехом броска.
func newTestBattle(p, n *model.Combatant) (*battle, *skill.CCTracker) {
	e := NewEngine(rng.Constant(0.99), DefaultRules())
	cc := skill.NewCCTracker(rng.Constant(0))
	b := &battle{
		e:     e,
		cc:    cc,
		buffs: skill.NewBuffTracker(),
		hp:    map[string]int{p.ID: 100, n.ID: 100},
		maxHP: map[string]int{p.ID: 100, n.ID: 100},
		dealt: map[string]int{p.ID: 0, n.ID: 0},
	}
	b.res = NewResolver(e.src, cc, b.buffs)
	return b, cc
}

func inflict(t *testing.T, cc *skill.CCTracker, target string, ccType model.CCType, turns int) {
	t.Helper()
	res := cc.Apply(skill.CCRequest{TargetID: target, CasterID: "x", Type: ccType, BaseDuration: turns, CasterInt: 10, TargetInt: 1})
	require.True(t, res.Applied)
}

func TestBattle_SilencedSpellBecomesAttack(t *testing.T) {
	p := testutil.Mage("p1")
	n := testutil.Dummy("npc", 0)
	b, cc := newTestBattle(&p, &n)
	inflict(t, cc, "p1", model.CCSilence, 2)

	b.act(1, &p, &n, map[string]model.Action{"p1": model.ActionSpell, "npc": model.ActionAttack})

	require.Len(t, b.rounds, 1)
	assert.Equal(t, model.ActionAttack, b.rounds[0].Action)
	assert.Contains(t, b.rounds[0].Effects[0], "silenced")
	assert.Equal(t, 13, b.rounds[0].Damage) // Str 8 + стихийная сила 5

	// тик после хода
	active, ok := cc.Active("p1")
	require.True(t, ok)
	assert.Equal(t, 1, active.RemainingTurns)
}

func TestBattle_DisabledActorSkips(t *testing.T) {
	p := testutil.Warrior("p1")
	n := testutil.Dummy("npc", 0)
	b, cc := newTestBattle(&p, &n)
	inflict(t, cc, "p1", model.CCFreeze, 1)
	b.buffs.Apply(skill.BuffRequest{TargetID: "p1", CasterID: "p1", Stat: model.StatStr, BaseStat: p.Stats.Str, Amount: 5, Duration: 1})

	b.act(1, &p, &n, map[string]model.Action{"p1": model.ActionDefend, "npc": model.ActionAttack})

	require.Len(t, b.rounds, 1)
	r := b.rounds[0]
	assert.Equal(t, model.CCFreeze, r.SkippedCC)
	assert.Equal(t, model.ActionDefend, r.Action)
	assert.Zero(t, r.Damage)
	assert.Equal(t, 100, b.hp["npc"])

	_, disabled := cc.IsDisabled("p1")
	assert.False(t, disabled, "freeze should expire on the skipped turn")
	assert.Len(t, b.buffs.Active("p1"), 1, "buffs keep their duration while skipping")
}

func TestBattle_DisabledDefenderHasNoReaction(t *testing.T) {
	p := testutil.Warrior("p1")
	p.Stats.Spd = 1
	n := testutil.Dummy("npc", 0)
	n.Stats.Spd = 50
	b, cc := newTestBattle(&p, &n)
	inflict(t, cc, "npc", model.CCStun, 2)

	b.act(1, &p, &n, map[string]model.Action{"p1": model.ActionAttack, "npc": model.ActionDodge})

	require.Len(t, b.rounds, 1)
	assert.False(t, b.rounds[0].Evaded)
	assert.Equal(t, int(p.Stats.Str), b.rounds[0].Damage)
	assert.Equal(t, 100-int(p.Stats.Str), b.hp["npc"])
	assert.Equal(t, int(p.Stats.Str), b.dealt["p1"])
}

func TestBattle_StunnedCombatantDoesNotBlockAfterSkip(t *testing.T) {
	// Быстрый оглушённый NPC пропускает ход, оглушение спадает на тике,
	// но вынужденный "defend" не должен блокировать удар игрока.
	p := testutil.Warrior("p1")
	p.Stats.Spd = 1
	n := testutil.Dummy("npc", 0)
	n.Stats.Spd = 50
	n.Stats.Def = 45
	b, cc := newTestBattle(&p, &n)
	inflict(t, cc, "npc", model.CCStun, 1)

	b.playRound(1, &p, &n)

	require.Len(t, b.rounds, 2)
	skip := b.rounds[0]
	assert.Equal(t, "npc", skip.AttackerID)
	assert.Equal(t, model.CCStun, skip.SkippedCC)

	hit := b.rounds[1]
	assert.Equal(t, "p1", hit.AttackerID)
	assert.Equal(t, model.ActionAttack, hit.Action)
	assert.False(t, hit.WasBlocked)
	assert.Zero(t, hit.Blocked)
	assert.NotContains(t, hit.Effects, "Dummy npc blocks the blow")
	assert.Equal(t, int(ApplyDiminishingReturns(45, 40)), hit.Damage)
}

func TestBattle_ChooseGivesDisabledCombatantNoAction(t *testing.T) {
	p := testutil.Warrior("p1")
	n := testutil.Dummy("npc", 0)
	b, cc := newTestBattle(&p, &n)
	inflict(t, cc, "npc", model.CCFreeze, 1)

	assert.Empty(t, b.choose(&n))
	assert.False(t, b.choose(&n).IsReaction())
	assert.Equal(t, model.ActionAttack, b.choose(&p))
}

func TestRunAutoCombat_Terminates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		stats := func(label string) model.CombatStats {
			return model.CombatStats{
				Str:  rapid.Float64Range(0, 200).Draw(t, label+"_str"),
				Def:  rapid.Float64Range(0, 200).Draw(t, label+"_def"),
				Spd:  rapid.Float64Range(0, 60).Draw(t, label+"_spd"),
				Int:  rapid.Float64Range(0, 200).Draw(t, label+"_int"),
				Luck: rapid.Float64Range(0, 60).Draw(t, label+"_luck"),
				Pot:  rapid.Float64Range(0, 100).Draw(t, label+"_pot"),
			}
		}
		player := testutil.Mage("p1")
		player.Stats = stats("player")
		npc := testutil.Monster("m1", rapid.IntRange(0, 100).Draw(t, "level"))
		npc.Stats = stats("npc")
		maxRounds := rapid.IntRange(1, 30).Draw(t, "max_rounds")
		seed := rapid.Uint64().Draw(t, "seed")

		result := RunAutoCombat(player, npc, rng.NewSeeded(seed), maxRounds)

		if len(result.Rounds) > 2*maxRounds {
			t.Fatalf("%d entries for maxRounds=%d", len(result.Rounds), maxRounds)
		}
		ids := map[string]bool{"p1": true, "m1": true}
		if !ids[result.WinnerID] || !ids[result.LoserID] || result.WinnerID == result.LoserID {
			t.Fatalf("winner=%q loser=%q", result.WinnerID, result.LoserID)
		}
		if result.FinalHP[result.WinnerID] < result.FinalHP[result.LoserID] {
			t.Fatalf("winner has less HP than loser: %v", result.FinalHP)
		}
	})
}
