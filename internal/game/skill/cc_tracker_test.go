package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/udisondev/battlecore/internal/model"
	"github.com/udisondev/battlecore/internal/rng"
)

func stunRequest(base int) CCRequest {
	return CCRequest{
		TargetID:     "npc",
		CasterID:     "hero",
		Type:         model.CCStun,
		BaseDuration: base,
		CasterInt:    100,
		TargetInt:    10,
		TargetLuck:   10,
	}
}

func TestResistChance(t *testing.T) {
	assert.InDelta(t, 0.5, ResistChance(10, 10, 10), 1e-9)
	assert.Equal(t, MaxResistChance, ResistChance(1000, 10, 10))
	// Нулевой знаменатель защищён минимумом 1
	assert.Equal(t, MaxResistChance, ResistChance(5, 0, 0))
	assert.InDelta(t, 0.5, ResistChance(0.5, 0, 0), 1e-9)
	assert.Equal(t, 0.0, ResistChance(0, 10, 10))
}

func TestDiminishedDuration(t *testing.T) {
	assert.Equal(t, 3, DiminishedDuration(3, 0))
	assert.Equal(t, 2, DiminishedDuration(3, 1))
	assert.Equal(t, 1, DiminishedDuration(3, 2))
	assert.Equal(t, 1, DiminishedDuration(3, 10))
	assert.Equal(t, 1, DiminishedDuration(1, 0))
}

func TestCCTracker_Apply(t *testing.T) {
	tr := NewCCTracker(rng.Constant(0))

	res := tr.Apply(stunRequest(3))
	require.True(t, res.Applied)
	assert.Equal(t, CCApplied, res.Reason)
	assert.Equal(t, 3, res.Duration)
	assert.Equal(t, "hero", res.Effect.AppliedBy)

	ccType, disabled := tr.IsDisabled("npc")
	assert.True(t, disabled)
	assert.Equal(t, model.CCStun, ccType)
	assert.Equal(t, 1, tr.ConsecutiveCount("npc"))
}

func TestCCTracker_Resisted(t *testing.T) {
	tr := NewCCTracker(rng.Constant(0.9))

	res := tr.Apply(stunRequest(3))
	assert.False(t, res.Applied)
	assert.Equal(t, CCResisted, res.Reason)
	assert.Equal(t, MaxResistChance, res.Chance)
	assert.Equal(t, 0, tr.ConsecutiveCount("npc"), "resisted CC must not advance the counter")
}

func TestCCTracker_ExclusivityRejectsWithoutRoll(t *testing.T) {
	src := rng.NewScripted(0)
	tr := NewCCTracker(src)

	require.True(t, tr.Apply(stunRequest(2)).Applied)

	freeze := stunRequest(2)
	freeze.Type = model.CCFreeze
	freeze.CasterInt = 1e9
	res := tr.Apply(freeze)

	assert.False(t, res.Applied)
	assert.Equal(t, CCAlreadyAffected, res.Reason)
	assert.Equal(t, 1, src.Consumed(), "rejected attempt must not consume a roll")
}

func TestCCTracker_Invalid(t *testing.T) {
	src := rng.NewScripted()
	tr := NewCCTracker(src)

	req := stunRequest(2)
	req.Type = "sleep"
	assert.Equal(t, CCInvalid, tr.Apply(req).Reason)

	req = stunRequest(0)
	assert.Equal(t, CCInvalid, tr.Apply(req).Reason)
	assert.Equal(t, 0, src.Consumed())
}

func TestCCTracker_DiminishingDurations(t *testing.T) {
	tr := NewCCTracker(rng.Constant(0))

	var durations []int
	for range 4 {
		res := tr.Apply(stunRequest(3))
		require.True(t, res.Applied)
		durations = append(durations, res.Duration)
		for {
			if _, ok := tr.Active("npc"); !ok {
				break
			}
			tr.Tick("npc")
		}
	}

	assert.Equal(t, []int{3, 2, 1, 1}, durations)
}

func TestCCTracker_TickPurges(t *testing.T) {
	tr := NewCCTracker(rng.Constant(0))
	req := stunRequest(2)
	req.Type = model.CCSilence
	require.True(t, tr.Apply(req).Applied)
	assert.True(t, tr.IsSilenced("npc"))
	_, disabled := tr.IsDisabled("npc")
	assert.False(t, disabled, "silence does not skip turns")

	assert.Empty(t, tr.Tick("npc"))
	assert.True(t, tr.IsSilenced("npc"))

	expired := tr.Tick("npc")
	require.Len(t, expired, 1)
	assert.Equal(t, model.CCSilence, expired[0].CCType)
	assert.False(t, tr.IsSilenced("npc"))
	assert.Empty(t, tr.Effects("npc"))
	assert.Nil(t, tr.Tick("hero"))
}

func TestCCTracker_FreezeMultiplier(t *testing.T) {
	tr := NewCCTracker(rng.Constant(0))
	assert.Equal(t, 1.0, tr.DamageMultiplier("npc"))

	req := stunRequest(1)
	req.Type = model.CCFreeze
	require.True(t, tr.Apply(req).Applied)
	assert.Equal(t, FreezeDamageMultiplier, tr.DamageMultiplier("npc"))

	tr.Tick("npc")
	assert.Equal(t, 1.0, tr.DamageMultiplier("npc"))
}

func TestCCTracker_Property_ActiveTargetAlwaysRejects(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tr := NewCCTracker(rng.Constant(0))
		first := stunRequest(rapid.IntRange(1, 5).Draw(rt, "base"))
		if !tr.Apply(first).Applied {
			rt.Fatalf("first CC must land with roll 0")
		}

		second := CCRequest{
			TargetID:     "npc",
			CasterID:     "other",
			Type:         rapid.SampledFrom([]model.CCType{model.CCStun, model.CCFreeze, model.CCSilence}).Draw(rt, "type"),
			BaseDuration: rapid.IntRange(1, 10).Draw(rt, "base2"),
			CasterInt:    rapid.Float64Range(0, 1e6).Draw(rt, "int"),
			TargetInt:    rapid.Float64Range(0, 100).Draw(rt, "tint"),
			TargetLuck:   rapid.Float64Range(0, 100).Draw(rt, "tluck"),
		}
		res := tr.Apply(second)
		assert.False(rt, res.Applied)
		assert.Equal(rt, CCAlreadyAffected, res.Reason)
	})
}

func TestCCTracker_Property_DurationsNonIncreasing(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		base := rapid.IntRange(1, 12).Draw(rt, "base")
		n := rapid.IntRange(1, 8).Draw(rt, "attempts")

		prev := base + 1
		for i := range n {
			d := DiminishedDuration(base, i)
			assert.LessOrEqual(rt, d, prev)
			assert.GreaterOrEqual(rt, d, 1)
			prev = d
		}
	})
}
