package replay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/battlecore/internal/game/combat"
	"github.com/udisondev/battlecore/internal/model"
	"github.com/udisondev/battlecore/internal/testutil"
)

func TestCaptureAndVerify(t *testing.T) {
	rec, result, err := Capture(1234, combat.DefaultRules(), testutil.Mage("p1"), testutil.Monster("m1", 8))
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Len(t, rec.Digest, 64)
	assert.NoError(t, Verify(rec))
}

func TestVerify_DetectsTampering(t *testing.T) {
	rec, _, err := Capture(99, combat.DefaultRules(), testutil.Warrior("p1"), testutil.Monster("m1", 8))
	require.NoError(t, err)

	t.Run("other seed", func(t *testing.T) {
		tampered := rec
		tampered.Seed++
		// разные сиды почти наверняка дают разный лог
		assert.ErrorIs(t, Verify(tampered), ErrDigestMismatch)
	})

	t.Run("other stats", func(t *testing.T) {
		tampered := rec
		tampered.Player.Stats.Str += 25
		assert.ErrorIs(t, Verify(tampered), ErrDigestMismatch)
	})
}

func TestDigest(t *testing.T) {
	_, err := Digest(nil)
	require.Error(t, err)

	a := &model.CombatResult{WinnerID: "a", LoserID: "b", FinalHP: map[string]int{"a": 5, "b": -1}}
	b := &model.CombatResult{WinnerID: "a", LoserID: "b", FinalHP: map[string]int{"b": -1, "a": 5}}
	da, err := Digest(a)
	require.NoError(t, err)
	db, err := Digest(b)
	require.NoError(t, err)
	assert.Equal(t, da, db)

	// награда не входит в отпечаток
	b.Reward = &model.Reward{Gold: 10}
	db, err = Digest(b)
	require.NoError(t, err)
	assert.Equal(t, da, db)
}
