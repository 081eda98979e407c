package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/battlecore/internal/model"
	"github.com/udisondev/battlecore/internal/testutil"
)

func TestValidateMatchup(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, ValidateMatchup(testutil.Mage("p1"), testutil.Monster("m1", 3)))
	})

	t.Run("missing id", func(t *testing.T) {
		npc := testutil.Monster("", 3)
		err := ValidateMatchup(testutil.Warrior("p1"), npc)
		assert.ErrorIs(t, err, ErrMissingCombatantID)
	})

	t.Run("duplicate id", func(t *testing.T) {
		err := ValidateMatchup(testutil.Warrior("x"), testutil.Monster("x", 3))
		assert.ErrorIs(t, err, ErrDuplicateCombatantID)
	})

	t.Run("unknown spell category", func(t *testing.T) {
		p := testutil.Mage("p1")
		p.Spell.Category = model.SpellCategory("summon")
		err := ValidateMatchup(p, testutil.Monster("m1", 3))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "summon")
	})
}
