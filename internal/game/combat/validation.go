package combat

import (
	"errors"
	"fmt"

	"github.com/udisondev/battlecore/internal/model"
)

var (
	// ErrMissingCombatantID is returned when a combatant has an empty ID.
	ErrMissingCombatantID = errors.New("combatant id is empty")
	// ErrDuplicateCombatantID is returned when both sides share an ID.
	ErrDuplicateCombatantID = errors.New("combatants share the same id")
)

// ValidateMatchup checks a matchup before it is handed to the engine.
// The engine itself accepts anything; results keyed by ID are only
// meaningful when both IDs are present and distinct.
//
// Checks:
//   - both IDs non-empty
//   - IDs distinct
//   - spell category known (when a spell is set)
func ValidateMatchup(player, npc model.Combatant) error {
	for _, c := range []model.Combatant{player, npc} {
		if c.ID == "" {
			return fmt.Errorf("validating %q: %w", c.Name, ErrMissingCombatantID)
		}
		if c.Spell != nil && !c.Spell.Category.Valid() {
			return fmt.Errorf("validating %s: unknown spell category %q", c.ID, c.Spell.Category)
		}
	}
	if player.ID == npc.ID {
		return fmt.Errorf("validating %s: %w", player.ID, ErrDuplicateCombatantID)
	}
	return nil
}
