// Package element implements elemental advantage and two-element resonance.
package element

import (
	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/model"
)

// Modifier multipliers.
const (
	Strong  = 1.5
	Weak    = 0.5
	Neutral = 1.0
	Immune  = 0.0
)

// CalculateModifier evaluates every (attacker, defender) element pair and
// prefers the best outcome: any STRONG pair wins over WEAK pairs, WEAK applies
// only when no pair is STRONG, otherwise NEUTRAL.
//
// Attacker elements listed in immunities are dropped first. If the attacker
// wields elements and all of them are blocked, the result is Immune.
func CalculateModifier(attacker, defender, immunities []string) float64 {
	if len(attacker) == 0 {
		return Neutral
	}

	effective := filterImmune(attacker, immunities)
	if len(effective) == 0 {
		return Immune
	}

	weak := false
	for _, atk := range effective {
		for _, def := range defender {
			if data.IsStrongAgainst(atk, def) {
				return Strong
			}
			if data.IsWeakAgainst(atk, def) {
				weak = true
			}
		}
	}
	if weak {
		return Weak
	}
	return Neutral
}

// FindResonance returns the first combo in table order whose two elements are
// both wielded. Fewer than two elements never resonate.
func FindResonance(elements []string) (data.ResonanceCombo, bool) {
	if len(elements) < 2 {
		return data.ResonanceCombo{}, false
	}
	for _, combo := range data.ResonanceCombos() {
		if combo.Matches(elements) {
			return combo, true
		}
	}
	return data.ResonanceCombo{}, false
}

// AttackElements returns the elements an attack carries: the combatant's
// affinity plus the spell element (if any and not already present).
func AttackElements(c *model.Combatant, spell *model.SpellInfo) []string {
	elems := make([]string, 0, len(c.Affinity.Elements)+1)
	elems = append(elems, c.Affinity.Elements...)
	if spell != nil && spell.Element != "" && !data.HasElement(elems, spell.Element) {
		elems = append(elems, spell.Element)
	}
	return elems
}

// Label returns a human-readable name for a modifier value.
func Label(mod float64) string {
	switch mod {
	case Strong:
		return "super effective"
	case Weak:
		return "not very effective"
	case Immune:
		return "immune"
	default:
		return "neutral"
	}
}

func filterImmune(elements, immunities []string) []string {
	if len(immunities) == 0 {
		return elements
	}
	out := make([]string, 0, len(elements))
	for _, e := range elements {
		if !data.HasElement(immunities, e) {
			out = append(out, e)
		}
	}
	return out
}
