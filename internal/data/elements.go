package data

import (
	"slices"
	"strings"
)

// elementDef is one row of the elemental counter matrix.
type elementDef struct {
	strongAgainst []string
	weakAgainst   []string
}

// elementMatrix is the 18-element counter matrix.
var elementMatrix = map[string]elementDef{
	"fire":      {strongAgainst: []string{"nature", "ice", "metal"}, weakAgainst: []string{"water", "earth"}},
	"water":     {strongAgainst: []string{"fire", "earth"}, weakAgainst: []string{"lightning", "nature"}},
	"earth":     {strongAgainst: []string{"lightning", "fire", "poison"}, weakAgainst: []string{"water", "nature", "wind"}},
	"wind":      {strongAgainst: []string{"earth", "sound"}, weakAgainst: []string{"lightning", "ice"}},
	"lightning": {strongAgainst: []string{"water", "wind", "metal"}, weakAgainst: []string{"earth"}},
	"ice":       {strongAgainst: []string{"wind", "nature"}, weakAgainst: []string{"fire", "metal"}},
	"nature":    {strongAgainst: []string{"water", "earth"}, weakAgainst: []string{"fire", "ice", "poison"}},
	"metal":     {strongAgainst: []string{"ice", "crystal"}, weakAgainst: []string{"fire", "lightning"}},
	"light":     {strongAgainst: []string{"dark", "void"}, weakAgainst: []string{"crystal"}},
	"dark":      {strongAgainst: []string{"psychic", "spirit"}, weakAgainst: []string{"light"}},
	"poison":    {strongAgainst: []string{"nature", "blood"}, weakAgainst: []string{"earth", "metal"}},
	"psychic":   {strongAgainst: []string{"poison", "blood"}, weakAgainst: []string{"dark", "sound"}},
	"sound":     {strongAgainst: []string{"crystal", "psychic"}, weakAgainst: []string{"wind", "void"}},
	"crystal":   {strongAgainst: []string{"light", "lightning"}, weakAgainst: []string{"metal", "sound"}},
	"void":      {strongAgainst: []string{"arcane", "sound"}, weakAgainst: []string{"light"}},
	"arcane":    {strongAgainst: []string{"spirit", "psychic"}, weakAgainst: []string{"void", "metal"}},
	"blood":     {strongAgainst: []string{"light", "nature"}, weakAgainst: []string{"poison", "psychic"}},
	"spirit":    {strongAgainst: []string{"blood", "void"}, weakAgainst: []string{"dark", "arcane"}},
}

// Elements returns the names of all known elements, sorted.
func Elements() []string {
	out := make([]string, 0, len(elementMatrix))
	for e := range elementMatrix {
		out = append(out, e)
	}
	slices.Sort(out)
	return out
}

// NormalizeElement returns the canonical (lowercase, trimmed) element name.
func NormalizeElement(element string) string {
	return strings.ToLower(strings.TrimSpace(element))
}

// HasElement reports whether list holds element, ignoring case.
func HasElement(list []string, element string) bool {
	element = NormalizeElement(element)
	return slices.ContainsFunc(list, func(e string) bool {
		return NormalizeElement(e) == element
	})
}

// IsKnownElement reports whether element is in the counter matrix.
func IsKnownElement(element string) bool {
	_, ok := elementMatrix[NormalizeElement(element)]
	return ok
}

// IsStrongAgainst reports whether atk counters def.
func IsStrongAgainst(atk, def string) bool {
	e, ok := elementMatrix[NormalizeElement(atk)]
	if !ok {
		return false
	}
	return slices.Contains(e.strongAgainst, NormalizeElement(def))
}

// IsWeakAgainst reports whether atk is countered by def.
func IsWeakAgainst(atk, def string) bool {
	e, ok := elementMatrix[NormalizeElement(atk)]
	if !ok {
		return false
	}
	return slices.Contains(e.weakAgainst, NormalizeElement(def))
}
