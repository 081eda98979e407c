package data

import (
	"slices"
	"strings"
)

// NeutralRaceBaseHP is used for an empty or unrecognized race.
const NeutralRaceBaseHP = 100.0

// raceBaseHP maps race → base HP before rank and potential are added.
var raceBaseHP = map[string]float64{
	"human":     100,
	"elf":       90,
	"dwarf":     120,
	"orc":       130,
	"undead":    110,
	"beastkin":  115,
	"fae":       80,
	"giant":     160,
	"dragonkin": 150,
	"demon":     125,
	"celestial": 120,
	"merfolk":   105,
	"golem":     170,
	"vampire":   115,
}

// Races returns the names of all known races, sorted.
func Races() []string {
	out := make([]string, 0, len(raceBaseHP))
	for r := range raceBaseHP {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}

// RaceBaseHP returns base HP for race (case-insensitive).
// Unknown races fall back to NeutralRaceBaseHP.
func RaceBaseHP(race string) float64 {
	if hp, ok := raceBaseHP[strings.ToLower(race)]; ok {
		return hp
	}
	return NeutralRaceBaseHP
}

// IsKnownRace reports whether race is in the race table.
func IsKnownRace(race string) bool {
	_, ok := raceBaseHP[strings.ToLower(race)]
	return ok
}
