package data

import "strings"

// StatBlock is a flat bonus per stat, kept free of model types so the data
// package has no internal imports.
type StatBlock struct {
	Str, Def, Spd, Int, Luck, Pot float64
}

// RacePassive is the innate bonus a race grants every member.
type RacePassive struct {
	Name       string
	Bonus      StatBlock
	Immunities []string
}

// PetMutation is the bonus a mutated companion lends its owner in battle.
type PetMutation struct {
	Name    string
	Bonus   StatBlock
	Element string
	Power   float64
}

var racePassives = map[string]RacePassive{
	"human":     {Name: "Adaptable", Bonus: StatBlock{Luck: 3}},
	"elf":       {Name: "Keen Senses", Bonus: StatBlock{Spd: 4, Int: 2}},
	"dwarf":     {Name: "Stoneskin", Bonus: StatBlock{Def: 5}, Immunities: []string{"earth"}},
	"orc":       {Name: "Bloodlust", Bonus: StatBlock{Str: 5}},
	"undead":    {Name: "Deathless", Bonus: StatBlock{Pot: 3}, Immunities: []string{"poison", "blood"}},
	"beastkin":  {Name: "Feral Instinct", Bonus: StatBlock{Spd: 3, Str: 2}},
	"fae":       {Name: "Glamour", Bonus: StatBlock{Int: 4, Luck: 2}},
	"giant":     {Name: "Colossus", Bonus: StatBlock{Str: 4, Def: 3, Spd: -3}},
	"dragonkin": {Name: "Draconic Blood", Bonus: StatBlock{Str: 3, Int: 3}, Immunities: []string{"fire"}},
	"demon":     {Name: "Infernal Pact", Bonus: StatBlock{Str: 2, Int: 4}, Immunities: []string{"dark"}},
	"celestial": {Name: "Halo", Bonus: StatBlock{Int: 3, Def: 2}, Immunities: []string{"light"}},
	"merfolk":   {Name: "Tidecaller", Bonus: StatBlock{Int: 2, Spd: 2}, Immunities: []string{"water"}},
	"golem":     {Name: "Constructed", Bonus: StatBlock{Def: 6, Spd: -2}, Immunities: []string{"psychic"}},
	"vampire":   {Name: "Night Hunger", Bonus: StatBlock{Str: 2, Spd: 2, Luck: 1}, Immunities: []string{"blood"}},
}

var petMutations = map[string]PetMutation{
	"ember":    {Name: "Ember Mane", Bonus: StatBlock{Str: 2}, Element: "fire", Power: 4},
	"tidal":    {Name: "Tidal Scales", Bonus: StatBlock{Def: 2}, Element: "water", Power: 4},
	"storm":    {Name: "Storm Feathers", Bonus: StatBlock{Spd: 3}, Element: "lightning", Power: 3},
	"frost":    {Name: "Frost Breath", Bonus: StatBlock{Int: 2}, Element: "ice", Power: 4},
	"thorn":    {Name: "Thornhide", Bonus: StatBlock{Def: 3}, Element: "nature", Power: 2},
	"shade":    {Name: "Shadeborn", Bonus: StatBlock{Luck: 3}, Element: "dark", Power: 3},
	"radiant":  {Name: "Radiant Core", Bonus: StatBlock{Int: 3}, Element: "light", Power: 3},
	"gilded":   {Name: "Gilded Shell", Bonus: StatBlock{Def: 4}, Element: "metal", Power: 2},
	"echo":     {Name: "Echo Voice", Bonus: StatBlock{Int: 1, Luck: 1}, Element: "sound", Power: 2},
	"riftling": {Name: "Riftling", Bonus: StatBlock{Spd: 1, Int: 2}, Element: "void", Power: 5},
}

// GetRacePassive returns the passive of race (case-insensitive).
func GetRacePassive(race string) (RacePassive, bool) {
	p, ok := racePassives[strings.ToLower(race)]
	return p, ok
}

// GetPetMutation returns the mutation with the given key.
func GetPetMutation(key string) (PetMutation, bool) {
	m, ok := petMutations[strings.ToLower(key)]
	return m, ok
}
