// Package roster turns stored combatant profiles into battle-ready snapshots.
//
// Race passives and pet mutations are looked up through providers that are
// resolved once when the Builder is created. The engine never consults them:
// by the time a Combatant reaches combat.Engine every bonus is folded in.
package roster

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/udisondev/battlecore/internal/data"
	"github.com/udisondev/battlecore/internal/model"
)

var (
	// ErrMissingID is returned when a profile has no ID.
	ErrMissingID = errors.New("profile id is empty")
	// ErrUnknownPet is returned when a profile references a pet mutation the provider does not know.
	ErrUnknownPet = errors.New("unknown pet mutation")
)

// RacePassiveProvider looks up the innate bonus of a race.
type RacePassiveProvider interface {
	RacePassive(race string) (data.RacePassive, bool)
}

// PetMutationProvider looks up the bonus a mutated pet lends its owner.
type PetMutationProvider interface {
	PetMutation(key string) (data.PetMutation, bool)
}

// StaticRaces serves race passives from the built-in table.
type StaticRaces struct{}

// RacePassive implements RacePassiveProvider.
func (StaticRaces) RacePassive(race string) (data.RacePassive, bool) {
	return data.GetRacePassive(race)
}

// StaticPets serves pet mutations from the built-in table.
type StaticPets struct{}

// PetMutation implements PetMutationProvider.
func (StaticPets) PetMutation(key string) (data.PetMutation, bool) {
	return data.GetPetMutation(key)
}

// Profile is the persisted shape of a combatant before resolution.
type Profile struct {
	ID         string              `yaml:"id" json:"id"`
	Name       string              `yaml:"name" json:"name"`
	Race       string              `yaml:"race" json:"race,omitempty"`
	Rank       string              `yaml:"rank" json:"rank,omitempty"`
	Level      int                 `yaml:"level" json:"level"`
	IsPlayer   bool                `yaml:"player" json:"is_player"`
	Stats      model.CombatStats   `yaml:"stats" json:"stats"`
	Equipment  []model.CombatStats `yaml:"equipment" json:"equipment,omitempty"`
	Elements   []string            `yaml:"elements" json:"elements,omitempty"`
	Power      float64             `yaml:"element_power" json:"element_power,omitempty"`
	Immunities []string            `yaml:"immunities" json:"immunities,omitempty"`
	Pet        string              `yaml:"pet" json:"pet,omitempty"`
	Spell      *model.SpellInfo    `yaml:"spell" json:"spell,omitempty"`
}

// Builder resolves profiles into combatants.
type Builder struct {
	races RacePassiveProvider
	pets  PetMutationProvider
}

// NewBuilder creates a Builder. Nil providers fall back to the static tables.
func NewBuilder(races RacePassiveProvider, pets PetMutationProvider) *Builder {
	if races == nil {
		races = StaticRaces{}
	}
	if pets == nil {
		pets = StaticPets{}
	}
	return &Builder{races: races, pets: pets}
}

// Build folds race passive, equipment and pet mutation into a Combatant.
// Unknown races contribute nothing; an unknown pet is an error.
func (b *Builder) Build(p Profile) (model.Combatant, error) {
	if strings.TrimSpace(p.ID) == "" {
		return model.Combatant{}, fmt.Errorf("building %q: %w", p.Name, ErrMissingID)
	}

	name := p.Name
	if name == "" {
		name = p.ID
	}

	stats := p.Stats.Sanitize()
	for _, item := range p.Equipment {
		stats = stats.Add(item.Sanitize())
	}

	immunities := appendUnique(nil, p.Immunities...)
	if passive, ok := b.races.RacePassive(p.Race); ok {
		stats = stats.Add(fromBlock(passive.Bonus))
		immunities = appendUnique(immunities, passive.Immunities...)
	}

	elements := appendUnique(nil, p.Elements...)
	power := p.Power
	if p.Pet != "" {
		mutation, ok := b.pets.PetMutation(p.Pet)
		if !ok {
			return model.Combatant{}, fmt.Errorf("building %s: pet %q: %w", p.ID, p.Pet, ErrUnknownPet)
		}
		stats = stats.Add(fromBlock(mutation.Bonus))
		if mutation.Element != "" {
			elements = appendUnique(elements, mutation.Element)
		}
		power += mutation.Power
	}

	var spell *model.SpellInfo
	if p.Spell != nil {
		s := *p.Spell
		spell = &s
	}

	return model.Combatant{
		ID:    p.ID,
		Name:  name,
		Stats: stats.Sanitize(),
		Race:  p.Race,
		Rank:  p.Rank,
		Affinity: model.ElementalAffinity{
			Elements: elements,
			Power:    power,
		},
		Immunities: immunities,
		Level:      p.Level,
		IsPlayer:   p.IsPlayer,
		Spell:      spell,
	}, nil
}

func fromBlock(b data.StatBlock) model.CombatStats {
	return model.CombatStats{Str: b.Str, Def: b.Def, Spd: b.Spd, Int: b.Int, Luck: b.Luck, Pot: b.Pot}
}

// appendUnique appends normalized element names not already in dst.
func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		v = data.NormalizeElement(v)
		if v != "" && !slices.Contains(dst, v) {
			dst = append(dst, v)
		}
	}
	return dst
}
