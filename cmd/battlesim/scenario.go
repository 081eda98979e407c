package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/battlecore/internal/game/combat"
	"github.com/udisondev/battlecore/internal/game/roster"
	"github.com/udisondev/battlecore/internal/model"
)

// Scenario is a YAML file listing matchups to simulate.
type Scenario struct {
	Matchups []Matchup `yaml:"matchups"`
}

// Matchup is one player/NPC pairing, fought Repeat times.
type Matchup struct {
	Name   string         `yaml:"name"`
	Player roster.Profile `yaml:"player"`
	NPC    roster.Profile `yaml:"npc"`
	Boss   bool           `yaml:"boss"`
	Repeat int            `yaml:"repeat"` // 0 = once
}

// job is one battle to run: a resolved matchup plus its position in the run.
type job struct {
	index  int
	name   string
	player model.Combatant
	npc    model.Combatant
	boss   bool
}

// LoadScenario reads and parses a scenario file.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("reading scenario %s: %w", path, err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if len(sc.Matchups) == 0 {
		return Scenario{}, fmt.Errorf("scenario %s: %w", path, errNoMatchups)
	}
	return sc, nil
}

var errNoMatchups = errors.New("no matchups defined")

// expand resolves every matchup once and repeats it into jobs.
func (sc Scenario) expand(b *roster.Builder) ([]job, error) {
	var jobs []job
	for i, m := range sc.Matchups {
		name := m.Name
		if name == "" {
			name = fmt.Sprintf("matchup-%d", i+1)
		}

		player, err := b.Build(m.Player)
		if err != nil {
			return nil, fmt.Errorf("%s: player: %w", name, err)
		}
		npc, err := b.Build(m.NPC)
		if err != nil {
			return nil, fmt.Errorf("%s: npc: %w", name, err)
		}
		if err := combat.ValidateMatchup(player, npc); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		for range max(m.Repeat, 1) {
			jobs = append(jobs, job{
				index:  len(jobs),
				name:   name,
				player: player,
				npc:    npc,
				boss:   m.Boss,
			})
		}
	}
	return jobs, nil
}
