// Package replay fingerprints battle logs and re-simulates recorded battles.
//
// A battle is fully determined by its two snapshots, its rules and the seed
// of its random source. A Record stores exactly that plus the digest of the
// produced log, so any stored battle can be re-run and checked.
package replay

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/udisondev/battlecore/internal/game/combat"
	"github.com/udisondev/battlecore/internal/model"
	"github.com/udisondev/battlecore/internal/rng"
)

// ErrDigestMismatch is returned by Verify when a re-run diverges from the record.
var ErrDigestMismatch = errors.New("replay digest mismatch")

// Record is everything needed to reproduce one battle.
type Record struct {
	Seed   uint64          `json:"seed"`
	Rules  combat.Rules    `json:"rules"`
	Player model.Combatant `json:"player"`
	NPC    model.Combatant `json:"npc"`
	Digest string          `json:"digest"`
}

// digestInput is the canonical part of a result. Rewards are excluded:
// they are attached after the battle and do not depend on the seed.
type digestInput struct {
	WinnerID string              `json:"winner_id"`
	LoserID  string              `json:"loser_id"`
	FinalHP  map[string]int      `json:"final_hp"`
	Rounds   []model.CombatRound `json:"rounds"`
}

// Digest returns the hex BLAKE2b-256 of the result's outcome and round log.
func Digest(result *model.CombatResult) (string, error) {
	if result == nil {
		return "", errors.New("digest of nil result")
	}
	payload, err := json.Marshal(digestInput{
		WinnerID: result.WinnerID,
		LoserID:  result.LoserID,
		FinalHP:  result.FinalHP,
		Rounds:   result.Rounds,
	})
	if err != nil {
		return "", fmt.Errorf("encoding battle log: %w", err)
	}
	sum := blake2b.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}

// Run simulates the recorded battle from its seed.
func Run(rec Record) *model.CombatResult {
	return combat.NewEngine(rng.NewSeeded(rec.Seed), rec.Rules).Run(rec.Player, rec.NPC)
}

// Capture runs a battle with a seeded source and returns its record.
func Capture(seed uint64, rules combat.Rules, player, npc model.Combatant) (Record, *model.CombatResult, error) {
	rec := Record{
		Seed:   seed,
		Rules:  rules,
		Player: player,
		NPC:    npc,
	}
	result := Run(rec)

	digest, err := Digest(result)
	if err != nil {
		return Record{}, nil, err
	}
	rec.Digest = digest
	return rec, result, nil
}

// Verify re-runs rec and compares the digest of the new log with rec.Digest.
func Verify(rec Record) error {
	got, err := Digest(Run(rec))
	if err != nil {
		return err
	}
	if got != rec.Digest {
		return fmt.Errorf("seed %d: recorded %s, replayed %s: %w", rec.Seed, rec.Digest, got, ErrDigestMismatch)
	}
	return nil
}
