package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/battlecore/internal/db"
	"github.com/udisondev/battlecore/internal/game/combat"
	"github.com/udisondev/battlecore/internal/game/replay"
	"github.com/udisondev/battlecore/internal/model"
	"github.com/udisondev/battlecore/internal/rng"
)

// battleStore is the part of db.BattleRepository the simulator needs.
type battleStore interface {
	Persist(ctx context.Context, b *db.Battle) error
}

// simulator runs jobs in parallel. Every battle owns a source seeded from
// the base seed and its index, so the report does not depend on scheduling.
type simulator struct {
	rules        combat.Rules
	seed         uint64
	workers      int
	verify       bool
	store        battleStore
	storeTimeout time.Duration
}

// Report is the JSON output for one battle.
type Report struct {
	ID       uuid.UUID           `json:"id"`
	Matchup  string              `json:"matchup"`
	Seed     uint64              `json:"seed"`
	Digest   string              `json:"digest"`
	Verified bool                `json:"verified,omitempty"`
	Result   *model.CombatResult `json:"result"`
}

func (s *simulator) runAll(ctx context.Context, jobs []job) ([]Report, error) {
	reports := make([]Report, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(s.workers, 1))

	for _, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report, err := s.runOne(gctx, j)
			if err != nil {
				return fmt.Errorf("battle %d (%s): %w", j.index, j.name, err)
			}
			reports[j.index] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *simulator) runOne(ctx context.Context, j job) (Report, error) {
	seed := rng.Derive(s.seed, j.index)

	rec, result, err := replay.Capture(seed, s.rules, j.player, j.npc)
	if err != nil {
		return Report{}, err
	}
	combat.AttachReward(result, j.player, j.npc, j.boss)

	report := Report{
		ID:      uuid.New(),
		Matchup: j.name,
		Seed:    seed,
		Digest:  rec.Digest,
		Result:  result,
	}

	if s.verify {
		if err := replay.Verify(rec); err != nil {
			return Report{}, err
		}
		report.Verified = true
	}

	slog.Debug("battle done",
		"matchup", j.name,
		"index", j.index,
		"winner", result.WinnerID,
		"turns", result.TurnsPlayed())

	if s.store != nil {
		storeCtx := ctx
		if s.storeTimeout > 0 {
			var cancel context.CancelFunc
			storeCtx, cancel = context.WithTimeout(ctx, s.storeTimeout)
			defer cancel()
		}
		if err := s.store.Persist(storeCtx, &db.Battle{
			ID:     report.ID,
			Record: rec,
			Result: result,
			IsBoss: j.boss,
		}); err != nil {
			return Report{}, err
		}
	}
	return report, nil
}
