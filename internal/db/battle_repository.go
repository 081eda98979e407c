package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/battlecore/internal/game/combat"
	"github.com/udisondev/battlecore/internal/game/replay"
	"github.com/udisondev/battlecore/internal/model"
)

// ErrBattleNotFound is returned by Get for an unknown battle ID.
var ErrBattleNotFound = errors.New("battle not found")

// Battle is one stored battle: how to replay it and what it produced.
type Battle struct {
	ID        uuid.UUID
	Record    replay.Record
	Result    *model.CombatResult
	IsBoss    bool
	CreatedAt time.Time
}

// CombatantRecord is the running tally of one combatant across battles.
type CombatantRecord struct {
	CombatantID    string
	Wins           int
	Losses         int
	Gold           int64
	TrainingPoints int64
	SoulShards     int64
	PetExp         int64
	Runes          int64
	UpdatedAt      time.Time
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BattleRepository stores battle logs and combatant tallies.
type BattleRepository struct {
	pool *pgxpool.Pool
}

// NewBattleRepository creates a new BattleRepository.
func NewBattleRepository(pool *pgxpool.Pool) *BattleRepository {
	return &BattleRepository{pool: pool}
}

// Save inserts a battle. A zero ID is replaced with a fresh UUID.
func (r *BattleRepository) Save(ctx context.Context, b *Battle) error {
	return saveBattle(ctx, r.pool, b)
}

// ApplyOutcome credits the winner with a win and the reward, the loser with a loss.
// Both rows are created on first use.
func (r *BattleRepository) ApplyOutcome(ctx context.Context, result *model.CombatResult) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		return applyOutcome(ctx, tx, result)
	})
}

// Persist saves the battle and applies its outcome in one transaction.
func (r *BattleRepository) Persist(ctx context.Context, b *Battle) error {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if err := saveBattle(ctx, tx, b); err != nil {
			return err
		}
		return applyOutcome(ctx, tx, b.Result)
	})
	if err != nil {
		return fmt.Errorf("persisting battle %s: %w", b.ID, err)
	}
	return nil
}

// Get loads a battle by ID. Returns ErrBattleNotFound if absent.
func (r *BattleRepository) Get(ctx context.Context, id uuid.UUID) (*Battle, error) {
	query := `
		SELECT seed, max_rounds, tie_break, digest, is_boss,
		       player, npc, rounds, final_hp, max_hp, damage_dealt,
		       winner_id, loser_id,
		       gold, training_points, soul_shards, pet_exp, runes,
		       created_at
		FROM battles
		WHERE battle_id = $1
	`

	var (
		seed                               int64
		maxRounds                          int
		tieBreak                           string
		playerJSON, npcJSON                []byte
		roundsJSON, finalHPJSON, dealtJSON []byte
		maxHPJSON                          []byte
		reward                             model.Reward
	)
	b := Battle{ID: id, Result: &model.CombatResult{}}

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&seed, &maxRounds, &tieBreak, &b.Record.Digest, &b.IsBoss,
		&playerJSON, &npcJSON, &roundsJSON, &finalHPJSON, &maxHPJSON, &dealtJSON,
		&b.Result.WinnerID, &b.Result.LoserID,
		&reward.Gold, &reward.TrainingPoints, &reward.SoulShards, &reward.PetExp, &reward.Runes,
		&b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("loading battle %s: %w", id, ErrBattleNotFound)
		}
		return nil, fmt.Errorf("loading battle %s: %w", id, err)
	}

	b.Record.Seed = uint64(seed)
	b.Record.Rules = combat.Rules{MaxRounds: maxRounds, TieBreak: combat.TieBreak(tieBreak)}

	for _, field := range []struct {
		name string
		raw  []byte
		dst  any
	}{
		{"player", playerJSON, &b.Record.Player},
		{"npc", npcJSON, &b.Record.NPC},
		{"rounds", roundsJSON, &b.Result.Rounds},
		{"final_hp", finalHPJSON, &b.Result.FinalHP},
		{"max_hp", maxHPJSON, &b.Result.MaxHP},
		{"damage_dealt", dealtJSON, &b.Result.DamageDealt},
	} {
		if err := json.Unmarshal(field.raw, field.dst); err != nil {
			return nil, fmt.Errorf("decoding %s of battle %s: %w", field.name, id, err)
		}
	}

	if !reward.IsZero() {
		b.Result.Reward = &reward
	}
	return &b, nil
}

// RecentByCombatant returns IDs of the latest battles the combatant fought, newest first.
func (r *BattleRepository) RecentByCombatant(ctx context.Context, combatantID string, limit int) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT battle_id FROM battles
		 WHERE player_id = $1 OR npc_id = $1
		 ORDER BY created_at DESC, battle_id
		 LIMIT $2`, combatantID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying battles of %s: %w", combatantID, err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("collecting battles of %s: %w", combatantID, err)
	}
	return ids, nil
}

// Record returns the tally of a combatant.
// Returns nil if the combatant never fought (not an error).
func (r *BattleRepository) Record(ctx context.Context, combatantID string) (*CombatantRecord, error) {
	var rec CombatantRecord
	err := r.pool.QueryRow(ctx,
		`SELECT combatant_id, wins, losses, gold, training_points, soul_shards, pet_exp, runes, updated_at
		 FROM combatant_records WHERE combatant_id = $1`, combatantID,
	).Scan(&rec.CombatantID, &rec.Wins, &rec.Losses, &rec.Gold, &rec.TrainingPoints,
		&rec.SoulShards, &rec.PetExp, &rec.Runes, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying record of %s: %w", combatantID, err)
	}
	return &rec, nil
}

func saveBattle(ctx context.Context, q querier, b *Battle) error {
	if b.Result == nil {
		return errors.New("saving battle: nil result")
	}
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	player, err := json.Marshal(b.Record.Player)
	if err != nil {
		return fmt.Errorf("encoding player: %w", err)
	}
	npc, err := json.Marshal(b.Record.NPC)
	if err != nil {
		return fmt.Errorf("encoding npc: %w", err)
	}
	rounds, err := json.Marshal(b.Result.Rounds)
	if err != nil {
		return fmt.Errorf("encoding rounds: %w", err)
	}
	finalHP, err := json.Marshal(b.Result.FinalHP)
	if err != nil {
		return fmt.Errorf("encoding final hp: %w", err)
	}
	maxHP, err := json.Marshal(b.Result.MaxHP)
	if err != nil {
		return fmt.Errorf("encoding max hp: %w", err)
	}
	dealt, err := json.Marshal(b.Result.DamageDealt)
	if err != nil {
		return fmt.Errorf("encoding damage: %w", err)
	}

	var reward model.Reward
	if b.Result.Reward != nil {
		reward = *b.Result.Reward
	}

	err = q.QueryRow(ctx,
		`INSERT INTO battles (
			battle_id, seed, max_rounds, tie_break, player_id, npc_id,
			winner_id, loser_id, turns, is_boss, digest,
			player, npc, rounds, final_hp, max_hp, damage_dealt,
			gold, training_points, soul_shards, pet_exp, runes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING created_at`,
		b.ID, int64(b.Record.Seed), b.Record.Rules.MaxRounds, string(b.Record.Rules.TieBreak),
		b.Record.Player.ID, b.Record.NPC.ID,
		b.Result.WinnerID, b.Result.LoserID, b.Result.TurnsPlayed(), b.IsBoss, b.Record.Digest,
		player, npc, rounds, finalHP, maxHP, dealt,
		reward.Gold, reward.TrainingPoints, reward.SoulShards, reward.PetExp, reward.Runes,
	).Scan(&b.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting battle %s: %w", b.ID, err)
	}
	return nil
}

func applyOutcome(ctx context.Context, q querier, result *model.CombatResult) error {
	if result == nil {
		return errors.New("applying outcome: nil result")
	}

	var reward model.Reward
	if result.Reward != nil {
		reward = *result.Reward
	}

	_, err := q.Exec(ctx,
		`INSERT INTO combatant_records (combatant_id, wins, gold, training_points, soul_shards, pet_exp, runes)
		 VALUES ($1, 1, $2, $3, $4, $5, $6)
		 ON CONFLICT (combatant_id) DO UPDATE SET
		   wins            = combatant_records.wins + 1,
		   gold            = combatant_records.gold + EXCLUDED.gold,
		   training_points = combatant_records.training_points + EXCLUDED.training_points,
		   soul_shards     = combatant_records.soul_shards + EXCLUDED.soul_shards,
		   pet_exp         = combatant_records.pet_exp + EXCLUDED.pet_exp,
		   runes           = combatant_records.runes + EXCLUDED.runes,
		   updated_at      = NOW()`,
		result.WinnerID, reward.Gold, reward.TrainingPoints, reward.SoulShards, reward.PetExp, reward.Runes,
	)
	if err != nil {
		return fmt.Errorf("crediting win to %s: %w", result.WinnerID, err)
	}

	_, err = q.Exec(ctx,
		`INSERT INTO combatant_records (combatant_id, losses)
		 VALUES ($1, 1)
		 ON CONFLICT (combatant_id) DO UPDATE SET
		   losses     = combatant_records.losses + 1,
		   updated_at = NOW()`,
		result.LoserID,
	)
	if err != nil {
		return fmt.Errorf("crediting loss to %s: %w", result.LoserID, err)
	}
	return nil
}
