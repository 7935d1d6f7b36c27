package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ticketing-rewards/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RewardRepo implements ports.RewardRepository.
type RewardRepo struct {
	pool Pool
}

// NewRewardRepo creates a new RewardRepo.
func NewRewardRepo(pool Pool) *RewardRepo {
	return &RewardRepo{pool: pool}
}

// Create inserts a new reward within the given transaction.
func (r *RewardRepo) Create(ctx context.Context, tx pgx.Tx, rw *domain.Reward) error {
	query := `INSERT INTO rewards (id, user_id, outcome, amount, status, scratching, issued_at, expires_at, redeemed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		rw.ID, rw.UserID, rw.Outcome, rw.Amount, rw.Status,
		rw.Scratching, rw.IssuedAt, rw.ExpiresAt, rw.RedeemedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reward: %w", err)
	}
	return nil
}

// GetByID fetches a reward by its UUID (without locking).
func (r *RewardRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reward, error) {
	query := `SELECT id, user_id, outcome, amount, status, scratching, issued_at, expires_at, redeemed_at
		FROM rewards WHERE id = $1`

	rw := &domain.Reward{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rw.ID, &rw.UserID, &rw.Outcome, &rw.Amount, &rw.Status,
		&rw.Scratching, &rw.IssuedAt, &rw.ExpiresAt, &rw.RedeemedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reward by id: %w", err)
	}
	return rw, nil
}

// GetByIDForUpdate fetches a reward by ID with pessimistic locking.
// This MUST be called within a transaction.
func (r *RewardRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Reward, error) {
	query := `SELECT id, user_id, outcome, amount, status, scratching, issued_at, expires_at, redeemed_at
		FROM rewards WHERE id = $1 FOR UPDATE`

	rw := &domain.Reward{}
	err := tx.QueryRow(ctx, query, id).Scan(
		&rw.ID, &rw.UserID, &rw.Outcome, &rw.Amount, &rw.Status,
		&rw.Scratching, &rw.IssuedAt, &rw.ExpiresAt, &rw.RedeemedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reward for update: %w", err)
	}
	return rw, nil
}

// ListByUser returns all of a user's rewards, most recently issued first.
func (r *RewardRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Reward, error) {
	query := `SELECT id, user_id, outcome, amount, status, scratching, issued_at, expires_at, redeemed_at
		FROM rewards WHERE user_id = $1 ORDER BY issued_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list rewards by user: %w", err)
	}
	defer rows.Close()

	return scanRewards(rows)
}

// ListPendingByUserForUpdate locks and returns every un-redeemed reward of the
// user, expired or not, ordered by issue time. This MUST be called within a
// transaction.
func (r *RewardRepo) ListPendingByUserForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID) ([]domain.Reward, error) {
	query := `SELECT id, user_id, outcome, amount, status, scratching, issued_at, expires_at, redeemed_at
		FROM rewards WHERE user_id = $1 AND status = $2 ORDER BY issued_at FOR UPDATE`

	rows, err := tx.Query(ctx, query, userID, domain.RewardStatusPending)
	if err != nil {
		return nil, fmt.Errorf("list pending rewards for update: %w", err)
	}
	defer rows.Close()

	return scanRewards(rows)
}

// MarkRedeemed flips the given rewards to Redeemed in one batch update.
func (r *RewardRepo) MarkRedeemed(ctx context.Context, tx pgx.Tx, ids []uuid.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE rewards SET status = $1, scratching = FALSE, redeemed_at = $2 WHERE id = ANY($3)`

	tag, err := tx.Exec(ctx, query, domain.RewardStatusRedeemed, at, ids)
	if err != nil {
		return fmt.Errorf("mark rewards redeemed: %w", err)
	}
	if tag.RowsAffected() != int64(len(ids)) {
		return fmt.Errorf("mark rewards redeemed: updated %d of %d rows", tag.RowsAffected(), len(ids))
	}
	return nil
}

// CountPending counts the user's un-redeemed rewards.
func (r *RewardRepo) CountPending(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM rewards WHERE user_id = $1 AND status = $2`

	var count int64
	err := r.pool.QueryRow(ctx, query, userID, domain.RewardStatusPending).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count pending rewards: %w", err)
	}
	return count, nil
}

func scanRewards(rows pgx.Rows) ([]domain.Reward, error) {
	var rewards []domain.Reward
	for rows.Next() {
		var rw domain.Reward
		if err := rows.Scan(
			&rw.ID, &rw.UserID, &rw.Outcome, &rw.Amount, &rw.Status,
			&rw.Scratching, &rw.IssuedAt, &rw.ExpiresAt, &rw.RedeemedAt,
		); err != nil {
			return nil, fmt.Errorf("scan reward: %w", err)
		}
		rewards = append(rewards, rw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rewards: %w", err)
	}
	return rewards, nil
}
