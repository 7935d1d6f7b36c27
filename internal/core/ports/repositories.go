package ports

import (
	"context"
	"time"

	"ticketing-rewards/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRepository defines the read/update surface this service needs from the
// identity store. Methods accepting pgx.Tx run inside transaction blocks and
// take row locks where named ForUpdate.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.User, error)
	UpdateLastRewardAt(ctx context.Context, tx pgx.Tx, id uuid.UUID, at time.Time) error
}

// BookingRepository reads booking activity owned by the booking subsystem.
type BookingRepository interface {
	// CountForUserSince counts the user's bookings with a booking date at or
	// after since, inside the given transaction's snapshot.
	CountForUserSince(ctx context.Context, tx pgx.Tx, userID uuid.UUID, since time.Time) (int64, error)
	// ActiveUserIDsSince lists distinct user ids with at least one booking
	// since the given time. Used by the eligibility sweep.
	ActiveUserIDsSince(ctx context.Context, since time.Time) ([]uuid.UUID, error)
}

// WalletRepository defines persistence operations for wallets and their
// append-only ledger entries.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*domain.Wallet, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error)
	GetByOwnerIDForUpdate(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID) (*domain.Wallet, error)
	// ApplyEntry moves the balance by the entry's signed delta and appends the
	// ledger entry, both inside the given transaction.
	ApplyEntry(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, amount int64, direction domain.EntryDirection, description string) error
	ListEntries(ctx context.Context, walletID uuid.UUID) ([]domain.WalletEntry, error)
}

// RewardRepository defines persistence operations for rewards.
type RewardRepository interface {
	Create(ctx context.Context, tx pgx.Tx, reward *domain.Reward) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reward, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Reward, error)
	// ListByUser returns all of a user's rewards, most recently issued first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Reward, error)
	// ListPendingByUserForUpdate locks and returns every un-redeemed reward of
	// the user, expired or not.
	ListPendingByUserForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID) ([]domain.Reward, error)
	// MarkRedeemed flips the given rewards to Redeemed in one batch update.
	MarkRedeemed(ctx context.Context, tx pgx.Tx, ids []uuid.UUID, at time.Time) error
	CountPending(ctx context.Context, userID uuid.UUID) (int64, error)
}

// RewardCountCache is the Redis fast path for pending-reward counts.
type RewardCountCache interface {
	Get(ctx context.Context, userID uuid.UUID) (int64, bool, error) // count, hit, error
	Set(ctx context.Context, userID uuid.UUID, count int64, ttl time.Duration) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
