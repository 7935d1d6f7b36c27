package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"ticketing-rewards/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory User Repo ---

type inMemoryUserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*domain.User
}

func newInMemoryUserRepo() *inMemoryUserRepo {
	return &inMemoryUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *inMemoryUserRepo) add(u *domain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
}

func (r *inMemoryUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *inMemoryUserRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.User, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryUserRepo) UpdateLastRewardAt(ctx context.Context, tx pgx.Tx, id uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return fmt.Errorf("user not found")
	}
	u.LastRewardAt = &at
	return nil
}

// --- In-Memory Booking Repo ---

type booking struct {
	userID uuid.UUID
	date   time.Time
}

type inMemoryBookingRepo struct {
	mu       sync.RWMutex
	bookings []booking
}

func newInMemoryBookingRepo() *inMemoryBookingRepo {
	return &inMemoryBookingRepo{}
}

func (r *inMemoryBookingRepo) add(userID uuid.UUID, date time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append(r.bookings, booking{userID: userID, date: date})
}

func (r *inMemoryBookingRepo) CountForUserSince(ctx context.Context, tx pgx.Tx, userID uuid.UUID, since time.Time) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, b := range r.bookings {
		if b.userID == userID && !b.date.Before(since) {
			count++
		}
	}
	return count, nil
}

func (r *inMemoryBookingRepo) ActiveUserIDsSince(ctx context.Context, since time.Time) ([]uuid.UUID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for _, b := range r.bookings {
		if b.date.Before(since) {
			continue
		}
		if _, ok := seen[b.userID]; ok {
			continue
		}
		seen[b.userID] = struct{}{}
		ids = append(ids, b.userID)
	}
	return ids, nil
}

// --- In-Memory Wallet Repo ---

type inMemoryWalletRepo struct {
	mu      sync.RWMutex
	wallets map[uuid.UUID]*domain.Wallet
	entries map[uuid.UUID][]domain.WalletEntry
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{
		wallets: make(map[uuid.UUID]*domain.Wallet),
		entries: make(map[uuid.UUID][]domain.WalletEntry),
	}
}

func (r *inMemoryWalletRepo) setBalance(id uuid.UUID, balance int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if w, ok := r.wallets[id]; ok {
		w.Balance = balance
	}
}

func (r *inMemoryWalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wallets[w.ID] = w
	return nil
}

func (r *inMemoryWalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *inMemoryWalletRepo) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, w := range r.wallets {
		if w.OwnerID == ownerID {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryWalletRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Wallet, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryWalletRepo) GetByOwnerIDForUpdate(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID) (*domain.Wallet, error) {
	return r.GetByOwnerID(ctx, ownerID)
}

func (r *inMemoryWalletRepo) ApplyEntry(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, amount int64, direction domain.EntryDirection, description string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[walletID]
	if !ok {
		return fmt.Errorf("wallet not found")
	}
	newBalance := w.Balance + direction.SignedDelta(amount)
	if newBalance < 0 {
		// Mirrors the CHECK (balance >= 0) constraint.
		return fmt.Errorf("balance check violation")
	}
	w.Balance = newBalance
	w.UpdatedAt = time.Now().UTC()
	r.entries[walletID] = append(r.entries[walletID], domain.WalletEntry{
		ID:          uuid.New(),
		WalletID:    walletID,
		Amount:      amount,
		Direction:   direction,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	})
	return nil
}

func (r *inMemoryWalletRepo) ListEntries(ctx context.Context, walletID uuid.UUID) ([]domain.WalletEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored := r.entries[walletID]
	// Most recent first.
	out := make([]domain.WalletEntry, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		out = append(out, stored[i])
	}
	return out, nil
}

// --- In-Memory Reward Repo ---

type inMemoryRewardRepo struct {
	mu      sync.RWMutex
	rewards map[uuid.UUID]*domain.Reward
}

func newInMemoryRewardRepo() *inMemoryRewardRepo {
	return &inMemoryRewardRepo{rewards: make(map[uuid.UUID]*domain.Reward)}
}

func (r *inMemoryRewardRepo) Create(ctx context.Context, tx pgx.Tx, reward *domain.Reward) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *reward
	r.rewards[reward.ID] = &cp
	return nil
}

func (r *inMemoryRewardRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reward, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rw, ok := r.rewards[id]
	if !ok {
		return nil, nil
	}
	cp := *rw
	return &cp, nil
}

func (r *inMemoryRewardRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Reward, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryRewardRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Reward, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Reward
	for _, rw := range r.rewards {
		if rw.UserID == userID {
			out = append(out, *rw)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IssuedAt.After(out[j].IssuedAt) })
	return out, nil
}

func (r *inMemoryRewardRepo) ListPendingByUserForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID) ([]domain.Reward, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Reward
	for _, rw := range r.rewards {
		if rw.UserID == userID && rw.Status == domain.RewardStatusPending {
			out = append(out, *rw)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IssuedAt.Before(out[j].IssuedAt) })
	return out, nil
}

func (r *inMemoryRewardRepo) MarkRedeemed(ctx context.Context, tx pgx.Tx, ids []uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		rw, ok := r.rewards[id]
		if !ok {
			return fmt.Errorf("reward not found")
		}
		rw.Status = domain.RewardStatusRedeemed
		rw.Scratching = false
		redeemedAt := at
		rw.RedeemedAt = &redeemedAt
	}
	return nil
}

func (r *inMemoryRewardRepo) CountPending(ctx context.Context, userID uuid.UUID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, rw := range r.rewards {
		if rw.UserID == userID && rw.Status == domain.RewardStatusPending {
			count++
		}
	}
	return count, nil
}

// --- Serializing Transactor ---

// serializingTransactor grants one transaction at a time: Begin takes a global
// lock which Commit or Rollback releases. This stands in for the row-level
// FOR UPDATE locks PostgreSQL provides, so lock-dependent invariants (no
// treasury overdraw, one reward per window) hold deterministically under
// concurrent requests.
type serializingTransactor struct {
	mu sync.Mutex
}

func newSerializingTransactor() *serializingTransactor {
	return &serializingTransactor{}
}

func (t *serializingTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	tx := &serialTx{}
	tx.release = func() { t.mu.Unlock() }
	return tx, nil
}

// serialTx is a pgx.Tx that only tracks lock release. Services call Rollback
// via defer even after Commit, so the release must be idempotent.
type serialTx struct {
	release func()
	once    sync.Once
}

func (t *serialTx) Commit(ctx context.Context) error {
	t.once.Do(t.release)
	return nil
}

func (t *serialTx) Rollback(ctx context.Context) error {
	t.once.Do(t.release)
	return nil
}

func (t *serialTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *serialTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *serialTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *serialTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *serialTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *serialTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *serialTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *serialTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *serialTx) Conn() *pgx.Conn { return nil }
