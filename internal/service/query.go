package service

import (
	"context"
	"fmt"
	"time"

	"ticketing-rewards/internal/core/domain"
	"ticketing-rewards/internal/core/ports"
	"ticketing-rewards/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const countCacheTTL = 5 * time.Minute

// RewardQueryImpl implements ports.RewardQueryService.
type RewardQueryImpl struct {
	rewardRepo ports.RewardRepository
	countCache ports.RewardCountCache
	log        zerolog.Logger
}

// NewRewardQuery creates a new RewardQueryImpl.
func NewRewardQuery(rewardRepo ports.RewardRepository, countCache ports.RewardCountCache, log zerolog.Logger) *RewardQueryImpl {
	return &RewardQueryImpl{
		rewardRepo: rewardRepo,
		countCache: countCache,
		log:        log,
	}
}

// ListRewards returns the user's full reward history, newest first.
func (s *RewardQueryImpl) ListRewards(ctx context.Context, userID uuid.UUID) ([]domain.Reward, error) {
	rewards, err := s.rewardRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list rewards: %w", err))
	}
	return rewards, nil
}

// CountPending returns the user's pending-reward count, served from Redis when
// possible. A cache failure falls through to the database.
func (s *RewardQueryImpl) CountPending(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, hit, err := s.countCache.Get(ctx, userID)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID.String()).Msg("reward count cache read failed, falling through to DB")
	}
	if hit {
		return count, nil
	}

	count, err = s.rewardRepo.CountPending(ctx, userID)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("count pending rewards: %w", err))
	}

	if err := s.countCache.Set(ctx, userID, count, countCacheTTL); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID.String()).Msg("failed to cache reward count")
	}

	return count, nil
}

// WalletQueryImpl implements ports.WalletQueryService.
type WalletQueryImpl struct {
	walletRepo ports.WalletRepository
}

// NewWalletQuery creates a new WalletQueryImpl.
func NewWalletQuery(walletRepo ports.WalletRepository) *WalletQueryImpl {
	return &WalletQueryImpl{walletRepo: walletRepo}
}

// GetStatement returns the owner's wallet with its full ledger, newest first.
func (s *WalletQueryImpl) GetStatement(ctx context.Context, ownerID uuid.UUID) (*ports.WalletStatement, error) {
	wallet, err := s.walletRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrWalletMissing("User")
	}

	entries, err := s.walletRepo.ListEntries(ctx, wallet.ID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list wallet entries: %w", err))
	}

	return &ports.WalletStatement{Wallet: *wallet, Entries: entries}, nil
}
