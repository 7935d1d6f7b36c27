package service

import (
	"context"
	"fmt"
	"time"

	"ticketing-rewards/internal/core/domain"
	"ticketing-rewards/internal/core/ports"
	"ticketing-rewards/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// RedemptionServiceImpl implements ports.RewardRedemptionService.
//
// Every settlement locks the treasury wallet before the user wallet, so
// concurrent redemptions across users always acquire locks in the same order.
type RedemptionServiceImpl struct {
	rewardRepo ports.RewardRepository
	walletRepo ports.WalletRepository
	userRepo   ports.UserRepository
	countCache ports.RewardCountCache
	transactor ports.DBTransactor
	notifier   ports.Notifier
	treasuryID uuid.UUID
	log        zerolog.Logger
}

// NewRedemptionService creates a new RedemptionServiceImpl. treasuryID may be
// uuid.Nil when unconfigured; redemptions then fail with a wallet-missing
// error instead of the process refusing to start.
func NewRedemptionService(
	rewardRepo ports.RewardRepository,
	walletRepo ports.WalletRepository,
	userRepo ports.UserRepository,
	countCache ports.RewardCountCache,
	transactor ports.DBTransactor,
	notifier ports.Notifier,
	treasuryID uuid.UUID,
	log zerolog.Logger,
) *RedemptionServiceImpl {
	return &RedemptionServiceImpl{
		rewardRepo: rewardRepo,
		walletRepo: walletRepo,
		userRepo:   userRepo,
		countCache: countCache,
		transactor: transactor,
		notifier:   notifier,
		treasuryID: treasuryID,
		log:        log,
	}
}

// RedeemOne settles a single reward: the treasury is debited, the user's
// wallet credited, and the reward marked redeemed, all in one transaction.
func (s *RedemptionServiceImpl) RedeemOne(ctx context.Context, rewardID uuid.UUID) (*ports.RedeemResult, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	reward, err := s.rewardRepo.GetByIDForUpdate(ctx, dbTx, rewardID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock reward: %w", err))
	}
	if reward == nil {
		return nil, apperror.ErrRewardNotFound()
	}
	if reward.Status == domain.RewardStatusRedeemed {
		return nil, apperror.ErrAlreadyRedeemed()
	}

	now := time.Now().UTC()
	if reward.Expired(now) {
		return nil, apperror.ErrRewardExpired()
	}

	user, err := s.userRepo.GetByID(ctx, reward.UserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get user: %w", err))
	}
	if user == nil {
		return nil, apperror.ErrUserNotFound()
	}

	treasury, userWallet, err := s.lockWallets(ctx, dbTx, reward.UserID)
	if err != nil {
		return nil, err
	}
	if treasury.Balance < reward.Amount {
		return nil, apperror.ErrInsufficientTreasury()
	}

	if reward.Amount > 0 {
		debitDesc := fmt.Sprintf("Reward Redeemed by %s - Rs.%d", user.Name, reward.Amount)
		if err := s.walletRepo.ApplyEntry(ctx, dbTx, treasury.ID, reward.Amount, domain.EntryDirectionDebit, debitDesc); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("debit treasury: %w", err))
		}

		creditDesc := fmt.Sprintf("Reward Redeemed - Rs.%d", reward.Amount)
		if err := s.walletRepo.ApplyEntry(ctx, dbTx, userWallet.ID, reward.Amount, domain.EntryDirectionCredit, creditDesc); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("credit user wallet: %w", err))
		}
	}

	if err := s.rewardRepo.MarkRedeemed(ctx, dbTx, []uuid.UUID{reward.ID}, now); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("mark redeemed: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	reward.Status = domain.RewardStatusRedeemed
	reward.Scratching = false
	reward.RedeemedAt = &now

	s.postCommit(ctx, reward.UserID, reward.Amount, false)

	s.log.Info().
		Str("reward_id", reward.ID.String()).
		Str("user_id", reward.UserID.String()).
		Int64("amount", reward.Amount).
		Msg("reward redeemed")

	return &ports.RedeemResult{Reward: *reward, Amount: reward.Amount}, nil
}

// RedeemAll settles every redeemable pending reward of the user in one
// transaction. Expired rewards are skipped and reported, never mutated.
func (s *RedemptionServiceImpl) RedeemAll(ctx context.Context, userID uuid.UUID) (*ports.BatchRedeemResult, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	pending, err := s.rewardRepo.ListPendingByUserForUpdate(ctx, dbTx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock pending rewards: %w", err))
	}
	if len(pending) == 0 {
		return nil, apperror.ErrNothingPending()
	}

	now := time.Now().UTC()

	var (
		redeemable []domain.Reward
		skipped    []ports.SkippedReward
		total      int64
	)
	for _, rw := range pending {
		if rw.Expired(now) {
			skipped = append(skipped, ports.SkippedReward{
				ID:        rw.ID,
				Amount:    rw.Amount,
				ExpiresAt: rw.ExpiresAt,
			})
			continue
		}
		redeemable = append(redeemable, rw)
		total += rw.Amount
	}
	if len(redeemable) == 0 {
		return nil, apperror.ErrAllExpiredRewards(skipped)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get user: %w", err))
	}
	if user == nil {
		return nil, apperror.ErrUserNotFound()
	}

	treasury, userWallet, err := s.lockWallets(ctx, dbTx, userID)
	if err != nil {
		return nil, err
	}
	if treasury.Balance < total {
		return nil, apperror.ErrInsufficientTreasury()
	}

	if total > 0 {
		debitDesc := fmt.Sprintf("Reward Redeemed by %s - Rs.%d", user.Name, total)
		if err := s.walletRepo.ApplyEntry(ctx, dbTx, treasury.ID, total, domain.EntryDirectionDebit, debitDesc); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("debit treasury: %w", err))
		}

		creditDesc := fmt.Sprintf("All Rewards Redeemed - Rs.%d", total)
		if err := s.walletRepo.ApplyEntry(ctx, dbTx, userWallet.ID, total, domain.EntryDirectionCredit, creditDesc); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("credit user wallet: %w", err))
		}
	}

	ids := make([]uuid.UUID, len(redeemable))
	for i, rw := range redeemable {
		ids[i] = rw.ID
	}
	if err := s.rewardRepo.MarkRedeemed(ctx, dbTx, ids, now); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("mark redeemed: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	for i := range redeemable {
		redeemable[i].Status = domain.RewardStatusRedeemed
		redeemable[i].Scratching = false
		redeemedAt := now
		redeemable[i].RedeemedAt = &redeemedAt
	}

	s.postCommit(ctx, userID, total, true)

	s.log.Info().
		Str("user_id", userID.String()).
		Int("redeemed", len(redeemable)).
		Int("skipped_expired", len(skipped)).
		Int64("total_amount", total).
		Msg("rewards batch redeemed")

	return &ports.BatchRedeemResult{
		TotalAmount:    total,
		Redeemed:       redeemable,
		SkippedExpired: skipped,
	}, nil
}

// lockWallets acquires the treasury wallet first, then the user's wallet.
// The fixed order prevents deadlocks between concurrent settlements.
func (s *RedemptionServiceImpl) lockWallets(ctx context.Context, dbTx pgx.Tx, userID uuid.UUID) (*domain.Wallet, *domain.Wallet, error) {
	if s.treasuryID == uuid.Nil {
		return nil, nil, apperror.ErrWalletMissing("Admin")
	}

	treasury, err := s.walletRepo.GetByIDForUpdate(ctx, dbTx, s.treasuryID)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("lock treasury wallet: %w", err))
	}
	if treasury == nil {
		return nil, nil, apperror.ErrWalletMissing("Admin")
	}

	userWallet, err := s.walletRepo.GetByOwnerIDForUpdate(ctx, dbTx, userID)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("lock user wallet: %w", err))
	}
	if userWallet == nil {
		return nil, nil, apperror.ErrWalletMissing("User")
	}

	return treasury, userWallet, nil
}

// postCommit runs the best-effort side effects of a committed settlement:
// cache invalidation and the user notification. Failures are logged only.
func (s *RedemptionServiceImpl) postCommit(ctx context.Context, userID uuid.UUID, amount int64, batch bool) {
	if err := s.countCache.Invalidate(ctx, userID); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID.String()).Msg("failed to invalidate reward count cache")
	}

	title := "Reward Redeemed"
	body := fmt.Sprintf("Rs.%d has been credited to your wallet.", amount)
	if batch {
		title = "All Rewards Redeemed"
	}
	if err := s.notifier.Notify(ctx, ports.Notification{
		Category: "reward",
		Title:    title,
		Body:     body,
		UserID:   userID,
	}); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID.String()).Msg("failed to send redemption notification")
	}
}
