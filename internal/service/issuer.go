package service

import (
	"context"
	"fmt"
	"time"

	"ticketing-rewards/config"
	"ticketing-rewards/internal/core/domain"
	"ticketing-rewards/internal/core/ports"
	"ticketing-rewards/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RewardIssuerImpl implements ports.RewardIssuanceService.
type RewardIssuerImpl struct {
	evaluator  *EligibilityEvaluator
	rewardRepo ports.RewardRepository
	userRepo   ports.UserRepository
	countCache ports.RewardCountCache
	transactor ports.DBTransactor
	rand       ports.RandSource
	cfg        config.RewardConfig
	log        zerolog.Logger
}

// NewRewardIssuer creates a new RewardIssuerImpl.
func NewRewardIssuer(
	evaluator *EligibilityEvaluator,
	rewardRepo ports.RewardRepository,
	userRepo ports.UserRepository,
	countCache ports.RewardCountCache,
	transactor ports.DBTransactor,
	rand ports.RandSource,
	cfg config.RewardConfig,
	log zerolog.Logger,
) *RewardIssuerImpl {
	return &RewardIssuerImpl{
		evaluator:  evaluator,
		rewardRepo: rewardRepo,
		userRepo:   userRepo,
		countCache: countCache,
		transactor: transactor,
		rand:       rand,
		cfg:        cfg,
		log:        log,
	}
}

// IssueIfEligible checks eligibility and mints a pending reward in one atomic
// unit. The reward insert and the user's last-reward marker update commit
// together, so a user can never end up with a reward but an unmoved marker.
func (s *RewardIssuerImpl) IssueIfEligible(ctx context.Context, userID uuid.UUID) (*domain.Reward, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	now := time.Now().UTC()

	if _, err := s.evaluator.Evaluate(ctx, dbTx, userID, now); err != nil {
		return nil, err
	}

	outcome, amount := s.draw()

	reward := &domain.Reward{
		ID:         uuid.New(),
		UserID:     userID,
		Outcome:    outcome,
		Amount:     amount,
		Status:     domain.RewardStatusPending,
		Scratching: true,
		IssuedAt:   now,
		ExpiresAt:  now.Add(s.cfg.Expiry()),
	}

	if err := s.rewardRepo.Create(ctx, dbTx, reward); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create reward: %w", err))
	}

	if err := s.userRepo.UpdateLastRewardAt(ctx, dbTx, userID, now); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update last reward at: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	// Post-commit: drop the cached pending count (best-effort)
	if err := s.countCache.Invalidate(ctx, userID); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID.String()).Msg("failed to invalidate reward count cache")
	}

	s.log.Info().
		Str("reward_id", reward.ID.String()).
		Str("user_id", userID.String()).
		Str("outcome", string(outcome)).
		Int64("amount", amount).
		Msg("reward issued")

	return reward, nil
}

// draw decides the reward outcome. A win pays a uniform amount in
// [1, MaxWinAmount]; a loss pays zero but is still recorded.
func (s *RewardIssuerImpl) draw() (domain.RewardOutcome, int64) {
	if s.rand.Float64() < s.cfg.WinProbability {
		return domain.RewardOutcomeWin, int64(1 + s.rand.IntN(int(s.cfg.MaxWinAmount)))
	}
	return domain.RewardOutcomeLose, 0
}
