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
)

// EligibilityEvaluator applies the reward eligibility rules: a user qualifies
// when their booking count in the trailing window meets the minimum AND their
// last reward predates the window. Both checks run inside the caller's
// transaction so the verdict and the mint see the same snapshot.
type EligibilityEvaluator struct {
	userRepo    ports.UserRepository
	bookingRepo ports.BookingRepository
	window      time.Duration
	minBookings int64
}

// NewEligibilityEvaluator creates an evaluator with the given program rules.
func NewEligibilityEvaluator(
	userRepo ports.UserRepository,
	bookingRepo ports.BookingRepository,
	window time.Duration,
	minBookings int64,
) *EligibilityEvaluator {
	return &EligibilityEvaluator{
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		window:      window,
		minBookings: minBookings,
	}
}

// Evaluate locks the user row and checks both eligibility rules. It returns
// the locked user on success; the lock serializes concurrent issuance attempts
// for the same user until the caller commits or rolls back.
func (e *EligibilityEvaluator) Evaluate(ctx context.Context, tx pgx.Tx, userID uuid.UUID, now time.Time) (*domain.User, error) {
	user, err := e.userRepo.GetByIDForUpdate(ctx, tx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock user: %w", err))
	}
	if user == nil {
		return nil, apperror.ErrUserNotFound()
	}

	windowStart := now.Add(-e.window)

	// Recency rule: the last reward must predate the window. A reward issued
	// exactly at the boundary still blocks.
	if user.LastRewardAt != nil && !user.LastRewardAt.Before(windowStart) {
		return nil, apperror.ErrRewardTooSoon()
	}

	count, err := e.bookingRepo.CountForUserSince(ctx, tx, userID, windowStart)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("count bookings: %w", err))
	}
	if count < e.minBookings {
		return nil, apperror.ErrInsufficientActivity()
	}

	return user, nil
}
