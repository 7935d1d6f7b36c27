package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"ticketing-rewards/internal/core/domain"
	"ticketing-rewards/internal/core/ports/mocks"
	"ticketing-rewards/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSweep_RunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bookingRepo := mocks.NewMockBookingRepository(ctrl)
	issuanceSvc := mocks.NewMockRewardIssuanceService(ctrl)
	sweep := NewSweep(bookingRepo, issuanceSvc, 15*24*time.Hour, "@hourly", zerolog.Nop())

	eligible := uuid.New()
	notEligible := uuid.New()
	failing := uuid.New()

	bookingRepo.EXPECT().ActiveUserIDsSince(gomock.Any(), gomock.Any()).
		Return([]uuid.UUID{eligible, notEligible, failing}, nil)
	issuanceSvc.EXPECT().IssueIfEligible(gomock.Any(), eligible).
		Return(&domain.Reward{ID: uuid.New(), UserID: eligible}, nil)
	issuanceSvc.EXPECT().IssueIfEligible(gomock.Any(), notEligible).
		Return(nil, apperror.ErrInsufficientActivity())
	issuanceSvc.EXPECT().IssueIfEligible(gomock.Any(), failing).
		Return(nil, apperror.InternalError(errors.New("db down")))

	// Must not panic and must visit every candidate.
	sweep.RunOnce(context.Background())
}

func TestSweep_RunOnce_ListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bookingRepo := mocks.NewMockBookingRepository(ctrl)
	issuanceSvc := mocks.NewMockRewardIssuanceService(ctrl)
	sweep := NewSweep(bookingRepo, issuanceSvc, 15*24*time.Hour, "@hourly", zerolog.Nop())

	bookingRepo.EXPECT().ActiveUserIDsSince(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db down"))

	// No issuance calls expected when listing fails.
	sweep.RunOnce(context.Background())
}

func TestIsNotEligible(t *testing.T) {
	assert.True(t, isNotEligible(apperror.ErrUserNotFound()))
	assert.True(t, isNotEligible(apperror.ErrRewardTooSoon()))
	assert.True(t, isNotEligible(apperror.ErrInsufficientActivity()))
	assert.False(t, isNotEligible(apperror.InternalError(errors.New("x"))))
	assert.False(t, isNotEligible(errors.New("plain")))
}
