package service

import (
	"context"
	"errors"
	"testing"

	"ticketing-rewards/internal/core/domain"
	"ticketing-rewards/internal/core/ports/mocks"
	"ticketing-rewards/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRewardQuery_CountPending_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rewardRepo := mocks.NewMockRewardRepository(ctrl)
	cache := mocks.NewMockRewardCountCache(ctrl)
	svc := NewRewardQuery(rewardRepo, cache, zerolog.Nop())

	userID := uuid.New()
	cache.EXPECT().Get(gomock.Any(), userID).Return(int64(4), true, nil)
	// no repo call on a hit

	count, err := svc.CountPending(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestRewardQuery_CountPending_CacheMissFillsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rewardRepo := mocks.NewMockRewardRepository(ctrl)
	cache := mocks.NewMockRewardCountCache(ctrl)
	svc := NewRewardQuery(rewardRepo, cache, zerolog.Nop())

	userID := uuid.New()
	cache.EXPECT().Get(gomock.Any(), userID).Return(int64(0), false, nil)
	rewardRepo.EXPECT().CountPending(gomock.Any(), userID).Return(int64(2), nil)
	cache.EXPECT().Set(gomock.Any(), userID, int64(2), countCacheTTL).Return(nil)

	count, err := svc.CountPending(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestRewardQuery_CountPending_CacheErrorFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rewardRepo := mocks.NewMockRewardRepository(ctrl)
	cache := mocks.NewMockRewardCountCache(ctrl)
	svc := NewRewardQuery(rewardRepo, cache, zerolog.Nop())

	userID := uuid.New()
	cache.EXPECT().Get(gomock.Any(), userID).Return(int64(0), false, errors.New("redis down"))
	rewardRepo.EXPECT().CountPending(gomock.Any(), userID).Return(int64(7), nil)
	cache.EXPECT().Set(gomock.Any(), userID, int64(7), countCacheTTL).Return(errors.New("still down"))

	count, err := svc.CountPending(context.Background(), userID)
	require.NoError(t, err, "cache failures are not client-visible")
	assert.Equal(t, int64(7), count)
}

func TestRewardQuery_ListRewards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rewardRepo := mocks.NewMockRewardRepository(ctrl)
	cache := mocks.NewMockRewardCountCache(ctrl)
	svc := NewRewardQuery(rewardRepo, cache, zerolog.Nop())

	userID := uuid.New()
	rewardRepo.EXPECT().ListByUser(gomock.Any(), userID).
		Return([]domain.Reward{{ID: uuid.New(), UserID: userID}}, nil)

	rewards, err := svc.ListRewards(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, rewards, 1)
}

func TestWalletQuery_GetStatement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	walletRepo := mocks.NewMockWalletRepository(ctrl)
	svc := NewWalletQuery(walletRepo)

	ownerID := uuid.New()
	wallet := &domain.Wallet{ID: uuid.New(), OwnerID: ownerID, Balance: 30}
	walletRepo.EXPECT().GetByOwnerID(gomock.Any(), ownerID).Return(wallet, nil)
	walletRepo.EXPECT().ListEntries(gomock.Any(), wallet.ID).
		Return([]domain.WalletEntry{{ID: uuid.New(), WalletID: wallet.ID, Amount: 30}}, nil)

	stmt, err := svc.GetStatement(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, int64(30), stmt.Wallet.Balance)
	assert.Len(t, stmt.Entries, 1)
}

func TestWalletQuery_GetStatement_WalletMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	walletRepo := mocks.NewMockWalletRepository(ctrl)
	svc := NewWalletQuery(walletRepo)

	ownerID := uuid.New()
	walletRepo.EXPECT().GetByOwnerID(gomock.Any(), ownerID).Return(nil, nil)

	_, err := svc.GetStatement(context.Background(), ownerID)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "WAL_001", appErr.Code)
}
