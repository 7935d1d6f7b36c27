package ports

import (
	"context"
	"time"

	"ticketing-rewards/internal/core/domain"

	"github.com/google/uuid"
)

// RandSource is the injectable randomness capability used by the issuer, so
// draw outcomes are deterministic and reproducible under test.
type RandSource interface {
	Float64() float64
	IntN(n int) int
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(userID uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID uuid.UUID
}

// Notification is the message handed to the Notifier after a committed
// redemption.
type Notification struct {
	Category string
	Title    string
	Body     string
	UserID   uuid.UUID
}

// Notifier delivers user notifications. Calls are fire-and-forget from the
// redemption engine's perspective: a delivery failure never rolls back or
// fails a committed redemption.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// --- Service Ports (Business Logic) ---

// RewardIssuanceService mints rewards for eligible users.
type RewardIssuanceService interface {
	// IssueIfEligible evaluates the eligibility rules and mints a pending
	// reward in the same atomic unit, updating the user's last-reward marker.
	IssueIfEligible(ctx context.Context, userID uuid.UUID) (*domain.Reward, error)
}

// RewardRedemptionService settles rewards against the treasury wallet.
type RewardRedemptionService interface {
	RedeemOne(ctx context.Context, rewardID uuid.UUID) (*RedeemResult, error)
	RedeemAll(ctx context.Context, userID uuid.UUID) (*BatchRedeemResult, error)
}

// RewardQueryService serves read-only reward views.
type RewardQueryService interface {
	ListRewards(ctx context.Context, userID uuid.UUID) ([]domain.Reward, error)
	CountPending(ctx context.Context, userID uuid.UUID) (int64, error)
}

// WalletQueryService serves read-only wallet views.
type WalletQueryService interface {
	GetStatement(ctx context.Context, ownerID uuid.UUID) (*WalletStatement, error)
}

// RedeemResult is the outcome of a single-reward redemption.
type RedeemResult struct {
	Reward domain.Reward
	Amount int64
}

// SkippedReward summarizes a reward left untouched by a batch redemption
// because it had expired.
type SkippedReward struct {
	ID        uuid.UUID `json:"id"`
	Amount    int64     `json:"amount"`
	ExpiresAt time.Time `json:"expires_at"`
}

// BatchRedeemResult is the outcome of a redeem-all settlement.
type BatchRedeemResult struct {
	TotalAmount    int64
	Redeemed       []domain.Reward
	SkippedExpired []SkippedReward
}

// WalletStatement is a wallet balance plus its ledger, most recent entry first.
type WalletStatement struct {
	Wallet  domain.Wallet
	Entries []domain.WalletEntry
}
