package dto

import (
	"time"

	"ticketing-rewards/internal/core/domain"
	"ticketing-rewards/internal/core/ports"
)

// ---- Requests ----

// TokenRequest mints a service token for a user (debug mode only).
type TokenRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

// ---- Responses ----

type TokenResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"`
}

type RewardResponse struct {
	ID         string     `json:"id"`
	Outcome    string     `json:"outcome"`
	Amount     int64      `json:"amount"`
	Status     string     `json:"status"`
	Scratching bool       `json:"scratching"`
	IssuedAt   time.Time  `json:"issued_at"`
	ExpiresAt  time.Time  `json:"expires_at"`
	RedeemedAt *time.Time `json:"redeemed_at,omitempty"`
}

type RewardListResponse struct {
	Rewards []RewardResponse `json:"rewards"`
}

type PendingCountResponse struct {
	Count int64 `json:"count"`
}

type RedeemResponse struct {
	Reward RewardResponse `json:"reward"`
	Amount int64          `json:"amount"`
}

type SkippedRewardResponse struct {
	ID        string    `json:"id"`
	Amount    int64     `json:"amount"`
	ExpiresAt time.Time `json:"expires_at"`
}

type BatchRedeemResponse struct {
	TotalAmount    int64                   `json:"total_amount"`
	Redeemed       []RewardResponse        `json:"redeemed"`
	SkippedExpired []SkippedRewardResponse `json:"skipped_expired"`
}

type WalletEntryResponse struct {
	ID          string    `json:"id"`
	Amount      int64     `json:"amount"`
	Direction   string    `json:"direction"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type WalletStatementResponse struct {
	WalletID string                `json:"wallet_id"`
	Balance  int64                 `json:"balance"`
	Entries  []WalletEntryResponse `json:"entries"`
}

// ---- Converters ----

// ToRewardResponse maps a domain reward to its API shape.
func ToRewardResponse(r domain.Reward) RewardResponse {
	return RewardResponse{
		ID:         r.ID.String(),
		Outcome:    string(r.Outcome),
		Amount:     r.Amount,
		Status:     string(r.Status),
		Scratching: r.Scratching,
		IssuedAt:   r.IssuedAt,
		ExpiresAt:  r.ExpiresAt,
		RedeemedAt: r.RedeemedAt,
	}
}

// ToRewardResponses maps a reward slice, never returning nil so the JSON list
// is always present.
func ToRewardResponses(rewards []domain.Reward) []RewardResponse {
	out := make([]RewardResponse, 0, len(rewards))
	for _, r := range rewards {
		out = append(out, ToRewardResponse(r))
	}
	return out
}

// ToBatchRedeemResponse maps a settlement result to its API shape.
func ToBatchRedeemResponse(res *ports.BatchRedeemResult) BatchRedeemResponse {
	skipped := make([]SkippedRewardResponse, 0, len(res.SkippedExpired))
	for _, s := range res.SkippedExpired {
		skipped = append(skipped, SkippedRewardResponse{
			ID:        s.ID.String(),
			Amount:    s.Amount,
			ExpiresAt: s.ExpiresAt,
		})
	}
	return BatchRedeemResponse{
		TotalAmount:    res.TotalAmount,
		Redeemed:       ToRewardResponses(res.Redeemed),
		SkippedExpired: skipped,
	}
}

// ToWalletStatementResponse maps a wallet statement to its API shape.
func ToWalletStatementResponse(stmt *ports.WalletStatement) WalletStatementResponse {
	entries := make([]WalletEntryResponse, 0, len(stmt.Entries))
	for _, e := range stmt.Entries {
		entries = append(entries, WalletEntryResponse{
			ID:          e.ID.String(),
			Amount:      e.Amount,
			Direction:   string(e.Direction),
			Description: e.Description,
			CreatedAt:   e.CreatedAt,
		})
	}
	return WalletStatementResponse{
		WalletID: stmt.Wallet.ID.String(),
		Balance:  stmt.Wallet.Balance,
		Entries:  entries,
	}
}
