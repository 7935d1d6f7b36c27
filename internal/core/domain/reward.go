package domain

import (
	"time"

	"github.com/google/uuid"
)

// RewardOutcome is the result of the issuance draw.
type RewardOutcome string

const (
	RewardOutcomeWin  RewardOutcome = "WIN"
	RewardOutcomeLose RewardOutcome = "LOSE"
)

// RewardStatus is the durable lifecycle state of a reward.
// Expiry is derived from ExpiresAt at read time, not stored as a transition.
type RewardStatus string

const (
	RewardStatusPending  RewardStatus = "PENDING"
	RewardStatusRedeemed RewardStatus = "REDEEMED"
)

// Reward is a time-boxed, possibly-zero-value credit grant offered to a user
// after sufficient booking activity.
type Reward struct {
	ID         uuid.UUID     `json:"id"`
	UserID     uuid.UUID     `json:"user_id"`
	Outcome    RewardOutcome `json:"outcome"`
	Amount     int64         `json:"amount"` // 0 when Lose, 1..max when Win
	Status     RewardStatus  `json:"status"`
	Scratching bool          `json:"scratching"` // transient client reveal flag, never a durable state
	IssuedAt   time.Time     `json:"issued_at"`
	ExpiresAt  time.Time     `json:"expires_at"`
	RedeemedAt *time.Time    `json:"redeemed_at,omitempty"`
}

// Expired reports whether the reward is past its expiry at the given instant.
func (r *Reward) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// Redeemable reports whether the reward can still be redeemed at the given instant.
func (r *Reward) Redeemable(now time.Time) bool {
	return r.Status == RewardStatusPending && !r.Expired(now)
}
