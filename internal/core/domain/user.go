package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the slice of the identity record this service reads. Account
// management lives in the identity service; only the last-reward marker is
// written here, atomically with reward issuance.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	LastRewardAt *time.Time `json:"last_reward_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
