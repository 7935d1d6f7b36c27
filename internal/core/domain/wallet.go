package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntryDirection is the direction of a wallet ledger entry.
type EntryDirection string

const (
	EntryDirectionCredit EntryDirection = "CREDIT"
	EntryDirectionDebit  EntryDirection = "DEBIT"
)

// SignedDelta returns the balance delta for an entry of the given amount.
func (d EntryDirection) SignedDelta(amount int64) int64 {
	if d == EntryDirectionDebit {
		return -amount
	}
	return amount
}

// Wallet holds a single owner's balance in integer currency units.
// The balance always equals the sum of signed ledger entries since creation
// and is never negative as an observable committed state.
type Wallet struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WalletEntry is an immutable, append-only ledger entry for a wallet.
// Amount is always positive; Direction carries the sign.
type WalletEntry struct {
	ID          uuid.UUID      `json:"id"`
	WalletID    uuid.UUID      `json:"wallet_id"`
	Amount      int64          `json:"amount"`
	Direction   EntryDirection `json:"direction"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
}
