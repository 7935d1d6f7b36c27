package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BookingRepo implements ports.BookingRepository. The bookings table is owned
// by the booking subsystem; this service only reads it.
type BookingRepo struct {
	pool Pool
}

// NewBookingRepo creates a new BookingRepo.
func NewBookingRepo(pool Pool) *BookingRepo {
	return &BookingRepo{pool: pool}
}

// CountForUserSince counts the user's bookings with a booking date at or after
// since, inside the given transaction's snapshot.
func (r *BookingRepo) CountForUserSince(ctx context.Context, tx pgx.Tx, userID uuid.UUID, since time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1 AND booking_date >= $2`

	var count int64
	err := tx.QueryRow(ctx, query, userID, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return count, nil
}

// ActiveUserIDsSince lists distinct user ids with at least one booking since
// the given time.
func (r *BookingRepo) ActiveUserIDsSince(ctx context.Context, since time.Time) ([]uuid.UUID, error) {
	query := `SELECT DISTINCT user_id FROM bookings WHERE booking_date >= $1`

	rows, err := r.pool.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("list active users: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan user id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate active users: %w", err)
	}
	return ids, nil
}
