package postgres

import (
	"context"

	"frontdesk"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// lib/pq errorCodeNames
// https://github.com/lib/pq/blob/master/error.go#L178
const foreignKeyViolation = "23503"

// Store persists leads and bookings.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{
		db: db,
	}
}

func (s *Store) CreateLead(ctx context.Context, lead frontdesk.Lead) error {
	const query = `
	INSERT INTO leads (
		id, name, email, message, created_at
	) VALUES (
		$1, $2, $3, $4, $5
	)`

	_, err := s.db.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		lead.Email,
		lead.Message,
		lead.CreatedAt,
	)
	return err
}

// CreateBooking inserts the lead and its booking in a single transaction,
// so a booking row can never outlive a failed lead insert or vice versa.
func (s *Store) CreateBooking(ctx context.Context, lead frontdesk.Lead, booking frontdesk.Booking) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	const leadQuery = `
	INSERT INTO leads (
		id, name, email, message, created_at
	) VALUES (
		$1, $2, $3, $4, $5
	)`

	if _, err := tx.ExecContext(ctx, leadQuery,
		lead.ID,
		lead.Name,
		lead.Email,
		lead.Message,
		lead.CreatedAt,
	); err != nil {
		tx.Rollback()
		return err
	}

	const bookingQuery = `
	INSERT INTO bookings (
		id, lead_id, booking_date, status, created_at
	) VALUES (
		$1, $2, $3, $4, $5
	)`

	if _, err := tx.ExecContext(ctx, bookingQuery,
		booking.ID,
		booking.LeadID,
		booking.BookingDate,
		booking.Status,
		booking.CreatedAt,
	); err != nil {
		tx.Rollback()
		if pqerr, ok := err.(*pq.Error); ok && pqerr.Code == foreignKeyViolation {
			return frontdesk.ErrLeadNotFound
		}
		return err
	}

	return tx.Commit()
}
