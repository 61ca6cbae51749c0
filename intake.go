package frontdesk

import "context"

// Store persists leads and bookings.
type Store interface {
	// CreateLead inserts a single lead.
	CreateLead(ctx context.Context, lead Lead) error

	// CreateBooking inserts a lead and a booking referencing it in one
	// transaction. Neither record persists if either insert fails.
	CreateBooking(ctx context.Context, lead Lead, booking Booking) error
}

// Notifier sends submission emails to the submitter and the administrator.
// Implementations report transport failures to the caller; whether a
// failure matters is the caller's decision.
type Notifier interface {
	LeadCreated(ctx context.Context, lead Lead) error
	BookingCreated(ctx context.Context, lead Lead, booking Booking) error
}
