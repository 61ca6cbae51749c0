package frontdesk

import (
	"fmt"
	"time"
)

// Booking status values. This service only ever writes StatusPending;
// the other values exist for out-of-band administration.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking is a scheduling request tied to exactly one Lead.
type Booking struct {
	ID          string    `json:"id"`
	LeadID      string    `json:"lead_id"`
	BookingDate time.Time `json:"booking_date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewBooking is the payload of a booking submission. Name, Email and
// BookingDate are required. Status is not accepted from clients: every
// booking starts as pending.
type NewBooking struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	BookingDate string `json:"booking_date"`
	Message     string `json:"message"`
}

// ParseBookingTime parses a client-supplied booking timestamp. It accepts
// RFC 3339 input, where a trailing "Z" and an explicit "+00:00" offset name
// the same instant, and falls back to an offset-less timestamp interpreted
// as UTC. The result is always normalized to UTC.
func ParseBookingTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}

	t, err := time.ParseInLocation("2006-01-02T15:04:05", s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid booking_date %q", s)
	}
	return t, nil
}
