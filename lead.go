package frontdesk

import (
	"errors"
	"time"
)

// ErrLeadNotFound is returned when a booking references a lead that does
// not exist in the store.
var ErrLeadNotFound = errors.New("lead not found")

// Lead is a captured contact submission.
type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// NewLead is the payload of a contact-form submission. Name and Email are
// required. Message defaults to the empty string when omitted.
type NewLead struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
