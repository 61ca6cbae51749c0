// Package handler exposes the intake workflow over HTTP.
package handler

import (
	"errors"
	"net/http"
	"time"

	"frontdesk"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IntakeHandler handles contact and booking submissions: validate, persist,
// then notify. Notification failures are logged and dropped so they never
// affect the response or the stored records.
type IntakeHandler struct {
	store    frontdesk.Store
	notifier frontdesk.Notifier
	log      *zap.SugaredLogger
}

func NewIntakeHandler(store frontdesk.Store, notifier frontdesk.Notifier, log *zap.SugaredLogger) *IntakeHandler {
	return &IntakeHandler{
		store:    store,
		notifier: notifier,
		log:      log,
	}
}

// Contact accepts a contact-form submission and creates a lead.
func (ih IntakeHandler) Contact(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var nl frontdesk.NewLead

	if err := decode(r, &nl); err != nil {
		ih.log.Errorw("Contact", "error", err.Error())
		respondErr(ctx, rw, http.StatusBadRequest, err)
		return
	}

	if nl.Name == "" || nl.Email == "" {
		respondErr(ctx, rw, http.StatusBadRequest, errors.New("missing required fields: name, email"))
		return
	}

	lead := frontdesk.Lead{
		ID:        uuid.NewString(),
		Name:      nl.Name,
		Email:     nl.Email,
		Message:   nl.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := ih.store.CreateLead(ctx, lead); err != nil {
		ih.log.Errorw("Contact", "error", err.Error())
		respondErr(ctx, rw, http.StatusInternalServerError, err)
		return
	}

	if err := ih.notifier.LeadCreated(ctx, lead); err != nil {
		ih.log.Errorw("Contact", "status", "notification failed", "lead_id", lead.ID, "error", err.Error())
	}

	respond(ctx, rw, http.StatusCreated, map[string]interface{}{
		"message": "Contact form submitted successfully",
		"lead":    lead,
	})
}

// Book accepts a booking submission and creates a lead plus a booking
// referencing it, atomically.
func (ih IntakeHandler) Book(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var nb frontdesk.NewBooking

	if err := decode(r, &nb); err != nil {
		ih.log.Errorw("Book", "error", err.Error())
		respondErr(ctx, rw, http.StatusBadRequest, err)
		return
	}

	if nb.Name == "" || nb.Email == "" || nb.BookingDate == "" {
		respondErr(ctx, rw, http.StatusBadRequest, errors.New("missing required fields: name, email, booking_date"))
		return
	}

	bookingDate, err := frontdesk.ParseBookingTime(nb.BookingDate)
	if err != nil {
		ih.log.Errorw("Book", "error", err.Error())
		respondErr(ctx, rw, http.StatusBadRequest, err)
		return
	}

	now := time.Now().UTC()

	lead := frontdesk.Lead{
		ID:        uuid.NewString(),
		Name:      nb.Name,
		Email:     nb.Email,
		Message:   nb.Message,
		CreatedAt: now,
	}

	booking := frontdesk.Booking{
		ID:          uuid.NewString(),
		LeadID:      lead.ID,
		BookingDate: bookingDate,
		Status:      frontdesk.StatusPending,
		CreatedAt:   now,
	}

	if err := ih.store.CreateBooking(ctx, lead, booking); err != nil {
		ih.log.Errorw("Book", "error", err.Error())
		respondErr(ctx, rw, http.StatusInternalServerError, err)
		return
	}

	if err := ih.notifier.BookingCreated(ctx, lead, booking); err != nil {
		ih.log.Errorw("Book", "status", "notification failed", "booking_id", booking.ID, "error", err.Error())
	}

	respond(ctx, rw, http.StatusCreated, map[string]interface{}{
		"message": "Booking request submitted successfully",
		"booking": booking,
	})
}

// Slots returns the static slot catalog.
func (ih IntakeHandler) Slots(rw http.ResponseWriter, r *http.Request) {
	respond(r.Context(), rw, http.StatusOK, frontdesk.AvailableSlots(time.Now()))
}

// Health is a liveness probe only. It deliberately checks no dependencies.
func (ih IntakeHandler) Health(rw http.ResponseWriter, r *http.Request) {
	respond(r.Context(), rw, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
