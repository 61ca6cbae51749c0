package mail

import (
	"strings"
	"testing"
	"time"

	"frontdesk"
)

var testLead = frontdesk.Lead{
	ID:        "b3a9c9a0-0000-0000-0000-000000000001",
	Name:      "Jo",
	Email:     "jo@example.com",
	Message:   "hello there",
	CreatedAt: time.Date(2024, 3, 20, 9, 30, 0, 0, time.UTC),
}

var testBooking = frontdesk.Booking{
	ID:          "b3a9c9a0-0000-0000-0000-000000000002",
	LeadID:      testLead.ID,
	BookingDate: time.Date(2024, 3, 25, 10, 0, 0, 0, time.UTC),
	Status:      frontdesk.StatusPending,
	CreatedAt:   testLead.CreatedAt,
}

func TestAdminBody_Contact(t *testing.T) {
	body := adminBody(testLead, nil)

	for _, want := range []string{"Jo", "jo@example.com", "hello there", "2024-03-20"} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected admin body to contain %q, got:\n%s", want, body)
		}
	}
	if strings.Contains(body, "Requested date") {
		t.Errorf("Expected contact variant without a booking date, got:\n%s", body)
	}
}

func TestAdminBody_Booking(t *testing.T) {
	body := adminBody(testLead, &testBooking)

	if !strings.Contains(body, "2024-03-25 10:00:00") {
		t.Errorf("Expected booking date in admin body, got:\n%s", body)
	}
}

func TestSubmitterBody_Booking(t *testing.T) {
	body := submitterBody(testLead, &testBooking)

	if !strings.Contains(body, "Jo") {
		t.Errorf("Expected submitter name in body, got:\n%s", body)
	}
	if !strings.Contains(body, "2024-03-25 10:00:00") {
		t.Errorf("Expected booking date in submitter body, got:\n%s", body)
	}
}

func TestSubjects(t *testing.T) {
	if got := adminSubject(nil); got != "New Contact Form Submission" {
		t.Errorf("Unexpected contact admin subject %q", got)
	}
	if got := adminSubject(&testBooking); got != "New Booking Request" {
		t.Errorf("Unexpected booking admin subject %q", got)
	}
	if got := submitterSubject(nil); got == submitterSubject(&testBooking) {
		t.Error("Expected distinct submitter subjects for contact and booking")
	}
}

func TestNewNotifier(t *testing.T) {
	n, err := NewNotifier(Config{
		Host:    "localhost",
		Port:    587,
		Sender:  "no-reply@example.com",
		Admin:   "admin@example.com",
		Timeout: time.Second,
	})
	if err != nil {
		t.Fatalf("Failed to create notifier: %v", err)
	}

	msg, err := n.message(testLead.Email, "subject", "body")
	if err != nil {
		t.Fatalf("Failed to build message: %v", err)
	}
	if msg == nil {
		t.Fatal("Expected a message")
	}
}

func TestMessage_InvalidRecipient(t *testing.T) {
	n, err := NewNotifier(Config{
		Host:    "localhost",
		Port:    587,
		Sender:  "no-reply@example.com",
		Admin:   "admin@example.com",
		Timeout: time.Second,
	})
	if err != nil {
		t.Fatalf("Failed to create notifier: %v", err)
	}

	if _, err := n.message("not an address", "subject", "body"); err == nil {
		t.Error("Expected error for invalid recipient")
	}
}
