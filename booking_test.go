package frontdesk

import (
	"testing"
	"time"
)

func TestParseBookingTime_UTCDesignators(t *testing.T) {
	zulu, err := ParseBookingTime("2024-03-25T10:00:00Z")
	if err != nil {
		t.Fatalf("Failed to parse Z-suffixed timestamp: %v", err)
	}

	offset, err := ParseBookingTime("2024-03-25T10:00:00+00:00")
	if err != nil {
		t.Fatalf("Failed to parse +00:00-suffixed timestamp: %v", err)
	}

	if !zulu.Equal(offset) {
		t.Errorf("Expected %v and %v to be the same instant", zulu, offset)
	}
}

func TestParseBookingTime_NaiveTimestampIsUTC(t *testing.T) {
	got, err := ParseBookingTime("2024-03-25T10:00:00")
	if err != nil {
		t.Fatalf("Failed to parse offset-less timestamp: %v", err)
	}

	want := time.Date(2024, 3, 25, 10, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestParseBookingTime_NonUTCOffset(t *testing.T) {
	got, err := ParseBookingTime("2024-03-25T10:00:00+02:00")
	if err != nil {
		t.Fatalf("Failed to parse offset timestamp: %v", err)
	}

	want := time.Date(2024, 3, 25, 8, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if got.Location() != time.UTC {
		t.Errorf("Expected result normalized to UTC, got %v", got.Location())
	}
}

func TestParseBookingTime_Invalid(t *testing.T) {
	for _, input := range []string{"", "tomorrow", "25/03/2024", "2024-03-25 at noon"} {
		if _, err := ParseBookingTime(input); err == nil {
			t.Errorf("Expected error for input %q", input)
		}
	}
}
