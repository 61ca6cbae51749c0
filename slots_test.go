package frontdesk

import (
	"testing"
	"time"
)

func TestAvailableSlots(t *testing.T) {
	now := time.Date(2024, 3, 25, 12, 0, 0, 0, time.UTC)

	slots := AvailableSlots(now)
	if len(slots) == 0 {
		t.Fatal("Expected a non-empty slot catalog")
	}

	if slots[0].Date != "2024-03-26" {
		t.Errorf("Expected first date 2024-03-26, got %s", slots[0].Date)
	}

	for _, s := range slots {
		if len(s.Slots) == 0 {
			t.Errorf("Expected times for date %s", s.Date)
		}
	}
}

func TestAvailableSlots_Fixed(t *testing.T) {
	now := time.Date(2024, 3, 25, 12, 0, 0, 0, time.UTC)

	first := AvailableSlots(now)
	second := AvailableSlots(now)

	if len(first) != len(second) {
		t.Fatalf("Expected a stable catalog, got %d then %d entries", len(first), len(second))
	}
	for i := range first {
		if first[i].Date != second[i].Date {
			t.Errorf("Expected stable date at %d, got %s then %s", i, first[i].Date, second[i].Date)
		}
	}
}
