package frontdesk

import "time"

// Slot lists the bookable times offered on a single date.
type Slot struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// slotTimes is the fixed time grid offered every day.
var slotTimes = []string{
	"09:00", "10:00", "11:00",
	"13:00", "14:00", "15:00", "16:00",
}

// AvailableSlots returns the bookable times shown to clients: the same
// fixed time grid for each of the next seven days. The catalog is a stub
// and does not consult stored bookings, so a taken slot is still listed.
func AvailableSlots(now time.Time) []Slot {
	now = now.UTC()

	slots := make([]Slot, 0, 7)
	for day := 1; day <= 7; day++ {
		slots = append(slots, Slot{
			Date:  now.AddDate(0, 0, day).Format("2006-01-02"),
			Slots: slotTimes,
		})
	}
	return slots
}
