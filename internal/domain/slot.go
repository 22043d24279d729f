package domain

import "github.com/restburger/reservation-service/pkg/types"

// DaySlot represents one enumerated time slot of a day
type DaySlot struct {
	Time types.TimeString
	Open bool
}

// OpenCount returns the number of open slots in the sequence.
func OpenCount(slots []DaySlot) int {
	n := 0
	for _, s := range slots {
		if s.Open {
			n++
		}
	}
	return n
}
