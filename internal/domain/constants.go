package domain

import "github.com/restburger/reservation-service/pkg/types"

// Default configuration values, seeded on first startup
const (
	DefaultOpeningHour types.TimeString = "11:00"
	DefaultClosingHour types.TimeString = "23:00"
	DefaultSlotMinutes                  = 30
	DefaultMaxPerSlot                   = 1
)

// Business validation constants
const (
	MinGuests = 1
	MaxGuests = 50
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// StatusAll is the wire value meaning "no status filter" on list requests.
const StatusAll = "all"
