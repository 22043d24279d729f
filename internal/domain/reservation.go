package domain

import (
	"time"

	"github.com/restburger/reservation-service/pkg/types"
)

// ReservationStatus represents the status of a table reservation
type ReservationStatus string

const (
	StatusWaiting   ReservationStatus = "waiting"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// IsValid reports whether the status is one of the known values.
func (s ReservationStatus) IsValid() bool {
	return s == StatusWaiting || s == StatusConfirmed || s == StatusCancelled
}

// Reservation represents a table reservation in the system
type Reservation struct {
	ID      string
	Name    string
	Phone   string
	Date    time.Time // calendar day, clock part is always midnight
	Time    types.TimeString
	EndTime *types.TimeString
	Guests  int
	Status  ReservationStatus
	Notes   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation counts toward slot capacity
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// SameSlot reports whether the reservation occupies the given (date, time) slot.
func (r *Reservation) SameSlot(date time.Time, t types.TimeString) bool {
	return r.Date.Format(DateFormat) == date.Format(DateFormat) && r.Time == t
}

// ReservationsFilter фильтр для выборки бронирований.
// Каждое поле опционально и применяется независимо.
type ReservationsFilter struct {
	FromDate *time.Time         // Начало периода (включительно)
	ToDate   *time.Time         // Конец периода (включительно)
	Status   *ReservationStatus // nil = без фильтра по статусу
}
