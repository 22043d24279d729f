package handlers

import (
	"time"

	"github.com/restburger/reservation-service/internal/domain"
)

// ReservationResponse общая HTTP-модель брони.
// Форма полей совместима с фронтендом дашборда (camelCase, date/time строками).
type ReservationResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	EndTime   *string `json:"endTime"`
	Guests    int     `json:"guests"`
	Status    string  `json:"status"`
	Notes     string  `json:"notes"`
	CreatedAt string  `json:"createdAt,omitempty"`
	UpdatedAt string  `json:"updatedAt,omitempty"`
}

// FromDomainReservation конвертирует доменную бронь в HTTP-модель
func FromDomainReservation(res *domain.Reservation) ReservationResponse {
	var endTime *string
	if res.EndTime != nil {
		s := res.EndTime.String()
		endTime = &s
	}

	out := ReservationResponse{
		ID:      res.ID,
		Name:    res.Name,
		Phone:   res.Phone,
		Date:    res.Date.Format(domain.DateFormat),
		Time:    res.Time.String(),
		EndTime: endTime,
		Guests:  res.Guests,
		Status:  string(res.Status),
		Notes:   res.Notes,
	}

	if !res.CreatedAt.IsZero() {
		out.CreatedAt = res.CreatedAt.Format(time.RFC3339)
	}
	if !res.UpdatedAt.IsZero() {
		out.UpdatedAt = res.UpdatedAt.Format(time.RFC3339)
	}

	return out
}

// FromDomainReservations конвертирует список броней
func FromDomainReservations(list []*domain.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(list))
	for _, res := range list {
		out = append(out, FromDomainReservation(res))
	}
	return out
}
