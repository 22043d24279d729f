package update_reservation

import (
	updateReservation "github.com/restburger/reservation-service/internal/usecase/update_reservation"
)

// UpdateReservationRequest HTTP request model
type UpdateReservationRequest struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Date    string  `json:"date"` // "2024-12-09"
	Time    string  `json:"time"` // "15:00"
	EndTime *string `json:"endTime,omitempty"`
	Guests  int     `json:"guests"`
	Status  string  `json:"status,omitempty"`
	Notes   string  `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Идентификатор приходит из пути запроса, а не из тела.
func (r *UpdateReservationRequest) ToUseCaseRequest(id string) *updateReservation.Request {
	return &updateReservation.Request{
		ID:      id,
		Name:    r.Name,
		Phone:   r.Phone,
		Date:    r.Date,
		Time:    r.Time,
		EndTime: r.EndTime,
		Guests:  r.Guests,
		Status:  r.Status,
		Notes:   r.Notes,
	}
}
