package create_reservation

import (
	createReservation "github.com/restburger/reservation-service/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	ID      string  `json:"id,omitempty"`
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Date    string  `json:"date"` // "2024-12-09"
	Time    string  `json:"time"` // "15:00"
	EndTime *string `json:"endTime,omitempty"`
	Guests  int     `json:"guests"`
	Status  string  `json:"status,omitempty"`
	Notes   string  `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() *createReservation.Request {
	return &createReservation.Request{
		ID:      r.ID,
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
