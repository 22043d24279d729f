package delete_reservation

import (
	"context"

	"github.com/restburger/reservation-service/internal/domain"
)

type ReservationsService interface {
	Delete(ctx context.Context, id string) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
