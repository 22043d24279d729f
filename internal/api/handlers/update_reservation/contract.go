package update_reservation

import (
	"context"

	"github.com/restburger/reservation-service/internal/domain"
	updateReservation "github.com/restburger/reservation-service/internal/usecase/update_reservation"
)

type UpdateReservationUseCase interface {
	Execute(ctx context.Context, req *updateReservation.Request) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
