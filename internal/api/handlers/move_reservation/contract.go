package move_reservation

import (
	"context"

	"github.com/restburger/reservation-service/internal/domain"
	moveReservation "github.com/restburger/reservation-service/internal/usecase/move_reservation"
)

type MoveReservationUseCase interface {
	Execute(ctx context.Context, req *moveReservation.Request) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
