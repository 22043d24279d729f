package get_closed_days

import (
	"context"

	"github.com/restburger/reservation-service/internal/domain"
)

type ScheduleService interface {
	ClosedDays(ctx context.Context) (*domain.ClosedDays, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
