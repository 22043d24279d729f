package update_closed_days

import (
	"context"

	"github.com/restburger/reservation-service/internal/domain"
)

type ScheduleService interface {
	PatchClosedDays(ctx context.Context, patch domain.ClosedDaysPatch) (*domain.ClosedDays, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
