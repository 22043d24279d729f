package get_day_slots

import (
	"context"
	"time"

	"github.com/restburger/reservation-service/internal/domain"
)

type ScheduleService interface {
	DaySlots(ctx context.Context, date time.Time) ([]domain.DaySlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
