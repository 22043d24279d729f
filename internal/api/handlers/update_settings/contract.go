package update_settings

import (
	"context"

	"github.com/restburger/reservation-service/internal/domain"
)

type ScheduleService interface {
	PatchSettings(ctx context.Context, patch domain.SettingsPatch) (*domain.Settings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
