package update_reservation

import (
	"context"
	"time"

	"github.com/restburger/reservation-service/internal/domain"
	"github.com/restburger/reservation-service/pkg/types"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	Update(ctx context.Context, id string, res *domain.Reservation) (*domain.Reservation, error)
	CountActiveAt(ctx context.Context, date time.Time, t types.TimeString, excludeID string) (int, error)
}

// ScheduleService интерфейс сервиса расписания
type ScheduleService interface {
	Settings(ctx context.Context) (*domain.Settings, error)
	IsSlotOpen(ctx context.Context, date time.Time, t types.TimeString) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
