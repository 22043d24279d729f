package create_reservation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/restburger/reservation-service/internal/domain"
)

// UseCase use case создания брони. Проверка закрытия, проверка вместимости
// и запись выполняются в одной serializable-транзакции, чтобы два
// конкурентных создания не переполнили слот.
type UseCase struct {
	reservationRepo ReservationRepository
	schedule        ScheduleService
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	schedule ScheduleService,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		schedule:        schedule,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Reservation, error) {
	uc.logger.Info("CreateReservation: name=%q, date=%s, time=%s, guests=%d",
		req.Name, req.Date, req.Time, req.Guests)

	// 1. Валидация формы входных данных (все нарушения разом)
	value, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Идентификатор: берём переданный или генерируем новый
	if value.ID == "" {
		value.ID = uuid.NewString()
	}

	var result *domain.Reservation

	// 3. Проверки и запись в serializable-транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Слот должен быть открыт (дата не закрыта, время в рабочих часах)
		open, err := uc.schedule.IsSlotOpen(txCtx, value.Date, value.Time)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}
		if !open {
			uc.logger.Warn("CreateReservation: slot %s %s is closed",
				value.Date.Format(domain.DateFormat), value.Time)
			return ErrSlotClosed
		}

		// 3.2. В слоте должно оставаться место среди неотменённых броней
		settings, err := uc.schedule.Settings(txCtx)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get settings: %v", err)
			return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}

		taken, err := uc.reservationRepo.CountActiveAt(txCtx, value.Date, value.Time, value.ID)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to count active reservations: %v", err)
			return fmt.Errorf("%w: failed to count active reservations: %v", ErrInternal, err)
		}
		if taken >= settings.MaxPerSlot {
			uc.logger.Warn("CreateReservation: slot %s %s is full (%d/%d)",
				value.Date.Format(domain.DateFormat), value.Time, taken, settings.MaxPerSlot)
			return ErrSlotFull
		}

		// 3.3. Сохраняем бронь; created_at == updated_at у новой записи
		now := uc.timeProvider.Now()
		reservation := &domain.Reservation{
			ID:        value.ID,
			Name:      value.Name,
			Phone:     value.Phone,
			Date:      value.Date,
			Time:      value.Time,
			EndTime:   value.EndTime,
			Guests:    value.Guests,
			Status:    value.Status,
			Notes:     value.Notes,
			CreatedAt: now,
			UpdatedAt: now,
		}

		created, err := uc.reservationRepo.Insert(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to insert reservation: %v", err)
			return fmt.Errorf("%w: failed to insert reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%s", result.ID)
	return result, nil
}
