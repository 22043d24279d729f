package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/restburger/reservation-service/internal/domain"
	reservationRepo "github.com/restburger/reservation-service/internal/infra/storage/reservation"
)

// UseCase use case обновления брони. Заменяет все изменяемые поля;
// вместимость слота проверяется с исключением самой брони, чтобы запись
// на прежний слот не конфликтовала сама с собой.
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

// Execute выполняет use case обновления брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Reservation, error) {
	uc.logger.Info("UpdateReservation: id=%s, date=%s, time=%s", req.ID, req.Date, req.Time)

	// 1. Валидация формы входных данных (все нарушения разом)
	value, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Reservation

	// 2. Проверки и запись в serializable-транзакции.
	// Слот проверяется до существования брони: клиент видит slot_closed и
	// time_slot_taken даже для неизвестного идентификатора.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Целевой слот должен быть открыт
		open, err := uc.schedule.IsSlotOpen(txCtx, value.Date, value.Time)
		if err != nil {
			uc.logger.Error("UpdateReservation: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}
		if !open {
			uc.logger.Warn("UpdateReservation: slot %s %s is closed",
				value.Date.Format(domain.DateFormat), value.Time)
			return ErrSlotClosed
		}

		// 2.2. Вместимость без учёта самой обновляемой брони
		settings, err := uc.schedule.Settings(txCtx)
		if err != nil {
			uc.logger.Error("UpdateReservation: failed to get settings: %v", err)
			return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}

		taken, err := uc.reservationRepo.CountActiveAt(txCtx, value.Date, value.Time, req.ID)
		if err != nil {
			uc.logger.Error("UpdateReservation: failed to count active reservations: %v", err)
			return fmt.Errorf("%w: failed to count active reservations: %v", ErrInternal, err)
		}
		if taken >= settings.MaxPerSlot {
			uc.logger.Warn("UpdateReservation: slot %s %s is full (%d/%d)",
				value.Date.Format(domain.DateFormat), value.Time, taken, settings.MaxPerSlot)
			return ErrSlotFull
		}

		// 2.3. Бронь должна существовать; created_at сохраняется из неё
		current, err := uc.reservationRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("UpdateReservation: reservation id=%s not found", req.ID)
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to get reservation id=%s: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 2.4. Заменяем изменяемые поля и двигаем updated_at
		next := &domain.Reservation{
			ID:        req.ID,
			Name:      value.Name,
			Phone:     value.Phone,
			Date:      value.Date,
			Time:      value.Time,
			EndTime:   value.EndTime,
			Guests:    value.Guests,
			Status:    value.Status,
			Notes:     value.Notes,
			CreatedAt: current.CreatedAt,
			UpdatedAt: uc.timeProvider.Now(),
		}

		updated, err := uc.reservationRepo.Update(txCtx, req.ID, next)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to update reservation id=%s: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateReservation: successfully updated reservation id=%s", result.ID)
	return result, nil
}
