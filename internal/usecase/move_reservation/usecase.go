package move_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/restburger/reservation-service/internal/domain"
	reservationRepo "github.com/restburger/reservation-service/internal/infra/storage/reservation"
	"github.com/restburger/reservation-service/pkg/types"
)

// Request модель запроса на перенос брони (drag-and-drop в календаре).
// Меняются только дата и время, остальные поля сохраняются.
type Request struct {
	ID   string
	Date string // "2024-12-09"
	Time string // "15:00"
}

// UseCase use case переноса брони на другой слот
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

// Execute выполняет use case переноса брони.
// Перенос на тот же слот завершается успешно без повторных проверок
// закрытия и вместимости.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Reservation, error) {
	uc.logger.Info("MoveReservation: id=%s -> date=%s, time=%s", req.ID, req.Date, req.Time)

	newDate, newTime, err := parseTarget(req)
	if err != nil {
		uc.logger.Warn("MoveReservation: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Reservation

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Бронь должна существовать
		current, err := uc.reservationRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("MoveReservation: reservation id=%s not found", req.ID)
				return ErrReservationNotFound
			}
			uc.logger.Error("MoveReservation: failed to get reservation id=%s: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 2. No-op: тот же слот — успех без повторной валидации
		if current.SameSlot(newDate, newTime) {
			uc.logger.Info("MoveReservation: id=%s already at %s %s, nothing to do",
				req.ID, req.Date, req.Time)
			result = current
			return nil
		}

		// 3. Целевой слот должен быть открыт
		open, err := uc.schedule.IsSlotOpen(txCtx, newDate, newTime)
		if err != nil {
			uc.logger.Error("MoveReservation: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}
		if !open {
			uc.logger.Warn("MoveReservation: slot %s %s is closed", req.Date, req.Time)
			return ErrSlotClosed
		}

		// 4. Вместимость целевого слота без учёта самой брони
		settings, err := uc.schedule.Settings(txCtx)
		if err != nil {
			uc.logger.Error("MoveReservation: failed to get settings: %v", err)
			return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}

		taken, err := uc.reservationRepo.CountActiveAt(txCtx, newDate, newTime, req.ID)
		if err != nil {
			uc.logger.Error("MoveReservation: failed to count active reservations: %v", err)
			return fmt.Errorf("%w: failed to count active reservations: %v", ErrInternal, err)
		}
		if taken >= settings.MaxPerSlot {
			uc.logger.Warn("MoveReservation: slot %s %s is full (%d/%d)",
				req.Date, req.Time, taken, settings.MaxPerSlot)
			return ErrSlotFull
		}

		// 5. Меняем только дату и время, двигаем updated_at
		next := *current
		next.Date = newDate
		next.Time = newTime
		next.UpdatedAt = uc.timeProvider.Now()

		updated, err := uc.reservationRepo.Update(txCtx, req.ID, &next)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			uc.logger.Error("MoveReservation: failed to update reservation id=%s: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("MoveReservation: reservation id=%s now at %s %s",
		result.ID, result.Date.Format(domain.DateFormat), result.Time)
	return result, nil
}

// parseTarget валидирует целевые дату и время, накапливая нарушения
func parseTarget(req *Request) (time.Time, types.TimeString, error) {
	details := make([]string, 0)

	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(req.Date))
	if err != nil {
		details = append(details, "date must be YYYY-MM-DD")
	}

	newTime, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		details = append(details, "time must be HH:MM")
	}

	if len(details) > 0 {
		return time.Time{}, "", domain.NewValidationError(details)
	}

	return date, newTime, nil
}
