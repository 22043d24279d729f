package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/restburger/reservation-service/internal/domain"
	reservationRepo "github.com/restburger/reservation-service/internal/infra/storage/reservation"
)

// Service сервис чтения и удаления бронирований. Мутации, требующие
// проверки слотов (create/update/move), живут в отдельных usecase.
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// List возвращает брони с фильтрацией по периоду и статусу,
// отсортированные по (date, time) по возрастанию.
func (s *Service) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	reservations, err := s.reservationRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations", len(reservations))
	return reservations, nil
}

// GetByID получает бронь по идентификатору
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return res, nil
}

// Delete удаляет бронь и возвращает удалённую запись.
// Физическое удаление, tombstone не создаётся.
func (s *Service) Delete(ctx context.Context, id string) (*domain.Reservation, error) {
	res, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: reservation id=%s removed", id)
	return res, nil
}
