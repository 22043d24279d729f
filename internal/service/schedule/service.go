package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/restburger/reservation-service/internal/domain"
	"github.com/restburger/reservation-service/internal/infra/storage/kv"
	"github.com/restburger/reservation-service/pkg/types"
)

// Service сервис расписания: настройки ресторана, календарь закрытий и
// вычисление доступности слотов. Конфигурация передаётся явно через
// репозиторий, а не через process-wide глобалы — это позволяет гонять
// несколько конфигураций в одном тестовом прогоне.
type Service struct {
	kvRepo KVRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(kvRepo KVRepository, logger Logger) *Service {
	return &Service{
		kvRepo: kvRepo,
		logger: logger,
	}
}

// Settings возвращает текущие настройки ресторана.
// Если документ отсутствует (БД не была засеяна), возвращает дефолты.
func (s *Service) Settings(ctx context.Context) (*domain.Settings, error) {
	doc, err := s.kvRepo.Get(ctx, kv.KeySettings)
	if errors.Is(err, kv.ErrKeyNotFound) {
		defaults := domain.DefaultSettings()
		return &defaults, nil
	}
	if err != nil {
		s.logger.Error("Settings: repository error: %v", err)
		return nil, fmt.Errorf("%w: Settings - repository error: %v", ErrInternal, err)
	}

	var settings domain.Settings
	if err := json.Unmarshal(doc, &settings); err != nil {
		s.logger.Error("Settings: corrupt settings document: %v", err)
		return nil, fmt.Errorf("%w: Settings - unmarshal document: %v", ErrInternal, err)
	}

	return &settings, nil
}

// PatchSettings накладывает частичное обновление на настройки.
// Shallow merge: поля, отсутствующие в патче, сохраняют прежние значения.
func (s *Service) PatchSettings(ctx context.Context, patch domain.SettingsPatch) (*domain.Settings, error) {
	current, err := s.Settings(ctx)
	if err != nil {
		return nil, err
	}

	next := current.Apply(patch)

	doc, err := json.Marshal(next)
	if err != nil {
		return nil, fmt.Errorf("%w: PatchSettings - marshal document: %v", ErrInternal, err)
	}
	if err := s.kvRepo.Set(ctx, kv.KeySettings, doc); err != nil {
		s.logger.Error("PatchSettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: PatchSettings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("PatchSettings: settings updated (opening=%s, closing=%s, slot=%dm, maxPerSlot=%d)",
		next.OpeningHour, next.ClosingHour, next.SlotMinutes, next.MaxPerSlot)
	return &next, nil
}

// ClosedDays возвращает календарь закрытий.
func (s *Service) ClosedDays(ctx context.Context) (*domain.ClosedDays, error) {
	doc, err := s.kvRepo.Get(ctx, kv.KeyClosedDays)
	if errors.Is(err, kv.ErrKeyNotFound) {
		defaults := domain.DefaultClosedDays()
		return &defaults, nil
	}
	if err != nil {
		s.logger.Error("ClosedDays: repository error: %v", err)
		return nil, fmt.Errorf("%w: ClosedDays - repository error: %v", ErrInternal, err)
	}

	var closed domain.ClosedDays
	if err := json.Unmarshal(doc, &closed); err != nil {
		s.logger.Error("ClosedDays: corrupt closed document: %v", err)
		return nil, fmt.Errorf("%w: ClosedDays - unmarshal document: %v", ErrInternal, err)
	}

	return &closed, nil
}

// PatchClosedDays накладывает частичное обновление на календарь закрытий.
func (s *Service) PatchClosedDays(ctx context.Context, patch domain.ClosedDaysPatch) (*domain.ClosedDays, error) {
	current, err := s.ClosedDays(ctx)
	if err != nil {
		return nil, err
	}

	next := current.Apply(patch)

	doc, err := json.Marshal(next)
	if err != nil {
		return nil, fmt.Errorf("%w: PatchClosedDays - marshal document: %v", ErrInternal, err)
	}
	if err := s.kvRepo.Set(ctx, kv.KeyClosedDays, doc); err != nil {
		s.logger.Error("PatchClosedDays: repository error: %v", err)
		return nil, fmt.Errorf("%w: PatchClosedDays - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("PatchClosedDays: calendar updated (%d one-off dates)", len(next.ClosedDates))
	return &next, nil
}

// IsDateClosed проверяет, закрыта ли дата целиком.
func (s *Service) IsDateClosed(ctx context.Context, date time.Time) (bool, error) {
	closed, err := s.ClosedDays(ctx)
	if err != nil {
		return false, err
	}
	return closed.IsDateClosed(date), nil
}

// IsSlotOpen проверяет доступность конкретного слота (date, t).
func (s *Service) IsSlotOpen(ctx context.Context, date time.Time, t types.TimeString) (bool, error) {
	settings, err := s.Settings(ctx)
	if err != nil {
		return false, err
	}
	closed, err := s.ClosedDays(ctx)
	if err != nil {
		return false, err
	}
	return isSlotOpen(*settings, *closed, date, t), nil
}

// DaySlots возвращает канонический список слотов на дату с признаком
// открытости каждого слота.
func (s *Service) DaySlots(ctx context.Context, date time.Time) ([]domain.DaySlot, error) {
	settings, err := s.Settings(ctx)
	if err != nil {
		return nil, err
	}
	closed, err := s.ClosedDays(ctx)
	if err != nil {
		return nil, err
	}
	return enumerateSlots(*settings, *closed, date), nil
}
