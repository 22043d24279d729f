package move_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restburger/reservation-service/internal/domain"
	reservationRepo "github.com/restburger/reservation-service/internal/infra/storage/reservation"
	"github.com/restburger/reservation-service/pkg/types"
)

type fakeRepo struct {
	existing     *domain.Reservation
	updated      *domain.Reservation
	activeCount  int
	countCalled  bool
	lastExcluded string
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	if f.existing == nil || f.existing.ID != id {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return f.existing, nil
}

func (f *fakeRepo) Update(_ context.Context, _ string, res *domain.Reservation) (*domain.Reservation, error) {
	f.updated = res
	return res, nil
}

func (f *fakeRepo) CountActiveAt(_ context.Context, _ time.Time, _ types.TimeString, excludeID string) (int, error) {
	f.countCalled = true
	f.lastExcluded = excludeID
	return f.activeCount, nil
}

type fakeSchedule struct {
	settings      domain.Settings
	slotOpen      bool
	slotOpenAsked bool
}

func (f *fakeSchedule) Settings(_ context.Context) (*domain.Settings, error) {
	return &f.settings, nil
}

func (f *fakeSchedule) IsSlotOpen(_ context.Context, _ time.Time, _ types.TimeString) (bool, error) {
	f.slotOpenAsked = true
	return f.slotOpen, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var frozenNow = time.Date(2024, 12, 5, 10, 0, 0, 0, time.UTC)

func existingReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:        "res-1",
		Name:      "John Smith",
		Phone:     "+447700900123",
		Date:      time.Date(2024, 12, 9, 0, 0, 0, 0, time.UTC),
		Time:      "15:00",
		Guests:    2,
		Notes:     "window seat",
		Status:    domain.StatusConfirmed,
		CreatedAt: time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC),
	}
}

func newTestUseCase(repo *fakeRepo, schedule *fakeSchedule) *UseCase {
	uc := NewUseCase(repo, schedule, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: frozenNow}
	return uc
}

func TestExecute_Success(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{existing: existingReservation()}
	uc := newTestUseCase(repo, &fakeSchedule{settings: domain.DefaultSettings(), slotOpen: true})

	result, err := uc.Execute(context.Background(), &Request{
		ID:   "res-1",
		Date: "2024-12-10",
		Time: "18:30",
	})
	require.NoError(t, err)

	// Переносятся только дата и время
	assert.Equal(t, "2024-12-10", result.Date.Format(domain.DateFormat))
	assert.Equal(t, types.TimeString("18:30"), result.Time)
	assert.Equal(t, "John Smith", result.Name)
	assert.Equal(t, "window seat", result.Notes)
	assert.Equal(t, domain.StatusConfirmed, result.Status)
	assert.Equal(t, existingReservation().CreatedAt, result.CreatedAt)
	assert.Equal(t, frozenNow, result.UpdatedAt)

	// Собственная бронь исключена из проверки вместимости
	assert.Equal(t, "res-1", repo.lastExcluded)
}

func TestExecute_SameSlotIsNoop(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{existing: existingReservation()}
	schedule := &fakeSchedule{settings: domain.DefaultSettings(), slotOpen: false}
	uc := newTestUseCase(repo, schedule)

	// Слот «закрыт», но перенос на то же место обязан пройти без проверок
	result, err := uc.Execute(context.Background(), &Request{
		ID:   "res-1",
		Date: "2024-12-09",
		Time: "15:00",
	})
	require.NoError(t, err)

	assert.Equal(t, existingReservation().UpdatedAt, result.UpdatedAt)
	assert.False(t, schedule.slotOpenAsked)
	assert.False(t, repo.countCalled)
	assert.Nil(t, repo.updated)
}

func TestExecute_NotFound(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	uc := newTestUseCase(repo, &fakeSchedule{settings: domain.DefaultSettings(), slotOpen: true})

	_, err := uc.Execute(context.Background(), &Request{ID: "ghost", Date: "2024-12-10", Time: "18:00"})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_InvalidTarget(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(&fakeRepo{existing: existingReservation()},
		&fakeSchedule{settings: domain.DefaultSettings(), slotOpen: true})

	_, err := uc.Execute(context.Background(), &Request{ID: "res-1", Date: "tomorrow", Time: "6pm"})

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Details, 2)
}

func TestExecute_TargetSlotClosed(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{existing: existingReservation()}
	uc := newTestUseCase(repo, &fakeSchedule{settings: domain.DefaultSettings(), slotOpen: false})

	_, err := uc.Execute(context.Background(), &Request{ID: "res-1", Date: "2024-12-10", Time: "18:00"})
	assert.ErrorIs(t, err, ErrSlotClosed)
	assert.Nil(t, repo.updated)
}

func TestExecute_TargetSlotFull(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{existing: existingReservation(), activeCount: 1}
	uc := newTestUseCase(repo, &fakeSchedule{settings: domain.DefaultSettings(), slotOpen: true})

	_, err := uc.Execute(context.Background(), &Request{ID: "res-1", Date: "2024-12-10", Time: "18:00"})
	assert.ErrorIs(t, err, ErrSlotFull)
	assert.Nil(t, repo.updated)
}
