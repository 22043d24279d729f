package update_reservation

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
	f.lastExcluded = excludeID
	return f.activeCount, nil
}

type fakeSchedule struct {
	settings domain.Settings
	slotOpen bool
}

func (f *fakeSchedule) Settings(_ context.Context) (*domain.Settings, error) {
	return &f.settings, nil
}

func (f *fakeSchedule) IsSlotOpen(_ context.Context, _ time.Time, _ types.TimeString) (bool, error) {
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
		Status:    domain.StatusWaiting,
		CreatedAt: time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC),
	}
}

func validRequest() *Request {
	return &Request{
		ID:     "res-1",
		Name:   "John Smith",
		Phone:  "+447700900123",
		Date:   "2024-12-10",
		Time:   "18:00",
		Guests: 4,
		Status: "confirmed",
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

	result, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "res-1", result.ID)
	assert.Equal(t, 4, result.Guests)
	assert.Equal(t, domain.StatusConfirmed, result.Status)
	assert.Equal(t, types.TimeString("18:00"), result.Time)

	// created_at первичной записи сохраняется, updated_at двигается
	assert.Equal(t, existingReservation().CreatedAt, result.CreatedAt)
	assert.Equal(t, frozenNow, result.UpdatedAt)
}

func TestExecute_ExcludesSelfFromCapacityCheck(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{existing: existingReservation()}
	uc := newTestUseCase(repo, &fakeSchedule{settings: domain.DefaultSettings(), slotOpen: true})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Собственная бронь не должна занимать место в целевом слоте
	assert.Equal(t, "res-1", repo.lastExcluded)
}

func TestExecute_NotFound(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	uc := newTestUseCase(repo, &fakeSchedule{settings: domain.DefaultSettings(), slotOpen: true})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.Nil(t, repo.updated)
}

func TestExecute_ValidationBeforeLookup(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{existing: existingReservation()}
	uc := newTestUseCase(repo, &fakeSchedule{settings: domain.DefaultSettings(), slotOpen: true})

	req := validRequest()
	req.Date = "next tuesday"
	req.Guests = 100

	_, err := uc.Execute(context.Background(), req)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Details, "date must be YYYY-MM-DD")
	assert.Contains(t, validationErr.Details, "guests must be between 1 and 50")
}

func TestExecute_SlotClosedBeforeMissingReservation(t *testing.T) {
	t.Parallel()

	// Закрытый слот сообщается раньше отсутствия брони
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, &fakeSchedule{settings: domain.DefaultSettings(), slotOpen: false})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotClosed)
}

func TestExecute_SlotFullBeforeMissingReservation(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{activeCount: 1}
	uc := newTestUseCase(repo, &fakeSchedule{settings: domain.DefaultSettings(), slotOpen: true})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotFull)
}

func TestExecute_SlotClosed(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{existing: existingReservation()}
	uc := newTestUseCase(repo, &fakeSchedule{settings: domain.DefaultSettings(), slotOpen: false})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotClosed)
}

func TestExecute_SlotFull(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{existing: existingReservation(), activeCount: 1}
	uc := newTestUseCase(repo, &fakeSchedule{settings: domain.DefaultSettings(), slotOpen: true})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotFull)
	assert.Nil(t, repo.updated)
}
