package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restburger/reservation-service/internal/domain"
	"github.com/restburger/reservation-service/internal/infra/storage/kv"
	"github.com/restburger/reservation-service/pkg/ptr"
	"github.com/restburger/reservation-service/pkg/types"
)

// fakeKVRepo хранит документы в памяти
type fakeKVRepo struct {
	docs map[string][]byte
}

func newFakeKVRepo() *fakeKVRepo {
	return &fakeKVRepo{docs: make(map[string][]byte)}
}

func (f *fakeKVRepo) Get(_ context.Context, key string) ([]byte, error) {
	doc, ok := f.docs[key]
	if !ok {
		return nil, kv.ErrKeyNotFound
	}
	return doc, nil
}

func (f *fakeKVRepo) Set(_ context.Context, key string, doc []byte) error {
	f.docs[key] = doc
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeKVRepo) {
	repo := newFakeKVRepo()
	return NewService(repo, nopLogger{}), repo
}

func TestService_Settings_DefaultsWhenMissing(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	settings, err := svc.Settings(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "RestBurger", settings.RestaurantName)
	assert.Equal(t, types.TimeString("11:00"), settings.OpeningHour)
	assert.Equal(t, types.TimeString("23:00"), settings.ClosingHour)
	assert.Equal(t, 30, settings.SlotMinutes)
	assert.Equal(t, 1, settings.MaxPerSlot)
}

func TestService_PatchSettings_ShallowMerge(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	ctx := context.Background()

	updated, err := svc.PatchSettings(ctx, domain.SettingsPatch{
		MaxPerSlot: ptr.Ptr(3),
	})
	require.NoError(t, err)

	// Патч меняет только присланное поле
	assert.Equal(t, 3, updated.MaxPerSlot)
	assert.Equal(t, "RestBurger", updated.RestaurantName)
	assert.Equal(t, types.TimeString("11:00"), updated.OpeningHour)

	// Результат персистентен: повторное чтение видит патч
	reloaded, err := svc.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, reloaded.MaxPerSlot)

	// Второй патч не затирает первый
	updated, err = svc.PatchSettings(ctx, domain.SettingsPatch{
		OpeningHour: ptr.Ptr(types.TimeString("09:00")),
	})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:00"), updated.OpeningHour)
	assert.Equal(t, 3, updated.MaxPerSlot)
}

func TestService_PatchClosedDays(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	ctx := context.Background()

	updated, err := svc.PatchClosedDays(ctx, domain.ClosedDaysPatch{
		ClosedDates: &[]string{"2024-12-25"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-12-25"}, updated.ClosedDates)
	assert.False(t, updated.WeeklyClosed.Monday)

	updated, err = svc.PatchClosedDays(ctx, domain.ClosedDaysPatch{
		WeeklyClosed: &domain.WeeklyClosed{Monday: true},
	})
	require.NoError(t, err)

	// Список дат сохранился, маска заменилась
	assert.Equal(t, []string{"2024-12-25"}, updated.ClosedDates)
	assert.True(t, updated.WeeklyClosed.Monday)
}

func TestService_IsSlotOpen(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.PatchClosedDays(ctx, domain.ClosedDaysPatch{
		ClosedDates: &[]string{"2024-12-25"},
	})
	require.NoError(t, err)

	open, err := svc.IsSlotOpen(ctx, wednesday, "15:00")
	require.NoError(t, err)
	assert.False(t, open)

	open, err = svc.IsSlotOpen(ctx, monday, "15:00")
	require.NoError(t, err)
	assert.True(t, open)

	open, err = svc.IsSlotOpen(ctx, monday, "08:00")
	require.NoError(t, err)
	assert.False(t, open)
}

func TestService_DaySlots(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	ctx := context.Background()

	slots, err := svc.DaySlots(ctx, monday)
	require.NoError(t, err)
	assert.Len(t, slots, 25)
	assert.Equal(t, 25, domain.OpenCount(slots))

	_, err = svc.PatchClosedDays(ctx, domain.ClosedDaysPatch{
		WeeklyClosed: &domain.WeeklyClosed{Monday: true},
	})
	require.NoError(t, err)

	slots, err = svc.DaySlots(ctx, monday)
	require.NoError(t, err)
	assert.Len(t, slots, 25)
	assert.Equal(t, 0, domain.OpenCount(slots))
}

func TestService_IsSlotOpen_UnpaddedStoredHours(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	ctx := context.Background()

	// Патч настроек принимает произвольный документ; "9:00" без ведущего
	// нуля не должен ломать последующие проверки слотов
	_, err := svc.PatchSettings(ctx, domain.SettingsPatch{
		OpeningHour: ptr.Ptr(types.TimeString("9:00")),
	})
	require.NoError(t, err)

	open, err := svc.IsSlotOpen(ctx, monday, "15:00")
	require.NoError(t, err)
	assert.True(t, open)

	open, err = svc.IsSlotOpen(ctx, monday, "08:30")
	require.NoError(t, err)
	assert.False(t, open)

	slots, err := svc.DaySlots(ctx, monday)
	require.NoError(t, err)
	assert.NotEmpty(t, slots)
	assert.Equal(t, types.TimeString("9:00"), slots[0].Time)
}

func TestService_CorruptDocument(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService()
	repo.docs[kv.KeySettings] = []byte("{not json")

	_, err := svc.Settings(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
