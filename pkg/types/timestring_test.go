package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "09:30", want: "09:30"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid last minute", input: "23:59", want: "23:59"},
		{name: "trims whitespace", input: "  15:00 ", want: "15:00"},
		{name: "missing leading zero", input: "9:30", wantErr: true},
		{name: "no colon", input: "0930", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "12:60", wantErr: true},
		{name: "not a number", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "with seconds", input: "12:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, TimeString("00:00").Minutes())
	assert.Equal(t, 11*60, TimeString("11:00").Minutes())
	assert.Equal(t, 23*60+59, TimeString("23:59").Minutes())

	// Значения без ведущего нуля могли попасть в хранилище через патч
	// настроек; считаем их по содержимому, а не по позициям символов
	assert.Equal(t, 9*60, TimeString("9:00").Minutes())
	assert.Equal(t, 9*60+5, TimeString("9:5").Minutes())

	// Мусор не должен ронять процесс; трактуем как полночь
	assert.Equal(t, 0, TimeString("").Minutes())
	assert.Equal(t, 0, TimeString("noon").Minutes())
	assert.Equal(t, 0, TimeString("ab:cd").Minutes())
}

func TestTimeString_Ordering(t *testing.T) {
	t.Parallel()

	assert.True(t, TimeString("10:00").IsBefore("10:30"))
	assert.False(t, TimeString("10:30").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))

	// Равные значения не строго раньше и не строго позже
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	t.Parallel()

	got, err := TimeString("11:00").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), got)

	got, err = TimeString("22:45").AddMinutes(74)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:59"), got)

	// Переход через полночь — ошибка
	_, err = TimeString("23:45").AddMinutes(30)
	assert.Error(t, err)

	_, err = TimeString("00:10").AddMinutes(-20)
	assert.Error(t, err)
}

func TestTimeString_Scan(t *testing.T) {
	t.Parallel()

	var ts TimeString

	require.NoError(t, ts.Scan("14:30"))
	assert.Equal(t, TimeString("14:30"), ts)

	// TIME-колонка возвращает секунды
	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("09:15")))
	assert.Equal(t, TimeString("09:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2024, 12, 9, 18, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("18:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	t.Parallel()

	v, err := TimeString("11:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "11:00", v)
}
