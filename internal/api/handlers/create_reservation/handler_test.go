package create_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restburger/reservation-service/internal/domain"
	createReservation "github.com/restburger/reservation-service/internal/usecase/create_reservation"
)

type fakeUseCase struct {
	result *domain.Reservation
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *createReservation.Request) (*domain.Reservation, error) {
	return f.result, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{"name":"John Smith","phone":"+447700900123","date":"2024-12-09","time":"15:00","guests":2}`

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	t.Parallel()

	uc := &fakeUseCase{result: &domain.Reservation{
		ID:        "res-1",
		Name:      "John Smith",
		Phone:     "+447700900123",
		Date:      time.Date(2024, 12, 9, 0, 0, 0, 0, time.UTC),
		Time:      "15:00",
		Guests:    2,
		Status:    domain.StatusWaiting,
		CreatedAt: time.Date(2024, 12, 5, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 12, 5, 10, 0, 0, 0, time.UTC),
	}}

	rec := doRequest(t, uc, validBody)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "res-1", got["id"])
	assert.Equal(t, "2024-12-09", got["date"])
	assert.Equal(t, "15:00", got["time"])
	assert.Equal(t, "waiting", got["status"])
	// endTime присутствует в ответе явно, даже когда он не задан
	_, ok := got["endTime"]
	assert.True(t, ok)
}

func TestHandle_ValidationError(t *testing.T) {
	t.Parallel()

	uc := &fakeUseCase{err: domain.NewValidationError([]string{
		"name is required",
		"date must be YYYY-MM-DD",
	})}

	rec := doRequest(t, uc, `{"guests":2}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var got struct {
		Error   string   `json:"error"`
		Details []string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "validation_error", got.Error)
	assert.Equal(t, []string{"name is required", "date must be YYYY-MM-DD"}, got.Details)
}

func TestHandle_SlotClosed(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, &fakeUseCase{err: createReservation.ErrSlotClosed}, validBody)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var got struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "slot_closed", got.Error)
	assert.Equal(t, "This time slot is closed.", got.Message)
}

func TestHandle_SlotTaken(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, &fakeUseCase{err: createReservation.ErrSlotFull}, validBody)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var got struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "time_slot_taken", got.Error)
	assert.Equal(t, "This time slot already has a reservation.", got.Message)
}

func TestHandle_InternalError(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, &fakeUseCase{err: createReservation.ErrInternal}, validBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal_error")
}

func TestHandle_MalformedBody(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, &fakeUseCase{}, `{"name":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "bad_request")
}
