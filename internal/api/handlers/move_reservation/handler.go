package move_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/restburger/reservation-service/internal/api/handlers"
	"github.com/restburger/reservation-service/internal/domain"
	moveReservation "github.com/restburger/reservation-service/internal/usecase/move_reservation"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSlotClosed         = "This time slot is closed."
	msgSlotTaken          = "This time slot already has a reservation."
)

// MoveReservationRequest HTTP request model
type MoveReservationRequest struct {
	Date string `json:"date"` // "2024-12-09"
	Time string `json:"time"` // "15:00"
}

type Handler struct {
	useCase MoveReservationUseCase
	logger  Logger
}

func NewHandler(useCase MoveReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/reservations/{reservationId}/move
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["reservationId"]

	var req MoveReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/%s/move - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &moveReservation.Request{
		ID:   id,
		Date: req.Date,
		Time: req.Time,
	})
	if err != nil {
		var validationErr *domain.ValidationError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("PATCH /reservations/%s/move - Validation failed: %v", id, err)
			handlers.RespondValidationError(w, validationErr.Details)

		case errors.Is(err, moveReservation.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/%s/move - Reservation not found", id)
			handlers.RespondNotFound(w)

		case errors.Is(err, moveReservation.ErrSlotClosed):
			h.logger.Warn("PATCH /reservations/%s/move - Slot closed: date=%s, time=%s", id, req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeSlotClosed, msgSlotClosed)

		case errors.Is(err, moveReservation.ErrSlotFull):
			h.logger.Warn("PATCH /reservations/%s/move - Slot full: date=%s, time=%s", id, req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeTimeSlotTaken, msgSlotTaken)

		default:
			h.logger.Error("PATCH /reservations/%s/move - Failed to move reservation: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/%s/move - Reservation moved: date=%s, time=%s", id, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainReservation(result))
}
