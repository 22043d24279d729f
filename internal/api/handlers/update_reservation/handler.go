package update_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/restburger/reservation-service/internal/api/handlers"
	"github.com/restburger/reservation-service/internal/domain"
	updateReservation "github.com/restburger/reservation-service/internal/usecase/update_reservation"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSlotClosed         = "This time slot is closed."
	msgSlotTaken          = "This time slot already has a reservation."
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["reservationId"]

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/%s - Invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(id))
	if err != nil {
		var validationErr *domain.ValidationError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("PUT /reservations/%s - Validation failed: %v", id, err)
			handlers.RespondValidationError(w, validationErr.Details)

		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/%s - Reservation not found", id)
			handlers.RespondNotFound(w)

		case errors.Is(err, updateReservation.ErrSlotClosed):
			h.logger.Warn("PUT /reservations/%s - Slot closed: date=%s, time=%s", id, req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeSlotClosed, msgSlotClosed)

		case errors.Is(err, updateReservation.ErrSlotFull):
			h.logger.Warn("PUT /reservations/%s - Slot full: date=%s, time=%s", id, req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeTimeSlotTaken, msgSlotTaken)

		default:
			h.logger.Error("PUT /reservations/%s - Failed to update reservation: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/%s - Reservation updated: date=%s, time=%s", id, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainReservation(result))
}
