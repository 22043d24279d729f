package create_reservation

import (
	"errors"
	"net/http"

	"github.com/restburger/reservation-service/internal/api/handlers"
	"github.com/restburger/reservation-service/internal/domain"
	createReservation "github.com/restburger/reservation-service/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSlotClosed         = "This time slot is closed."
	msgSlotTaken          = "This time slot already has a reservation."
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var validationErr *domain.ValidationError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /reservations - Validation failed: %v", err)
			handlers.RespondValidationError(w, validationErr.Details)

		case errors.Is(err, createReservation.ErrSlotClosed):
			h.logger.Warn("POST /reservations - Slot closed: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeSlotClosed, msgSlotClosed)

		case errors.Is(err, createReservation.ErrSlotFull):
			h.logger.Warn("POST /reservations - Slot full: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, handlers.CodeTimeSlotTaken, msgSlotTaken)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%s, date=%s, time=%s",
		result.ID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromDomainReservation(result))
}
