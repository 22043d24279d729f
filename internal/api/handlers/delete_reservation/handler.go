package delete_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/restburger/reservation-service/internal/api/handlers"
	"github.com/restburger/reservation-service/internal/service/reservations"
)

// deleteResponse форма ответа удаления: подтверждение плюс снимок удалённой брони
type deleteResponse struct {
	OK      bool                         `json:"ok"`
	Removed handlers.ReservationResponse `json:"removed"`
}

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["reservationId"]

	removed, err := h.service.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, reservations.ErrReservationNotFound) {
			h.logger.Warn("DELETE /reservations/%s - Reservation not found", id)
			handlers.RespondNotFound(w)
			return
		}
		h.logger.Error("DELETE /reservations/%s - Failed to delete reservation: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /reservations/%s - Reservation deleted", id)
	handlers.RespondJSON(w, http.StatusOK, deleteResponse{
		OK:      true,
		Removed: handlers.FromDomainReservation(removed),
	})
}
