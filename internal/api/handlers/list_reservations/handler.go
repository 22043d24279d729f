package list_reservations

import (
	"net/http"

	"github.com/restburger/reservation-service/internal/api/handlers"
)

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

// Handle GET /api/reservations
// Query params: from, to (YYYY-MM-DD), status (waiting|confirmed|cancelled|all)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter := ToDomainFilter(r.URL.Query())

	list, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /reservations - Failed to list reservations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainReservations(list))
}
