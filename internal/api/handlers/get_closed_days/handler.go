package get_closed_days

import (
	"net/http"

	"github.com/restburger/reservation-service/internal/api/handlers"
)

type Handler struct {
	schedule ScheduleService
	logger   Logger
}

func NewHandler(schedule ScheduleService, logger Logger) *Handler {
	return &Handler{
		schedule: schedule,
		logger:   logger,
	}
}

// Handle GET /api/closed
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	closed, err := h.schedule.ClosedDays(r.Context())
	if err != nil {
		h.logger.Error("GET /closed - Failed to load closed days: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, closed)
}
