package get_settings

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

// Handle GET /api/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	settings, err := h.schedule.Settings(r.Context())
	if err != nil {
		h.logger.Error("GET /settings - Failed to load settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, settings)
}
