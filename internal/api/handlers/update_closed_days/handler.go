package update_closed_days

import (
	"net/http"

	"github.com/restburger/reservation-service/internal/api/handlers"
	"github.com/restburger/reservation-service/internal/domain"
)

const msgInvalidRequestBody = "invalid request body"

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

// Handle PUT /api/closed.
// Тело — частичный документ: можно прислать только closedDates, только
// weeklyClosed либо оба поля сразу.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var patch domain.ClosedDaysPatch
	if err := handlers.DecodeJSON(r, &patch); err != nil {
		h.logger.Warn("PUT /closed - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	closed, err := h.schedule.PatchClosedDays(r.Context(), patch)
	if err != nil {
		h.logger.Error("PUT /closed - Failed to update closed days: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /closed - Closed days updated")
	handlers.RespondJSON(w, http.StatusOK, closed)
}
