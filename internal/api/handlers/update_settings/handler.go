package update_settings

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

// Handle PUT /api/settings.
// Тело — частичный документ: присланные поля перезаписывают текущие,
// отсутствующие сохраняют прежние значения.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var patch domain.SettingsPatch
	if err := handlers.DecodeJSON(r, &patch); err != nil {
		h.logger.Warn("PUT /settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	settings, err := h.schedule.PatchSettings(r.Context(), patch)
	if err != nil {
		h.logger.Error("PUT /settings - Failed to update settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /settings - Settings updated")
	handlers.RespondJSON(w, http.StatusOK, settings)
}
