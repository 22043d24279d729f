package get_day_slots

import (
	"net/http"
	"time"

	"github.com/restburger/reservation-service/internal/api/handlers"
	"github.com/restburger/reservation-service/internal/domain"
)

const msgInvalidDate = "date must be YYYY-MM-DD"

// slotResponse один слот дня
type slotResponse struct {
	Time string `json:"time"`
	Open bool   `json:"open"`
}

// daySlotsResponse форма ответа: дата и перечисление слотов рабочего дня
type daySlotsResponse struct {
	Date  string         `json:"date"`
	Slots []slotResponse `json:"slots"`
}

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

// Handle GET /api/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := r.URL.Query().Get("date")

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date %q", rawDate)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slots, err := h.schedule.DaySlots(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /slots - Failed to enumerate slots for %s: %v", rawDate, err)
		handlers.RespondInternalError(w)
		return
	}

	out := daySlotsResponse{
		Date:  date.Format(domain.DateFormat),
		Slots: make([]slotResponse, 0, len(slots)),
	}
	for _, s := range slots {
		out.Slots = append(out.Slots, slotResponse{Time: s.Time.String(), Open: s.Open})
	}

	handlers.RespondJSON(w, http.StatusOK, out)
}
