package update_reservation

import (
	"strings"
	"time"

	"github.com/restburger/reservation-service/internal/domain"
	"github.com/restburger/reservation-service/pkg/types"
)

// validated нормализованные данные брони после успешной валидации
type validated struct {
	Name    string
	Phone   string
	Date    time.Time
	Time    types.TimeString
	EndTime *types.TimeString
	Guests  int
	Status  domain.ReservationStatus
	Notes   string
}

// validateRequest проверяет форму входных данных, накапливая все нарушения
// в одном domain.ValidationError. Контракт тот же, что у создания брони.
func validateRequest(req *Request) (*validated, error) {
	details := make([]string, 0)

	out := &validated{
		Name:   strings.TrimSpace(req.Name),
		Phone:  strings.TrimSpace(req.Phone),
		Guests: req.Guests,
		Notes:  strings.TrimSpace(req.Notes),
	}

	if out.Name == "" {
		details = append(details, "name is required")
	}
	if out.Phone == "" {
		details = append(details, "phone is required")
	}

	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(req.Date))
	if err != nil {
		details = append(details, "date must be YYYY-MM-DD")
	} else {
		out.Date = date
	}

	startTime, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		details = append(details, "time must be HH:MM")
	} else {
		out.Time = startTime
	}

	if req.EndTime != nil && strings.TrimSpace(*req.EndTime) != "" {
		endTime, err := types.NewTimeStringFromString(*req.EndTime)
		if err != nil {
			details = append(details, "endTime must be HH:MM")
		} else {
			out.EndTime = &endTime
		}
	}

	if req.Guests < domain.MinGuests || req.Guests > domain.MaxGuests {
		details = append(details, "guests must be between 1 and 50")
	}

	status := domain.ReservationStatus(strings.ToLower(strings.TrimSpace(req.Status)))
	if status == "" {
		status = domain.StatusWaiting
	}
	if !status.IsValid() {
		details = append(details, "status must be waiting|confirmed|cancelled")
	} else {
		out.Status = status
	}

	if len(details) > 0 {
		return nil, domain.NewValidationError(details)
	}

	return out, nil
}
