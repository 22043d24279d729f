package list_reservations

import (
	"net/url"
	"time"

	"github.com/restburger/reservation-service/internal/domain"
)

// ToDomainFilter собирает фильтр из query-параметров from/to/status.
// Невалидные даты игнорируются, status="all" (или пустой) — без фильтра.
// Именно такого поведения ждёт дашборд.
func ToDomainFilter(query url.Values) domain.ReservationsFilter {
	var filter domain.ReservationsFilter

	if from, err := time.Parse(domain.DateFormat, query.Get("from")); err == nil {
		filter.FromDate = &from
	}
	if to, err := time.Parse(domain.DateFormat, query.Get("to")); err == nil {
		filter.ToDate = &to
	}

	if status := query.Get("status"); status != "" && status != domain.StatusAll {
		s := domain.ReservationStatus(status)
		filter.Status = &s
	}

	return filter
}
