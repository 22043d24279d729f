package schedule

import (
	"time"

	"github.com/restburger/reservation-service/internal/domain"
	"github.com/restburger/reservation-service/pkg/types"
)

// isSlotOpen решает, доступен ли слот (date, t) для бронирования.
// Порядок проверок фиксирован:
//  1. дата закрыта (разовая дата или день недели) — закрыто;
//  2. время строго раньше открытия — закрыто;
//  3. время строго позже закрытия — закрыто;
//  4. иначе открыто.
//
// Граница закрытия ВКЛЮЧИТЕЛЬНАЯ: бронь ровно на время закрытия допустима.
// Это осознанное поведение, а не упущение; конец брони с временем закрытия
// не сверяется.
func isSlotOpen(settings domain.Settings, closed domain.ClosedDays, date time.Time, t types.TimeString) bool {
	if closed.IsDateClosed(date) {
		return false
	}
	if t.IsBefore(settings.OpeningHour) {
		return false
	}
	if t.IsAfter(settings.ClosingHour) {
		return false
	}
	return true
}

// enumerateSlots генерирует канонический список слотов дня: от времени
// открытия до времени закрытия включительно с шагом slotMinutes.
// Открытость каждого слота определяется независимо через isSlotOpen.
func enumerateSlots(settings domain.Settings, closed domain.ClosedDays, date time.Time) []domain.DaySlot {
	slots := make([]domain.DaySlot, 0)
	if settings.SlotMinutes <= 0 {
		return slots
	}

	current := settings.OpeningHour
	for !current.IsAfter(settings.ClosingHour) {
		slots = append(slots, domain.DaySlot{
			Time: current,
			Open: isSlotOpen(settings, closed, date, current),
		})

		next, err := current.AddMinutes(settings.SlotMinutes)
		if err != nil {
			// Шаг вышел за пределы суток — дальше слотов нет
			break
		}
		current = next
	}

	return slots
}
