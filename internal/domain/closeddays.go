package domain

import "time"

// WeeklyClosed is the recurring closure mask, one flag per weekday.
type WeeklyClosed struct {
	Monday    bool `json:"monday"`
	Tuesday   bool `json:"tuesday"`
	Wednesday bool `json:"wednesday"`
	Thursday  bool `json:"thursday"`
	Friday    bool `json:"friday"`
	Saturday  bool `json:"saturday"`
	Sunday    bool `json:"sunday"`
}

// IsClosed reports whether the mask closes the given weekday.
func (w WeeklyClosed) IsClosed(day time.Weekday) bool {
	switch day {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return false
	}
}

// ClosedDays is the closure-calendar singleton: one-off closed dates plus
// the weekly recurring mask. A date is closed when it appears in ClosedDates
// OR its weekday is flagged — there is no mechanism to re-open a date whose
// weekday is closed.
type ClosedDays struct {
	ClosedDates  []string     `json:"closedDates"` // YYYY-MM-DD
	WeeklyClosed WeeklyClosed `json:"weeklyClosed"`
}

// IsDateClosed применяет OR-семантику: разовая закрытая дата либо
// закрытый день недели.
func (c ClosedDays) IsDateClosed(date time.Time) bool {
	iso := date.Format(DateFormat)
	for _, d := range c.ClosedDates {
		if d == iso {
			return true
		}
	}
	return c.WeeklyClosed.IsClosed(date.Weekday())
}

// ClosedDaysPatch частичное обновление календаря закрытий.
type ClosedDaysPatch struct {
	ClosedDates  *[]string     `json:"closedDates,omitempty"`
	WeeklyClosed *WeeklyClosed `json:"weeklyClosed,omitempty"`
}

// Apply накладывает патч (shallow merge: список дат и маска заменяются
// целиком, отсутствующие поля не трогаются).
func (c ClosedDays) Apply(p ClosedDaysPatch) ClosedDays {
	if p.ClosedDates != nil {
		c.ClosedDates = *p.ClosedDates
	}
	if p.WeeklyClosed != nil {
		c.WeeklyClosed = *p.WeeklyClosed
	}
	return c
}

// DefaultClosedDays returns the all-open calendar seeded on first startup.
func DefaultClosedDays() ClosedDays {
	return ClosedDays{ClosedDates: []string{}}
}
