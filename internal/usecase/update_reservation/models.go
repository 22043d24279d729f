package update_reservation

// Request модель запроса на обновление брони. Идентификатор приходит из
// пути запроса; остальные поля проходят ту же валидацию, что и при
// создании, с накоплением всех нарушений.
type Request struct {
	ID      string
	Name    string
	Phone   string
	Date    string  // "2024-12-09"
	Time    string  // "15:00"
	EndTime *string // "16:30" или nil
	Guests  int
	Status  string // waiting|confirmed|cancelled; пусто = waiting
	Notes   string
}
