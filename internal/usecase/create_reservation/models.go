package create_reservation

// Request модель запроса на создание брони. Поля приходят сырыми строками:
// валидация собирает ВСЕ нарушения формата разом, а не по одному.
type Request struct {
	ID      string  // опционально; если пусто, генерируется новый идентификатор
	Name    string  // имя гостя
	Phone   string  // телефон, свободный формат
	Date    string  // "2024-12-09"
	Time    string  // "15:00"
	EndTime *string // "16:30" или nil
	Guests  int     // размер компании, 1..50
	Status  string  // waiting|confirmed|cancelled; пусто = waiting
	Notes   string  // свободные заметки
}
