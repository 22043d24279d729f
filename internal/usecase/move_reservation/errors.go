package move_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("move_reservation: reservation not found")

	// ErrSlotClosed возвращается, когда целевой слот вне рабочих часов или дата закрыта
	ErrSlotClosed = errors.New("move_reservation: time slot is closed")

	// ErrSlotFull возвращается, когда в целевом слоте уже максимум активных броней
	ErrSlotFull = errors.New("move_reservation: time slot is full")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("move_reservation: internal error")
)
