package create_reservation

import "errors"

var (
	// ErrSlotClosed возвращается, когда слот вне рабочих часов или дата закрыта
	ErrSlotClosed = errors.New("create_reservation: time slot is closed")

	// ErrSlotFull возвращается, когда в слоте уже максимум активных броней
	ErrSlotFull = errors.New("create_reservation: time slot is full")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
