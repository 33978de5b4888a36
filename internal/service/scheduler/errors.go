package scheduler

import "errors"

var (
	// ErrNotStarted возвращается до вызова Start
	ErrNotStarted = errors.New("scheduler: not started")

	// ErrDateNotInWindow возвращается при выборе даты вне окна бронирования
	ErrDateNotInWindow = errors.New("scheduler: date is outside of the booking window")

	// ErrInvalidTimeSlot возвращается, когда время не входит в сетку слотов
	ErrInvalidTimeSlot = errors.New("scheduler: invalid time slot")

	// ErrSlotReserved возвращается при выборе уже занятого слота
	ErrSlotReserved = errors.New("scheduler: slot already reserved")

	// ErrNoActiveSlot возвращается при отправке формы без выбранного слота
	ErrNoActiveSlot = errors.New("scheduler: no active slot")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("scheduler: internal error")
)
