package get_available_slots

import "errors"

var (
	// ErrInvalidConfig возвращается при некорректных параметрах генерации слотов
	ErrInvalidConfig = errors.New("get_available_slots: invalid slot configuration")

	// ErrInvalidDate возвращается при некорректной дате запроса
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrDateOutOfWindow возвращается, когда дата вне окна бронирования
	ErrDateOutOfWindow = errors.New("get_available_slots: date is outside of the booking window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")
)
