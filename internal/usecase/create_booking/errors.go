package create_booking

import "errors"

var (
	// ErrMissingName возвращается, когда имя пустое после обрезки пробелов
	ErrMissingName = errors.New("create_booking: missing name")

	// ErrBadPhone возвращается, когда в номере не ровно нужное количество цифр
	ErrBadPhone = errors.New("create_booking: bad phone")

	// ErrSlotTaken возвращается, когда слот уже занят
	ErrSlotTaken = errors.New("create_booking: slot taken")

	// ErrInvalidTimeSlot возвращается, когда время не входит в сетку слотов
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrInvalidDate возвращается при некорректной дате или дате вне окна бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// Outcome метка результата для метрик
func Outcome(err error) string {
	switch {
	case err == nil:
		return "created"
	case errors.Is(err, ErrMissingName):
		return "missing_name"
	case errors.Is(err, ErrBadPhone):
		return "bad_phone"
	case errors.Is(err, ErrSlotTaken):
		return "slot_taken"
	case errors.Is(err, ErrInvalidTimeSlot):
		return "invalid_time"
	case errors.Is(err, ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	default:
		return "error"
	}
}
