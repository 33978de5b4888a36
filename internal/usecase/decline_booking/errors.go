package decline_booking

import "errors"

var (
	// ErrInvalidInput возвращается, когда адрес страницы не передан
	ErrInvalidInput = errors.New("decline_booking: invalid input data")
)

// Метки результата для метрик
const (
	ResultNone     = "none"     // в адресе нет параметров отказа
	ResultDeclined = "declined" // бронирование удалено
	ResultStale    = "stale"    // слот уже свободен
	ResultInvalid  = "invalid"  // параметры не разбираются в ключ
)
