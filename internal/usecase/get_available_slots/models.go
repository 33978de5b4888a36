package get_available_slots

import (
	"github.com/m04kA/SMC-SlotScheduler/internal/domain"
	"github.com/m04kA/SMC-SlotScheduler/pkg/types"
)

// Config параметры сетки слотов и окна дат
type Config struct {
	StartMinute     int // начало дня, минуты от полуночи
	EndMinute       int // конец дня включительно, минуты от полуночи
	IntervalMinutes int
	MonthsForward   int
}

// Request запрос сетки слотов на дату (в режиме одного дня дата пустая)
type Request struct {
	Date types.DateString
}

// Response сетка слотов выбранного дня
type Response struct {
	Date  types.DateString
	Label string
	Slots []domain.SlotState
}

// CalendarResponse окно дат и группировка по месяцам
type CalendarResponse struct {
	Today  types.DateString
	Dates  []domain.DateOption
	Months []domain.MonthGroup
}
