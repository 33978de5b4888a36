package decline_booking

import (
	"net/url"

	"github.com/m04kA/SMC-SlotScheduler/internal/domain"
	"github.com/m04kA/SMC-SlotScheduler/pkg/types"
)

// Request модель запроса на обработку адреса страницы
type Request struct {
	Location     *url.URL
	SelectedDate types.DateString // выбранная в интерфейсе дата, для пометки сетки
}

// Response результат сверки
type Response struct {
	Requested bool // в адресе были параметры отказа
	Declined  bool // бронирование действительно удалено
	Key       domain.BookingKey
	Booking   *domain.BookingRecord
	Location  *url.URL // адрес без параметров отказа
	GridDirty bool     // сетку выбранной даты нужно перерисовать
	Message   string   // подтверждение для пользователя, пусто если ничего не удалено
	Result    string
}
